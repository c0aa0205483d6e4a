// Красота

package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Цвета
	primaryColor = lipgloss.Color("62")  // Фиолетовый
	accentColor  = lipgloss.Color("205") // Розовый
	grayColor    = lipgloss.Color("240")

	// Стили хедера
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 1).
			Bold(true)

	// Подписи полей формы
	labelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Render

	labelFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFD700")).
				Bold(true).
				Render

	// Сообщения
	errorMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true).
			Render

	successMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B")).
			Render

	faintStyle = lipgloss.NewStyle().
			Faint(true).
			Render

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	borderStyle = lipgloss.NewStyle().
			Foreground(grayColor).
			Render
)
