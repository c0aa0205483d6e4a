// Рендер
package ui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing UI..."
	}

	if m.view == viewCredential {
		return m.viewCredentialScreen()
	}
	return m.viewMainScreen()
}

// viewCredentialScreen рендерит экран ввода API ключа.
func (m Model) viewCredentialScreen() string {
	var b strings.Builder

	header := headerStyle.Width(m.width).Render(" Blueprint AI — App Brief Generator ")
	b.WriteString(header + "\n\n")

	b.WriteString(labelStyle("  API Key") + "\n")
	b.WriteString("  " + m.keyInput.View() + "\n\n")

	if m.errText != "" {
		b.WriteString("  " + errorMsgStyle(m.errText) + "\n\n")
	}

	b.WriteString("  " + faintStyle("The key is kept in memory only and is never stored.") + "\n")
	b.WriteString("  " + faintStyle("Enter - continue, Esc/Ctrl+C - quit") + "\n")

	return b.String()
}

// viewMainScreen рендерит форму генерации, индикатор загрузки,
// область результата и область ошибки.
func (m Model) viewMainScreen() string {
	var b strings.Builder

	status := fmt.Sprintf(" Blueprint AI | MODEL: %s ", m.session.ModelName())
	b.WriteString(headerStyle.Width(m.width).Render(status) + "\n\n")

	// Поля формы
	b.WriteString(m.fieldLabel("App Idea", focusIdea) + "\n")
	b.WriteString(m.ideaInput.View() + "\n\n")

	b.WriteString(m.fieldLabel("Key Features (optional)", focusFeatures) + "\n")
	b.WriteString(m.featuresInput.View() + "\n\n")

	b.WriteString(m.fieldLabel("Target Audience (optional)", focusAudience) + "\n")
	b.WriteString(m.audienceInput.View() + "\n\n")

	// Индикатор загрузки: виден строго пока запрос в полёте
	if m.loading {
		b.WriteString(m.spinner.View() + " Generating brief...\n")
	}

	// Область ошибки
	if m.errText != "" {
		b.WriteString(errorMsgStyle(m.errText) + "\n")
	}

	// Область результата
	if m.hasResult {
		b.WriteString(borderStyle(strings.Repeat("─", m.width)) + "\n")
		b.WriteString(m.viewport.View() + "\n")
	}

	if m.status != "" {
		b.WriteString(successMsgStyle(m.status) + "\n")
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

// fieldLabel подсвечивает подпись активного поля.
func (m Model) fieldLabel(label string, f focusField) string {
	if m.focus == f {
		return labelFocusedStyle("> " + label)
	}
	return labelStyle("  " + label)
}

// renderFooter рендерит строку подсказок.
func (m Model) renderFooter() string {
	if m.loading {
		return faintStyle("(generating...) Ctrl+C - quit")
	}

	copyHint := "Ctrl+Y - copy"
	if m.copyAck {
		copyHint = successMsgStyle("✓ Copied!")
	}

	return faintStyle("Ctrl+G - generate, Tab - next field, ") +
		copyHint +
		faintStyle(", Ctrl+E - export HTML, Esc - API key, Ctrl+C - quit")
}
