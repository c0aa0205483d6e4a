// Package ui реализует Model компонент Bubble Tea TUI.
//
// Два экрана: ввод API ключа (gate) и основная форма генерации брифа.
// Содержит структуру UI и функцию инициализации.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/blueprint-ai/internal/app"
)

// view определяет текущий экран приложения.
type view int

const (
	viewCredential view = iota // Экран ввода API ключа
	viewMain                   // Основная форма генерации
)

// focusField определяет какое поле формы активно.
type focusField int

const (
	focusIdea focusField = iota
	focusFeatures
	focusAudience
	focusCount // Количество полей для циклирования
)

// Model представляет главную модель UI (Bubble Tea Model).
//
// Состояния экрана генерации взаимоисключающие:
//   - loading=true: спиннер виден, триггер генерации отключён
//   - hasResult=true: viewport с брифом виден
//   - errText!="": строка ошибки видна
//
// Новый запуск генерации скрывает и результат, и ошибку.
type Model struct {
	session *app.Session

	view  view
	focus focusField

	// Компоненты экрана credential
	keyInput textinput.Model

	// Компоненты основной формы
	ideaInput     textarea.Model
	featuresInput textinput.Model
	audienceInput textinput.Model
	spinner       spinner.Model
	viewport      viewport.Model

	loading   bool
	hasResult bool
	errText   string // Текст ошибки ("" = ошибки нет)
	status    string // Строка статуса (например, путь экспорта)
	copyAck   bool   // Временная подмена подписи кнопки копирования

	width  int
	height int
	ready  bool
}

// InitialModel создает начальное состояние UI.
//
// Приложение стартует на экране credential; поле ключа может быть
// предзаполнено из конфига, но gate всё равно проходится явно.
func InitialModel(session *app.Session) Model {
	// 1. Поле ввода API ключа (скрытый ввод)
	ki := textinput.New()
	ki.Placeholder = "Enter your API key..."
	ki.EchoMode = textinput.EchoPassword
	ki.EchoCharacter = '•'
	ki.CharLimit = 256
	ki.SetValue(session.DefaultCredential())
	ki.Focus()

	// 2. Поля основной формы
	ia := textarea.New()
	ia.Placeholder = "Describe your app idea (e.g. a recipe sharing app)..."
	ia.Prompt = "┃ "
	ia.CharLimit = 2000
	ia.SetHeight(4)
	ia.ShowLineNumbers = false

	fi := textinput.New()
	fi.Placeholder = "Key features (optional)..."
	fi.CharLimit = 500

	ai := textinput.New()
	ai.Placeholder = "Target audience (optional)..."
	ai.CharLimit = 500

	// 3. Спиннер для индикатора загрузки
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	// 4. Вьюпорт результата. Размеры обновятся при первом WindowSizeMsg
	vp := viewport.New(0, 0)

	return Model{
		session:       session,
		view:          viewCredential,
		focus:         focusIdea,
		keyInput:      ki,
		ideaInput:     ia,
		featuresInput: fi,
		audienceInput: ai,
		spinner:       sp,
		viewport:      vp,
	}
}

// Init запускается один раз при старте Bubble Tea программы.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
