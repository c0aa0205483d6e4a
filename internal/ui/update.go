// Логика - обрабатывает нажатия клавиш и результаты асинхронных команд.

package ui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ilkoid/blueprint-ai/pkg/utils"
)

// Сколько держать подпись "Copied!" на кнопке копирования.
const copyAckDuration = 2 * time.Second

// Фиксированный префикс ошибки генерации.
const generateErrPrefix = "An error occurred while generating the brief. Details: "

// briefResultMsg - сообщение с результатом генерации (прилетает асинхронно)
type briefResultMsg struct {
	brief string
	err   error
}

// copyResultMsg - результат записи в системный буфер обмена
type copyResultMsg struct {
	err error
}

// copyRevertMsg - таймер подписи "Copied!" истёк
type copyRevertMsg struct{}

// exportResultMsg - результат экспорта HTML
type exportResultMsg struct {
	path string
	err  error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// 1. Изменение размера окна терминала
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.keyInput.Width = msg.Width - 8
		m.ideaInput.SetWidth(msg.Width - 4)
		m.featuresInput.Width = msg.Width - 4
		m.audienceInput.Width = msg.Width - 4

		m.viewport.Width = msg.Width
		vpHeight := msg.Height - 16 // Форма + хедер + футер
		if vpHeight < 3 {
			vpHeight = 3
		}
		m.viewport.Height = vpHeight

		// Перекладываем существующий результат под новую ширину
		if m.hasResult {
			if brief, ok := m.session.LastBrief(); ok {
				m.viewport.SetContent(wrapBrief(brief, m.viewport.Width))
			}
		}
		return m, nil

	// 2. Клавиши
	case tea.KeyMsg:
		if m.view == viewCredential {
			return m.updateCredentialKeys(msg)
		}
		return m.updateMainKeys(msg)

	// 3. Тики спиннера (только пока идёт запрос)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// 4. Результат генерации. Спиннер гасится и триггер включается
	// на обоих исходах - это единственный путь выхода из loading.
	case briefResultMsg:
		m.loading = false
		if msg.err != nil {
			m.errText = generateErrPrefix + msg.err.Error()
			m.hasResult = false
			return m, nil
		}
		m.errText = ""
		m.hasResult = true
		m.viewport.SetContent(wrapBrief(msg.brief, m.viewport.Width))
		m.viewport.GotoTop()
		return m, nil

	// 5. Результат копирования
	case copyResultMsg:
		if msg.err != nil {
			// Подпись кнопки не меняем, только показываем ошибку
			m.errText = "Failed to copy the brief to the clipboard."
			utils.Error("Clipboard write failed", "error", msg.err)
			return m, nil
		}
		m.copyAck = true
		return m, tea.Tick(copyAckDuration, func(time.Time) tea.Msg {
			return copyRevertMsg{}
		})

	case copyRevertMsg:
		m.copyAck = false
		return m, nil

	// 6. Результат экспорта HTML
	case exportResultMsg:
		if msg.err != nil {
			m.errText = "Failed to export the brief: " + msg.err.Error()
			return m, nil
		}
		m.status = "Saved to " + msg.path
		return m, nil
	}

	return m.updateComponents(msg)
}

// updateCredentialKeys обрабатывает клавиши на экране ввода ключа.
func (m Model) updateCredentialKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		// Session Gate: пустой ключ - inline ошибка, состояние не меняется.
		// Никакой проверки ключа против сервиса здесь нет.
		if err := m.session.SubmitCredential(m.keyInput.Value()); err != nil {
			m.errText = "Please enter your API key to continue."
			return m, nil
		}
		m.errText = ""
		m.view = viewMain
		m.keyInput.Blur()
		m.focus = focusIdea
		return m, m.ideaInput.Focus()
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

// updateMainKeys обрабатывает клавиши на основном экране.
func (m Model) updateMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		// Возврат на экран ввода ключа (например, чтобы сменить credential)
		m.view = viewCredential
		m.blurAll()
		m.errText = ""
		m.status = ""
		return m, m.keyInput.Focus()

	case tea.KeyTab:
		return m.cycleFocus(1)

	case tea.KeyShiftTab:
		return m.cycleFocus(-1)

	case tea.KeyCtrlG:
		return m.startGenerate()

	case tea.KeyCtrlY:
		// No-op если брифа ещё нет: ни записи в буфер, ни смены подписи
		brief, ok := m.session.LastBrief()
		if !ok {
			return m, nil
		}
		return m, copyCmd(brief)

	case tea.KeyCtrlE:
		if _, ok := m.session.LastBrief(); !ok {
			return m, nil
		}
		return m, m.exportCmd()
	}

	return m.updateComponents(msg)
}

// startGenerate проверяет предусловия и запускает асинхронную генерацию.
//
// Пока запрос в полёте, триггер отключён: повторный Ctrl+G игнорируется,
// так что одновременно существует максимум один запрос.
func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	if !m.session.Ready() {
		m.errText = "Client is not initialized. Press Esc and enter your API key."
		return m, nil
	}

	idea := m.ideaInput.Value()
	if strings.TrimSpace(idea) == "" {
		// Локальная валидация: запрос не отправляется
		m.errText = "Please describe your app idea first."
		return m, nil
	}

	// Прячем предыдущий результат/ошибку и показываем индикатор
	m.errText = ""
	m.status = ""
	m.hasResult = false
	m.loading = true

	return m, tea.Batch(
		m.spinner.Tick,
		m.generateCmd(idea, m.featuresInput.Value(), m.audienceInput.Value()),
	)
}

// generateCmd выполняет запрос в отдельной горутине, чтобы не завис UI.
func (m Model) generateCmd(idea, features, audience string) tea.Cmd {
	return func() tea.Msg {
		brief, err := m.session.Generate(context.Background(), idea, features, audience)
		return briefResultMsg{brief: brief, err: err}
	}
}

// copyCmd асинхронно пишет сырой markdown в системный буфер обмена.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{err: clipboard.WriteAll(text)}
	}
}

// exportCmd рендерит последний бриф в HTML файл.
func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		path, err := m.session.ExportHTML()
		return exportResultMsg{path: path, err: err}
	}
}

// cycleFocus переключает фокус между полями формы.
func (m Model) cycleFocus(dir int) (tea.Model, tea.Cmd) {
	m.blurAll()
	m.focus = focusField((int(m.focus) + dir + int(focusCount)) % int(focusCount))

	switch m.focus {
	case focusIdea:
		return m, m.ideaInput.Focus()
	case focusFeatures:
		return m, m.featuresInput.Focus()
	case focusAudience:
		return m, m.audienceInput.Focus()
	}
	return m, nil
}

func (m *Model) blurAll() {
	m.ideaInput.Blur()
	m.featuresInput.Blur()
	m.audienceInput.Blur()
}

// updateComponents передаёт сообщение активным компонентам.
//
// Ввод остаётся доступным пока запрос в полёте - цикл событий
// не блокируется, отключён только триггер генерации.
func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.view == viewCredential {
		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, cmd
	}

	switch m.focus {
	case focusIdea:
		m.ideaInput, cmd = m.ideaInput.Update(msg)
	case focusFeatures:
		m.featuresInput, cmd = m.featuresInput.Update(msg)
	case focusAudience:
		m.audienceInput, cmd = m.audienceInput.Update(msg)
	}
	cmds = append(cmds, cmd)

	if m.hasResult {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// wrapBrief переносит текст брифа по словам под ширину вьюпорта.
func wrapBrief(brief string, width int) string {
	if width <= 0 {
		return brief
	}
	return wordwrap.String(brief, width-2)
}
