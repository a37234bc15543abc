package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/ui/style"
)

// Messages

type postMsg struct {
	role domain.Role
	text string
}

type statusMsg domain.Activity

type clearMsg struct{}

type settingMsg struct {
	key, value string
}

// chatModel is the Bubble Tea model of the chat window.
type chatModel struct {
	messages []postMsg
	status   domain.Activity

	input    textinput.Model
	history  viewport.Model
	submit   func(string)
	quitting bool

	width  int
	height int
	ready  bool
}

const (
	headerHeight = 2
	footerHeight = 2
	scrollWidth  = 1
)

func newChatModel(history []domain.ChatMessage, submit func(string)) chatModel {
	in := textinput.New()
	in.Placeholder = "аврора ..."
	in.Prompt = "> "
	in.CharLimit = 500
	in.Focus()

	m := chatModel{
		status: domain.ActivityNone,
		input:  in,
		submit: submit,
	}
	for _, msg := range history {
		m.messages = append(m.messages, postMsg{role: msg.Role, text: msg.Text})
	}
	return m
}

// Init implements tea.Model
func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		bodyHeight := max(m.height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.history = viewport.New(max(m.width-scrollWidth, 1), bodyHeight)
			m.ready = true
		} else {
			m.history.Width = max(m.width-scrollWidth, 1)
			m.history.Height = bodyHeight
		}
		m.input.Width = max(m.width-4, 10)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if text != "" && m.submit != nil {
				m.submit(text)
			}
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd

	case postMsg:
		m.messages = append(m.messages, msg)
		m.refresh()
		return m, nil

	case statusMsg:
		m.status = domain.Activity(msg)
		return m, nil

	case clearMsg:
		m.messages = nil
		m.refresh()
		return m, nil

	case settingMsg:
		// colours changed; render the history again
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// refresh re-renders the history and keeps the newest message in view.
func (m *chatModel) refresh() {
	if !m.ready {
		return
	}
	width := m.history.Width
	lines := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		lines = append(lines, renderMessage(msg, width))
	}
	m.history.SetContent(strings.Join(lines, "\n"))
	m.history.GotoBottom()
}

func renderMessage(msg postMsg, width int) string {
	var prefix string
	switch msg.role {
	case domain.RoleUser:
		prefix = "ви: "
	case domain.RoleSystem:
		prefix = "! "
	default:
		prefix = "AVRORA: "
	}
	body := lipgloss.NewStyle().Width(max(width, 10)).Render(prefix + msg.text)
	return style.Role(msg.role, body)
}

// View implements tea.Model
func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "AVRORA\n"
	}

	var b strings.Builder
	b.WriteString(style.Header("AVRORA"))
	b.WriteString("  ")
	b.WriteString(style.Muted(statusLabel(m.status)))
	b.WriteString("\n\n")

	palette := style.Current()
	bar := BuildScrollbar(m.history.Height, m.history.TotalLineCount(), m.history.YOffset,
		lipgloss.Color(palette.Accent), lipgloss.Color(palette.Muted))
	body := strings.Split(m.history.View(), "\n")
	for i, line := range body {
		b.WriteString(line)
		if i < len(bar) {
			b.WriteString(bar[i])
		}
		if i < len(body)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	return b.String()
}

func statusLabel(a domain.Activity) string {
	switch a {
	case domain.ActivityListening:
		return "слухаю..."
	case domain.ActivityThinking:
		return "думаю..."
	case domain.ActivitySpeaking:
		return "говорю..."
	default:
		return ""
	}
}
