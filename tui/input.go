package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	theme   *Theme
	message string
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(theme *Theme, message string) *inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	return &inputModel{
		theme:   theme,
		message: message,
		input:   ti,
	}
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) Value() string {
	return m.input.Value()
}

func (m *inputModel) View() string {
	if m.done {
		return answered(m.theme, m.message, m.input.Value())
	}
	if m.aborted {
		return ""
	}
	return question(m.theme, m.message) + " " + m.input.View()
}

func (m *inputModel) Aborted() bool {
	return m.aborted
}
