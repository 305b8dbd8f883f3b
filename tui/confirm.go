package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	theme   *Theme
	message string
	value   bool
	done    bool
	aborted bool
}

func newConfirmModel(theme *Theme, message string, defaultYes bool) *confirmModel {
	return &confirmModel{
		theme:   theme,
		message: message,
		value:   defaultYes,
	}
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "y", "Y":
		m.value = true
	case "n", "N":
		m.value = false
	case "enter":
	default:
		return m, nil
	}

	m.done = true
	return m, tea.Quit
}

func (m *confirmModel) View() string {
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return answered(m.theme, m.message, answer)
	}
	if m.aborted {
		return ""
	}

	hint := "(y/N)"
	if m.value {
		hint = "(Y/n)"
	}
	return question(m.theme, m.message) + " " + m.theme.MutedTextStyle.Render(hint) + " "
}

func (m *confirmModel) Aborted() bool {
	return m.aborted
}
