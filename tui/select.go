package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type selectModel struct {
	theme    *Theme
	message  string
	choices  []Choice
	cursor   int
	pageSize int
	done     bool
	aborted  bool
}

func newSelectModel(theme *Theme, message string, choices []Choice, pageSize int) *selectModel {
	return &selectModel{
		theme:    theme,
		message:  message,
		choices:  choices,
		pageSize: pageSize,
	}
}

func (m *selectModel) Init() tea.Cmd {
	return nil
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.choices) - 1
	case "enter":
		if len(m.choices) > 0 {
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *selectModel) Value() string {
	if m.cursor >= len(m.choices) {
		return ""
	}
	return m.choices[m.cursor].Value
}

func (m *selectModel) View() string {
	if m.done {
		return answered(m.theme, m.message, m.choices[m.cursor].Name)
	}
	if m.aborted {
		return ""
	}

	lines := []string{question(m.theme, m.message)}

	start, end := pageWindow(len(m.choices), m.cursor, m.pageSize)
	for i := start; i < end; i++ {
		if i == m.cursor {
			lines = append(lines, m.theme.SelectedItemStyle.Render(IconArrowRight+" "+m.choices[i].Name))
		} else {
			lines = append(lines, "  "+m.theme.NormalTextStyle.Render(m.choices[i].Name))
		}
	}

	lines = append(lines, HelpLine(m.theme, "↑↓", "navigate", "Enter", "select"))
	return strings.Join(lines, "\n") + "\n"
}

func (m *selectModel) Aborted() bool {
	return m.aborted
}
