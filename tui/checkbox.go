package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type checkboxModel struct {
	theme    *Theme
	message  string
	choices  []Choice
	checked  []bool
	validate func([]string) error
	cursor   int
	pageSize int

	validationErr string
	done          bool
	aborted       bool
}

func newCheckboxModel(theme *Theme, message string, choices []Choice, validate func([]string) error, pageSize int) *checkboxModel {
	return &checkboxModel{
		theme:    theme,
		message:  message,
		choices:  choices,
		checked:  make([]bool, len(choices)),
		validate: validate,
		pageSize: pageSize,
	}
}

func (m *checkboxModel) Init() tea.Cmd {
	return nil
}

func (m *checkboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case " ", "space":
		if len(m.choices) > 0 {
			m.checked[m.cursor] = !m.checked[m.cursor]
			m.validationErr = ""
		}
	case "a":
		all := true
		for _, c := range m.checked {
			all = all && c
		}
		for i := range m.checked {
			m.checked[i] = !all
		}
		m.validationErr = ""
	case "enter":
		if m.validate != nil {
			if err := m.validate(m.Selected()); err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// Selected returns the checked values in choice order.
func (m *checkboxModel) Selected() []string {
	selected := make([]string, 0, len(m.choices))
	for i, c := range m.choices {
		if m.checked[i] {
			selected = append(selected, c.Value)
		}
	}
	return selected
}

func (m *checkboxModel) View() string {
	if m.done {
		var names []string
		for i, c := range m.choices {
			if m.checked[i] {
				names = append(names, c.Name)
			}
		}
		return answered(m.theme, m.message, strings.Join(names, ", "))
	}
	if m.aborted {
		return ""
	}

	lines := []string{question(m.theme, m.message)}

	start, end := pageWindow(len(m.choices), m.cursor, m.pageSize)
	for i := start; i < end; i++ {
		prefix := "  "
		if i == m.cursor {
			prefix = IconArrowRight + " "
		}

		box := m.theme.MutedTextStyle.Render(IconBoxOff)
		if m.checked[i] {
			box = m.theme.CheckedStyle.Render(IconBoxOn)
		}

		line := prefix + box + " " + m.choices[i].Name
		if i == m.cursor {
			line = m.theme.SelectedItemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	if m.validationErr != "" {
		lines = append(lines, m.theme.ErrorStyle.Render(IconCross+" "+m.validationErr))
	}

	lines = append(lines, HelpLine(m.theme, "↑↓", "navigate", "Space", "toggle", "a", "all", "Enter", "confirm"))
	return strings.Join(lines, "\n") + "\n"
}

func (m *checkboxModel) Aborted() bool {
	return m.aborted
}
