package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// ErrInterrupted is returned by every prompt when the user presses Ctrl+C
// or Esc before answering.
var ErrInterrupted = errors.New("prompt interrupted")

type Choice struct {
	Name  string
	Value string
}

// Choices builds choices whose name and value are the same string.
func Choices(values []string) []Choice {
	choices := make([]Choice, len(values))
	for i, v := range values {
		choices[i] = Choice{Name: v, Value: v}
	}
	return choices
}

// Prompter is the set of interactive questions the tagging session asks.
type Prompter interface {
	Confirm(message string, defaultYes bool) (bool, error)
	Select(message string, choices []Choice) (string, error)
	Input(message string) (string, error)
	// Checkbox blocks until validate accepts the selection. A nil validate
	// accepts anything, including an empty selection.
	Checkbox(message string, choices []Choice, validate func([]string) error) ([]string, error)
}

type promptModel interface {
	tea.Model
	Aborted() bool
}

// Terminal runs each prompt as its own inline bubbletea program.
type Terminal struct {
	theme    *Theme
	pageSize int
	opts     []tea.ProgramOption
}

func NewTerminal(pageSize int, opts ...tea.ProgramOption) *Terminal {
	return &Terminal{
		theme:    DefaultTheme(),
		pageSize: pageSize,
		opts:     opts,
	}
}

func (t *Terminal) run(m promptModel) (tea.Model, error) {
	final, err := tea.NewProgram(m, t.opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	if pm, ok := final.(promptModel); ok && pm.Aborted() {
		logrus.Debug("prompt aborted by user")
		return nil, ErrInterrupted
	}
	return final, nil
}

func (t *Terminal) Confirm(message string, defaultYes bool) (bool, error) {
	final, err := t.run(newConfirmModel(t.theme, message, defaultYes))
	if err != nil {
		return false, err
	}
	return final.(*confirmModel).value, nil
}

func (t *Terminal) Select(message string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices for %q", message)
	}
	final, err := t.run(newSelectModel(t.theme, message, choices, t.pageSize))
	if err != nil {
		return "", err
	}
	return final.(*selectModel).Value(), nil
}

func (t *Terminal) Input(message string) (string, error) {
	final, err := t.run(newInputModel(t.theme, message))
	if err != nil {
		return "", err
	}
	return final.(*inputModel).Value(), nil
}

func (t *Terminal) Checkbox(message string, choices []Choice, validate func([]string) error) ([]string, error) {
	final, err := t.run(newCheckboxModel(t.theme, message, choices, validate, t.pageSize))
	if err != nil {
		return nil, err
	}
	return final.(*checkboxModel).Selected(), nil
}
