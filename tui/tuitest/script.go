// Package tuitest provides a scripted tui.Prompter for tests.
package tuitest

import (
	"fmt"
	"strings"

	"github.com/paul-bokelman/csv-tags/tui"
)

// Script answers prompts from queues, in call order per prompt kind.
// Checkbox answers are fed through the validate func one at a time; rejected
// answers are recorded in Rejections and the next queued answer is tried,
// the same way the terminal re-presents the prompt.
type Script struct {
	Confirms   []bool
	Selects    []string
	Inputs     []string
	Checkboxes [][]string

	// Messages holds every prompt message in the order asked.
	Messages   []string
	Rejections []string
}

var _ tui.Prompter = (*Script)(nil)

func (s *Script) Confirm(message string, defaultYes bool) (bool, error) {
	s.Messages = append(s.Messages, message)
	if len(s.Confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm %q", message)
	}
	v := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return v, nil
}

func (s *Script) Select(message string, choices []tui.Choice) (string, error) {
	s.Messages = append(s.Messages, message)
	if len(s.Selects) == 0 {
		return "", fmt.Errorf("unexpected select %q", message)
	}
	v := s.Selects[0]
	s.Selects = s.Selects[1:]
	for _, c := range choices {
		if c.Value == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("select %q: %q is not a choice", message, v)
}

func (s *Script) Input(message string) (string, error) {
	s.Messages = append(s.Messages, message)
	if len(s.Inputs) == 0 {
		return "", fmt.Errorf("unexpected input %q", message)
	}
	v := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	return v, nil
}

func (s *Script) Checkbox(message string, choices []tui.Choice, validate func([]string) error) ([]string, error) {
	s.Messages = append(s.Messages, message)
	for len(s.Checkboxes) > 0 {
		v := s.Checkboxes[0]
		s.Checkboxes = s.Checkboxes[1:]
		if validate != nil {
			if err := validate(v); err != nil {
				s.Rejections = append(s.Rejections, err.Error())
				continue
			}
		}
		return v, nil
	}
	return nil, fmt.Errorf("unexpected checkbox %q", message)
}

// Remaining reports unused answers, empty when the script was consumed.
func (s *Script) Remaining() string {
	var parts []string
	if len(s.Confirms) > 0 {
		parts = append(parts, fmt.Sprintf("confirms=%v", s.Confirms))
	}
	if len(s.Selects) > 0 {
		parts = append(parts, fmt.Sprintf("selects=%v", s.Selects))
	}
	if len(s.Inputs) > 0 {
		parts = append(parts, fmt.Sprintf("inputs=%v", s.Inputs))
	}
	if len(s.Checkboxes) > 0 {
		parts = append(parts, fmt.Sprintf("checkboxes=%v", s.Checkboxes))
	}
	return strings.Join(parts, " ")
}
