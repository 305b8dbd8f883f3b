package tagger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paul-bokelman/csv-tags/tui"
	"github.com/sirupsen/logrus"
)

const (
	MinTags = 1
	MaxTags = 3
)

var (
	ErrNoTags          = errors.New("At least 1 tag required")
	ErrTooManyTags     = errors.New("3 tags max")
	ErrEmptyVocabulary = errors.New("tag vocabulary is empty")
	ErrLineBreak       = errors.New("field contains a line break")
)

// ValidateSelection accepts between MinTags and MaxTags tags.
func ValidateSelection(selected []string) error {
	switch {
	case len(selected) < MinTags:
		return ErrNoTags
	case len(selected) > MaxTags:
		return ErrTooManyTags
	}
	return nil
}

type Appender interface {
	Append(row, tags []string) error
}

// Tagger asks for tags row by row and appends each tagged row as soon as it
// is answered.
type Tagger struct {
	Prompter tui.Prompter
	Tags     []string
	IDColumn int
	Out      Appender
}

func New(prompter tui.Prompter, tags []string, idColumn int, out Appender) *Tagger {
	return &Tagger{Prompter: prompter, Tags: tags, IDColumn: idColumn, Out: out}
}

// Run tags the records of inputPath from startLine on and returns how many
// rows were written. Lines count CSV records, the header being line 1; blank
// lines are not counted. Every record must have as many fields as the header
// and fit on one line, so that each output line stays one record.
func (t *Tagger) Run(inputPath string, startLine int) (int, error) {
	if len(t.Tags) == 0 {
		return 0, ErrEmptyVocabulary
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	choices := tui.Choices(t.Tags)

	tagged := 0
	for line := 1; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			return tagged, nil
		}
		if err != nil {
			return tagged, fmt.Errorf("failed to parse %s: %w", inputPath, err)
		}
		if hasLineBreak(row) {
			return tagged, fmt.Errorf("%s line %d: %w", inputPath, line, ErrLineBreak)
		}
		if line < startLine || line == 1 {
			continue
		}

		tags, err := t.Prompter.Checkbox(fmt.Sprintf("Choose tags for %s", t.label(row, line)), choices, ValidateSelection)
		if err != nil {
			return tagged, err
		}
		if err := ValidateSelection(tags); err != nil {
			return tagged, fmt.Errorf("line %d: %w", line, err)
		}

		if err := t.Out.Append(row, tags); err != nil {
			return tagged, err
		}
		tagged++
		logrus.Debugf("Tagged line %d with %v", line, tags)
	}
}

func (t *Tagger) label(row []string, line int) string {
	if t.IDColumn >= 0 && t.IDColumn < len(row) {
		return row[t.IDColumn]
	}
	return fmt.Sprintf("line %d", line)
}

func hasLineBreak(row []string) bool {
	for _, field := range row {
		if strings.ContainsAny(field, "\r\n") {
			return true
		}
	}
	return false
}
