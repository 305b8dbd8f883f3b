package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/paul-bokelman/csv-tags/tui"
	"github.com/paul-bokelman/csv-tags/utils"
	"github.com/sirupsen/logrus"
)

// ErrNoInput means the input directory holds nothing to tag.
var ErrNoInput = errors.New("no input files")

type Selector struct {
	Dir      string
	Source   TextSource
	Prompter tui.Prompter
}

func NewSelector(dir string, source TextSource, prompter tui.Prompter) *Selector {
	return &Selector{Dir: dir, Source: source, Prompter: prompter}
}

// ListCSV returns the names of the CSV files in the input directory.
func (s *Selector) ListCSV() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoInput
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !utils.HasCSVExt(entry.Name()) {
			continue
		}

		kind, binary, err := utils.DetectBinary(filepath.Join(s.Dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if binary {
			logrus.Warnf("Skipping %s: looks like %s, not CSV text", entry.Name(), kind)
			continue
		}

		files = append(files, entry.Name())
	}

	if len(files) == 0 {
		return nil, ErrNoInput
	}
	return files, nil
}

func (s *Selector) ChooseFile() (string, error) {
	files, err := s.ListCSV()
	if err != nil {
		return "", err
	}
	return s.Prompter.Select("Choose a csv file", tui.Choices(files))
}

// Columns reads the header line of file and splits it on commas. Quoted
// header fields containing commas are not supported.
func (s *Selector) Columns(file string) ([]string, error) {
	line, err := s.Source.FirstLine(filepath.Join(s.Dir, file))
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", file, err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%s has no header line", file)
	}
	return strings.Split(line, ","), nil
}

// ChooseIdentifier asks which column labels rows in the tagging prompts.
func (s *Selector) ChooseIdentifier(columns []string) (int, error) {
	choices := make([]tui.Choice, len(columns))
	for i, c := range columns {
		choices[i] = tui.Choice{Name: c, Value: strconv.Itoa(i)}
	}

	v, err := s.Prompter.Select("Choose identifier column:", choices)
	if err != nil {
		return 0, err
	}

	idx, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier column %q: %w", v, err)
	}
	return idx, nil
}
