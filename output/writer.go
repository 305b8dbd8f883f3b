package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paul-bokelman/csv-tags/dataset"
	"github.com/paul-bokelman/csv-tags/utils"
	"github.com/sirupsen/logrus"
)

// FirstDataLine is the 1-based input line of the first data row.
const FirstDataLine = 2

const TagsColumn = "tags"

type Confirmer interface {
	Confirm(message string, defaultYes bool) (bool, error)
}

// File is the tagged copy of one input file.
type File struct {
	Path string
	// StartLine is the 1-based input line at which tagging continues.
	StartLine int
	Resumed   bool
}

// Prepare sets up the output file for inputFile in dir. A missing file is
// created with its header. An existing one is either truncated back to the
// header or, when the user declines to overwrite, resumed after its last
// written row.
func Prepare(dir, inputFile string, columns []string, c Confirmer, src dataset.TextSource) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	name := utils.OutputFileName(inputFile)
	out := &File{
		Path:      filepath.Join(dir, name),
		StartLine: FirstDataLine,
	}

	_, err := os.Stat(out.Path)
	switch {
	case os.IsNotExist(err):
		return out, out.writeHeader(columns)
	case err != nil:
		return nil, fmt.Errorf("failed to stat %s: %w", out.Path, err)
	}

	overwrite, err := c.Confirm(fmt.Sprintf("File %s already exists. Overwrite?", name), false)
	if err != nil {
		return nil, err
	}
	if overwrite {
		logrus.Infof("Overwriting %s", out.Path)
		return out, out.writeHeader(columns)
	}

	lines, err := src.CountLines(out.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to count lines of %s: %w", out.Path, err)
	}
	if lines < 1 {
		return nil, fmt.Errorf("%s has no header line, overwrite it to start over", out.Path)
	}

	out.StartLine += lines - 1
	out.Resumed = true
	logrus.WithFields(logrus.Fields{
		"file":    name,
		"written": lines - 1,
	}).Infof("Resuming at input line %d", out.StartLine)
	return out, nil
}

// HeaderLine is the output header: the input columns plus the tags column.
func HeaderLine(columns []string) string {
	return strings.Join(columns, ",") + "," + TagsColumn
}

// FormatRow renders one tagged row without its line ending.
func FormatRow(row, tags []string) string {
	return strings.Join(row, ",") + "," + strings.Join(tags, " ")
}

func (f *File) writeHeader(columns []string) error {
	if err := os.WriteFile(f.Path, []byte(HeaderLine(columns)+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Append writes one tagged row and syncs it before returning.
func (f *File) Append(row, tags []string) error {
	fh, err := os.OpenFile(f.Path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.Path, err)
	}

	if _, err := fh.WriteString(FormatRow(row, tags) + "\n"); err != nil {
		fh.Close()
		return fmt.Errorf("failed to append row: %w", err)
	}
	if err := fh.Sync(); err != nil {
		fh.Close()
		return fmt.Errorf("failed to sync %s: %w", f.Path, err)
	}
	return fh.Close()
}
