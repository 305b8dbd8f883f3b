package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// TextSource reads the two facts about a file that the session needs without
// parsing it as CSV.
type TextSource interface {
	// FirstLine returns the first line without its line ending.
	FirstLine(path string) (string, error)
	// CountLines counts newline characters, like wc -l.
	CountLines(path string) (int, error)
}

const (
	SourceShell  = "shell"
	SourceNative = "native"
)

func NewTextSource(kind string) (TextSource, error) {
	switch kind {
	case "", SourceShell:
		return ShellSource{}, nil
	case SourceNative:
		return NativeSource{}, nil
	default:
		return nil, fmt.Errorf("unknown text source: %s", kind)
	}
}

// ShellSource shells out to head and wc.
type ShellSource struct{}

func (ShellSource) FirstLine(path string) (string, error) {
	out, err := exec.Command("head", "-n", "1", path).Output()
	if err != nil {
		return "", fmt.Errorf("head %s: %w", path, commandError(err))
	}
	return strings.TrimRight(string(out), "\r\n"), nil
}

func (ShellSource) CountLines(path string) (int, error) {
	out, err := exec.Command("wc", "-l", path).Output()
	if err != nil {
		return 0, fmt.Errorf("wc %s: %w", path, commandError(err))
	}
	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return 0, fmt.Errorf("wc %s: empty output", path)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("wc %s: unexpected output %q", path, strings.TrimSpace(string(out)))
	}
	return n, nil
}

func commandError(err error) error {
	if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(ee.Stderr)))
	}
	return err
}

// NativeSource answers the same questions in-process.
type NativeSource struct{}

func (NativeSource) FirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (NativeSource) CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	buf := make([]byte, 32*1024)
	for {
		n, err := f.Read(buf)
		count += bytes.Count(buf[:n], []byte{'\n'})
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
}
