package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
)

const (
	CSVExt       = ".csv"
	OutputSuffix = "-with-tags.csv"

	// filetype only inspects the leading bytes of a file.
	sniffLen = 262
)

// OutputFileName maps "people.csv" to "people-with-tags.csv".
func OutputFileName(inputFile string) string {
	base := filepath.Base(inputFile)
	if i := strings.Index(base, CSVExt); i >= 0 {
		base = base[:i]
	}
	return base + OutputSuffix
}

func HasCSVExt(name string) bool {
	return strings.HasSuffix(name, CSVExt)
}

// DetectBinary reports whether the file is an archive or office document
// saved with a .csv name, and which one. Text that merely starts with a
// signature ("BMI,age" looks like a bmp) is not binary.
func DetectBinary(filePath string) (string, bool, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	head = head[:n]

	if !filetype.IsArchive(head) && !filetype.IsDocument(head) {
		return "", false, nil
	}
	if looksLikeText(head) {
		return "", false, nil
	}
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return "", false, nil
	}
	return kind.Extension, true, nil
}

// looksLikeText reports whether head is NUL-free UTF-8. A rune cut off at
// the end of the buffer is ignored.
func looksLikeText(head []byte) bool {
	for i := len(head) - 1; i >= 0 && i >= len(head)-utf8.UTFMax; i-- {
		if utf8.RuneStart(head[i]) {
			if !utf8.FullRune(head[i:]) {
				head = head[:i]
			}
			break
		}
	}
	return bytes.IndexByte(head, 0) < 0 && utf8.Valid(head)
}

func ValidateCSVFile(filePath string) error {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("file is a directory: %s", filePath)
	}

	if !HasCSVExt(filePath) {
		return fmt.Errorf("file is not a CSV: %s", filePath)
	}

	if kind, ok, err := DetectBinary(filePath); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("file is not a text CSV (detected %s): %s", kind, filePath)
	}

	return nil
}
