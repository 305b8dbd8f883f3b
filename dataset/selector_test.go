package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/paul-bokelman/csv-tags/tui/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	line string
	err  error
}

func (s stubSource) FirstLine(string) (string, error) { return s.line, s.err }
func (s stubSource) CountLines(string) (int, error)   { return 0, s.err }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSelector_ListCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.csv"), "id\n1\n")
	writeFile(t, filepath.Join(dir, "a.csv"), "id\n1\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "hi")
	writeFile(t, filepath.Join(dir, "upper.CSV"), "id\n")
	writeFile(t, filepath.Join(dir, "sheet.csv"), "PK\x03\x04\x14\x00\x06\x00")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.csv"), 0o755))

	files, err := NewSelector(dir, NativeSource{}, nil).ListCSV()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.csv"}, files)
}

func TestSelector_ListCSV_KeepsHeadersThatLookLikeSignatures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "health.csv"), "BMI,age,name\n22.1,40,Alice\n")
	writeFile(t, filepath.Join(dir, "pe.csv"), "MZ_code,region\n7,north\n")
	writeFile(t, filepath.Join(dir, "people.csv"), "id,name\n1,Alice\n")

	files, err := NewSelector(dir, NativeSource{}, nil).ListCSV()
	require.NoError(t, err)
	assert.Equal(t, []string{"health.csv", "pe.csv", "people.csv"}, files)
}

func TestSelector_ListCSV_EmptyDir(t *testing.T) {
	_, err := NewSelector(t.TempDir(), NativeSource{}, nil).ListCSV()
	assert.True(t, errors.Is(err, ErrNoInput))
}

func TestSelector_ListCSV_NoCSVFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "readme.md"), "# data")

	_, err := NewSelector(dir, NativeSource{}, nil).ListCSV()
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestSelector_ListCSV_MissingDir(t *testing.T) {
	_, err := NewSelector(filepath.Join(t.TempDir(), "nope"), NativeSource{}, nil).ListCSV()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSelector_ChooseFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "people.csv"), "id,name\n")
	script := &tuitest.Script{Selects: []string{"people.csv"}}

	file, err := NewSelector(dir, NativeSource{}, script).ChooseFile()
	require.NoError(t, err)
	assert.Equal(t, "people.csv", file)
	assert.Equal(t, []string{"Choose a csv file"}, script.Messages)
}

func TestSelector_Columns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "people.csv"), "id,name,\"city, state\"\r\n1,Alice,x\n")

	cols, err := NewSelector(dir, NativeSource{}, nil).Columns("people.csv")
	require.NoError(t, err)
	// Raw comma split: the quoted header field is broken in two.
	assert.Equal(t, []string{"id", "name", "\"city", " state\""}, cols)
}

func TestSelector_Columns_SourceError(t *testing.T) {
	s := NewSelector(t.TempDir(), stubSource{err: errors.New("boom")}, nil)
	_, err := s.Columns("x.csv")
	assert.ErrorContains(t, err, "boom")
}

func TestSelector_Columns_EmptyHeader(t *testing.T) {
	s := NewSelector(t.TempDir(), stubSource{line: "  "}, nil)
	_, err := s.Columns("x.csv")
	assert.ErrorContains(t, err, "no header line")
}

func TestSelector_ChooseIdentifier(t *testing.T) {
	script := &tuitest.Script{Selects: []string{"1"}}

	idx, err := NewSelector("", nil, script).ChooseIdentifier([]string{"id", "name"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}
