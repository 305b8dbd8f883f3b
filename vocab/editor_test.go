package vocab

import (
	"path/filepath"
	"testing"

	"github.com/paul-bokelman/csv-tags/tui/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, tags []string) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "local-tags.json"))
	require.NoError(t, store.Save(tags))
	return store
}

func TestEditor_DeclinedGateChangesNothing(t *testing.T) {
	store := newTestStore(t, []string{"a", "b"})
	script := &tuitest.Script{Confirms: []bool{false}}

	got, err := NewEditor(store, script).Run([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, []string{"Modify tags?"}, script.Messages)
	assert.Empty(t, script.Remaining())
}

func TestEditor_ResetRemoveAddInOrder(t *testing.T) {
	store := newTestStore(t, []string{"custom"})
	script := &tuitest.Script{
		Confirms:   []bool{true, true, true, true},
		Checkboxes: [][]string{{"science", "charity"}},
		Inputs:     []string{"art, music,,math"},
	}

	got, err := NewEditor(store, script).Run([]string{"custom"})
	require.NoError(t, err)

	want := []string{"sports", "reading", "math", "history", "culture", "nature", "social", "art", "music"}
	assert.Equal(t, want, got)
	assert.Equal(t, []string{
		"Modify tags?",
		"Restore default tags?",
		"Remove tags?",
		"Choose tags to remove",
		"Add tags?",
		"Enter tags separated by commas:",
	}, script.Messages)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, persisted)
	assert.Empty(t, script.Remaining())
}

func TestEditor_EachStepIsOptional(t *testing.T) {
	tests := []struct {
		name   string
		script *tuitest.Script
		want   []string
	}{
		{
			name:   "reset only",
			script: &tuitest.Script{Confirms: []bool{true, false, false}},
			want:   Defaults(),
		},
		{
			name: "remove only",
			script: &tuitest.Script{
				Confirms:   []bool{false, true, false},
				Checkboxes: [][]string{{"b"}},
			},
			want: []string{"a", "c"},
		},
		{
			name: "remove nothing",
			script: &tuitest.Script{
				Confirms:   []bool{false, true, false},
				Checkboxes: [][]string{{}},
			},
			want: []string{"a", "b", "c"},
		},
		{
			name: "add only",
			script: &tuitest.Script{
				Confirms: []bool{false, false, true},
				Inputs:   []string{"d"},
			},
			want: []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, []string{"a", "b", "c"})

			got, err := NewEditor(store, tt.script).Steps([]string{"a", "b", "c"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			persisted, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, persisted)
		})
	}
}

func TestEditor_LaterFailureKeepsEarlierEdits(t *testing.T) {
	store := newTestStore(t, []string{"a", "b"})
	// Reset confirmed, then the script runs dry at the remove question.
	script := &tuitest.Script{Confirms: []bool{true}}

	got, err := NewEditor(store, script).Steps([]string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, Defaults(), got)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), persisted)
}

func TestRemoveTags(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, RemoveTags([]string{"a", "b", "c"}, []string{"b", "zzz"}))
	assert.Equal(t, []string{}, RemoveTags([]string{"a"}, []string{"a"}))
}

func TestAppendTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		raw  string
		want []string
	}{
		{"single", []string{"a"}, "b", []string{"a", "b"}},
		{"comma list", []string{"a"}, "b,c", []string{"a", "b", "c"}},
		{"trims spaces", nil, " b , c ", []string{"b", "c"}},
		{"skips blanks", []string{"a"}, ",,", []string{"a"}},
		{"skips existing", []string{"a"}, "a,b,b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendTags(tt.tags, tt.raw))
		})
	}
}
