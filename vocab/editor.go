package vocab

import (
	"slices"
	"strings"

	"github.com/paul-bokelman/csv-tags/tui"
	"github.com/sirupsen/logrus"
)

// step takes the current vocabulary and returns the edited one. A step that
// changes the vocabulary has already persisted it when it returns.
type step func(tags []string) ([]string, error)

// Editor walks the user through reset, remove and add, in that order.
type Editor struct {
	store    *Store
	prompter tui.Prompter
}

func NewEditor(store *Store, prompter tui.Prompter) *Editor {
	return &Editor{store: store, prompter: prompter}
}

// Run asks whether to modify the vocabulary at all and then runs each step.
// A failing step leaves earlier, already saved edits in place.
func (e *Editor) Run(tags []string) ([]string, error) {
	modify, err := e.prompter.Confirm("Modify tags?", false)
	if err != nil || !modify {
		return tags, err
	}
	return e.Steps(tags)
}

// Steps runs reset, remove and add without the initial gate.
func (e *Editor) Steps(tags []string) ([]string, error) {
	for _, s := range []step{e.Reset, e.Remove, e.Add} {
		next, err := s(tags)
		if err != nil {
			return tags, err
		}
		tags = next
	}
	return tags, nil
}

func (e *Editor) Reset(tags []string) ([]string, error) {
	ok, err := e.prompter.Confirm("Restore default tags?", false)
	if err != nil || !ok {
		return tags, err
	}

	tags = Defaults()
	if err := e.store.Save(tags); err != nil {
		return nil, err
	}
	logrus.Info("Restored default tags")
	return tags, nil
}

func (e *Editor) Remove(tags []string) ([]string, error) {
	ok, err := e.prompter.Confirm("Remove tags?", false)
	if err != nil || !ok {
		return tags, err
	}

	drop, err := e.prompter.Checkbox("Choose tags to remove", tui.Choices(tags), nil)
	if err != nil {
		return tags, err
	}

	tags = RemoveTags(tags, drop)
	if err := e.store.Save(tags); err != nil {
		return nil, err
	}
	logrus.Infof("Removed %d tags", len(drop))
	return tags, nil
}

func (e *Editor) Add(tags []string) ([]string, error) {
	ok, err := e.prompter.Confirm("Add tags?", false)
	if err != nil || !ok {
		return tags, err
	}

	raw, err := e.prompter.Input("Enter tags separated by commas:")
	if err != nil {
		return tags, err
	}

	before := len(tags)
	tags = AppendTags(tags, raw)
	if err := e.store.Save(tags); err != nil {
		return nil, err
	}
	logrus.Infof("Added %d tags", len(tags)-before)
	return tags, nil
}

// RemoveTags returns tags without any entry in drop, order preserved.
func RemoveTags(tags, drop []string) []string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if !slices.Contains(drop, t) {
			kept = append(kept, t)
		}
	}
	return kept
}

// AppendTags splits raw on commas and appends each new, non-blank name.
func AppendTags(tags []string, raw string) []string {
	out := slices.Clone(tags)
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
