package vocab

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var defaultTags = []string{"sports", "science", "reading", "math", "history", "culture", "nature", "social", "charity"}

// Defaults returns a fresh copy of the built-in tag vocabulary.
func Defaults() []string {
	tags := make([]string, len(defaultTags))
	copy(tags, defaultTags)
	return tags
}

// Store persists the tag vocabulary as a JSON array of strings.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored vocabulary verbatim. When no file exists yet the
// defaults are written and returned. A file that does not decode is an
// error; it is never replaced by the defaults.
func (s *Store) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		logrus.Debugf("No tag file at %s, writing defaults", s.path)
		tags := Defaults()
		if err := s.Save(tags); err != nil {
			return nil, err
		}
		return tags, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tag file: %w", err)
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse tag file %s: %w", s.path, err)
	}
	return tags, nil
}

// Save overwrites the file with the full list.
func (s *Store) Save(tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write tag file: %w", err)
	}
	logrus.Debugf("Saved %d tags to %s", len(tags), s.path)
	return nil
}
