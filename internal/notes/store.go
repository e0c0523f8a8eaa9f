package notes

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Store holds the notes for one agent session. Names are unique; insertion
// order is preserved so listings are reproducible across runs.
//
// Notes are never mutated or deleted once added. The only way to drop them
// is to replace the whole store at session reset.
type Store struct {
	notes *orderedmap.OrderedMap[string, string]
}

func NewStore() *Store {
	return &Store{notes: orderedmap.New[string, string]()}
}

// Add inserts a note under name. It reports false and leaves the store
// untouched when the name is already taken.
func (s *Store) Add(name, text string) bool {
	if _, exists := s.notes.Get(name); exists {
		return false
	}
	s.notes.Set(name, text)
	return true
}

// Get returns the raw (unescaped) text of the named note.
func (s *Store) Get(name string) (string, bool) {
	return s.notes.Get(name)
}

// Names returns all note names in the order they were added.
func (s *Store) Names() []string {
	names := make([]string, 0, s.notes.Len())
	for pair := s.notes.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (s *Store) Len() int {
	return s.notes.Len()
}
