// Package annotation holds the user-authored tooltip content bound to
// region identifiers. The store is owned by the surrounding
// application; the editing core consumes it through the Store
// interface and never purges entries on its own.
package annotation

import (
	"errors"
	"sort"
	"strings"
	"unicode"
)

// Record is the annotation bound to one region identifier.
type Record struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Link            string `json:"link,omitempty"`
	TooltipImageSrc string `json:"tooltipImageSrc,omitempty"`
}

// HasTooltipContent reports whether the record can produce visible
// tooltip content. A record carrying only a link never does.
func (r Record) HasTooltipContent() bool {
	return r.Title != "" || r.Description != "" || r.TooltipImageSrc != ""
}

// Rename validation failures.
var (
	ErrEmptyID      = errors.New("annotation: identifier is empty")
	ErrWhitespaceID = errors.New("annotation: identifier contains whitespace")
	ErrIDTaken      = errors.New("annotation: identifier already in use")
)

// ValidateID rejects empty or whitespace-containing identifiers.
// Identifiers needing selector escaping are fine; escaping happens at
// lookup time, not here.
func ValidateID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return ErrWhitespaceID
	}
	return nil
}

// Store is the narrow interface the core requires from its host.
type Store interface {
	Get(id string) (Record, bool)
	Set(id string, rec Record)
	Delete(id string)
	// Rename atomically moves the record from oldID to newID. It fails
	// when newID is invalid or already holds a different record.
	Rename(oldID, newID string) error
	// Keys returns the known identifiers, sorted.
	Keys() []string
}

// MemStore is the in-memory Store used by the editor session.
type MemStore struct {
	records map[string]Record
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{records: map[string]Record{}}
}

func (s *MemStore) Get(id string) (Record, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

func (s *MemStore) Set(id string, rec Record) {
	s.records[id] = rec
}

func (s *MemStore) Delete(id string) {
	delete(s.records, id)
}

func (s *MemStore) Rename(oldID, newID string) error {
	if err := ValidateID(newID); err != nil {
		return err
	}
	if newID == oldID {
		return nil
	}
	if _, taken := s.records[newID]; taken {
		return ErrIDTaken
	}
	// a region without data may still be renamed; nothing moves then
	if rec, ok := s.records[oldID]; ok {
		delete(s.records, oldID)
		s.records[newID] = rec
	}
	return nil
}

func (s *MemStore) Keys() []string {
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot copies the full store content, for export embedding.
func (s *MemStore) Snapshot() map[string]Record {
	out := make(map[string]Record, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return out
}
