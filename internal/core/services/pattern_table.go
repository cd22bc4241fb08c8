package services

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
)

// Entry is one pattern table row: a mime type pattern and the provider
// factories registered under it, in registration order.
type Entry struct {
	pattern   string
	re        *regexp.Regexp
	factories []driven.ProviderFactory
}

// Pattern returns the entry's pattern string.
func (e *Entry) Pattern() string {
	return e.pattern
}

// Factories returns the factories registered under this pattern,
// in registration order.
func (e *Entry) Factories() []driven.ProviderFactory {
	return e.factories
}

// Matches reports whether the pattern matches the mime type.
func (e *Entry) Matches(mimeType string) bool {
	return e.re.MatchString(mimeType)
}

// PatternTable maps mime type patterns to ordered provider factory lists.
// A pattern appears at most once; repeated registration appends to its
// factory list. Iteration order is re-derived by pattern specificity,
// approximated by pattern string length: longer patterns are tried before
// broad catch-alls.
//
// The table is not safe for concurrent mutation; each registry instance
// owns its table.
type PatternTable struct {
	entries map[string]*Entry
	order   []*Entry
	dirty   bool
}

// NewPatternTable creates an empty pattern table.
func NewPatternTable() *PatternTable {
	return &PatternTable{
		entries: make(map[string]*Entry),
	}
}

// Register appends a factory under the pattern, creating the entry if
// absent, and marks the table dirty. The factory is not invoked.
// Returns an error wrapping domain.ErrInvalidPattern if the pattern does
// not compile.
func (t *PatternTable) Register(pattern string, factory driven.ProviderFactory) error {
	entry, ok := t.entries[pattern]
	if !ok {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", domain.ErrInvalidPattern, pattern, err)
		}
		entry = &Entry{pattern: pattern, re: re}
		t.entries[pattern] = entry
		t.order = append(t.order, entry)
	}
	entry.factories = append(entry.factories, factory)
	t.dirty = true
	return nil
}

// Len returns the number of distinct patterns.
func (t *PatternTable) Len() int {
	return len(t.order)
}

// Sorted returns all entries, longest pattern first. Patterns of equal
// length keep their relative insertion order. The sort runs only when the
// table has changed since the last call.
func (t *PatternTable) Sorted() []*Entry {
	if t.dirty {
		sort.SliceStable(t.order, func(i, j int) bool {
			return len(t.order[i].pattern) > len(t.order[j].pattern)
		})
		t.dirty = false
	}
	return t.order
}

// Matching returns the entries whose pattern matches the mime type,
// in sorted table order.
func (t *PatternTable) Matching(mimeType string) []*Entry {
	var matched []*Entry
	for _, entry := range t.Sorted() {
		if entry.Matches(mimeType) {
			matched = append(matched, entry)
		}
	}
	return matched
}
