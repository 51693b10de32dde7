// Package catalog implements the repobook catalog: an ordered sequence of
// repository entries with pure add/delete/search operations and a JSON
// document store. Operations take a Catalog value and return a new one;
// the command layer alone decides when to load and save.
package catalog

import (
	"strings"

	"github.com/Kumar2007/RepoBook/pkg/errors"
)

// Catalog is the full ordered sequence of entries, the unit of persistence.
// Sequence order equals insertion order except after a deletion, which
// removes exactly one element and shifts all later entries down by one.
type Catalog []Entry

// Match pairs an entry with its 1-based position in the catalog it was
// found in, so search results can still target delete correctly.
type Match struct {
	// Position is the entry's 1-based catalog position, not its rank
	// within the result list.
	Position int `json:"position"`

	// Entry is the matching entry.
	Entry Entry `json:"entry"`
}

// Add appends an entry to the end of the catalog. The receiver is not
// modified.
func (c Catalog) Add(entry Entry) Catalog {
	out := make(Catalog, len(c), len(c)+1)
	copy(out, c)
	return append(out, entry)
}

// Delete removes the entry at the given 1-based position and returns the
// shortened catalog together with the removed entry. Positions outside
// [1, len] fail with an IndexOutOfRangeError and the receiver is returned
// unchanged.
func (c Catalog) Delete(position int) (Catalog, Entry, error) {
	if position < 1 || position > len(c) {
		return c, Entry{}, errors.NewIndexOutOfRangeError(position, len(c))
	}
	removed := c[position-1]
	out := make(Catalog, 0, len(c)-1)
	out = append(out, c[:position-1]...)
	out = append(out, c[position:]...)
	return out, removed, nil
}

// Search returns the entries whose URL, tags, section, or metadata name
// contain the query as a case-insensitive substring, preserving catalog
// order. Each match carries the entry's original 1-based position. An
// empty result is not an error.
func (c Catalog) Search(query string) []Match {
	q := strings.ToLower(query)
	var matches []Match
	for i, entry := range c {
		if entryMatches(entry, q) {
			matches = append(matches, Match{Position: i + 1, Entry: entry})
		}
	}
	return matches
}

// HasURL reports whether any entry already carries the given URL.
func (c Catalog) HasURL(url string) bool {
	for _, entry := range c {
		if entry.URL == url {
			return true
		}
	}
	return false
}

// Sections returns the distinct section labels in order of first
// appearance among the entries.
func (c Catalog) Sections() []string {
	seen := make(map[string]bool, len(c))
	var sections []string
	for _, entry := range c {
		if !seen[entry.Section] {
			seen[entry.Section] = true
			sections = append(sections, entry.Section)
		}
	}
	return sections
}

func entryMatches(entry Entry, query string) bool {
	if strings.Contains(strings.ToLower(entry.URL), query) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Section), query) {
		return true
	}
	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	if entry.Metadata != nil && strings.Contains(strings.ToLower(entry.Metadata.Name), query) {
		return true
	}
	return false
}
