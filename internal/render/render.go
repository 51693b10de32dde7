// Package render transforms a catalog snapshot into human-readable
// documents: the interactive listing, search result views, and the
// generated markdown summary. Rendering is purely functional and never
// fails on a well-formed catalog; missing optional fields degrade to a
// fixed placeholder.
package render

import (
	"fmt"
	"strings"

	"github.com/Kumar2007/RepoBook/pkg/catalog"
)

// Placeholder marks absent optional fields in rendered output.
const Placeholder = "—"

// Listing renders the full catalog grouped by section. Sections appear in
// order of first appearance among the entries, never alphabetically;
// within a section, entries keep catalog order and their 1-based catalog
// numbers.
func Listing(c catalog.Catalog) string {
	if len(c) == 0 {
		return "No repositories saved yet.\n"
	}

	var b strings.Builder
	for i, section := range c.Sections() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "== %s ==\n", section)
		for j, entry := range c {
			if entry.Section == section {
				b.WriteString(entryLine(j+1, entry))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// SearchResults renders matches as a flat list. Entries keep their
// original catalog numbers so users can still target delete correctly.
func SearchResults(matches []catalog.Match) string {
	if len(matches) == 0 {
		return "No matches found.\n"
	}

	var b strings.Builder
	for _, m := range matches {
		b.WriteString(entryLine(m.Position, m.Entry))
		b.WriteString("\n")
	}
	return b.String()
}

// entryLine formats one entry: 1-based index, url, comma-joined tags, and
// metadata when present.
func entryLine(position int, entry catalog.Entry) string {
	tags := Placeholder
	if len(entry.Tags) > 0 {
		tags = strings.Join(entry.Tags, ", ")
	}
	return fmt.Sprintf("%d. %s | tags: %s | %s", position, entry.URL, tags, metadataSummary(entry.Metadata))
}

// metadataSummary flattens the optional metadata record into one cell.
func metadataSummary(meta *catalog.Metadata) string {
	if meta == nil {
		return Placeholder
	}
	var parts []string
	if meta.Stars != nil {
		parts = append(parts, fmt.Sprintf("⭐ %d", *meta.Stars))
	}
	if meta.Description != nil && *meta.Description != "" {
		parts = append(parts, *meta.Description)
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, " ")
}
