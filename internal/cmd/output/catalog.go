package output

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Kumar2007/RepoBook/pkg/catalog"
)

// catalogColumns are the JSON field names rendered as table columns, in
// order. Headers are derived from them the same way for every column.
var catalogColumns = []string{"#", "url", "section", "tags", "stars", "description"}

// CatalogTable converts matches into tabular Data. Each row keeps the
// entry's 1-based catalog position so table output can still target
// delete correctly.
func CatalogTable(matches []catalog.Match) Data {
	caser := cases.Title(language.English)
	headers := make([]string, len(catalogColumns))
	for i, col := range catalogColumns {
		headers[i] = caser.String(strings.ReplaceAll(col, "_", " "))
	}

	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		entry := m.Entry
		stars := ""
		description := ""
		if entry.Metadata != nil {
			if entry.Metadata.Stars != nil {
				stars = strconv.Itoa(*entry.Metadata.Stars)
			}
			if entry.Metadata.Description != nil {
				description = *entry.Metadata.Description
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(m.Position),
			entry.URL,
			entry.Section,
			strings.Join(entry.Tags, ", "),
			stars,
			description,
		})
	}

	return Data{Headers: headers, Rows: rows}
}

// Matches wraps a catalog in position-carrying matches, for commands that
// render the whole catalog through the same table path as search results.
func Matches(c catalog.Catalog) []catalog.Match {
	matches := make([]catalog.Match, len(c))
	for i, entry := range c {
		matches[i] = catalog.Match{Position: i + 1, Entry: entry}
	}
	return matches
}
