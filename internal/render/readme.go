package render

import (
	"fmt"
	"os"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/Kumar2007/RepoBook/pkg/catalog"
	"github.com/Kumar2007/RepoBook/pkg/constants"
	"github.com/Kumar2007/RepoBook/pkg/errors"
)

// README renders the generated markdown summary document. It uses the
// same grouping and placeholder rules as Listing and is entirely derived
// from the catalog; the file it lands in is never read back.
func README(c catalog.Catalog) (string, error) {
	var buf strings.Builder
	doc := md.NewMarkdown(&buf)

	doc.H1("📚 RepoBook Directory").
		PlainText("A curated list of repositories managed by the repobook CLI.").
		LF().
		H2("Repositories").
		LF()

	if len(c) == 0 {
		doc.PlainText(md.Italic("No repositories added yet.")).LF()
	} else {
		for _, section := range c.Sections() {
			doc.H2(section).LF()
			for _, entry := range c {
				if entry.Section != section {
					continue
				}
				writeEntry(doc, entry)
			}
			doc.HorizontalRule().LF()
		}
	}

	if err := doc.Build(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// writeEntry appends one entry block: a linked heading with the star
// count, the description as a blockquote, and a tags line.
func writeEntry(doc *md.Markdown, entry catalog.Entry) {
	name := entry.URL
	var stars string
	var description string

	if meta := entry.Metadata; meta != nil {
		if meta.Name != "" {
			name = meta.Name
		}
		if meta.Stars != nil {
			stars = fmt.Sprintf(" ⭐ %d", *meta.Stars)
		}
		if meta.Description != nil {
			description = *meta.Description
		}
	}

	doc.H3(md.Link(name, entry.URL) + stars)
	if description != "" {
		doc.Blockquote(description)
	}
	if len(entry.Tags) > 0 {
		doc.PlainText(md.Bold("Tags:") + " " + strings.Join(entry.Tags, ", "))
	}
	doc.LF()
}

// WriteREADME regenerates the summary document at path. Called only by
// mutating commands, after the catalog itself has been saved.
func WriteREADME(path string, c catalog.Catalog) error {
	content, err := README(c)
	if err != nil {
		return errors.WrapIO("render", path, err)
	}
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
