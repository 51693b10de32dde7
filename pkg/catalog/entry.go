package catalog

import (
	"strings"
	"time"

	"github.com/Kumar2007/RepoBook/pkg/constants"
	"github.com/Kumar2007/RepoBook/pkg/errors"
)

// Entry is one saved repository record.
type Entry struct {
	// URL is the repository's canonical link. Required, not validated
	// beyond being non-empty.
	URL string `json:"url"`

	// Tags are user-supplied labels, in the order the user gave them.
	Tags []string `json:"tags"`

	// Section is the user-chosen grouping label, used purely for
	// rendering. Defaults to "Uncategorized".
	Section string `json:"section"`

	// Added records when the entry was created.
	Added time.Time `json:"added"`

	// Metadata holds enrichment fetched from the remote API. Nil when
	// enrichment was not requested or the fetch failed.
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Metadata is the optional record returned by the metadata collaborator.
// Absence is first-class: a nil *Metadata means no enrichment, and the
// nullable fields inside distinguish "fetched but empty" from "present".
type Metadata struct {
	// Name is the repository name reported by the remote API.
	Name string `json:"name,omitempty"`

	// Description is the repository description, nil when the remote
	// reports none.
	Description *string `json:"description"`

	// Stars is the stargazer count, nil when unknown.
	Stars *int `json:"stars"`

	// LastUpdated is the remote's last update timestamp.
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// NewEntry builds an Entry from user input. The URL must be non-empty;
// an empty section falls back to the default. Tags may be empty.
func NewEntry(url string, tags []string, section string) (Entry, error) {
	if strings.TrimSpace(url) == "" {
		return Entry{}, errors.NewInvalidEntryError("url", "must not be empty")
	}
	if section == "" {
		section = constants.DefaultSection
	}
	if tags == nil {
		tags = []string{}
	}
	return Entry{
		URL:     url,
		Tags:    tags,
		Section: section,
		Added:   time.Now(),
	}, nil
}
