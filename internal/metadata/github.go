// Package metadata implements the best-effort metadata collaborator. It
// queries the GitHub API for a repository's description and star count.
// Callers treat every failure as "no metadata"; nothing here is fatal.
package metadata

import (
	"context"
	"time"

	"github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"

	"github.com/Kumar2007/RepoBook/internal/giturl"
	"github.com/Kumar2007/RepoBook/pkg/catalog"
	"github.com/Kumar2007/RepoBook/pkg/constants"
	"github.com/Kumar2007/RepoBook/pkg/errors"
)

// Fetcher is the metadata collaborator boundary. Implementations make a
// single request per call, bounded by their own timeout.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*catalog.Metadata, error)
}

// GitHub fetches repository metadata from the GitHub REST API.
type GitHub struct {
	client  *github.Client
	timeout time.Duration
}

// Option configures a GitHub fetcher.
type Option func(*GitHub)

// WithToken authenticates API requests with a personal access token.
// Unauthenticated requests work too, at a lower rate limit.
func WithToken(token string) Option {
	return func(g *GitHub) {
		if token == "" {
			return
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		tc := oauth2.NewClient(context.Background(), ts)
		g.client = github.NewClient(tc)
	}
}

// WithTimeout bounds each fetch call.
func WithTimeout(d time.Duration) Option {
	return func(g *GitHub) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithClient replaces the underlying API client. Used by tests to point
// the fetcher at a local server.
func WithClient(client *github.Client) Option {
	return func(g *GitHub) {
		g.client = client
	}
}

// NewGitHub creates a GitHub metadata fetcher.
func NewGitHub(opts ...Option) *GitHub {
	g := &GitHub{
		client:  github.NewClient(nil),
		timeout: constants.DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fetch retrieves metadata for the repository behind rawURL. Any failure
// (unparsable URL, network error, non-200 response, timeout) is returned
// as a FetchError for the caller to swallow.
func (g *GitHub) Fetch(ctx context.Context, rawURL string) (*catalog.Metadata, error) {
	owner, repo, err := giturl.OwnerRepo(rawURL)
	if err != nil {
		return nil, errors.WrapFetch(rawURL, 0, err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	repository, resp, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}
		return nil, errors.WrapFetch(rawURL, statusCode, err)
	}

	meta := &catalog.Metadata{
		Name:        repository.GetName(),
		Description: repository.Description,
		Stars:       repository.StargazersCount,
	}
	if repository.UpdatedAt != nil {
		updated := repository.UpdatedAt.Time
		meta.LastUpdated = &updated
	}
	return meta, nil
}
