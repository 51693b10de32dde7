package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kumar2007/RepoBook/cmd/repobook/cmd"
	"github.com/Kumar2007/RepoBook/internal/metadata"
	"github.com/Kumar2007/RepoBook/pkg/catalog"
	"github.com/Kumar2007/RepoBook/pkg/errors"
	"github.com/Kumar2007/RepoBook/pkg/logging"
)

// stubFetcher is a canned metadata collaborator.
type stubFetcher struct {
	meta *catalog.Metadata
	err  error
}

func (s stubFetcher) Fetch(_ context.Context, _ string) (*catalog.Metadata, error) {
	return s.meta, s.err
}

// testApp implements cmd.AppContext against temp files.
type testApp struct {
	store      *catalog.Store
	fetcher    metadata.Fetcher
	readmePath string
	format     string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dir := t.TempDir()
	return &testApp{
		store:      catalog.NewStore(filepath.Join(dir, "repos.json")),
		fetcher:    stubFetcher{},
		readmePath: filepath.Join(dir, "GENERATED_README.md"),
	}
}

func (a *testApp) Store() *catalog.Store     { return a.store }
func (a *testApp) Fetcher() metadata.Fetcher { return a.fetcher }
func (a *testApp) Logger() *zerolog.Logger   { return &logging.Nop }
func (a *testApp) ReadmePath() string        { return a.readmePath }
func (a *testApp) Format() string            { return a.format }
func (a *testApp) Quiet() bool               { return false }

func run(t *testing.T, app cmd.AppContext, build func(cmd.AppContext) *cobra.Command, args ...string) (string, error) {
	t.Helper()
	command := build(app)
	var buf bytes.Buffer
	command.SetOut(&buf)
	command.SetErr(&buf)
	command.SetArgs(args)
	err := command.Execute()
	return buf.String(), err
}

func TestAddCommand(t *testing.T) {
	t.Run("persists entry and regenerates readme", func(t *testing.T) {
		app := newTestApp(t)
		out, err := run(t, app, cmd.NewAddCommand,
			"https://github.com/golang/go", "--tags", "go,compiler", "--section", "Languages")
		require.NoError(t, err)
		assert.Contains(t, out, "Added https://github.com/golang/go")

		c, err := app.store.Load()
		require.NoError(t, err)
		require.Len(t, c, 1)
		assert.Equal(t, []string{"go", "compiler"}, c[0].Tags)
		assert.Equal(t, "Languages", c[0].Section)
		assert.Nil(t, c[0].Metadata)

		readme, err := os.ReadFile(app.readmePath)
		require.NoError(t, err)
		assert.Contains(t, string(readme), "https://github.com/golang/go")
	})

	t.Run("empty url fails with invalid entry", func(t *testing.T) {
		app := newTestApp(t)
		_, err := run(t, app, cmd.NewAddCommand, "   ")
		require.Error(t, err)
		assert.True(t, errors.IsInvalidEntry(err))
	})

	t.Run("fetch success attaches metadata", func(t *testing.T) {
		app := newTestApp(t)
		stars := 7
		app.fetcher = stubFetcher{meta: &catalog.Metadata{Name: "go", Stars: &stars}}

		_, err := run(t, app, cmd.NewAddCommand, "https://github.com/golang/go", "--fetch")
		require.NoError(t, err)

		c, err := app.store.Load()
		require.NoError(t, err)
		require.NotNil(t, c[0].Metadata)
		assert.Equal(t, 7, *c[0].Metadata.Stars)
	})

	t.Run("fetch failure still adds entry without metadata", func(t *testing.T) {
		app := newTestApp(t)
		app.fetcher = stubFetcher{err: errors.NewFetchError("https://github.com/golang/go", 0, errors.New("timeout"))}

		_, err := run(t, app, cmd.NewAddCommand, "https://github.com/golang/go", "--fetch")
		require.NoError(t, err)

		c, err := app.store.Load()
		require.NoError(t, err)
		require.Len(t, c, 1)
		assert.Nil(t, c[0].Metadata)
	})

	t.Run("corrupt store surfaces", func(t *testing.T) {
		app := newTestApp(t)
		require.NoError(t, os.WriteFile(app.store.Path(), []byte("{broken"), 0o644))

		_, err := run(t, app, cmd.NewAddCommand, "https://github.com/golang/go")
		require.Error(t, err)
		assert.True(t, errors.IsCorruptStore(err))
	})
}

func TestDeleteCommand(t *testing.T) {
	seed := func(t *testing.T, app *testApp, urls ...string) {
		t.Helper()
		var c catalog.Catalog
		for _, url := range urls {
			entry, err := catalog.NewEntry(url, nil, "")
			require.NoError(t, err)
			c = c.Add(entry)
		}
		require.NoError(t, app.store.Save(c))
	}

	t.Run("removes entry and shifts the rest", func(t *testing.T) {
		app := newTestApp(t)
		seed(t, app, "https://a.example/x/y", "https://b.example/x/y", "https://c.example/x/y")

		out, err := run(t, app, cmd.NewDeleteCommand, "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Deleted https://b.example/x/y")

		c, err := app.store.Load()
		require.NoError(t, err)
		require.Len(t, c, 2)
		assert.Equal(t, "https://a.example/x/y", c[0].URL)
		assert.Equal(t, "https://c.example/x/y", c[1].URL)

		assert.FileExists(t, app.readmePath)
	})

	t.Run("out of range leaves store untouched", func(t *testing.T) {
		app := newTestApp(t)
		seed(t, app, "https://a.example/x/y")

		_, err := run(t, app, cmd.NewDeleteCommand, "2")
		require.Error(t, err)
		assert.True(t, errors.IsIndexOutOfRange(err))

		c, err := app.store.Load()
		require.NoError(t, err)
		assert.Len(t, c, 1)
	})

	t.Run("non-numeric position", func(t *testing.T) {
		app := newTestApp(t)
		_, err := run(t, app, cmd.NewDeleteCommand, "two")
		assert.Error(t, err)
	})
}

func TestListCommand(t *testing.T) {
	app := newTestApp(t)
	entry, err := catalog.NewEntry("https://github.com/golang/go", []string{"go"}, "Languages")
	require.NoError(t, err)
	require.NoError(t, app.store.Save(catalog.Catalog{entry}))

	t.Run("text format groups by section", func(t *testing.T) {
		app.format = "text"
		out, err := run(t, app, cmd.NewListCommand)
		require.NoError(t, err)
		assert.Contains(t, out, "== Languages ==")
		assert.Contains(t, out, "1. https://github.com/golang/go")
	})

	t.Run("json format emits the raw catalog", func(t *testing.T) {
		app.format = "json"
		out, err := run(t, app, cmd.NewListCommand)
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "https://github.com/golang/go", decoded[0]["url"])
	})

	t.Run("invalid format", func(t *testing.T) {
		app.format = "xml"
		_, err := run(t, app, cmd.NewListCommand)
		assert.Error(t, err)
	})
}

func TestSearchCommand(t *testing.T) {
	app := newTestApp(t)
	var c catalog.Catalog
	for _, spec := range []struct {
		url  string
		tags []string
	}{
		{"https://github.com/golang/go", []string{"python", "http"}},
		{"https://github.com/torvalds/linux", []string{"os", "kernel"}},
		{"https://github.com/psf/requests", []string{"python"}},
	} {
		entry, err := catalog.NewEntry(spec.url, spec.tags, "")
		require.NoError(t, err)
		c = c.Add(entry)
	}
	require.NoError(t, app.store.Save(c))

	t.Run("matches keep catalog numbers", func(t *testing.T) {
		app.format = "text"
		out, err := run(t, app, cmd.NewSearchCommand, "python")
		require.NoError(t, err)
		assert.Contains(t, out, "1. https://github.com/golang/go")
		assert.Contains(t, out, "3. https://github.com/psf/requests")
		assert.NotContains(t, out, "2. ")
	})

	t.Run("no matches", func(t *testing.T) {
		app.format = "text"
		out, err := run(t, app, cmd.NewSearchCommand, "haskell")
		require.NoError(t, err)
		assert.Contains(t, out, "No matches found.")
	})
}
