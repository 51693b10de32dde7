package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/Kumar2007/RepoBook/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestInvalidEntryError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.InvalidEntryError{
			Field:   "url",
			Message: "must not be empty",
		}
		assert.Equal(t, "invalid entry: url: must not be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidEntry))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.InvalidEntryError{Message: "malformed input"}
		assert.Equal(t, "invalid entry: malformed input", err.Error())
		assert.True(t, pkgerrors.IsInvalidEntry(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewInvalidEntryError("url", "must not be empty")
		assert.True(t, pkgerrors.IsInvalidEntry(err))
	})
}

func TestIndexOutOfRangeError(t *testing.T) {
	t.Run("non-empty catalog", func(t *testing.T) {
		err := pkgerrors.NewIndexOutOfRangeError(5, 3)
		assert.Equal(t, "position 5 out of range [1, 3]", err.Error())
		assert.True(t, pkgerrors.IsIndexOutOfRange(err))
	})

	t.Run("empty catalog", func(t *testing.T) {
		err := pkgerrors.NewIndexOutOfRangeError(1, 0)
		assert.Equal(t, "position 1 out of range: catalog is empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrIndexOutOfRange))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewIndexOutOfRangeError(0, 2)
		wrapped := fmt.Errorf("delete failed: %w", base)
		assert.True(t, pkgerrors.IsIndexOutOfRange(wrapped))
	})
}

func TestCorruptStoreError(t *testing.T) {
	base := errors.New("unexpected end of JSON input")
	err := pkgerrors.NewCorruptStoreError("repos.json", base)

	assert.Contains(t, err.Error(), "repos.json")
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.True(t, pkgerrors.IsCorruptStore(err))
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestFetchError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.FetchError{
			URL:        "https://github.com/golang/go",
			StatusCode: 404,
			Message:    "Not Found",
		}
		assert.Contains(t, err.Error(), "status 404")
		assert.True(t, pkgerrors.IsFetchFailed(err))
	})

	t.Run("wrap helper", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapFetch("https://github.com/golang/go", 0, nil))

		err := pkgerrors.WrapFetch("https://github.com/golang/go", 0, errors.New("timeout"))
		assert.True(t, errors.Is(err, pkgerrors.ErrFetchFailed))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("write", "repos.json", base)

	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "repos.json")
	assert.Equal(t, base, errors.Unwrap(err))

	assert.NoError(t, pkgerrors.WrapIO("write", "repos.json", nil))
}
