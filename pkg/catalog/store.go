package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Kumar2007/RepoBook/pkg/constants"
	"github.com/Kumar2007/RepoBook/pkg/errors"
)

// Store persists a catalog as a single JSON document at a fixed path.
// The document is treated as exclusively owned by the running process;
// concurrent invocations are out of scope.
type Store struct {
	path string
}

// NewStore creates a store backed by the document at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's document path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted catalog document. A missing document is not an
// error and yields an empty catalog; a document that exists but cannot be
// parsed fails with a CorruptStoreError.
func (s *Store) Load() (Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Catalog{}, nil
		}
		return nil, errors.WrapIO("read", s.path, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.NewCorruptStoreError(s.path, err)
	}
	return c, nil
}

// Save serializes the full catalog to the document, replacing prior
// content atomically: the document is written to a temp file in the same
// directory and renamed over the target, so a crash mid-write never
// truncates the store.
func (s *Store) Save(c Catalog) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", tempPath, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("close", tempPath, err)
	}

	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", tempPath, err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("rename", s.path, err)
	}
	return nil
}
