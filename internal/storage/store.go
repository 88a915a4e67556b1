package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/nexuscare/nexuscare/internal/logger"
)

// Collection names used by the fallback layer. Each maps to one JSON file
// under the store directory.
const (
	CollectionUsers        = "users"
	CollectionDoctors      = "doctors"
	CollectionAppointments = "appointments"
	CollectionSession      = "session"
)

// Store persists JSON collections on disk, one file per collection. It is
// the offline stand-in for the REST backend: callers read a whole
// collection, modify it in memory and write it back. There is no
// cross-process locking; a single active writer is assumed.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// List reads a collection into out, which must be a pointer to a slice or
// struct. An absent or corrupt file yields the zero value, never an error:
// the fallback layer treats both as an empty collection.
func (s *Store) List(collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Log.Warnw("failed to read collection", "collection", collection, "error", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Log.Warnw("corrupt collection, treating as empty", "collection", collection, "error", err)
		return nil
	}
	return nil
}

// Save serializes v and replaces the whole collection on disk. Partial or
// merge writes are not supported.
func (s *Store) Save(collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Errorw("failed to marshal collection", "collection", collection, "error", err)
		return err
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		logger.Log.Errorw("failed to write collection", "collection", collection, "error", err)
		return err
	}
	return nil
}

// Delete removes a collection file. Missing files are not an error.
func (s *Store) Delete(collection string) error {
	err := os.Remove(s.path(collection))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Log.Errorw("failed to delete collection", "collection", collection, "error", err)
		return err
	}
	return nil
}
