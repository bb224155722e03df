package medcard

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Storage keys. The card record and the two UI preferences are independent
// entries; they never share a key.
const (
	KeyCard     = "medicalCardData"
	KeyLanguage = "language"
	KeyTheme    = "theme"
)

// PersistenceError reports a storage medium failure. Save failures are
// non-fatal by policy: the in-memory snapshot is untouched, only the write
// was lost.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed for %q: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store is the opaque key-value storage medium the card persists to.
// Load reports ok=false (and no error) when the key has never been written.
type Store interface {
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
}

// FileStore keeps each key as a file in one directory. The filesystem is
// abstracted behind afero so tests run against an in-memory fs.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore creates the backing directory if needed.
func NewFileStore(fsys afero.Fs, dir string) (*FileStore, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, &PersistenceError{Key: dir, Err: err}
	}
	return &FileStore{fs: fsys, dir: dir}, nil
}

// Load implements Store.
func (s *FileStore) Load(key string) ([]byte, bool, error) {
	b, err := afero.ReadFile(s.fs, filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &PersistenceError{Key: key, Err: err}
	}
	return b, true, nil
}

// Save implements Store.
func (s *FileStore) Save(key string, value []byte) error {
	if err := afero.WriteFile(s.fs, filepath.Join(s.dir, key), value, 0o644); err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	return nil
}
