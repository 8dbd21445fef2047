package persistence

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cirocosta/timerclock/internal/repository"
)

// FileStore keeps the document in a single JSON file
type FileStore struct {
	Path  string
	Codec Codec
	mu    sync.Mutex
}

// NewFileStore creates a file store at path using the local time zone
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the document and decodes it as of now.
//
// A missing file is the normal first-run case and yields an empty store with
// no error. On any other failure Load still returns an empty store, together
// with an *Error describing the failure.
func (f *FileStore) Load(now time.Time) (*repository.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	empty := func() *repository.Store {
		s := repository.NewStore()
		s.Calendar = repository.CalendarView{Year: now.Year(), Month: now.Month()}
		return s
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return empty(), nil
		}
		return empty(), &Error{Kind: IoFailure, Path: f.Path, Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return empty(), &Error{Kind: ParseFailure, Path: f.Path, Err: err}
	}

	s, err := f.Codec.Decode(doc, now)
	if err != nil {
		return empty(), &Error{Kind: ParseFailure, Path: f.Path, Err: err}
	}
	return s, nil
}

// Save writes the whole store as of now. The file is replaced atomically, so
// a failed save leaves the previous document intact.
func (f *FileStore) Save(s *repository.Store, now time.Time) error {
	data, err := json.MarshalIndent(f.Codec.Encode(s, now), "", "    ")
	if err != nil {
		return &Error{Kind: ParseFailure, Path: f.Path, Err: err}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &Error{Kind: IoFailure, Path: f.Path, Err: err}
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return &Error{Kind: IoFailure, Path: f.Path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &Error{Kind: IoFailure, Path: f.Path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &Error{Kind: IoFailure, Path: f.Path, Err: err}
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return &Error{Kind: IoFailure, Path: f.Path, Err: err}
	}
	return nil
}

// Quarantine moves the document to Path+".corrupt" and returns the new path.
// Call it after a ParseFailure so the next Save starts a fresh file instead
// of replacing the unreadable one.
func (f *FileStore) Quarantine() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	moved := f.Path + ".corrupt"
	if err := os.Rename(f.Path, moved); err != nil {
		return "", &Error{Kind: IoFailure, Path: f.Path, Err: err}
	}
	return moved, nil
}
