package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/surpluslink/surpluslink/internal/domain"
)

// Store persists the theme preference between process starts.
type Store interface {
	// Load returns the stored theme, or domain.DefaultTheme when nothing is stored yet.
	Load(ctx context.Context) (domain.Theme, error)
	Save(ctx context.Context, t domain.Theme) error
}

type fileRecord struct {
	Theme string `json:"theme"`
}

// FileStore keeps the preference as a small JSON document on an afero filesystem.
type FileStore struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewFileStore creates a FileStore for path on fsys.
func NewFileStore(fsys afero.Fs, path string) *FileStore {
	return &FileStore{fs: fsys, path: path}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

// Load implements Store.
func (s *FileStore) Load(ctx context.Context) (domain.Theme, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultTheme, nil
	}
	if err != nil {
		return domain.DefaultTheme, fmt.Errorf("read theme file: %w", err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.DefaultTheme, fmt.Errorf("parse theme file: %w", err)
	}
	t, err := domain.ParseTheme(rec.Theme)
	if err != nil {
		return domain.DefaultTheme, err
	}
	return t, nil
}

// Save implements Store. The file is replaced atomically.
func (s *FileStore) Save(ctx context.Context, t domain.Theme) error {
	if _, err := domain.ParseTheme(string(t)); err != nil {
		return err
	}
	data, err := json.Marshal(fileRecord{Theme: string(t)})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create theme dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write theme file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace theme file: %w", err)
	}
	return nil
}
