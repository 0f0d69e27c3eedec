package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/listkeeper/internal/store"
)

// File-backed blobs. One human-readable file per key in a data directory.
// Writes go through a temp file and a rename so a crash never leaves a
// half-written list behind.

const fileExt = ".json"

// Dir is a store.Blob rooted at a directory.
type Dir struct {
	Path string
}

// Open returns a Dir rooted at path, creating it if needed.
func Open(path string) (*Dir, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = wd
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Dir{Path: path}, nil
}

// FilePath is where key is stored.
func (d *Dir) FilePath(key string) string {
	return filepath.Join(d.Path, key+fileExt)
}

func (d *Dir) Get(key string) ([]byte, error) {
	b, err := os.ReadFile(d.FilePath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

func (d *Dir) Set(key string, value []byte) error {
	p := d.FilePath(key)
	f, err := os.CreateTemp(d.Path, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(value); err != nil {
		_ = f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (d *Dir) Close() error { return nil }
