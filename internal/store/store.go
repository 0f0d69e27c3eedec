// Package store persists the item list as a single serialized blob in a
// key-value backend.
package store

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/idilsaglam/listkeeper/internal/model"
)

// DefaultKey is the key the list lives under. It matches the localStorage key
// web exports use, so an exported payload loads unchanged.
const DefaultKey = "interactiveList"

// ErrNotFound is returned by Blob.Get when nothing was saved under a key.
var ErrNotFound = errors.New("key not found")

// Blob is the key-value medium under a Store.
// Set must replace the previous value atomically: readers see either the old
// blob or the new one, never a partial write.
type Blob interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Store loads and saves the ordered item list.
type Store struct {
	blob Blob
	key  string
	log  *slog.Logger

	mu sync.Mutex // one save at a time against the same blob
}

// New returns a Store over blob. An empty key falls back to DefaultKey and a
// nil logger discards.
func New(blob Blob, key string, log *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{blob: blob, key: key, log: log}
}

// Load returns the last saved list. Missing or unreadable data yields an empty
// list; the failure is logged and never returned.
func (s *Store) Load() []model.Item {
	b, err := s.blob.Get(s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("load items", "key", s.key, "err", err)
		}
		return []model.Item{}
	}
	items, err := Decode(b)
	if err != nil {
		s.log.Warn("decode items", "key", s.key, "bytes", len(b), "err", err)
		return []model.Item{}
	}
	s.log.Debug("loaded items", "key", s.key, "count", len(items))
	return items
}

// Save overwrites the stored list with items.
func (s *Store) Save(items []model.Item) error {
	b, err := Encode(items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.blob.Set(s.key, b); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	s.log.Debug("saved items", "key", s.key, "count", len(items))
	return nil
}

// Close releases the underlying blob.
func (s *Store) Close() error { return s.blob.Close() }

// Encode serializes items in the stored payload format.
func Encode(items []model.Item) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses a stored payload. A JSON null decodes to an empty list.
func Decode(b []byte) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
