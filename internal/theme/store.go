// Package theme holds the visitor's active colour scheme and persists it
// through a pluggable key/value storage.
package theme

import (
	"context"
	"errors"
	"sync"

	applog "storefront/internal/log"
	"storefront/models"
)

// StorageKey is the key under which the active theme is persisted.
const StorageKey = "app-theme"

// ErrNotFound is returned by storages when the key has never been written.
var ErrNotFound = errors.New("theme: preference not found")

// Storage persists string values by key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the active theme. Persisting is best effort: the in-memory
// theme always changes even when the storage write fails.
type Store struct {
	mu          sync.RWMutex
	current     models.Theme
	storage     Storage
	subscribers map[int]func(models.Theme)
	nextID      int
}

// Open restores the persisted theme, using the default when the stored value
// is missing, invalid or cannot be read.
func Open(ctx context.Context, storage Storage) *Store {
	store := &Store{
		current:     models.DefaultTheme,
		storage:     storage,
		subscribers: make(map[int]func(models.Theme)),
	}
	if storage == nil {
		return store
	}

	value, err := storage.Get(ctx, StorageKey)
	switch {
	case err != nil && !errors.Is(err, ErrNotFound):
		applog.Debug(ctx, "theme read failed, using default", "error", err)
	case models.ValidTheme(value):
		store.current = models.Theme(value)
	case value != "":
		applog.Debug(ctx, "ignoring invalid persisted theme", "value", value)
	}
	return store
}

// Get returns the active theme.
func (s *Store) Get() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set activates the theme, writes it through to storage and notifies
// subscribers. Unknown identifiers fall back to the default theme.
func (s *Store) Set(ctx context.Context, id models.Theme) {
	id = models.NormalizeTheme(string(id))

	s.mu.Lock()
	s.current = id
	listeners := make([]func(models.Theme), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	if s.storage != nil {
		if err := s.storage.Set(ctx, StorageKey, string(id)); err != nil {
			applog.Debug(ctx, "theme persist failed, keeping session value", "theme", id, "error", err)
		}
	}

	for _, fn := range listeners {
		fn(id)
	}
}

// Subscribe registers fn to be called after every Set. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(models.Theme)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
