package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexedwards/scs/v2"
)

// MemoryStorage keeps values in process memory.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// ErrNoSession is returned when a request context carries no loaded session.
var ErrNoSession = errors.New("theme: no session in context")

// SessionStorage stores values in the visitor's scs session, which outlives
// a single page load when the session cookie is persistent.
type SessionStorage struct {
	sessions *scs.SessionManager
}

// NewSessionStorage wraps a session manager.
func NewSessionStorage(sm *scs.SessionManager) *SessionStorage {
	return &SessionStorage{sessions: sm}
}

func (s *SessionStorage) Get(ctx context.Context, key string) (value string, err error) {
	if s.sessions == nil {
		return "", ErrNoSession
	}
	defer recoverSession(&err)
	if !s.sessions.Exists(ctx, key) {
		return "", ErrNotFound
	}
	return s.sessions.GetString(ctx, key), nil
}

func (s *SessionStorage) Set(ctx context.Context, key, value string) (err error) {
	if s.sessions == nil {
		return ErrNoSession
	}
	defer recoverSession(&err)
	s.sessions.Put(ctx, key, value)
	return nil
}

// recoverSession converts the panic scs raises for contexts without session
// data into ErrNoSession.
func recoverSession(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrNoSession, r)
	}
}

// LayeredStorage reads from the first layer that holds a value and writes to
// the first layer only. The web server layers the visitor's session over the
// site-wide preference database.
type LayeredStorage struct {
	layers []Storage
}

// Layered stacks primary above the fallbacks. Nil layers are skipped.
func Layered(primary Storage, fallbacks ...Storage) *LayeredStorage {
	layers := make([]Storage, 0, len(fallbacks)+1)
	for _, layer := range append([]Storage{primary}, fallbacks...) {
		if layer != nil {
			layers = append(layers, layer)
		}
	}
	return &LayeredStorage{layers: layers}
}

func (l *LayeredStorage) Get(ctx context.Context, key string) (string, error) {
	err := ErrNotFound
	for _, layer := range l.layers {
		value, layerErr := layer.Get(ctx, key)
		if layerErr == nil {
			return value, nil
		}
		if !errors.Is(layerErr, ErrNotFound) {
			err = layerErr
		}
	}
	return "", err
}

func (l *LayeredStorage) Set(ctx context.Context, key, value string) error {
	if len(l.layers) == 0 {
		return ErrNotFound
	}
	return l.layers[0].Set(ctx, key, value)
}
