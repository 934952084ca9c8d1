package session

import "sync"

// TokenStorage is the durable client storage holding the session token
// between visits. The portal keeps it in a cookie.
type TokenStorage interface {
	Load() (string, bool)
	Save(token string) error
	Clear() error
}

// MemoryStorage is a TokenStorage kept in process memory.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStorage returns storage preloaded with token, which may be empty.
func NewMemoryStorage(token string) *MemoryStorage {
	return &MemoryStorage{token: token}
}

func (m *MemoryStorage) Load() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

func (m *MemoryStorage) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
