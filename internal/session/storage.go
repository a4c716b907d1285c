package session

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/questscholar/backend/internal/models"
)

// Storage is the interface that wraps durable session persistence.
// It holds at most one serialized user at a time.
type Storage interface {
	// Method Save writes the user as the current persisted session.
	//
	// "user" parameter is the user to persist.
	//
	// If some error occurs during persistence, the error will be returned.
	Save(user *models.User) error
	// Method Load reads the persisted session.
	//
	// If no session is persisted, "nil, nil" is returned. If the persisted
	// data is corrupt or unreadable, the error will be returned together
	// with "nil" value.
	Load() (*models.User, error)
	// Method Clear removes the persisted session. Clearing an absent
	// session is not an error.
	Clear() error
}

// fileStorage persists the session as a single JSON file
type fileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage creates a file-backed session storage at the given path
func NewFileStorage(path string) *fileStorage {
	return &fileStorage{path: path}
}

// Save writes the user to the session file
func (s *fileStorage) Save(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Load reads the user from the session file
func (s *fileStorage) Load() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &user, nil
}

// Clear removes the session file
func (s *fileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}

// memoryStorage is an in-memory Storage used in tests
type memoryStorage struct {
	user *models.User
	mu   sync.Mutex
}

// NewMemoryStorage creates an in-memory session storage
func NewMemoryStorage() *memoryStorage {
	return &memoryStorage{}
}

// Save stores a copy of the user in memory
func (s *memoryStorage) Save(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	s.user = &u
	return nil
}

// Load returns a copy of the stored user, or nil when empty
func (s *memoryStorage) Load() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

// Clear drops the stored user
func (s *memoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return nil
}
