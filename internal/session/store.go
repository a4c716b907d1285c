// Package session holds the authenticated user session and the
// role-based access decisions made on top of it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/questscholar/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the login failure message shown to the user
const ErrInvalidCredentials = "Invalid email or password"

// credential pairs a fixed demo account with its password hash
type credential struct {
	user         models.User
	passwordHash []byte
}

// demoCredentials holds the exactly two accepted credential pairs.
// Hashes are computed once at startup; the accounts are demo fixtures.
var demoCredentials = func() map[string]credential {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	studentHash, err := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return map[string]credential{
		models.DefaultAdmin.Email:   {user: models.DefaultAdmin, passwordHash: adminHash},
		models.DefaultStudent.Email: {user: models.DefaultStudent, passwordHash: studentHash},
	}
}()

// Store holds the current user session. It is the single owner of the
// in-memory user and keeps it in sync with durable storage.
type Store struct {
	mu         sync.Mutex
	user       *models.User
	loading    bool
	err        string
	storage    Storage
	logger     *zap.Logger
	loginDelay time.Duration
}

// NewStore creates a session store and synchronously rehydrates the user
// from durable storage. Absent or corrupt data starts with no user.
func NewStore(storage Storage, logger *zap.Logger, loginDelay time.Duration) *Store {
	s := &Store{
		storage:    storage,
		logger:     logger,
		loading:    true,
		loginDelay: loginDelay,
	}

	user, err := storage.Load()
	if err != nil {
		logger.Warn("failed to rehydrate session, starting unauthenticated", zap.Error(err))
	} else {
		s.user = user
	}
	s.loading = false

	return s
}

// Login validates the credentials against the two fixed demo pairs.
// On match it sets and persists the matching user, clears the error and
// returns true. On mismatch it records the failure reason and returns
// false. The configured delay mimics a real auth call.
//
// Concurrent logins are not coalesced: racing calls are individually
// atomic and the last write wins.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.setError("")

	select {
	case <-time.After(s.loginDelay):
	case <-ctx.Done():
		s.setError(ErrInvalidCredentials)
		return false
	}

	cred, ok := demoCredentials[email]
	if !ok || bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)) != nil {
		s.setError(ErrInvalidCredentials)
		s.logger.Info("login rejected", zap.String("email", email))
		return false
	}

	user := cred.user

	s.mu.Lock()
	defer s.mu.Unlock()

	// Durable storage is best-effort, like the browser storage it mirrors
	if err := s.storage.Save(&user); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}
	s.user = &user
	s.err = ""

	s.logger.Info("login successful", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return true
}

// Logout clears the persisted and in-memory user. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
	s.user = nil
}

// Current returns a copy of the current user, or nil when unauthenticated
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsLoading reports whether session rehydration is still in progress
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last login failure reason, empty when none
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}
