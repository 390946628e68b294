// Package auth implements registration and login for the single-tenant
// record store.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"skilltest/internal/domain"
)

// Store is the slice of the record store the manager needs.
type Store interface {
	LoadAll() ([]domain.User, []domain.Result)
	AppendUser(domain.User) error
}

// Manager validates credentials and persists accounts.
type Manager struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewManager(store Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log, now: time.Now}
}

// NewManagerWithClock is test-only for deterministic timestamps.
func NewManagerWithClock(store Store, log *zap.Logger, now func() time.Time) *Manager {
	m := NewManager(store, log)
	m.now = now
	return m
}

// HashPassword is the fixed one-way digest for stored credentials.
// Hash equality is the whole verification contract.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register validates the fields in order, short-circuiting on the first
// failure, then persists the new account. Uniqueness is re-checked by
// the store inside the same transaction as the append.
func (m *Manager) Register(username, password, name, email string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, domain.ErrMissingCredentials
	}
	if !strings.Contains(email, "@") {
		return domain.User{}, domain.ErrInvalidEmail
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return domain.User{}, domain.ErrPasswordNoUpper
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return domain.User{}, domain.ErrPasswordNoDigit
	}

	user := domain.User{
		Username:     username,
		PasswordHash: HashPassword(password),
		Name:         name,
		Email:        email,
		CreatedAt:    m.now(),
	}
	if err := m.store.AppendUser(user); err != nil {
		return domain.User{}, err
	}
	m.log.Info("user registered", zap.String("username", username))
	return user, nil
}

// Login checks the password against the first user row matching the
// username. Duplicates can exist if a second process raced a
// registration; first row wins, matching registration-time order.
func (m *Manager) Login(username, password string) (domain.Identity, error) {
	users, _ := m.store.LoadAll()
	for _, u := range users {
		if u.Username != username {
			continue
		}
		if u.PasswordHash != HashPassword(password) {
			return "", domain.ErrIncorrectPassword
		}
		m.log.Info("user logged in", zap.String("username", username))
		return domain.Identity(username), nil
	}
	return "", domain.ErrUserNotFound
}
