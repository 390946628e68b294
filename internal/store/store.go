// Package store persists the application's two append-only relations
// (users and results) as a single YAML artifact. Every mutation is a
// full read-modify-write: load both relations, apply the change in
// memory, write a complete new artifact to a sibling temp file and
// rename it over the canonical path. An interrupted write therefore
// leaves the canonical artifact exactly as it was.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"skilltest/internal/domain"
)

// Document is the persisted aggregate: both relations, insertion order
// preserved. The artifact always contains both, even when empty.
type Document struct {
	Users   []domain.User   `yaml:"users"`
	Results []domain.Result `yaml:"results"`
}

// Store is a file-backed record store. It assumes a single local user
// and a single process: concurrent writers from separate processes race
// on the whole-file snapshot and the last rename wins.
type Store struct {
	path string
	log  *zap.Logger

	// writeFile is swappable so tests can fail the temp write and prove
	// the canonical artifact survives untouched.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log, writeFile: os.WriteFile}
}

// Path returns the canonical artifact location.
func (s *Store) Path() string { return s.path }

// EnsureInitialized creates an empty two-relation artifact if none
// exists. Idempotent; an existing artifact is never overwritten.
func (s *Store) EnsureInitialized() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat record store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	if err := s.replace(Document{Users: []domain.User{}, Results: []domain.Result{}}); err != nil {
		return err
	}
	s.log.Info("record store created", zap.String("path", s.path))
	return nil
}

// LoadAll reads both relations. Read failures are non-fatal: a missing
// or unreadable artifact degrades to empty relations, so callers see
// "no data" rather than an error.
func (s *Store) LoadAll() ([]domain.User, []domain.Result) {
	doc := s.load()
	return doc.Users, doc.Results
}

func (s *Store) load() Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Document{}
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		s.log.Warn("record store unreadable, treating as empty",
			zap.String("path", s.path), zap.Error(err))
		return Document{}
	}
	return doc
}

// Transact runs one atomic read-modify-write cycle: load the current
// document, apply the mutation, persist the full new state via atomic
// replace. If apply or the write fails, the canonical artifact keeps
// its prior state and the error propagates.
func (s *Store) Transact(apply func(doc *Document) error) error {
	if err := s.EnsureInitialized(); err != nil {
		return err
	}
	doc := s.load()
	if err := apply(&doc); err != nil {
		return err
	}
	return s.replace(doc)
}

// AppendUser appends a user row, carrying results through unchanged.
// Username uniqueness is checked against the same snapshot the append
// lands in, so there is no in-process window between check and write.
func (s *Store) AppendUser(user domain.User) error {
	return s.Transact(func(doc *Document) error {
		for _, existing := range doc.Users {
			if existing.Username == user.Username {
				return domain.ErrUsernameTaken
			}
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
}

// AppendResult appends a result row, carrying users through unchanged.
func (s *Store) AppendResult(result domain.Result) error {
	return s.Transact(func(doc *Document) error {
		doc.Results = append(doc.Results, result)
		return nil
	})
}

// replace writes the full document to a sibling temp file and renames
// it over the canonical path in one filesystem operation.
func (s *Store) replace(doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode record store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := s.writeFile(tmp, data, 0o600); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write record store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace record store: %w", err)
	}
	return nil
}
