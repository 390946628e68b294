// Package bank loads and caches the MCQ question bank.
package bank

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"skilltest/internal/domain"
)

//go:embed default_bank.yaml
var defaultBankYAML []byte

// Loader fetches the question bank from a backing source.
type Loader interface {
	LoadBank(ctx context.Context) (domain.Bank, error)
}

// FileLoader reads a YAML bank from disk, re-parsing on every call so
// edits show up after the cache expires.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) LoadBank(_ context.Context) (domain.Bank, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return domain.Bank{}, fmt.Errorf("read question bank: %w", err)
	}
	return parseBank(data)
}

// EmbeddedLoader serves the bank compiled into the binary.
type EmbeddedLoader struct{}

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

func (l *EmbeddedLoader) LoadBank(_ context.Context) (domain.Bank, error) {
	return parseBank(defaultBankYAML)
}

// StaticLoader is a simple loader backed by a fixed bank (useful for tests).
type StaticLoader struct {
	bank domain.Bank
}

func NewStaticLoader(bank domain.Bank) *StaticLoader {
	return &StaticLoader{bank: bank}
}

func (l *StaticLoader) LoadBank(_ context.Context) (domain.Bank, error) {
	return l.bank, nil
}

func parseBank(data []byte) (domain.Bank, error) {
	var bank domain.Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return domain.Bank{}, fmt.Errorf("parse question bank: %w", err)
	}
	for _, lang := range bank.Languages {
		for _, q := range lang.Questions {
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				return domain.Bank{}, fmt.Errorf("question bank: %q question %q: answer index %d out of range",
					lang.Name, q.Text, q.Answer)
			}
		}
	}
	return bank, nil
}
