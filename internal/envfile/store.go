// Package envfile stores the background service's .env configuration.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"macbot/internal/paths"
)

// Store reads and writes the service config file. The raw operations treat
// the content as an opaque blob; Values and SetValues understand the dotenv
// syntax for callers that edit individual keys.
type Store struct {
	path func() (string, error)
}

// NewStore returns a store backed by the default .env location.
func NewStore() *Store {
	return &Store{path: paths.EnvFile}
}

// NewStoreAt returns a store backed by an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: func() (string, error) { return path, nil }}
}

// Read returns the file's full content. A missing file reads as empty.
func (s *Store) Read() (string, error) {
	path, err := s.path()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}
	return string(data), nil
}

// Write overwrites the file with exactly the given content, creating the
// data directory if needed.
func (s *Store) Write(content string) error {
	path, err := s.path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Values parses the stored content as dotenv pairs. An absent or empty file
// yields an empty map.
func (s *Store) Values() (map[string]string, error) {
	content, err := s.Read()
	if err != nil {
		return nil, err
	}

	values, err := godotenv.Unmarshal(content)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return values, nil
}

// SetValues merges the given pairs over the current ones and rewrites the
// file. Keys not mentioned keep their values.
func (s *Store) SetValues(values map[string]string) error {
	current, err := s.Values()
	if err != nil {
		return err
	}

	for k, v := range values {
		current[k] = v
	}

	content, err := godotenv.Marshal(current)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return s.Write(content + "\n")
}
