package onboarding

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"macbot/internal/paths"
)

// ErrStateCorrupt marks a state file that exists but cannot be parsed. It is
// surfaced to the caller rather than masked with defaults, so a damaged file
// never silently loses the user's progress.
var ErrStateCorrupt = errors.New("onboarding state corrupt")

// Store reads and writes the wizard state file.
type Store struct {
	path func() (string, error)
}

// NewStore returns a store backed by the default onboarding.json location.
func NewStore() *Store {
	return &Store{path: paths.OnboardingFile}
}

// NewStoreAt returns a store backed by an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: func() (string, error) { return path, nil }}
}

// Read loads the persisted state. A missing file is the expected first-run
// condition and yields DefaultState.
func (s *Store) Read() (State, error) {
	path, err := s.path()
	if err != nil {
		return State{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultState(), nil
	}
	if err != nil {
		return State{}, fmt.Errorf("read onboarding state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrStateCorrupt, err)
	}
	return state, nil
}

// Write persists the state, creating the data directory if needed. The file
// is indented so users can inspect it.
func (s *Store) Write(state State) error {
	path, err := s.path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode onboarding state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write onboarding state: %w", err)
	}
	return nil
}
