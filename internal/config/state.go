package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/idursun/splitview/internal/split"
	"go.uber.org/zap"
)

// State is the persisted UI state. Nil fields have never been saved.
type State struct {
	Fraction *float64    `toml:"fraction,omitempty"`
	Hide     *split.Side `toml:"hide,omitempty"`
	Axis     *split.Axis `toml:"axis,omitempty"`
}

// StateFile keeps State in a TOML file and rewrites the file on every save.
// An empty path keeps the state in memory only.
type StateFile struct {
	path   string
	state  State
	logger *zap.Logger
}

// OpenStateFile reads the state at path. A missing file yields an empty state.
func OpenStateFile(path string, logger *zap.Logger) (*StateFile, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &StateFile{path: path, logger: logger}
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	if _, err := toml.Decode(string(data), &f.state); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", path, err)
	}
	return f, nil
}

func (f *StateFile) Path() string { return f.path }

func (f *StateFile) State() State { return f.state }

func (f *StateFile) Fraction() split.Store[float64] {
	return stateField[float64]{file: f, field: func(s *State) **float64 { return &s.Fraction }}
}

func (f *StateFile) Hide() split.Store[split.Side] {
	return stateField[split.Side]{file: f, field: func(s *State) **split.Side { return &s.Hide }}
}

func (f *StateFile) Axis() split.Store[split.Axis] {
	return stateField[split.Axis]{file: f, field: func(s *State) **split.Axis { return &s.Axis }}
}

// Flush writes the state to disk.
func (f *StateFile) Flush() error {
	if f.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.toml")
	if err != nil {
		return fmt.Errorf("creating state file: %w", err)
	}
	if err := toml.NewEncoder(tmp).Encode(f.state); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing state: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}

func (f *StateFile) save() {
	if err := f.Flush(); err != nil {
		f.logger.Warn("failed to persist state", zap.String("path", f.path), zap.Error(err))
	}
}

type stateField[T any] struct {
	file  *StateFile
	field func(*State) **T
}

func (s stateField[T]) Load() (T, bool) {
	p := *s.field(&s.file.state)
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func (s stateField[T]) Save(v T) {
	*s.field(&s.file.state) = &v
	s.file.save()
}
