package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Store loads and saves settings.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

// FileStore keeps settings in a TOML file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads settings from disk. A missing file is created with defaults.
// Keys absent from the file keep their default values.
func (f *FileStore) Load() (Settings, error) {
	if f.path == "" {
		return Settings{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(f.path); err != nil {
		if os.IsNotExist(err) {
			s := Defaults()
			if err := f.Save(s); err != nil {
				return Settings{}, err
			}
			return s, nil
		}
		return Settings{}, fmt.Errorf("failed to stat config: %w", err)
	}

	var fs fileSettings
	if _, err := toml.DecodeFile(f.path, &fs); err != nil {
		return Settings{}, fmt.Errorf("failed to decode config: %w", err)
	}
	s := fs.apply(Defaults())
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", f.path, err)
	}
	return s, nil
}

// Save validates s and writes it atomically.
func (f *FileStore) Save(s Settings) error {
	if f.path == "" {
		return fmt.Errorf("config path is empty")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toFile(s)); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// MemoryStore keeps settings in memory. SaveErr, when set, is returned by
// every Save.
type MemoryStore struct {
	Settings Settings
	SaveErr  error
	Saves    int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding s.
func NewMemoryStore(s Settings) *MemoryStore {
	return &MemoryStore{Settings: s}
}

func (m *MemoryStore) Load() (Settings, error) {
	return m.Settings, nil
}

func (m *MemoryStore) Save(s Settings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if err := s.Validate(); err != nil {
		return err
	}
	m.Settings = s
	m.Saves++
	return nil
}
