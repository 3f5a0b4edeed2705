// Package prefs persists small user preferences such as the selected theme.
package prefs

import (
	"os"
	"path/filepath"
	"sync"

	"showcase/internal/errors"

	"gopkg.in/yaml.v3"
)

// ThemeKey stores the name of the theme chosen by the user.
const ThemeKey = "user_theme_name"

// Store is a string key/value preference store.
type Store interface {
	GetString(key string) (string, bool)
	PutString(key, value string) error
}

// FileStore keeps preferences in a YAML file. Writes replace the file
// atomically. It is safe for concurrent use.
type FileStore struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// OpenFile loads the store at path. A missing file yields an empty store.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.NewPrefsError("failed to read preferences", path, errors.PrefsReadFailed, err)
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, errors.NewPrefsError("failed to parse preferences", path, errors.PrefsReadFailed, err)
	}
	if s.values == nil {
		s.values = map[string]string{}
	}
	return s, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) GetString(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) PutString(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return errors.NewPrefsError("failed to write preferences", key, errors.PrefsWriteFailed, err)
	}
	return nil
}

func (s *FileStore) flush() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// MemoryStore is an in-memory Store that counts writes.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	writes int
	err    error
}

// NewMemoryStore returns a store seeded with values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	m := &MemoryStore{values: map[string]string{}}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

func (m *MemoryStore) GetString(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) PutString(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return errors.NewPrefsError("failed to write preferences", key, errors.PrefsWriteFailed, m.err)
	}
	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns the number of successful PutString calls.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FailWrites makes every later PutString fail with err; nil restores writes.
func (m *MemoryStore) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
