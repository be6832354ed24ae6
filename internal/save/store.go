// Package save persists game progress as prefixed JSON documents in a directory.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPrefix namespaces every key written by the game.
const DefaultPrefix = "pixelCrawler_"

const fileExt = ".json"

// Store is a key/value store with one JSON file per key. Keys are namespaced
// by a prefix so that Clear never touches files the store did not write.
type Store struct {
	dir    string
	prefix string
}

// NewStore creates a store rooted at dir. The directory is created on the
// first write.
func NewStore(dir, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{dir: dir, prefix: prefix}
}

// Dir returns the directory holding the store's files.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, s.prefix+key+fileExt), nil
}

// Save writes v under key, replacing any previous value.
func (s *Store) Save(key string, v any) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// Load reads key into v. It returns false with a nil error when the key
// does not exist.
func (s *Store) Load(key string, v any) (bool, error) {
	path, err := s.path(key)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

// Has reports whether key exists.
func (s *Store) Has(key string) bool {
	path, err := s.path(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys without their prefix.
func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list save directory: %w", err)
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, s.prefix) || !strings.HasSuffix(name, fileExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(strings.TrimPrefix(name, s.prefix), fileExt))
	}
	return keys, nil
}

// Clear removes every key written with the store's prefix.
func (s *Store) Clear() error {
	keys, err := s.Keys()
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
