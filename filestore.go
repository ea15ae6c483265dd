package bookmarks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore persists tokens in a single JSON file. It works on every
// platform and is the default TokenStore off macOS.
//
// The file is the one resource shared between keys, so all operations take
// an internal lock; concurrent use from one process is safe.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the file at path. The file and
// its parent directory are created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultFileStorePath returns the conventional token file location for an
// application name: <user config dir>/<app>/bookmarks.json.
func DefaultFileStorePath(app string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("bookmarks: locate user config dir: %w", err)
	}
	return filepath.Join(dir, app, "bookmarks.json"), nil
}

// Path returns the backing file's path, for user messaging.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load returns the token stored under key.
func (fs *FileStore) Load(key string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.read()
	if err != nil {
		return nil, err
	}
	token, ok := entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return token, nil
}

// Save stores token under key, replacing any existing token.
func (fs *FileStore) Save(key string, token []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.read()
	if err != nil {
		return err
	}
	entries[key] = token
	return fs.write(entries)
}

// Delete removes the token stored under key. Deleting a missing key is not
// an error.
func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return fs.write(entries)
}

// Keys returns the stored keys in sorted order.
func (fs *FileStore) Keys() ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.read()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (fs *FileStore) read() (map[string][]byte, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string][]byte{}, nil
		}
		return nil, fmt.Errorf("bookmarks: read token file: %w", err)
	}
	entries := map[string][]byte{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("bookmarks: parse token file %s: %w", fs.path, err)
	}
	return entries, nil
}

// write replaces the token file atomically so a crash mid-write cannot
// corrupt previously stored tokens.
func (fs *FileStore) write(entries map[string][]byte) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("bookmarks: encode token file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("bookmarks: create token dir: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("bookmarks: write token file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("bookmarks: replace token file: %w", err)
	}
	return nil
}

var _ TokenStore = (*FileStore)(nil)
