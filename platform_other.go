//go:build !darwin

package bookmarks

import (
	"os"
	"path/filepath"
)

func newPlatformTokenStore() TokenStore {
	path, err := DefaultFileStorePath("bookmarks")
	if err != nil {
		path = filepath.Join(os.TempDir(), "bookmarks.json")
	}
	return NewFileStore(path)
}
