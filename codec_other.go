//go:build !darwin

package bookmarks

import (
	"errors"
	"fmt"
	"os"
)

// pathCodec keeps the library functional off macOS: the token is the folder
// path itself, and no platform grant exists, so resolved folders carry no
// access scope.
type pathCodec struct{}

func newPlatformCodec() Codec {
	return pathCodec{}
}

func (pathCodec) Encode(path string) ([]byte, error) {
	if err := checkDir(path); err != nil {
		return nil, err
	}
	return []byte(path), nil
}

func (pathCodec) Resolve(token []byte) (*Folder, error) {
	path := string(token)
	if path == "" {
		return nil, errors.New("empty bookmark token")
	}
	if err := checkDir(path); err != nil {
		return nil, err
	}
	return &Folder{Path: path}, nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", path)
	}
	return nil
}
