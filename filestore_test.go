package bookmarks

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "bookmarks.json"))

	if err := fs.Save("project", []byte{0x01, 0x02, 0xff}); err != nil {
		t.Fatal(err)
	}
	token, err := fs.Load("project")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(token, []byte{0x01, 0x02, 0xff}) {
		t.Errorf("token mangled in round trip: %v", token)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "bookmarks.json"))

	_, err := fs.Load("absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "bookmarks.json"))

	if err := fs.Save("k", []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Save("k", []byte("second")); err != nil {
		t.Fatal(err)
	}
	token, err := fs.Load("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(token) != "second" {
		t.Errorf("expected last write to win, got %q", token)
	}
}

func TestFileStoreDelete(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "bookmarks.json"))

	if err := fs.Save("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Load("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing key is not an error.
	if err := fs.Delete("absent"); err != nil {
		t.Errorf("delete of missing key should succeed, got %v", err)
	}
}

func TestFileStoreKeys(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "bookmarks.json"))

	for _, k := range []string{"beta", "alpha", "gamma"} {
		if err := fs.Save(k, []byte(k)); err != nil {
			t.Fatal(err)
		}
	}
	keys, err := fs.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(keys, []string{"alpha", "beta", "gamma"}) {
		t.Errorf("expected sorted keys, got %v", keys)
	}
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bookmarks.json")
	fs := NewFileStore(path)

	if err := fs.Save("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected token file to exist: %v", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileStore(path)

	if _, err := fs.Load("k"); err == nil {
		t.Error("expected error for corrupt token file")
	}
}

func TestFileStoreNoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "bookmarks.json"))

	if err := fs.Save("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the token file in %s, found %d entries", dir, len(entries))
	}
}
