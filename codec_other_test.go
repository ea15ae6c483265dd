//go:build !darwin

package bookmarks

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathCodecRoundTrip(t *testing.T) {
	dir := t.TempDir()
	codec := pathCodec{}

	token, err := codec.Encode(dir)
	if err != nil {
		t.Fatal(err)
	}
	folder, err := codec.Resolve(token)
	if err != nil {
		t.Fatal(err)
	}
	if folder.Path != dir {
		t.Errorf("expected %s, got %s", dir, folder.Path)
	}
	if folder.Stale {
		t.Error("portable tokens are never stale")
	}

	// No platform grant exists, so the scope is a no-op.
	if !folder.StartAccess() {
		t.Error("scopeless folder must accept StartAccess")
	}
	folder.StopAccess()
	folder.StopAccess() // idempotent
}

func TestPathCodecRejectsFiles(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	codec := pathCodec{}

	if _, err := codec.Encode(file); err == nil {
		t.Error("expected error encoding a non-directory")
	}
}

func TestPathCodecResolveMissingDir(t *testing.T) {
	codec := pathCodec{}

	if _, err := codec.Resolve([]byte(filepath.Join(t.TempDir(), "gone"))); err == nil {
		t.Error("expected error resolving a missing directory")
	}
	if _, err := codec.Resolve(nil); err == nil {
		t.Error("expected error resolving an empty token")
	}
}

func TestStoreWithPathCodecAndFileStore(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "granted")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	s := &Store{
		Tokens:     NewFileStore(filepath.Join(dir, "bookmarks.json")),
		Codec:      pathCodec{},
		Chooser:    newPlatformChooser(),
		DefaultDir: dir,
	}

	if !s.Save("granted", target) {
		t.Fatal("Save failed")
	}
	folder, err := s.Resolve("granted")
	if err != nil {
		t.Fatal(err)
	}
	if folder.Path != target {
		t.Errorf("expected %s, got %s", target, folder.Path)
	}
	if got := s.LastSelected("granted"); got != target {
		t.Errorf("LastSelected: expected %s, got %s", target, got)
	}

	// Deleting the directory corrupts the grant; LastSelected must still
	// return a usable default rather than an error.
	if err := os.Remove(target); err != nil {
		t.Fatal(err)
	}
	if got := s.LastSelected("granted"); got != dir {
		t.Errorf("expected default dir after target removal, got %s", got)
	}
}
