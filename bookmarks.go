package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store maps short string keys to persisted folder-access tokens. The zero
// value is not usable; construct with New and override fields as needed.
//
// Operations on different keys are independent and may run concurrently; the
// underlying TokenStore is keyed and platform access scopes are reference
// counted per resolved folder.
type Store struct {
	// Tokens persists the opaque tokens. New wires the platform default
	// (NSUserDefaults on macOS, a JSON file elsewhere).
	Tokens TokenStore

	// Codec encodes and resolves tokens.
	Codec Codec

	// Chooser presents the folder-selection dialog for PromptAndStore.
	Chooser Chooser

	// DefaultDir is returned by LastSelected when no bookmark is stored or
	// resolution fails. Empty means the user's Documents directory.
	DefaultDir string
}

// New returns a Store wired with the platform defaults.
func New() *Store {
	return &Store{
		Tokens:  newPlatformTokenStore(),
		Codec:   newPlatformCodec(),
		Chooser: newPlatformChooser(),
	}
}

// Resolve loads the token stored under key and decodes it into a Folder.
// It returns an error matching ErrNotFound when no token is stored.
//
// If the platform reports the token as stale, Resolve re-encodes and
// re-stores a fresh token for the same folder before returning. The refresh
// is best effort: a failure is logged and the stale (still working) token is
// kept.
func (s *Store) Resolve(key string) (*Folder, error) {
	token, err := s.Tokens.Load(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &Error{
				Op:   fmt.Sprintf("resolve bookmark %q", key),
				Err:  ErrNotFound,
				Help: "store a folder first with Save or PromptAndStore",
			}
		}
		return nil, &Error{Op: fmt.Sprintf("resolve bookmark %q", key), Err: err}
	}

	folder, err := s.Codec.Resolve(token)
	if err != nil {
		return nil, &Error{
			Op:   fmt.Sprintf("resolve bookmark %q", key),
			Err:  err,
			Help: "the folder may have been deleted; prompt the user again",
		}
	}

	if folder.Stale {
		debugf("bookmarks: token for %q is stale, refreshing from %s", key, folder.Path)
		if !s.refreshStale(key, folder) {
			// Non-fatal: the stale token still resolved.
			debugf("bookmarks: refresh for %q failed, keeping stale token", key)
		}
	}
	return folder, nil
}

// refreshStale re-stores a fresh token for a folder whose token resolved as
// stale. Codecs that can re-encode from the resolved platform handle supply
// a refresh hook, which is preferred: encoding from the bare path is denied
// in a sandboxed process because the grant travels with the resolved URL.
func (s *Store) refreshStale(key string, folder *Folder) bool {
	if folder.refresh == nil {
		return s.Save(key, folder.Path)
	}
	token, err := folder.refresh()
	if err != nil {
		debugf("bookmarks: re-encode token for %q (%s): %v", key, folder.Path, err)
		return false
	}
	if err := s.Tokens.Save(key, token); err != nil {
		debugf("bookmarks: persist refreshed token for %q: %v", key, err)
		return false
	}
	return true
}

// LastSelected returns the folder previously stored under key, or a default
// folder when nothing is stored or resolution fails. It never returns an
// error, which makes it suitable for seeding file dialogs.
//
// The default is DefaultDir if set, otherwise the user's Documents directory.
func (s *Store) LastSelected(key string) string {
	folder, err := s.Resolve(key)
	if err != nil {
		return s.defaultDir()
	}
	return folder.Path
}

// Save encodes path into a fresh token and persists it under key, replacing
// any previous token (last-write-wins). It reports whether both steps
// succeeded; failures are logged, not returned, to keep call sites that can
// tolerate a missing bookmark simple.
func (s *Store) Save(key, path string) bool {
	token, err := s.Codec.Encode(path)
	if err != nil {
		debugf("bookmarks: encode token for %q (%s): %v", key, path, err)
		return false
	}
	if err := s.Tokens.Save(key, token); err != nil {
		debugf("bookmarks: persist token for %q: %v", key, err)
		return false
	}
	return true
}

// Delete removes the token stored under key, if any.
func (s *Store) Delete(key string) error {
	return s.Tokens.Delete(key)
}

// WithAccess resolves key, activates the folder's permission scope, and
// invokes fn with the folder path. The scope is released exactly once on
// every exit path, including a panic inside fn. A missing bookmark
// propagates as ErrNotFound.
//
// The context is checked before fn runs and is passed through for fn's own
// cancellation handling; the resolve and scope calls themselves do not block.
func (s *Store) WithAccess(ctx context.Context, key string, fn func(ctx context.Context, dir string) error) error {
	folder, err := s.Resolve(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if !folder.StartAccess() {
		debugf("bookmarks: start access for %q refused by platform", key)
	}
	defer folder.StopAccess()

	return fn(ctx, folder.Path)
}

// PromptAndStore presents the folder chooser, seeded with LastSelected(key),
// and persists the user's choice under key. It returns the chosen path.
//
// It fails with ErrNoUIContext when no window is available to host the
// dialog and with ErrNoSelection when the user cancels. A failure to persist
// the choice is logged and otherwise ignored: the caller still gets the path
// the user picked.
//
// On macOS the native chooser must run on the main thread (an AppKit
// requirement); call from the main goroutine with runtime.LockOSThread in
// effect.
func (s *Store) PromptAndStore(prompt, message, key string) (string, error) {
	dir, err := s.Chooser.ChooseFolder(prompt, message, s.LastSelected(key))
	if err != nil {
		return "", err
	}
	if !s.Save(key, dir) {
		debugf("bookmarks: selection %s chosen but not persisted under %q", dir, key)
	}
	return dir, nil
}

func (s *Store) defaultDir() string {
	if s.DefaultDir != "" {
		return s.DefaultDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Documents")
}

func debugf(format string, args ...any) {
	if os.Getenv("BOOKMARKS_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
