// Package bookmarks persists user-granted folder access across application
// launches using macOS security-scoped bookmarks.
//
// Sandboxed macOS applications lose access to user-selected folders when the
// process exits. A security-scoped bookmark is an opaque token, issued by the
// OS, that re-grants that access on a later launch without prompting the user
// again. This package wraps the whole workflow: choose a folder, encode it
// into a bookmark token, persist the token under a short key, and later
// resolve the token back into an accessible folder.
//
// # Basic Usage
//
//	store := bookmarks.New()
//
//	// Ask the user once, remember the grant under "project-folder".
//	dir, err := store.PromptAndStore("Choose", "Select your project folder", "project-folder")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// On any later launch, use the folder without prompting.
//	err = store.WithAccess(ctx, "project-folder", func(ctx context.Context, dir string) error {
//	    return processFiles(dir)
//	})
//
// # Token Storage
//
// Tokens are opaque blobs owned by the OS; this package only moves them in
// and out of a TokenStore. Three stores are provided: DefaultsStore
// (NSUserDefaults, the conventional home for bookmark data on macOS),
// FileStore (a JSON file, works everywhere), and KeyringStore (the system
// keychain via go-keyring).
//
// # Platforms
//
// On macOS all platform calls go through the Objective-C runtime using
// purego; no cgo is required. Sandboxed processes get security-scoped
// tokens, non-sandboxed processes get plain bookmark data. On other
// platforms a portable fallback encodes the path itself, so code built
// around this package stays testable off-macOS.
//
// Set BOOKMARKS_DEBUG=1 to log token encode/decode failures and stale-token
// refreshes to stderr.
package bookmarks
