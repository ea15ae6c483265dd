// Package foundation provides pure Go bindings for the Foundation and AppKit
// APIs behind security-scoped bookmarks: NSURL bookmark data, NSUserDefaults,
// NSOpenPanel, and NSWorkspace. No cgo required.
//
// All exported functions are macOS-only; the package compiles to nothing on
// other platforms.
package foundation
