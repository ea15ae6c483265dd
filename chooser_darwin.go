package bookmarks

import "github.com/tmc/bookmarks/internal/foundation"

func newPlatformChooser() Chooser {
	return panelChooser{}
}

// panelChooser presents NSOpenPanel restricted to a single directory.
//
// AppKit requires the panel to run on the main thread: call ChooseFolder
// from the main goroutine with runtime.LockOSThread in effect (or via a
// main-thread dispatch layer), never from an arbitrary goroutine.
type panelChooser struct{}

func (panelChooser) ChooseFolder(prompt, message, initialDir string) (string, error) {
	if !foundation.HasUIContext() {
		return "", &Error{
			Op:   "choose folder",
			Err:  ErrNoUIContext,
			Help: "present a window first, or run inside an app bundle with a regular activation policy",
		}
	}
	path, ok := foundation.RunFolderPanel(prompt, message, initialDir)
	if !ok {
		return "", &Error{Op: "choose folder", Err: ErrNoSelection}
	}
	return path, nil
}
