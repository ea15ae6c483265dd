package bookmarks

// Chooser presents a modal folder-selection dialog. The call blocks until
// the user responds; there is no timeout, cancellation is user-driven.
type Chooser interface {
	// ChooseFolder shows the dialog with the given button title and
	// message, starting at initialDir, and returns the chosen folder path.
	// It fails with ErrNoUIContext when no window can host the dialog and
	// with ErrNoSelection when the user cancels.
	ChooseFolder(prompt, message, initialDir string) (string, error)
}
