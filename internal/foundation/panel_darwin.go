package foundation

import "github.com/ebitengine/purego/objc"

// HasUIContext reports whether the process has a window that can host a
// modal dialog. A plain CLI process (no NSApplication, or no key or main
// window) cannot present NSOpenPanel.
func HasUIContext() bool {
	initObjC()

	app := objc.ID(clsNSApplication).Send(selSharedApplication)
	if app == 0 {
		return false
	}
	if objc.Send[objc.ID](app, selKeyWindow) != 0 {
		return true
	}
	return objc.Send[objc.ID](app, selMainWindow) != 0
}

// RunFolderPanel presents a modal NSOpenPanel restricted to directories,
// seeded at initialDir. It blocks until the user responds and returns the
// chosen path, or ok=false if the user cancelled.
//
// AppKit requires NSOpenPanel to run on the main thread; callers must be
// pinned there (runtime.LockOSThread from main, or a main-thread dispatch
// layer), or AppKit aborts the process.
func RunFolderPanel(prompt, message, initialDir string) (path string, ok bool) {
	initObjC()

	panel := objc.ID(clsNSOpenPanel).Send(selOpenPanel)
	panel.Send(selSetCanChooseDirs, true)
	panel.Send(selSetCanChooseFiles, false)
	panel.Send(selSetAllowsMultiple, false)
	panel.Send(selSetCanCreateDirs, true)
	if prompt != "" {
		panel.Send(selSetPrompt, nsString(prompt))
	}
	if message != "" {
		panel.Send(selSetMessage, nsString(message))
	}
	if initialDir != "" {
		panel.Send(selSetDirectoryURL, nsURLFileURLWithPath(initialDir))
	}

	// NSModalResponseOK == 1
	if objc.Send[int](panel, selRunModal) != 1 {
		return "", false
	}
	url := objc.Send[objc.ID](panel, selURL)
	if url == 0 {
		return "", false
	}
	return goString(objc.Send[objc.ID](url, selPath)), true
}

// RevealInFileViewer shows path in Finder.
func RevealInFileViewer(path string) {
	initObjC()

	ws := objc.ID(clsNSWorkspace).Send(selSharedWorkspace)
	urls := objc.ID(clsNSArray).Send(selArrayWithObject, nsURLFileURLWithPath(path))
	ws.Send(selActivateFileViewer, urls)
}
