package foundation

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// NSURL bookmark option bits (NSURL.h).
const (
	bookmarkCreationWithSecurityScope   = 1 << 11
	bookmarkResolutionWithSecurityScope = 1 << 10
)

// Cached selectors
var (
	selRetain  objc.SEL
	selRelease objc.SEL

	selStringWithUTF8 objc.SEL
	selUTF8String     objc.SEL

	selFileURLWithPath objc.SEL
	selPath            objc.SEL

	selDataWithBytes objc.SEL
	selBytes         objc.SEL
	selLength        objc.SEL

	selBookmarkData       objc.SEL
	selResolveBookmark    objc.SEL
	selStartAccessing     objc.SEL
	selStopAccessing      objc.SEL
	selLocalizedDesc      objc.SEL
	selArrayWithObject    objc.SEL
	selCount              objc.SEL
	selObjectAtIndex      objc.SEL
	selAllKeys            objc.SEL
	selStandardDefaults   objc.SEL
	selDataForKey         objc.SEL
	selSetObjectForKey    objc.SEL
	selRemoveObjectForKey objc.SEL
	selDictionaryRep      objc.SEL

	selSharedApplication objc.SEL
	selKeyWindow         objc.SEL
	selMainWindow        objc.SEL

	selOpenPanel            objc.SEL
	selSetCanChooseDirs     objc.SEL
	selSetCanChooseFiles    objc.SEL
	selSetAllowsMultiple    objc.SEL
	selSetCanCreateDirs     objc.SEL
	selSetPrompt            objc.SEL
	selSetMessage           objc.SEL
	selSetDirectoryURL      objc.SEL
	selRunModal             objc.SEL
	selURL                  objc.SEL
	selSharedWorkspace      objc.SEL
	selActivateFileViewer   objc.SEL
)

// Cached classes
var (
	clsNSString       objc.Class
	clsNSURL          objc.Class
	clsNSData         objc.Class
	clsNSArray        objc.Class
	clsNSUserDefaults objc.Class
	clsNSApplication  objc.Class
	clsNSOpenPanel    objc.Class
	clsNSWorkspace    objc.Class
)

var initOnce sync.Once

func initObjC() {
	initOnce.Do(func() {
		_, err := purego.Dlopen("/System/Library/Frameworks/Foundation.framework/Foundation", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			panic("failed to load Foundation: " + err.Error())
		}
		_, err = purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			panic("failed to load AppKit: " + err.Error())
		}

		// Cache selectors
		selRetain = objc.RegisterName("retain")
		selRelease = objc.RegisterName("release")
		selStringWithUTF8 = objc.RegisterName("stringWithUTF8String:")
		selUTF8String = objc.RegisterName("UTF8String")
		selFileURLWithPath = objc.RegisterName("fileURLWithPath:")
		selPath = objc.RegisterName("path")
		selDataWithBytes = objc.RegisterName("dataWithBytes:length:")
		selBytes = objc.RegisterName("bytes")
		selLength = objc.RegisterName("length")
		selBookmarkData = objc.RegisterName("bookmarkDataWithOptions:includingResourceValuesForKeys:relativeToURL:error:")
		selResolveBookmark = objc.RegisterName("URLByResolvingBookmarkData:options:relativeToURL:bookmarkDataIsStale:error:")
		selStartAccessing = objc.RegisterName("startAccessingSecurityScopedResource")
		selStopAccessing = objc.RegisterName("stopAccessingSecurityScopedResource")
		selLocalizedDesc = objc.RegisterName("localizedDescription")
		selArrayWithObject = objc.RegisterName("arrayWithObject:")
		selCount = objc.RegisterName("count")
		selObjectAtIndex = objc.RegisterName("objectAtIndex:")
		selAllKeys = objc.RegisterName("allKeys")
		selStandardDefaults = objc.RegisterName("standardUserDefaults")
		selDataForKey = objc.RegisterName("dataForKey:")
		selSetObjectForKey = objc.RegisterName("setObject:forKey:")
		selRemoveObjectForKey = objc.RegisterName("removeObjectForKey:")
		selDictionaryRep = objc.RegisterName("dictionaryRepresentation")
		selSharedApplication = objc.RegisterName("sharedApplication")
		selKeyWindow = objc.RegisterName("keyWindow")
		selMainWindow = objc.RegisterName("mainWindow")
		selOpenPanel = objc.RegisterName("openPanel")
		selSetCanChooseDirs = objc.RegisterName("setCanChooseDirectories:")
		selSetCanChooseFiles = objc.RegisterName("setCanChooseFiles:")
		selSetAllowsMultiple = objc.RegisterName("setAllowsMultipleSelection:")
		selSetCanCreateDirs = objc.RegisterName("setCanCreateDirectories:")
		selSetPrompt = objc.RegisterName("setPrompt:")
		selSetMessage = objc.RegisterName("setMessage:")
		selSetDirectoryURL = objc.RegisterName("setDirectoryURL:")
		selRunModal = objc.RegisterName("runModal")
		selURL = objc.RegisterName("URL")
		selSharedWorkspace = objc.RegisterName("sharedWorkspace")
		selActivateFileViewer = objc.RegisterName("activateFileViewerSelectingURLs:")

		// Cache classes
		clsNSString = objc.GetClass("NSString")
		clsNSURL = objc.GetClass("NSURL")
		clsNSData = objc.GetClass("NSData")
		clsNSArray = objc.GetClass("NSArray")
		clsNSUserDefaults = objc.GetClass("NSUserDefaults")
		clsNSApplication = objc.GetClass("NSApplication")
		clsNSOpenPanel = objc.GetClass("NSOpenPanel")
		clsNSWorkspace = objc.GetClass("NSWorkspace")
	})
}

// nsString creates an NSString from a Go string.
func nsString(s string) objc.ID {
	b := append([]byte(s), 0)
	return objc.ID(clsNSString).Send(selStringWithUTF8, uintptr(unsafe.Pointer(&b[0])))
}

// goString extracts a Go string from an NSString (or CFStringRef).
func goString(id objc.ID) string {
	if id == 0 {
		return ""
	}
	ptr := objc.Send[*byte](id, selUTF8String)
	if ptr == nil {
		return ""
	}
	data := unsafe.Slice(ptr, 1<<30)
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return ""
}

// nsData creates an NSData holding a copy of b.
func nsData(b []byte) objc.ID {
	if len(b) == 0 {
		return objc.ID(clsNSData).Send(selDataWithBytes, 0, 0)
	}
	return objc.ID(clsNSData).Send(selDataWithBytes, uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}

// goBytes copies an NSData's contents into a Go slice.
func goBytes(data objc.ID) []byte {
	if data == 0 {
		return nil
	}
	n := objc.Send[uintptr](data, selLength)
	if n == 0 {
		return nil
	}
	ptr := objc.Send[*byte](data, selBytes)
	if ptr == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice(ptr, n))
	return out
}

// nsURLFileURLWithPath creates a file:// NSURL from a filesystem path.
func nsURLFileURLWithPath(path string) objc.ID {
	return objc.ID(clsNSURL).Send(selFileURLWithPath, nsString(path))
}

// errorDescription extracts the localized description from an NSError.
func errorDescription(nsErr objc.ID) string {
	if nsErr == 0 {
		return "unknown error"
	}
	return goString(objc.Send[objc.ID](nsErr, selLocalizedDesc))
}
