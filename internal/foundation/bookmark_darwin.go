package foundation

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego/objc"
)

// URL wraps a retained NSURL resolved from bookmark data. Callers must
// Release it when the access scope is no longer needed.
type URL struct {
	id objc.ID
}

// EncodeBookmark issues bookmark data for path. With securityScope set the
// token carries a security-scope grant (requires a sandboxed host with the
// app-scope bookmark entitlement); without it plain bookmark data is issued.
func EncodeBookmark(path string, securityScope bool) ([]byte, error) {
	initObjC()

	url := nsURLFileURLWithPath(path)
	if url == 0 {
		return nil, fmt.Errorf("invalid path: %s", path)
	}
	return encodeBookmarkData(url, securityScope)
}

// EncodeBookmarkFromURL issues fresh bookmark data from an already resolved
// URL. Unlike EncodeBookmark, the URL still carries whatever grant its
// resolution produced, which is required to re-encode inside a sandbox.
func EncodeBookmarkFromURL(u URL, securityScope bool) ([]byte, error) {
	initObjC()

	if u.id == 0 {
		return nil, fmt.Errorf("nil URL")
	}
	return encodeBookmarkData(u.id, securityScope)
}

func encodeBookmarkData(url objc.ID, securityScope bool) ([]byte, error) {
	var opts uintptr
	if securityScope {
		opts = bookmarkCreationWithSecurityScope
	}
	var nsErr objc.ID
	data := objc.Send[objc.ID](url, selBookmarkData, opts, 0, 0, unsafe.Pointer(&nsErr))
	if data == 0 {
		return nil, fmt.Errorf("bookmarkDataWithOptions: %s", errorDescription(nsErr))
	}
	return goBytes(data), nil
}

// ResolveBookmark decodes bookmark data back into a URL. stale reports that
// the target moved since the token was issued and a fresh token should be
// encoded from the returned path.
func ResolveBookmark(token []byte, securityScope bool) (url URL, path string, stale bool, err error) {
	initObjC()

	var opts uintptr
	if securityScope {
		opts = bookmarkResolutionWithSecurityScope
	}
	var isStale bool
	var nsErr objc.ID
	id := objc.Send[objc.ID](objc.ID(clsNSURL), selResolveBookmark,
		nsData(token), opts, 0, unsafe.Pointer(&isStale), unsafe.Pointer(&nsErr))
	if id == 0 {
		return URL{}, "", false, fmt.Errorf("URLByResolvingBookmarkData: %s", errorDescription(nsErr))
	}

	// Retain so the URL outlives the enclosing autorelease scope; the
	// caller owns the reference from here.
	id.Send(selRetain)
	return URL{id: id}, goString(objc.Send[objc.ID](id, selPath)), isStale, nil
}

// Path returns the URL's filesystem path.
func (u URL) Path() string {
	if u.id == 0 {
		return ""
	}
	return goString(objc.Send[objc.ID](u.id, selPath))
}

// StartAccess activates the security-scope grant carried by the URL. The
// platform reference counts grants per URL, so balanced Start/Stop pairs on
// independent URLs do not interfere.
func (u URL) StartAccess() bool {
	if u.id == 0 {
		return false
	}
	return objc.Send[bool](u.id, selStartAccessing)
}

// StopAccess releases the security-scope grant.
func (u URL) StopAccess() {
	if u.id == 0 {
		return
	}
	u.id.Send(selStopAccessing)
}

// Release drops the retained reference taken by ResolveBookmark.
func (u URL) Release() {
	if u.id != 0 {
		u.id.Send(selRelease)
	}
}
