package bookmarks

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/tmc/bookmarks/internal/foundation"
)

// newPlatformCodec selects between security-scoped and plain bookmark data.
// Sandboxed processes need the security scope; outside the sandbox the OS
// rejects scoped creation, so plain bookmark data is used instead.
func newPlatformCodec() Codec {
	return &bookmarkCodec{securityScope: sandboxed()}
}

// sandboxed reports whether the process runs inside an app sandbox
// container, using the container ID launchd injects into the environment.
func sandboxed() bool {
	return os.Getenv("APP_SANDBOX_CONTAINER_ID") != ""
}

// bookmarkCodec issues NSURL bookmark data. With securityScope the token
// carries a security-scope grant that must be bracketed by start/stop;
// without it resolution needs no bracket and the scope is dropped.
type bookmarkCodec struct {
	securityScope bool
}

func (c *bookmarkCodec) Encode(path string) ([]byte, error) {
	return foundation.EncodeBookmark(path, c.securityScope)
}

func (c *bookmarkCodec) Resolve(token []byte) (*Folder, error) {
	url, path, stale, err := foundation.ResolveBookmark(token, c.securityScope)
	if err != nil {
		return nil, err
	}
	folder := &Folder{Path: path, Stale: stale}
	if c.securityScope {
		scope := &urlScope{url: url}
		folder.scope = scope
		folder.refresh = scope.refreshToken
	} else {
		url.Release()
	}
	return folder, nil
}

// urlScope brackets startAccessingSecurityScopedResource and its stop
// counterpart on a resolved NSURL. stop is idempotent, only balances a
// successful start, and drops the retained URL reference.
type urlScope struct {
	url     foundation.URL
	started bool
	once    sync.Once
}

func (s *urlScope) start() bool {
	ok := s.url.StartAccess()
	if ok {
		s.started = true
		// The grant can be accepted yet still not confer access when the
		// token was issued by another app; check and log for diagnosis.
		if err := unix.Access(s.url.Path(), unix.R_OK); err != nil {
			debugf("bookmarks: access check for %s: %v", s.url.Path(), err)
		}
	}
	return ok
}

func (s *urlScope) stop() {
	s.once.Do(func() {
		// stopAccessing must balance a successful start; an unbalanced
		// stop over-decrements the platform's per-URL grant count.
		if s.started {
			s.url.StopAccess()
		}
		s.url.Release()
	})
}

// refreshToken issues fresh security-scoped bookmark data from the resolved
// URL, which carries the sandbox grant; encoding from the bare path would
// be denied with no access started. The encode is bracketed by its own
// balanced start/stop pair.
func (s *urlScope) refreshToken() ([]byte, error) {
	if s.url.StartAccess() {
		defer s.url.StopAccess()
	}
	return foundation.EncodeBookmarkFromURL(s.url, true)
}
