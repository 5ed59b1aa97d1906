package api

import (
	"sync"

	"github.com/rs/zerolog"
)

// TokenStore is the persistent key-value store the session survives
// restarts in (the config file in the CLI, an in-memory fake in tests).
type TokenStore interface {
	Load() string
	Save(token string) error
	Clear() error
}

// Credentials is the scheme-specific half of session handling. Exactly one
// implementation is active at a time; nothing outside this package knows
// which.
type Credentials interface {
	// Restore recovers a persisted credential, returning true when one
	// was found. Failures stay silent: anonymous is the safe default.
	Restore() bool
	Set(token string)
	Clear()
	// Header returns the Authorization header value to attach and whether
	// one should be attached at all.
	Header() (string, bool)
	// Present reports whether a credential is held.
	Present() bool
}

// BearerCredentials is the canonical scheme: an opaque bearer token kept in
// the token store, attached as an Authorization header on every call.
type BearerCredentials struct {
	store TokenStore
	token string
}

func NewBearerCredentials(store TokenStore) *BearerCredentials {
	return &BearerCredentials{store: store}
}

func (b *BearerCredentials) Restore() bool {
	b.token = b.store.Load()
	return b.token != ""
}

func (b *BearerCredentials) Set(token string) {
	b.token = token
	_ = b.store.Save(token)
}

func (b *BearerCredentials) Clear() {
	b.token = ""
	_ = b.store.Clear()
}

func (b *BearerCredentials) Header() (string, bool) {
	return "Bearer " + b.token, true
}

func (b *BearerCredentials) Present() bool { return b.token != "" }

// CookieCredentials is the deprecated compatibility scheme: the server
// manages the credential as a cookie the transport attaches on its own.
// Restore probes the server-authoritative indicator instead of local state.
type CookieCredentials struct {
	probe         func() bool
	authenticated bool
}

// NewCookieCredentials builds the cookie shim. probe asks the server
// whether the current cookie jar is authenticated (GET /auth/me).
func NewCookieCredentials(probe func() bool) *CookieCredentials {
	return &CookieCredentials{probe: probe}
}

func (c *CookieCredentials) Restore() bool {
	if c.probe != nil && c.probe() {
		c.authenticated = true
	}
	return c.authenticated
}

func (c *CookieCredentials) Set(string) { c.authenticated = true }

func (c *CookieCredentials) Clear() { c.authenticated = false }

// Header attaches nothing: the cookie rides along transport-side.
func (c *CookieCredentials) Header() (string, bool) { return "", false }

func (c *CookieCredentials) Present() bool { return c.authenticated }

// Session holds the process-wide credential state: either authenticated
// (credential present) or anonymous. There is no in-between state.
type Session struct {
	mu       sync.RWMutex
	creds    Credentials
	navigate func()
	revoke   func()
	log      zerolog.Logger
}

// NewSession restores any persisted credential and returns the session.
// navigate is called whenever the session ends, to send the user back to
// the login entry point.
func NewSession(creds Credentials, navigate func(), log zerolog.Logger) *Session {
	s := &Session{creds: creds, navigate: navigate, log: log}
	if creds.Restore() {
		log.Debug().Msg("session credential restored")
	}
	return s
}

// SetRevoker registers the best-effort server-side revoke performed on
// logout. Wired after the API client exists to break the construction cycle.
func (s *Session) SetRevoker(revoke func()) {
	s.mu.Lock()
	s.revoke = revoke
	s.mu.Unlock()
}

// SetCredential stores the credential obtained from a successful login.
func (s *Session) SetCredential(token string) {
	s.mu.Lock()
	s.creds.Set(token)
	s.mu.Unlock()
}

// IsAuthenticated reports whether a credential is currently held.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Present()
}

// Logout clears local state, tells the server to revoke the credential on a
// best-effort basis, and navigates away. It never fails: a dead server must
// not trap the user in a dead session.
func (s *Session) Logout() {
	s.mu.Lock()
	revoke := s.revoke
	s.creds.Clear()
	s.mu.Unlock()

	if revoke != nil {
		revoke()
	}
	s.log.Info().Msg("session ended")
	if s.navigate != nil {
		s.navigate()
	}
}

// Expire is the 401 path: clear and navigate without the revoke round trip.
func (s *Session) Expire() {
	s.mu.Lock()
	s.creds.Clear()
	s.mu.Unlock()

	s.log.Warn().Msg("session expired by server")
	if s.navigate != nil {
		s.navigate()
	}
}

func (s *Session) authHeader() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.creds.Present() {
		return "", false
	}
	h, attach := s.creds.Header()
	if !attach {
		// Cookie scheme: authenticated, nothing to attach.
		return "", true
	}
	return h, true
}
