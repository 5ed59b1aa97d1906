package api

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSessionRestoresPersistedCredential(t *testing.T) {
	sess := NewSession(NewBearerCredentials(&memStore{token: "persisted"}), nil, zerolog.Nop())
	assert.True(t, sess.IsAuthenticated())

	empty := NewSession(NewBearerCredentials(&memStore{}), nil, zerolog.Nop())
	assert.False(t, empty.IsAuthenticated())
}

func TestSetCredentialPersists(t *testing.T) {
	store := &memStore{}
	sess := NewSession(NewBearerCredentials(store), nil, zerolog.Nop())

	sess.SetCredential("abc")
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "abc", store.token)
}

func TestLogoutClearsRevokesAndNavigates(t *testing.T) {
	store := &memStore{token: "tok"}
	navigations := 0
	revoked := false

	sess := NewSession(NewBearerCredentials(store), func() { navigations++ }, zerolog.Nop())
	sess.SetRevoker(func() { revoked = true })

	sess.Logout()
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, store.token)
	assert.True(t, revoked)
	assert.Equal(t, 1, navigations)
}

func TestLogoutWithoutRevokerOrNavigatorIsSafe(t *testing.T) {
	sess := NewSession(NewBearerCredentials(&memStore{token: "tok"}), nil, zerolog.Nop())
	sess.Logout() // must not panic
	assert.False(t, sess.IsAuthenticated())
}

func TestExpireSkipsRevoke(t *testing.T) {
	revoked := false
	navigated := false
	sess := NewSession(NewBearerCredentials(&memStore{token: "tok"}), func() { navigated = true }, zerolog.Nop())
	sess.SetRevoker(func() { revoked = true })

	sess.Expire()
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, revoked)
	assert.True(t, navigated)
}

func TestCookieCredentialsProbe(t *testing.T) {
	authed := NewCookieCredentials(func() bool { return true })
	assert.True(t, authed.Restore())
	assert.True(t, authed.Present())

	anon := NewCookieCredentials(func() bool { return false })
	assert.False(t, anon.Restore())
	assert.False(t, anon.Present())

	anon.Set("cookie")
	assert.True(t, anon.Present())
	anon.Clear()
	assert.False(t, anon.Present())
}
