package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct{ token string }

func (m *memStore) Load() string            { return m.token }
func (m *memStore) Save(token string) error { m.token = token; return nil }
func (m *memStore) Clear() error            { m.token = ""; return nil }

func newTestClient(t *testing.T, h http.Handler, token string, navigate func()) (*Client, *Session) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	sess := NewSession(NewBearerCredentials(&memStore{token: token}), navigate, zerolog.Nop())
	return New(srv.URL, sess, zerolog.Nop()), sess
}

func TestGetDecodesEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"success":true,"data":[1,2,3],"error":null}`))
	}), "tok", nil)

	env, err := c.Get(context.Background(), "/api/cameras")
	require.NoError(t, err)
	assert.True(t, env.Success)

	var got []int
	require.NoError(t, env.Decode(&got))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestApplicationFailurePassesThrough(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"data":null,"error":"name taken"}`))
	}), "tok", nil)

	env, err := c.Post(context.Background(), "/api/locations", map[string]string{"name": "x"})
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Equal(t, "name taken", env.ErrorOr("fallback"))
}

func TestUnauthorizedTerminatesSessionWithoutRetry(t *testing.T) {
	var hits int32
	navigated := false
	c, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}), "tok", func() { navigated = true })

	_, err := c.Get(context.Background(), "/api/users")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.False(t, sess.IsAuthenticated())
	assert.True(t, navigated)
}

func TestMissingCredentialFailsBeforeNetwork(t *testing.T) {
	var hits int32
	navigated := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}), "", func() { navigated = true })

	_, err := c.Get(context.Background(), "/api/cameras")
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
	assert.True(t, navigated)
}

func TestLoginStoresCredential(t *testing.T) {
	store := &memStore{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"token":"fresh"}`))
	}))
	t.Cleanup(srv.Close)

	sess := NewSession(NewBearerCredentials(store), nil, zerolog.Nop())
	c := New(srv.URL, sess, zerolog.Nop())

	token, err := c.Login(context.Background(), "admin", "pw")
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "fresh", store.token)
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	c, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}), "", nil)

	_, err := c.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.False(t, sess.IsAuthenticated())
}

func TestCookieSchemeAttachesNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"data":null,"error":null}`))
	}))
	t.Cleanup(srv.Close)

	sess := NewSession(NewCookieCredentials(func() bool { return true }), nil, zerolog.Nop())
	require.True(t, sess.IsAuthenticated())

	c := New(srv.URL, sess, zerolog.Nop())
	env, err := c.Get(context.Background(), "/api/cameras")
	require.NoError(t, err)
	assert.True(t, env.Success)
}
