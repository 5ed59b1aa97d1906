// Package api holds the HTTP client and session manager every resource
// operation funnels through.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/CARMI-Logistics/sarv-cli/pkg/models"
)

// Client issues authenticated requests against the SARV backend and decodes
// the uniform {success, data, error} envelope. Application-level failures
// (success:false) pass through to the caller; a 401 from any endpoint
// terminates the session.
type Client struct {
	HTTP    *resty.Client
	session *Session
	log     zerolog.Logger
}

// New builds a client bound to baseURL. The cookie jar keeps the
// server-cookie credential scheme working without the client knowing about
// it; logout revocation is wired onto the session here.
func New(baseURL string, session *Session, log zerolog.Logger) *Client {
	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")
	jar, _ := cookiejar.New(nil)
	r.SetCookieJar(jar)

	c := &Client{HTTP: r, session: session, log: log}
	session.SetRevoker(func() {
		// Best effort: a failed revoke must not block logout.
		_, _ = r.R().Post("/auth/logout")
	})
	return c
}

// Get issues GET path and decodes the envelope.
func (c *Client) Get(ctx context.Context, path string) (*models.Envelope, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues POST path with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*models.Envelope, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues PUT path with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*models.Envelope, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete issues DELETE path.
func (c *Client) Delete(ctx context.Context, path string) (*models.Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*models.Envelope, error) {
	header, ok := c.session.authHeader()
	if !ok {
		// No credential at all: terminate before any network I/O.
		c.session.Expire()
		return nil, ErrNoCredential
	}

	req := c.HTTP.R().SetContext(ctx)
	req.SetHeader("X-Request-ID", uuid.NewString())
	if header != "" {
		req.SetHeader("Authorization", header)
	}
	if body != nil {
		req.SetBody(body)
	}

	var env models.Envelope
	req.SetResult(&env)
	req.SetError(&env)
	// The backend always speaks JSON, whatever content type a proxy in
	// between may claim.
	req.ForceContentType("application/json")

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		c.session.Expire()
		return nil, ErrSessionExpired
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Bool("success", env.Success).
		Msg("api call")

	return &env, nil
}

type loginResponse struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// Login authenticates with username/password. On success the credential is
// stored on the session and returned; otherwise the server-provided message
// comes back as the error.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out loginResponse
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&out).
		SetError(&out).
		ForceContentType("application/json").
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.IsError() || out.Token == "" {
		if out.Error != "" {
			return "", fmt.Errorf("login: %s", out.Error)
		}
		return "", fmt.Errorf("login failed: %s", resp.Status())
	}

	c.session.SetCredential(out.Token)
	return out.Token, nil
}
