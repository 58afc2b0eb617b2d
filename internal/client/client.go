// Package client is a thin wrapper over the portal REST API. It attaches
// the session's bearer token to every request, normalizes failures into a
// single error shape, and on any 401 wipes the stored credentials and
// fires the unauthenticated hook so the application shell can navigate to
// login. The wrapper never decides navigation itself; it only signals.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/iliyamo/wholesale-portal/internal/auth"
)

// APIError is the normalized failure returned for any non-2xx response.
// Message is taken from the backend payload when one is present, else a
// generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

const genericErrorMessage = "request failed"

// Client issues authenticated requests against the portal API. Each call
// is a single attempt; there is no retry, queuing or batching.
type Client struct {
	base    string
	http    *http.Client
	session *auth.SessionStore

	// onUnauthenticated fires after a 401 has wiped the session. The
	// subscriber (usually the application shell) decides what navigation
	// follows; nil means no subscriber.
	onUnauthenticated func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUnauthenticatedHandler subscribes fn to forced-logout events.
func WithUnauthenticatedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthenticated = fn }
}

// New builds a Client for the given base URL and session store.
func New(base string, session *auth.SessionStore, opts ...Option) *Client {
	c := &Client{
		base:    strings.TrimRight(base, "/"),
		http:    http.DefaultClient,
		session: session,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Do issues one request. body is JSON-encoded when non-nil; a 2xx response
// is decoded into out when out is non-nil. Any rejection (transport error
// or non-2xx status) surfaces as a normalized error; a 401 additionally
// clears the session and fires the unauthenticated hook.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := c.session.ReadToken(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: genericErrorMessage}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		// Fatal to the session, not just the call: wipe credentials and
		// let the shell take over. The caller's flow is aborted either way.
		_ = c.session.Clear(ctx)
		if c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return &APIError{Status: resp.StatusCode, Message: extractMessage(resp.Body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(resp.Body)}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: genericErrorMessage}
		}
	}
	return nil
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// loginResponse mirrors the auth endpoint's payload shape.
type loginResponse struct {
	User struct {
		ID      uint64 `json:"id"`
		Name    string `json:"name"`
		Role    string `json:"role"`
		StoreID uint64 `json:"store_id"`
	} `json:"user"`
	Access struct {
		Token string `json:"token"`
	} `json:"access"`
	Dashboard string `json:"dashboard"`
}

// Login authenticates against the portal and populates the session store
// with the returned user and token, so subsequent calls carry the bearer.
// It returns the role's dashboard path for post-login navigation.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.Post(ctx, "/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	su := auth.User{ID: resp.User.ID, Name: resp.User.Name, Role: resp.User.Role}
	if resp.User.StoreID != 0 {
		su.StoreID = fmt.Sprintf("%d", resp.User.StoreID)
	}
	if err := c.session.Save(ctx, su, resp.Access.Token); err != nil {
		// Storage failure leaves the client unauthenticated; the login
		// itself succeeded, so report the storage problem distinctly.
		return "", fmt.Errorf("save session: %w", err)
	}
	return resp.Dashboard, nil
}

// Logout clears the local session. Best effort: the server-side logout
// endpoint is invoked first, but local teardown happens regardless.
func (c *Client) Logout(ctx context.Context) error {
	_ = c.Do(ctx, http.MethodPost, "/v1/auth/logout", nil, nil)
	return c.session.Clear(ctx)
}

// extractMessage pulls a human-readable message out of an error payload.
// Both {"error": "..."} and {"message": "..."} shapes are accepted; any
// other body yields the generic fallback.
func extractMessage(r io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return genericErrorMessage
}
