package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/wholesale-portal/internal/auth"
)

func newSession(t *testing.T) *auth.SessionStore {
	t.Helper()
	return auth.NewSessionStore(auth.NewMemoryStorage())
}

func login(t *testing.T, s *auth.SessionStore, token string) {
	t.Helper()
	u := auth.User{ID: 1, Name: "Asha", Role: "admin"}
	require.NoError(t, s.Save(context.Background(), u, token))
}

func TestAttachesBearerToken(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)
	login(t, s, "tok-abc")

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, s)
	var out map[string]any
	require.NoError(t, c.Get(ctx, "/v1/stores", &out))
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestNoBearerWhenLoggedOut(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL, s).Get(ctx, "/healthz", nil))
	assert.Empty(t, gotAuth)
}

// A 401 anywhere ends the session: credentials are wiped and the
// unauthenticated hook fires, even though the caller never logs out.
func TestUnauthorizedClearsSessionAndSignals(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)
	login(t, s, "tok-abc")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	signaled := false
	c := New(srv.URL, s, WithUnauthenticatedHandler(func() { signaled = true }))

	err := c.Get(ctx, "/v1/stores", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid token", apiErr.Message)

	assert.True(t, signaled)
	assert.False(t, s.IsAuthenticated(ctx))
}

func TestErrorMessageExtraction(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"store code already exists"}`, "store code already exists"},
		{"message field", `{"message":"rate limit exceeded"}`, "rate limit exceeded"},
		{"unparseable body", `<html>boom</html>`, "request failed"},
		{"empty body", ``, "request failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := New(srv.URL, newSession(t)).Get(ctx, "/v1/stores", nil)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestTransportErrorIsNormalized(t *testing.T) {
	ctx := context.Background()
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := New(srv.URL, newSession(t)).Get(ctx, "/v1/stores", nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "request failed", apiErr.Message)
}

func TestLoginPopulatesSession(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"user": {"id": 7, "name": "Asha", "role": "admin", "store_id": 1},
			"access": {"token": "tok-7"},
			"refresh": {"token": "ref-7"},
			"dashboard": "/dashboard/admin"
		}`))
	}))
	defer srv.Close()

	dash, err := New(srv.URL, s).Login(ctx, "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/admin", dash)

	assert.True(t, s.IsAuthenticated(ctx))
	u, ok := s.ReadUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "1", u.StoreID)
	tok, _ := s.ReadToken(ctx)
	assert.Equal(t, "tok-7", tok)
}

func TestLogoutClearsSessionEvenWhenServerFails(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)
	login(t, s, "tok-abc")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL, s).Logout(ctx))
	assert.False(t, s.IsAuthenticated(ctx))
}
