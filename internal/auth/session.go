package auth

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// SessionLifetime is how long a login stays valid.  Fixed at 24 hours; a
// session past this age is torn down by the guards on the next navigation.
const SessionLifetime = 24 * time.Hour

// Storage keys for the session fields.  keyLegacyAuth is never written by
// the current login path but is still removed on logout so sessions created
// by older portal builds are cleaned up too.
const (
	keyToken          = "token"
	keyUserData       = "user_data"
	keyUserRole       = "user_role"
	keyLoginTimestamp = "login_timestamp"
	keyLegacyAuth     = "auth"
)

// User is the session-held user record.  StoreID is set only for
// store-scoped roles such as admin.
type User struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	StoreID string `json:"store_id,omitempty"`
}

// SessionStore reads and writes one client's session through an injected
// Storage.  Token and user are always written and cleared together; a
// session where only one of them survives is treated as unauthenticated.
// All reads fail closed: a missing key, a storage error or corrupt JSON all
// look like "absent" to callers, never like a panic.
type SessionStore struct {
	storage Storage
	now     func() time.Time
}

// NewSessionStore wraps storage.  The wall clock is taken from time.Now;
// tests override it with WithClock.
func NewSessionStore(storage Storage) *SessionStore {
	return &SessionStore{storage: storage, now: time.Now}
}

// WithClock returns a copy of the store using now as its clock.
func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	return &SessionStore{storage: s.storage, now: now}
}

// Save records a fresh login: token, serialized user, the user's role and
// the current time.  A session is never mutated in place; a role or token
// change always goes through a fresh Save.  On a storage failure the
// partial session is cleared so token and user cannot diverge, and the
// error is returned for the caller to log; the client simply stays
// unauthenticated.
func (s *SessionStore) Save(ctx context.Context, user User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	writes := []struct{ key, val string }{
		{keyToken, token},
		{keyUserData, string(raw)},
		{keyUserRole, user.Role},
		{keyLoginTimestamp, strconv.FormatInt(s.now().UnixMilli(), 10)},
	}
	for _, w := range writes {
		if err := s.storage.Set(ctx, w.key, w.val); err != nil {
			_ = s.Clear(ctx)
			return err
		}
	}
	return nil
}

// Clear removes every session key, including the legacy auth key.  It is
// idempotent: clearing an empty session is a no-op.
func (s *SessionStore) Clear(ctx context.Context) error {
	var first error
	for _, key := range []string{keyToken, keyUserData, keyUserRole, keyLoginTimestamp, keyLegacyAuth} {
		if err := s.storage.Remove(ctx, key); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ReadToken returns the stored token, or false when absent.
func (s *SessionStore) ReadToken(ctx context.Context) (string, bool) {
	v, ok, err := s.storage.Get(ctx, keyToken)
	if err != nil || !ok || v == "" {
		return "", false
	}
	return v, true
}

// ReadUser returns the deserialized user record.  Corrupt stored JSON is
// indistinguishable from an absent user.
func (s *SessionStore) ReadUser(ctx context.Context) (User, bool) {
	raw, ok, err := s.storage.Get(ctx, keyUserData)
	if err != nil || !ok || raw == "" {
		return User{}, false
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, false
	}
	return u, true
}

// ReadRole returns the stored role string, or false when absent.  The value
// is not validated against the known role set; unknown roles simply rank 0
// in every check downstream.
func (s *SessionStore) ReadRole(ctx context.Context) (Role, bool) {
	v, ok, err := s.storage.Get(ctx, keyUserRole)
	if err != nil || !ok || v == "" {
		return "", false
	}
	return Role(v), true
}

// IsAuthenticated reports whether both token and user are present.  This is
// a structural check only; it says nothing about whether the backend still
// honors the token.
func (s *SessionStore) IsAuthenticated(ctx context.Context) bool {
	if _, ok := s.ReadToken(ctx); !ok {
		return false
	}
	_, ok := s.ReadUser(ctx)
	return ok
}

// IsExpired reports whether the session is past its lifetime.  An absent or
// unparseable login timestamp counts as expired.
func (s *SessionStore) IsExpired(ctx context.Context) bool {
	raw, ok, err := s.storage.Get(ctx, keyLoginTimestamp)
	if err != nil || !ok {
		return true
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return true
	}
	return s.now().UnixMilli()-ms > SessionLifetime.Milliseconds()
}

// Refresh rewrites the login timestamp to now, extending the session.  It
// refuses to touch anything unless the session is currently authenticated
// and unexpired.
func (s *SessionStore) Refresh(ctx context.Context) bool {
	if !s.IsAuthenticated(ctx) || s.IsExpired(ctx) {
		return false
	}
	err := s.storage.Set(ctx, keyLoginTimestamp, strconv.FormatInt(s.now().UnixMilli(), 10))
	return err == nil
}
