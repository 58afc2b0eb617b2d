package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SessionStore, *MemoryStorage, *time.Time) {
	t.Helper()
	mem := NewMemoryStorage()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	clock := &now
	s := NewSessionStore(mem).WithClock(func() time.Time { return *clock })
	return s, mem, clock
}

func TestIsAuthenticatedPresenceMatrix(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name       string
		token, usr bool
		want       bool
	}{
		{"both absent", false, false, false},
		{"token only", true, false, false},
		{"user only", false, true, false},
		{"both present", true, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, mem, _ := newTestStore(t)
			if tc.token {
				require.NoError(t, mem.Set(ctx, "token", "tok-1"))
			}
			if tc.usr {
				require.NoError(t, mem.Set(ctx, "user_data", `{"id":1,"name":"a","role":"user"}`))
			}
			assert.Equal(t, tc.want, s.IsAuthenticated(ctx))
		})
	}
}

func TestCorruptUserDataFailsClosed(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)
	require.NoError(t, mem.Set(ctx, "token", "tok-1"))
	require.NoError(t, mem.Set(ctx, "user_data", "{not json"))

	_, ok := s.ReadUser(ctx)
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated(ctx))
}

func TestIsExpired(t *testing.T) {
	ctx := context.Background()
	s, _, clock := newTestStore(t)

	// Absent timestamp defaults to expired.
	assert.True(t, s.IsExpired(ctx))

	require.NoError(t, s.Save(ctx, User{ID: 1, Name: "a", Role: "user"}, "tok-1"))
	assert.False(t, s.IsExpired(ctx))

	// One millisecond short of the lifetime is still valid.
	*clock = clock.Add(SessionLifetime - time.Millisecond)
	assert.False(t, s.IsExpired(ctx))

	// Exactly the lifetime is still valid; strictly greater expires.
	*clock = clock.Add(time.Millisecond)
	assert.False(t, s.IsExpired(ctx))
	*clock = clock.Add(time.Millisecond)
	assert.True(t, s.IsExpired(ctx))
}

func TestSaveWritesAllFields(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)
	require.NoError(t, s.Save(ctx, User{ID: 7, Name: "Asha", Role: "admin", StoreID: "S1"}, "tok-7"))

	tok, ok := s.ReadToken(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok-7", tok)

	u, ok := s.ReadUser(ctx)
	require.True(t, ok)
	assert.Equal(t, uint64(7), u.ID)
	assert.Equal(t, "S1", u.StoreID)

	role, ok := s.ReadRole(ctx)
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	raw, ok, err := mem.Get(ctx, "login_timestamp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1787918400000", raw)
}

func TestClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newTestStore(t)
	require.NoError(t, s.Save(ctx, User{ID: 1, Name: "a", Role: "user"}, "tok-1"))
	require.NoError(t, mem.Set(ctx, "auth", "legacy-blob"))

	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.IsAuthenticated(ctx))
	_, ok, err := mem.Get(ctx, "auth")
	require.NoError(t, err)
	assert.False(t, ok, "legacy auth key removed on logout")

	// Clearing an already-empty session is a no-op, not an error.
	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.IsAuthenticated(ctx))
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	s, _, clock := newTestStore(t)

	// Nothing to refresh before login.
	assert.False(t, s.Refresh(ctx))

	require.NoError(t, s.Save(ctx, User{ID: 1, Name: "a", Role: "user"}, "tok-1"))
	*clock = clock.Add(23 * time.Hour)
	assert.True(t, s.Refresh(ctx))

	// The rewrite moved the window forward: another 23 hours is fine now.
	*clock = clock.Add(23 * time.Hour)
	assert.False(t, s.IsExpired(ctx))

	// Once expired, refresh fails without mutating the timestamp.
	*clock = clock.Add(2 * time.Hour)
	assert.False(t, s.Refresh(ctx))
	assert.True(t, s.IsExpired(ctx))
}

// failingStorage errors on every write to exercise the save failure path.
type failingStorage struct{ *MemoryStorage }

func (f failingStorage) Set(ctx context.Context, key, value string) error {
	return errors.New("quota exceeded")
}

func TestSaveFailureLeavesNoPartialSession(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(failingStorage{NewMemoryStorage()})
	err := s.Save(ctx, User{ID: 1, Name: "a", Role: "user"}, "tok-1")
	assert.Error(t, err)
	assert.False(t, s.IsAuthenticated(ctx))
}
