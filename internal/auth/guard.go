package auth

import (
	"context"
	"strings"
)

// LoginPath is where unauthenticated or expired sessions are sent.
const LoginPath = "/login"

// expiredLoginPath carries a flag so the login screen can show a
// "session expired" notice instead of a plain login form.
const expiredLoginPath = LoginPath + "?expired=1"

// Decision is the outcome of a guard evaluation: either render the
// protected subtree or redirect elsewhere.  Guards never return errors;
// every indeterminate state collapses into a redirect to login.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision               { return Decision{Allow: true} }
func redirect(path string) Decision { return Decision{RedirectTo: path} }

// CheckAuthenticated is the generic authentication guard, evaluated on
// every navigation into a protected subtree.  An expired session is torn
// down before the redirect so stale credentials do not linger in storage.
func CheckAuthenticated(ctx context.Context, s *SessionStore) Decision {
	if !s.IsAuthenticated(ctx) {
		return redirect(LoginPath)
	}
	if s.IsExpired(ctx) {
		_ = s.Clear(ctx)
		return redirect(expiredLoginPath)
	}
	return allow()
}

// CheckRole gates a dashboard section on a specific role.  Super admin is
// allowed through regardless of the required role; any other mismatch sends
// the user to their own dashboard rather than an error page.
func CheckRole(ctx context.Context, s *SessionStore, required Role) Decision {
	if !s.IsAuthenticated(ctx) {
		return redirect(LoginPath)
	}
	current, ok := s.ReadRole(ctx)
	if !ok {
		return redirect(LoginPath)
	}
	if current == RoleSuperAdmin {
		return allow()
	}
	if !HasRole(current, required) {
		return redirect(current.DashboardPath())
	}
	return allow()
}

// CheckLanding re-derives the canonical dashboard path for the current role
// and bounces the client there when the current path does not live under
// it.  Unlike CheckRole this check does not exempt super admin: a super
// admin browsing under another role's path is still redirected to their own
// dashboard.  That mismatch is long-standing observed behavior the rest of
// the portal is built around, so it stays.
func CheckLanding(ctx context.Context, s *SessionStore, currentPath string) Decision {
	if !s.IsAuthenticated(ctx) {
		return redirect(LoginPath)
	}
	role, ok := s.ReadRole(ctx)
	if !ok {
		return redirect(LoginPath)
	}
	canonical := role.DashboardPath()
	if !strings.HasPrefix(currentPath, canonical) {
		return redirect(canonical)
	}
	return allow()
}
