package ports

import (
	"context"

	"github.com/fix4home/admin-gateway/internal/core/domain"
)

// SessionManager drives the login/logout protocol and current-user
// resolution against a per-session credential store.
type SessionManager interface {
	// Login submits credentials upstream, normalizes the variant response
	// shapes into one canonical bundle, and persists the session before
	// returning. Transport failures propagate unmodified and leave the
	// store untouched.
	Login(ctx context.Context, store CredentialStore, username, password string) (*domain.Credentials, error)

	// Logout notifies the upstream logout endpoint best-effort and then
	// unconditionally clears every session-related stored value.
	Logout(ctx context.Context, store CredentialStore)

	// CurrentUser resolves the session's profile: cached copy first, then
	// a decode of the access token's claims. Returns nil when no session
	// exists or decoding fails for any reason.
	CurrentUser(store CredentialStore) *domain.UserProfile
}
