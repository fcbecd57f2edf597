package ports

import (
	"context"

	"github.com/fix4home/admin-gateway/internal/core/domain"
)

// AuthAPI is the upstream authentication surface. Login resolves the
// upstream's variant response shapes into the canonical credential bundle;
// the ambiguity never propagates past this boundary.
type AuthAPI interface {
	Login(ctx context.Context, store CredentialStore, username, password string) (*domain.Credentials, error)
	Logout(ctx context.Context, store CredentialStore) error
}
