package upstream

import (
	"context"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
)

// AuthClient wraps the upstream authentication endpoints.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginPayload accepts both response shapes the upstream is known to emit:
// the token under "token" or "accessToken", and the profile either nested
// under "user" or flattened at the top level.
type loginPayload struct {
	Token        string `json:"token"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`

	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`

	User *struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	} `json:"user"`
}

// normalize resolves the variant field names into the canonical bundle.
// Top-level profile fields win; nested values fill the gaps.
func (p loginPayload) normalize() *domain.Credentials {
	creds := &domain.Credentials{
		Token:        p.Token,
		RefreshToken: p.RefreshToken,
		TokenType:    p.TokenType,
		ExpiresIn:    p.ExpiresIn,
	}
	if creds.Token == "" {
		creds.Token = p.AccessToken
	}

	profile := domain.UserProfile{
		ID:       p.UserID,
		Username: p.Username,
		Email:    p.Email,
		Role:     p.Role,
	}
	if p.User != nil {
		if profile.ID == 0 {
			profile.ID = p.User.ID
		}
		if profile.Username == "" {
			profile.Username = p.User.Username
		}
		if profile.Email == "" {
			profile.Email = p.User.Email
		}
		if profile.Role == "" {
			profile.Role = p.User.Role
		}
	}
	if profile != (domain.UserProfile{}) {
		creds.Profile = &profile
	}
	return creds
}

// Login submits credentials to the upstream login endpoint and returns the
// normalized bundle. Nothing is persisted here; that is the session
// manager's job.
func (a *AuthClient) Login(ctx context.Context, store ports.CredentialStore, username, password string) (*domain.Credentials, error) {
	var payload loginPayload
	if err := a.c.post(ctx, store, "/auth/login", loginRequest{Username: username, Password: password}, &payload); err != nil {
		return nil, err
	}
	return payload.normalize(), nil
}

// Logout notifies the upstream logout endpoint. Callers treat the outcome
// as best-effort.
func (a *AuthClient) Logout(ctx context.Context, store ports.CredentialStore) error {
	return a.c.post(ctx, store, "/auth/logout", nil, nil)
}
