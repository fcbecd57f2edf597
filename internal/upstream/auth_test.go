package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/credstore"
)

func TestLoginPayload_Normalize_TopLevelWins(t *testing.T) {
	p := loginPayload{
		Token:        "tok",
		RefreshToken: "refresh",
		Role:         domain.RoleAdmin,
		User: &struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
			Role     string `json:"role"`
		}{ID: 42, Username: "admin", Email: "admin@fix4home.vn", Role: domain.RoleCustomer},
	}

	creds := p.normalize()
	if creds.Profile == nil {
		t.Fatalf("expected profile")
	}
	if creds.Profile.Role != domain.RoleAdmin {
		t.Fatalf("top-level role must win, got %s", creds.Profile.Role)
	}
	if creds.Profile.ID != 42 || creds.Profile.Username != "admin" {
		t.Fatalf("nested values must fill the gaps: %+v", creds.Profile)
	}
}

func TestLoginPayload_Normalize_AccessTokenAlias(t *testing.T) {
	p := loginPayload{AccessToken: "alias-token"}
	if creds := p.normalize(); creds.Token != "alias-token" {
		t.Fatalf("accessToken must be accepted, got %q", creds.Token)
	}

	p = loginPayload{Token: "primary", AccessToken: "alias"}
	if creds := p.normalize(); creds.Token != "primary" {
		t.Fatalf("token field must be preferred, got %q", creds.Token)
	}
}

func TestAuthClient_Login_NestedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": {
				"accessToken": "tok-1",
				"refreshToken": "refresh-1",
				"tokenType": "Bearer",
				"expiresIn": 604800,
				"user": {"id": 42, "username": "admin", "email": "admin@fix4home.vn", "role": "ADMIN"}
			},
			"timestamp": "2025-06-01T00:00:00Z"
		}`))
	}))
	defer srv.Close()

	auth := NewAuthClient(NewClient(srv.URL, zerolog.Nop()))
	creds, err := auth.Login(context.Background(), credstore.NewMemoryStore(), "admin", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if creds.Token != "tok-1" || creds.ExpiresIn != 604800 {
		t.Fatalf("unexpected bundle: %+v", creds)
	}
	if creds.Profile == nil || creds.Profile.Role != domain.RoleAdmin {
		t.Fatalf("nested profile not resolved: %+v", creds.Profile)
	}
}
