package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
	"github.com/fix4home/admin-gateway/internal/credstore"
)

type stubAuthAPI struct {
	creds      *domain.Credentials
	loginErr   error
	logoutErr  error
	loginCalls int
}

func (s *stubAuthAPI) Login(_ context.Context, _ ports.CredentialStore, _, _ string) (*domain.Credentials, error) {
	s.loginCalls++
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.creds, nil
}

func (s *stubAuthAPI) Logout(_ context.Context, _ ports.CredentialStore) error {
	return s.logoutErr
}

func adminCreds(expiresIn int64) *domain.Credentials {
	return &domain.Credentials{
		Token:        "header.payload.signature",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
		Profile: &domain.UserProfile{
			ID:       42,
			Username: "admin",
			Email:    "admin@fix4home.vn",
			Role:     domain.RoleAdmin,
		},
	}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestCookieLifetimeDays(t *testing.T) {
	cases := []struct {
		expiresIn int64
		want      int
	}{
		{86400, 1},
		{604800, 7},
		{0, 7},
		{-5, 7},
		{90000, 2},
		{1, 1},
	}
	for _, tc := range cases {
		if got := cookieLifetimeDays(tc.expiresIn); got != tc.want {
			t.Fatalf("cookieLifetimeDays(%d) = %d, want %d", tc.expiresIn, got, tc.want)
		}
	}
}

func TestSessionService_Login_PersistsBeforeReturning(t *testing.T) {
	auth := &stubAuthAPI{creds: adminCreds(86400)}
	svc := NewSessionService(auth, zerolog.Nop())
	store := credstore.NewMemoryStore()

	creds, err := svc.Login(context.Background(), store, "admin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if creds.Token != "header.payload.signature" {
		t.Fatalf("unexpected token: %s", creds.Token)
	}

	if token, ok := store.Get(ports.KeyToken); !ok || token != creds.Token {
		t.Fatalf("token not persisted: %q", token)
	}
	if refresh, ok := store.Get(ports.KeyRefreshToken); !ok || refresh != "refresh-1" {
		t.Fatalf("refresh token not persisted: %q", refresh)
	}
	var profile domain.UserProfile
	if !store.GetJSON(ports.KeyUserInfo, &profile) {
		t.Fatalf("profile not cached")
	}
	if profile.Role != domain.RoleAdmin {
		t.Fatalf("unexpected cached role: %s", profile.Role)
	}
}

func TestSessionService_Login_EmptyFields(t *testing.T) {
	auth := &stubAuthAPI{creds: adminCreds(0)}
	svc := NewSessionService(auth, zerolog.Nop())
	store := credstore.NewMemoryStore()

	if _, err := svc.Login(context.Background(), store, "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), store, "admin", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if auth.loginCalls != 0 {
		t.Fatalf("login must not be submitted with empty fields")
	}
}

func TestSessionService_Login_NoTokenInResponse(t *testing.T) {
	// Upstream responded, but with neither "token" nor "accessToken".
	auth := &stubAuthAPI{creds: &domain.Credentials{
		RefreshToken: "refresh-1",
		ExpiresIn:    86400,
		Profile:      &domain.UserProfile{ID: 42, Username: "admin", Email: "admin@fix4home.vn", Role: domain.RoleAdmin},
	}}
	svc := NewSessionService(auth, zerolog.Nop())
	store := credstore.NewMemoryStore()

	if _, err := svc.Login(context.Background(), store, "admin", "pass"); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	for _, name := range ports.SessionKeys {
		if _, ok := store.Get(name); ok {
			t.Fatalf("no session may be established without a token, found %s", name)
		}
	}
}

func TestSessionService_Login_TransportErrorLeavesStoreUntouched(t *testing.T) {
	auth := &stubAuthAPI{loginErr: domain.ErrUpstreamUnreachable}
	svc := NewSessionService(auth, zerolog.Nop())
	store := credstore.NewMemoryStore()

	if _, err := svc.Login(context.Background(), store, "admin", "pass"); !errors.Is(err, domain.ErrUpstreamUnreachable) {
		t.Fatalf("expected transport error to propagate, got %v", err)
	}
	for _, name := range ports.SessionKeys {
		if _, ok := store.Get(name); ok {
			t.Fatalf("no partial state may be committed on failure, found %s", name)
		}
	}
}

func TestSessionService_Logout_AlwaysClears(t *testing.T) {
	auth := &stubAuthAPI{logoutErr: errors.New("upstream exploded")}
	svc := NewSessionService(auth, zerolog.Nop())
	store := credstore.NewMemoryStore()
	store.Set(ports.KeyToken, "t", 7)
	store.Set(ports.KeyRefreshToken, "r", 30)
	store.Set(ports.KeyUserInfo, "{}", 7)

	svc.Logout(context.Background(), store)

	for _, name := range ports.SessionKeys {
		if _, ok := store.Get(name); ok {
			t.Fatalf("%s must be cleared even when the notification fails", name)
		}
	}
}

func TestSessionService_CurrentUser_CachedProfileWins(t *testing.T) {
	svc := NewSessionService(&stubAuthAPI{}, zerolog.Nop())
	store := credstore.NewMemoryStore()

	token := signToken(t, jwt.MapClaims{
		"userId": 7, "username": "tech", "email": "tech@fix4home.vn", "role": domain.RoleTechnician,
	})
	store.Set(ports.KeyToken, token, 7)
	cached := domain.UserProfile{ID: 42, Username: "admin", Email: "admin@fix4home.vn", Role: domain.RoleAdmin}
	if err := store.SetJSON(ports.KeyUserInfo, cached, 7); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	got := svc.CurrentUser(store)
	if got == nil || got.Role != domain.RoleAdmin || got.ID != 42 {
		t.Fatalf("cached profile must be authoritative, got %+v", got)
	}
}

func TestSessionService_CurrentUser_DecodesAndCaches(t *testing.T) {
	svc := NewSessionService(&stubAuthAPI{}, zerolog.Nop())
	store := credstore.NewMemoryStore()

	token := signToken(t, jwt.MapClaims{
		"userId": 42, "username": "admin", "email": "admin@fix4home.vn", "role": domain.RoleAdmin,
	})
	store.Set(ports.KeyToken, token, 7)

	got := svc.CurrentUser(store)
	if got == nil {
		t.Fatalf("expected decoded profile")
	}
	if got.ID != 42 || got.Username != "admin" || got.Role != domain.RoleAdmin {
		t.Fatalf("unexpected profile: %+v", got)
	}

	var cachedBack domain.UserProfile
	if !store.GetJSON(ports.KeyUserInfo, &cachedBack) {
		t.Fatalf("decoded profile must be cached back")
	}

	// Repeated calls with unchanged storage return an identical profile.
	again := svc.CurrentUser(store)
	if again == nil || *again != *got {
		t.Fatalf("CurrentUser must be idempotent: %+v vs %+v", again, got)
	}
}

func TestSessionService_CurrentUser_SubClaimFallback(t *testing.T) {
	svc := NewSessionService(&stubAuthAPI{}, zerolog.Nop())
	store := credstore.NewMemoryStore()

	token := signToken(t, jwt.MapClaims{
		"sub": "42", "username": "admin", "email": "admin@fix4home.vn", "role": domain.RoleAdmin,
	})
	store.Set(ports.KeyToken, token, 7)

	got := svc.CurrentUser(store)
	if got == nil || got.ID != 42 {
		t.Fatalf("sub claim must map onto the identifier, got %+v", got)
	}
}

func TestSessionService_CurrentUser_Absent(t *testing.T) {
	svc := NewSessionService(&stubAuthAPI{}, zerolog.Nop())

	// No token at all.
	if got := svc.CurrentUser(credstore.NewMemoryStore()); got != nil {
		t.Fatalf("expected nil without a token, got %+v", got)
	}

	// Malformed middle segment: absent, never an error.
	store := credstore.NewMemoryStore()
	store.Set(ports.KeyToken, "aaaa.!!!not-base64url!!!.bbbb", 7)
	if got := svc.CurrentUser(store); got != nil {
		t.Fatalf("malformed token must yield nil, got %+v", got)
	}

	// Not a JWT shape at all.
	store.Set(ports.KeyToken, "opaque-token", 7)
	if got := svc.CurrentUser(store); got != nil {
		t.Fatalf("non-JWT token must yield nil, got %+v", got)
	}
}
