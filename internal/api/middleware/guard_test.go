package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
)

type stubSessionManager struct {
	currentUserFn func(store ports.CredentialStore) *domain.UserProfile
}

func (s *stubSessionManager) Login(ctx context.Context, store ports.CredentialStore, username, password string) (*domain.Credentials, error) {
	panic("not used")
}

func (s *stubSessionManager) Logout(ctx context.Context, store ports.CredentialStore) {}

func (s *stubSessionManager) CurrentUser(store ports.CredentialStore) *domain.UserProfile {
	if s.currentUserFn == nil {
		return nil
	}
	return s.currentUserFn(store)
}

func newGuardContext(t *testing.T, token string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/articles", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGuard_RedirectsWithoutToken(t *testing.T) {
	c, rec := newGuardContext(t, "")
	sessions := &stubSessionManager{
		currentUserFn: func(store ports.CredentialStore) *domain.UserProfile {
			t.Fatalf("profile should not be resolved without a token")
			return nil
		},
	}

	handler := Guard(sessions, "/login")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestGuard_RedirectsWhenProfileUnresolvable(t *testing.T) {
	c, rec := newGuardContext(t, "some-token")
	sessions := &stubSessionManager{
		currentUserFn: func(store ports.CredentialStore) *domain.UserProfile { return nil },
	}

	handler := Guard(sessions, "/login")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestGuard_RedirectsNonAdmin(t *testing.T) {
	c, rec := newGuardContext(t, "some-token")
	sessions := &stubSessionManager{
		currentUserFn: func(store ports.CredentialStore) *domain.UserProfile {
			return &domain.UserProfile{ID: 7, Username: "carol", Role: domain.RoleCustomer}
		},
	}

	handler := Guard(sessions, "/login")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestGuard_AllowsAdmin(t *testing.T) {
	c, rec := newGuardContext(t, "some-token")
	sessions := &stubSessionManager{
		currentUserFn: func(store ports.CredentialStore) *domain.UserProfile {
			return &domain.UserProfile{ID: 1, Username: "alice", Role: domain.RoleAdmin}
		},
	}

	called := false
	handler := Guard(sessions, "/login")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	user, ok := c.Get("user").(*domain.UserProfile)
	if !ok || user.Username != "alice" {
		t.Fatalf("expected admin profile in context, got %+v", c.Get("user"))
	}
}
