package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
	"github.com/fix4home/admin-gateway/internal/credstore"
)

// Guard gates entry to the protected admin area on every request: a token
// must be stored, the profile must resolve, and the role must be ADMIN.
// Denial redirects to loginPath; the denied destination is discarded.
//
// The guard makes no network call. A locally valid but server-side revoked
// token passes here and is caught reactively by the transport on the next
// upstream call.
func Guard(sessions ports.SessionManager, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store := credstore.FromContext(c)

			if _, ok := store.Get(ports.KeyToken); !ok {
				return c.Redirect(http.StatusFound, loginPath)
			}

			user := sessions.CurrentUser(store)
			if user == nil || user.Role != domain.RoleAdmin {
				return c.Redirect(http.StatusFound, loginPath)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
