package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fix4home/admin-gateway/internal/api/metrics"
	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
	"github.com/fix4home/admin-gateway/internal/credstore"
)

type AuthHandler struct {
	sessions ports.SessionManager
}

func NewAuthHandler(sessions ports.SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates against the upstream API and establishes the session
// cookies. Only ADMIN users may enter; any other role is logged straight
// back out.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  domain.Credentials
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store := credstore.FromContext(c)
	creds, err := h.sessions.Login(c.Request().Context(), store, req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	user := creds.Profile
	if user == nil {
		user = h.sessions.CurrentUser(store)
	}
	if user == nil || user.Role != domain.RoleAdmin {
		// Clear what Login just persisted; no server-side logout call, the
		// upstream never granted admin access in the first place.
		store.DeleteAll(ports.SessionKeys...)
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return echo.NewHTTPError(http.StatusForbidden, "access denied: only ADMIN users can access this system")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, creds)
}

// Logout notifies the upstream best-effort and clears the session cookies
// unconditionally.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context(), credstore.FromContext(c))
	return c.NoContent(http.StatusNoContent)
}

// Me returns the profile of the current session, resolved locally from the
// cached profile or the token claims.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.UserProfile
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := h.sessions.CurrentUser(credstore.FromContext(c))
	if user == nil {
		return domain.ErrNotAuthenticated
	}
	return c.JSON(http.StatusOK, user)
}
