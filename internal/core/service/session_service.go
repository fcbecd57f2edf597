package service

import (
	"context"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
)

const (
	secondsPerDay = 86400

	// defaultSessionDays applies when the upstream omits expiresIn, and to
	// profiles cached lazily from a token decode.
	defaultSessionDays = 7

	// refreshTokenDays is fixed, independent of the access token expiry.
	// The refresh token is stored but never exchanged by the gateway.
	refreshTokenDays = 30
)

// SessionService implements the login/logout protocol and current-user
// resolution on top of the upstream auth endpoints and a per-session
// credential store.
type SessionService struct {
	auth ports.AuthAPI
	log  zerolog.Logger
}

func NewSessionService(auth ports.AuthAPI, log zerolog.Logger) *SessionService {
	return &SessionService{auth: auth, log: log}
}

// cookieLifetimeDays converts the server-supplied expiry in seconds to a
// cookie lifetime in days: ceil(expiresIn/86400), minimum 1 day, default 7
// when the server omits the value.
func cookieLifetimeDays(expiresIn int64) int {
	if expiresIn <= 0 {
		return defaultSessionDays
	}
	days := int((expiresIn + secondsPerDay - 1) / secondsPerDay)
	if days < 1 {
		days = 1
	}
	return days
}

func (s *SessionService) Login(ctx context.Context, store ports.CredentialStore, username, password string) (*domain.Credentials, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	creds, err := s.auth.Login(ctx, store, username, password)
	if err != nil {
		return nil, err
	}
	if creds.Token == "" {
		// A stored token is the proof a credential was issued; never
		// persist an empty one.
		return nil, domain.ErrMissingToken
	}

	days := cookieLifetimeDays(creds.ExpiresIn)
	store.Set(ports.KeyToken, creds.Token, days)
	store.Set(ports.KeyRefreshToken, creds.RefreshToken, refreshTokenDays)
	if creds.Profile != nil && creds.Profile.Complete() {
		if err := store.SetJSON(ports.KeyUserInfo, creds.Profile, days); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Str("username", username).
		Int("cookie_days", days).
		Msg("session established")
	return creds, nil
}

func (s *SessionService) Logout(ctx context.Context, store ports.CredentialStore) {
	if err := s.auth.Logout(ctx, store); err != nil {
		// Best-effort notification; local clearing happens regardless.
		s.log.Warn().Err(err).Msg("logout notification failed")
	}
	store.DeleteAll(ports.SessionKeys...)
}

func (s *SessionService) CurrentUser(store ports.CredentialStore) *domain.UserProfile {
	var cached domain.UserProfile
	if store.GetJSON(ports.KeyUserInfo, &cached) {
		return &cached
	}

	token, ok := store.Get(ports.KeyToken)
	if !ok {
		return nil
	}

	// Unverified decode of the claims segment. This is a display and gating
	// convenience only; the upstream re-validates the token on every real
	// request.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	profile := profileFromClaims(claims)
	if profile.Complete() {
		if err := store.SetJSON(ports.KeyUserInfo, profile, defaultSessionDays); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache decoded profile")
		}
	}
	return &profile
}

// profileFromClaims maps known claim names onto the profile shape. The user
// identifier may appear under "userId" or the standard "sub" claim.
func profileFromClaims(claims jwt.MapClaims) domain.UserProfile {
	profile := domain.UserProfile{
		ID:       claimID(claims, "userId"),
		Username: claimString(claims, "username"),
		Email:    claimString(claims, "email"),
		Role:     claimString(claims, "role"),
	}
	if profile.ID == 0 {
		profile.ID = claimID(claims, "sub")
	}
	return profile
}

func claimString(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)
	return v
}

func claimID(claims jwt.MapClaims, name string) int64 {
	switch v := claims[name].(type) {
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
