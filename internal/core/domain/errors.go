package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when a login is attempted with an
	// empty username or password. The request is never sent upstream.
	ErrInvalidCredentials = errors.New("username and password are required")

	// ErrNotAuthenticated is returned by operations that refuse to run
	// without a stored access token (e.g. image upload).
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired signals that the upstream API rejected the stored
	// credential. The transport has already cleared the session when this
	// error is returned.
	ErrSessionExpired = errors.New("session expired")

	// ErrUpstreamUnreachable signals a transport-level failure with no
	// response at all. It never clears session state.
	ErrUpstreamUnreachable = errors.New("cannot reach server")

	// ErrAccessDenied is returned when a resolved profile lacks the
	// elevated role required for the admin area.
	ErrAccessDenied = errors.New("access denied")

	// ErrMissingToken is returned when a login response carried no access
	// token under either accepted field name. No session is established.
	ErrMissingToken = errors.New("login response contained no access token")
)

// UpstreamError carries a non-auth failure response from the remote API:
// its HTTP status and the envelope message verbatim when one was present.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream request failed with status %d", e.Status)
}
