package ports

// Stored entry names. The three session values always travel together:
// cleared as a unit on logout and on any authentication failure.
const (
	KeyToken        = "token"
	KeyRefreshToken = "refreshToken"
	KeyUserInfo     = "userInfo"
)

// SessionKeys lists every session-related entry, in clearing order.
var SessionKeys = []string{KeyToken, KeyRefreshToken, KeyUserInfo}

// CredentialStore is per-session expiring storage for the access token,
// refresh token, and cached user profile. Implementations are scoped to one
// browser session (cookies on an HTTP exchange) or one test (in-memory).
//
// Get makes no distinction between "expired" and "never set": both are
// reported as absent.
type CredentialStore interface {
	// Set stores value under name, expiring after days (minimum 1 day
	// enforced). An existing value of the same name is overwritten.
	Set(name, value string, days int)

	// SetJSON serializes v and stores it under name. A serialization
	// failure surfaces to the caller; nothing is stored in that case.
	SetJSON(name string, v any, days int) error

	// Get returns the stored value and true if present and unexpired.
	Get(name string) (string, bool)

	// GetJSON deserializes the stored value into out and returns true.
	// Missing values and malformed content both report false.
	GetJSON(name string, out any) bool

	// Delete removes a stored value immediately, expired or not.
	Delete(name string)

	// DeleteAll removes every named value immediately.
	DeleteAll(names ...string)
}
