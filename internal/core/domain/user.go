package domain

const (
	RoleAdmin      = "ADMIN"
	RoleCustomer   = "CUSTOMER"
	RoleTechnician = "TECHNICIAN"
)

// UserProfile is the identity associated with one browser session. It is
// cached alongside the session credential and is derivable from the access
// token's claims when no cached copy exists.
type UserProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Complete reports whether all four required profile fields are present.
// Only complete profiles are cached back into the credential store.
func (p UserProfile) Complete() bool {
	return p.ID != 0 && p.Username != "" && p.Email != "" && p.Role != ""
}

// Credentials is the normalized bundle returned by a successful login,
// regardless of which variant field names the upstream API used.
type Credentials struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	TokenType    string       `json:"tokenType"`
	ExpiresIn    int64        `json:"expiresIn"`
	Profile      *UserProfile `json:"user,omitempty"`
}
