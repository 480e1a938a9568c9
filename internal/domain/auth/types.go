package auth

// Package auth contains domain-level types for the upstream session.
// It is pure and free of framework/adapter concerns.

// Role represents an application authorization role as carried in the
// upstream access token's role claim.
type Role = string

const (
	RoleAdministrator Role = "Administrator"
	RoleEmployee      Role = "Employee"
)

// SessionUser is the projection of token claims retained for display.
// It is recomputed from the access token whenever a new one is adopted.
type SessionUser struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	ProfileID string   `json:"profileId,omitempty"`
	Roles     []string `json:"roles"`
}

// HasRole reports whether the user carries the given role.
func (u *SessionUser) HasRole(role Role) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the aggregate auth state for the process: the current token
// pair plus the user projection. The refresh token is paired 1:1 with the
// access token that produced it; they are always replaced together.
type Session struct {
	Token        string
	RefreshToken string
	User         *SessionUser
}

// Authenticated reports whether the session is usable: both an access
// token and a user projection are present. A session holding only a
// refresh token is a transient "needs refresh" state and is never
// exposed as authenticated.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}
