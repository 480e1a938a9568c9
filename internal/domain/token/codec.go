// Package token decodes upstream access tokens and answers expiry queries.
//
// Decoding is deliberately unverified: the gateway never checks token
// signatures. Claims are trusted only for display and expiry scheduling;
// the upstream API remains the sole authority and validates the signature
// on every request it receives.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/electromove/ev-admin-api/internal/domain/auth"
)

// RefreshMargin is subtracted from the token expiry when answering expiry
// queries, so a token is reported expired slightly early. This keeps
// in-flight requests from racing a token that would lapse mid-request.
const RefreshMargin = 5 * time.Minute

// ErrExpired is returned by ExtractUser when the token decoded cleanly but
// is past (or within RefreshMargin of) its expiry.
var ErrExpired = errors.New("token expired")

// RoleClaim normalizes the upstream role claim, which may arrive absent,
// as a single string, or as a list.
type RoleClaim []string

// UnmarshalJSON accepts null, a bare string, or a list of strings.
func (r *RoleClaim) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*r = nil
		} else {
			*r = RoleClaim{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("role claim: %w", err)
	}
	*r = RoleClaim(many)
	return nil
}

// Claims is the decoded payload segment of an upstream access token.
// RegisteredClaims supplies the standard fields (exp, sub, ...); the rest
// mirror the claim names the upstream identity service emits.
type Claims struct {
	jwt.RegisteredClaims

	NameID        string    `json:"nameid,omitempty"`
	UserID        string    `json:"userId,omitempty"`
	Name          string    `json:"name,omitempty"`
	UniqueName    string    `json:"unique_name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Role          RoleClaim `json:"role,omitempty"`
	UserProfileID string    `json:"UserProfileId,omitempty"`
}

// Decode parses the compact three-segment token and returns its claims
// without verifying the signature. Any malformed input (wrong segment
// count, bad base64url, invalid JSON) is reported as an error.
func Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}

// IsExpired reports whether the token should be treated as expired: it
// fails to decode, carries no expiry, or is within RefreshMargin of it.
func IsExpired(raw string) bool {
	claims, err := Decode(raw)
	if err != nil {
		return true
	}
	return expiredAt(claims, time.Now())
}

// expiredAt reports now >= exp - RefreshMargin. A missing exp claim counts
// as expired.
func expiredAt(c *Claims, now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !now.Before(c.ExpiresAt.Time.Add(-RefreshMargin))
}

// ExtractUser decodes the token and maps its claims to a SessionUser.
// It returns ErrExpired for a token IsExpired would reject, and the decode
// error for malformed input.
func ExtractUser(raw string) (*auth.SessionUser, error) {
	claims, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if expiredAt(claims, time.Now()) {
		return nil, ErrExpired
	}
	return claims.User(), nil
}

// User maps claims to the display projection. The identifier prefers
// nameid, then sub, then userId; the display name falls back to the local
// part of the email when no name claim is present.
func (c *Claims) User() *auth.SessionUser {
	id := c.NameID
	if id == "" {
		id = c.Subject
	}
	if id == "" {
		id = c.UserID
	}

	name := c.Name
	if name == "" {
		name = c.UniqueName
	}
	if name == "" && c.Email != "" {
		name = strings.SplitN(c.Email, "@", 2)[0]
	}

	roles := []string(c.Role)
	if roles == nil {
		roles = []string{}
	}

	return &auth.SessionUser{
		ID:        id,
		Email:     c.Email,
		Name:      name,
		ProfileID: c.UserProfileID,
		Roles:     roles,
	}
}
