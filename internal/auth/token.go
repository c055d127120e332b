package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the backend encodes inside a bearer token.
//
// The client holds no signing key, so tokens are decoded without
// signature verification; the backend remains the authority and
// rejects tampered tokens on every request.
type Claims struct {
	// Subject is the username the token was issued for.
	Subject string

	// UserID is the backend user identifier, when present.
	UserID int64

	// Roles are the role names granted to the subject.
	Roles []string

	// PlazaID and PlazaName identify the tenant, when present.
	PlazaID   int64
	PlazaName string

	// IssuedAt and ExpiresAt bound the token's validity window.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the claims are expired at the given instant.
// A token expiring exactly now counts as expired.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// DecodeToken parses the embedded claims of a bearer token.
//
// Returns ErrTokenMalformed for any structural failure: bad encoding,
// non-JWT input, or a missing subject or expiry claim. Never panics on
// malformed input.
func DecodeToken(token string) (*Claims, error) {
	if token == "" {
		return nil, NewError(ErrTokenMalformed, "token cannot be empty")
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, WrapError(ErrTokenMalformed, "failed to parse token", err)
	}

	raw, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, NewError(ErrTokenMalformed, "unexpected claims format")
	}

	claims := &Claims{}

	sub, ok := raw["sub"].(string)
	if !ok || sub == "" {
		return nil, NewError(ErrTokenMalformed, "missing subject claim")
	}
	claims.Subject = sub

	exp, ok := claimTime(raw["exp"])
	if !ok {
		return nil, NewError(ErrTokenMalformed, "missing expiry claim")
	}
	claims.ExpiresAt = exp

	if iat, ok := claimTime(raw["iat"]); ok {
		claims.IssuedAt = iat
	}
	if roles, ok := raw["roles"].([]interface{}); ok {
		for _, r := range roles {
			if name, ok := r.(string); ok && name != "" {
				claims.Roles = append(claims.Roles, name)
			}
		}
	}
	if id, ok := claimInt(raw["userId"]); ok {
		claims.UserID = id
	}
	if id, ok := claimInt(raw["plazaId"]); ok {
		claims.PlazaID = id
	}
	if name, ok := raw["plazaName"].(string); ok {
		claims.PlazaName = name
	}

	return claims, nil
}

// claimTime converts a numeric date claim to a time.Time.
func claimTime(v interface{}) (time.Time, bool) {
	switch n := v.(type) {
	case float64:
		return time.Unix(int64(n), 0), true
	case int64:
		return time.Unix(n, 0), true
	}
	return time.Time{}, false
}

// claimInt converts a numeric claim to an int64.
func claimInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}
