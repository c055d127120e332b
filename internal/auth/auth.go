// Package auth implements the plazactl session core: token decoding,
// session persistence, role to permission mapping, and the session
// manager that orchestrates login, logout, restore and expiry.
//
// The manager is an explicitly constructed instance with injected
// collaborators (store, login client, navigator); consumers such as the
// route guard and the request authorizer read its published state, they
// never own it.
package auth

import "context"

// UserProfile is the authenticated user's identity as held by the
// session manager.
//
// Permissions are always derived from Roles via MapRolesToPermissions
// and are never set independently.
type UserProfile struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	FullName    string   `json:"fullName"`
	Roles       []string `json:"roles"`
	PlazaID     int64    `json:"plazaId,omitempty"`
	PlazaName   string   `json:"plazaName,omitempty"`
	Permissions []string `json:"permissions"`
}

// HasRole reports whether the profile carries the given role.
func (p *UserProfile) HasRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Can reports whether the profile carries the given permission.
func (p *UserProfile) Can(permission string) bool {
	if p == nil {
		return false
	}
	for _, perm := range p.Permissions {
		if perm == permission {
			return true
		}
	}
	return false
}

// State is the session manager's lifecycle state.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
	StateExpired
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// LoginResult is what the backend's login endpoint returns: the bearer
// token plus the profile fields the response body carries. Body fields
// are fallbacks; decoded token claims win where both exist.
type LoginResult struct {
	AccessToken string
	ID          int64
	Username    string
	Email       string
	FirstName   string
	LastName    string
	FullName    string
	PlazaID     int64
	PlazaName   string
	Roles       []string
}

// LoginClient performs the backend login call. Implemented by the
// platform client; stubbed in tests.
type LoginClient interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// Navigator receives the "go to login" side effect on logout and on
// denied route entry. A UI embedding navigates; the CLI prints a hint.
type Navigator interface {
	NavigateToLogin()
}
