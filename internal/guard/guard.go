// Package guard provides the route guard consulted before entering
// protected views.
package guard

import "github.com/Arquitectura-KodeHaus/plazactl/internal/auth"

// Authenticator is the slice of the session manager the guard needs.
type Authenticator interface {
	IsAuthenticated() bool
}

// Guard denies entry to protected views for unauthenticated sessions.
// It holds no state of its own.
type Guard struct {
	auth Authenticator
	nav  auth.Navigator
}

// New creates a guard over the given session check and navigator.
func New(a Authenticator, nav auth.Navigator) *Guard {
	return &Guard{auth: a, nav: nav}
}

// CanEnter reports whether a protected view may be entered. On denial
// it triggers navigation to the login view as a side effect.
func (g *Guard) CanEnter() bool {
	if g.auth.IsAuthenticated() {
		return true
	}
	if g.nav != nil {
		g.nav.NavigateToLogin()
	}
	return false
}
