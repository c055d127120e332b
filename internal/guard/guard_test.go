package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubAuth struct{ authenticated bool }

func (s *stubAuth) IsAuthenticated() bool { return s.authenticated }

type countingNav struct{ calls int }

func (n *countingNav) NavigateToLogin() { n.calls++ }

func TestGuardAllowsAuthenticated(t *testing.T) {
	nav := &countingNav{}
	g := New(&stubAuth{authenticated: true}, nav)

	assert.True(t, g.CanEnter())
	assert.Zero(t, nav.calls)
}

func TestGuardDeniesAnonymous(t *testing.T) {
	nav := &countingNav{}
	g := New(&stubAuth{}, nav)

	assert.False(t, g.CanEnter())
	assert.Equal(t, 1, nav.calls)

	// Every denied attempt navigates again.
	assert.False(t, g.CanEnter())
	assert.Equal(t, 2, nav.calls)
}

func TestGuardNilNavigator(t *testing.T) {
	g := New(&stubAuth{}, nil)
	assert.False(t, g.CanEnter())
}
