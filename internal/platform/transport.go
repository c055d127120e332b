package platform

import (
	"net/http"
	"strings"
)

// TokenSource yields the current bearer token when a valid, unexpired
// session exists. Satisfied by the session manager.
type TokenSource interface {
	Token() (string, bool)
}

// AuthTransport is the request authorizer: an http.RoundTripper that
// attaches the session's bearer token to every outgoing request except
// the login endpoint, and reports 401/403 responses through OnDenied
// before returning them. OnDenied is the proactive path by which a
// mid-session revoke or expiry forces a logout.
type AuthTransport struct {
	// Base is the underlying transport; http.DefaultTransport when nil.
	Base http.RoundTripper

	// Source provides the token. When it reports no token the request
	// is sent unmodified.
	Source TokenSource

	// OnDenied is invoked on any 401/403 response to a non-login
	// request, before the response is handed to the caller.
	OnDenied func()
}

// loginPath is the only endpoint that must never carry a bearer token.
const loginPath = "/api/auth/login"

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	isLogin := strings.HasSuffix(req.URL.Path, loginPath)

	if !isLogin && t.Source != nil {
		if token, ok := t.Source.Token(); ok {
			// Per RoundTripper contract the request is not mutated.
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if !isLogin && t.OnDenied != nil &&
		(resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		t.OnDenied()
	}
	return resp, nil
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
