package auth

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/log"
)

// Manager is the session core. It owns the published current-user
// state; every other component (guard, authorizer, module gate) reads
// that state and never mutates it.
//
// States: Anonymous -> Authenticating -> Authenticated, with Expired as
// a transient state on lazy expiry detection. A Logout issued while a
// Login is in flight wins: the stale login result is discarded via a
// generation counter captured at login start.
type Manager struct {
	store  Store
	client LoginClient

	nav        Navigator
	afterLogin func()
	now        func() time.Time
	log        *log.Logger

	// notifyMu serializes transitions so subscribers observe every
	// profile change exactly once, in order. Always acquired before mu.
	notifyMu sync.Mutex

	mu      sync.Mutex
	state   State
	token   string
	claims  *Claims
	profile *UserProfile
	gen     uint64
	subs    []func(*UserProfile)
}

// NewManager creates a session manager over the given store and login
// client. Both are required.
func NewManager(store Store, client LoginClient) *Manager {
	return &Manager{
		store:  store,
		client: client,
		now:    time.Now,
		log:    log.Nop(),
		state:  StateAnonymous,
	}
}

// WithNavigator sets the navigation side effect target for logout and
// denied access.
func (m *Manager) WithNavigator(nav Navigator) *Manager {
	m.nav = nav
	return m
}

// WithAfterLogin sets a hook fired asynchronously after each successful
// login, used to trigger the module visibility refresh. Login never
// waits for it.
func (m *Manager) WithAfterLogin(fn func()) *Manager {
	m.afterLogin = fn
	return m
}

// WithClock overrides the time source, for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// WithLogger sets the manager's logger.
func (m *Manager) WithLogger(l *log.Logger) *Manager {
	m.log = l
	return m
}

// Login authenticates against the backend.
//
// On success the token's claims are decoded (response body fields fill
// any absent claim), the profile's permissions are derived from its
// roles, the session is persisted, subscribers are notified, and the
// after-login hook fires in the background. On failure the session
// state is unchanged and the backend's error is returned as-is so the
// caller can surface its message.
func (m *Manager) Login(ctx context.Context, username, password string) (*UserProfile, error) {
	m.mu.Lock()
	gen := m.gen
	m.state = StateAuthenticating
	m.mu.Unlock()

	res, err := m.client.Login(ctx, username, password)
	if err != nil {
		m.abortLogin(gen)
		return nil, err
	}

	claims, err := DecodeToken(res.AccessToken)
	if err != nil {
		// A token we cannot decode can never satisfy IsAuthenticated,
		// so the login is treated as failed rather than half-applied.
		m.abortLogin(gen)
		return nil, err
	}

	profile := buildProfile(res, claims)

	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	if m.gen != gen {
		m.mu.Unlock()
		m.log.Debug("discarding stale login result", zap.String("username", username))
		return nil, NewError(ErrSessionSuperseded, "logged out while login was in flight")
	}
	if err := m.store.Save(res.AccessToken, profile); err != nil {
		m.state = StateAnonymous
		m.mu.Unlock()
		return nil, err
	}
	m.state = StateAuthenticated
	m.token = res.AccessToken
	m.claims = claims
	m.profile = profile
	subs := snapshot(m.subs)
	hook := m.afterLogin
	m.mu.Unlock()

	m.log.Info("session established",
		zap.String("username", profile.Username),
		zap.Strings("roles", profile.Roles),
		zap.Int64("plaza_id", profile.PlazaID))

	for _, fn := range subs {
		fn(profile)
	}
	if hook != nil {
		go hook()
	}
	return profile, nil
}

// Logout ends the session from any state. It clears the store, bumps
// the generation so in-flight logins cannot resurrect the session,
// publishes a nil current user, and triggers login navigation.
// Idempotent: a second call leaves the same end state.
func (m *Manager) Logout() {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	m.gen++
	hadUser := m.profile != nil
	if err := m.store.Clear(); err != nil {
		// Storage errors never escape the session boundary.
		m.log.Warn("failed to clear stored session", zap.Error(err))
	}
	m.state = StateAnonymous
	m.token = ""
	m.claims = nil
	m.profile = nil
	subs := snapshot(m.subs)
	nav := m.nav
	m.mu.Unlock()

	if hadUser {
		m.log.Info("session ended")
		for _, fn := range subs {
			fn(nil)
		}
	}
	if nav != nil {
		nav.NavigateToLogin()
	}
}

// IsAuthenticated reports whether a valid, unexpired session exists.
// Expiry is detected lazily here: an expired session is evicted as a
// side effect and false is returned.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	claims := m.claims
	m.mu.Unlock()

	if claims == nil {
		return false
	}
	if claims.Expired(m.now()) {
		m.mu.Lock()
		if m.claims == claims {
			m.state = StateExpired
		}
		m.mu.Unlock()
		m.log.Info("session expired", zap.Time("expires_at", claims.ExpiresAt))
		m.Logout()
		return false
	}
	return true
}

// Restore rebuilds the session from the store at process start, with no
// network call. An absent or unparsable stored session leaves the
// manager Anonymous; an expired or undecodable token clears storage.
// Decoded claims take precedence over stored profile fields for
// subject, roles and tenant.
func (m *Manager) Restore() *UserProfile {
	token, stored, err := m.store.Load()
	if err != nil {
		m.log.Debug("no restorable session", zap.Error(err))
		return nil
	}

	claims, err := DecodeToken(token)
	if err != nil {
		m.log.Warn("stored token is undecodable, clearing session", zap.Error(err))
		m.Logout()
		return nil
	}
	if claims.Expired(m.now()) {
		m.log.Info("stored session expired, clearing", zap.Time("expires_at", claims.ExpiresAt))
		m.Logout()
		return nil
	}

	profile := mergeProfile(stored, claims)

	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	m.state = StateAuthenticated
	m.token = token
	m.claims = claims
	m.profile = profile
	subs := snapshot(m.subs)
	m.mu.Unlock()

	m.log.Info("session restored", zap.String("username", profile.Username))
	for _, fn := range subs {
		fn(profile)
	}
	return profile
}

// CurrentUser returns the published profile, nil when not
// authenticated. Callers must treat the result as read-only.
func (m *Manager) CurrentUser() *UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// HasRole reports whether the current user carries the role.
func (m *Manager) HasRole(role string) bool {
	return m.CurrentUser().HasRole(role)
}

// Can reports whether the current user carries the permission.
func (m *Manager) Can(permission string) bool {
	return m.CurrentUser().Can(permission)
}

// State returns the manager's current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Token returns the bearer token when a non-expired session exists.
// Pure read: unlike IsAuthenticated it performs no eviction, so the
// request authorizer can consult it on every outgoing request.
func (m *Manager) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" || m.claims == nil || m.claims.Expired(m.now()) {
		return "", false
	}
	return m.token, true
}

// Subscribe registers a current-user observer. Observers receive every
// profile transition exactly once, in order, plus an immediate delivery
// of the current profile when already authenticated. Callbacks must not
// call back into the Manager's mutating methods.
func (m *Manager) Subscribe(fn func(*UserProfile)) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	m.subs = append(m.subs, fn)
	var current *UserProfile
	if m.state == StateAuthenticated {
		current = m.profile
	}
	m.mu.Unlock()

	if current != nil {
		fn(current)
	}
}

// abortLogin returns to Anonymous after a failed login, unless a
// concurrent logout or newer login already moved the state on.
func (m *Manager) abortLogin(gen uint64) {
	m.mu.Lock()
	if m.gen == gen && m.state == StateAuthenticating {
		m.state = StateAnonymous
	}
	m.mu.Unlock()
}

// buildProfile merges a login response with the token's decoded claims.
// Claims win for subject, roles and tenant; body fields fill the rest.
func buildProfile(res *LoginResult, claims *Claims) *UserProfile {
	p := &UserProfile{
		ID:        res.ID,
		Username:  claims.Subject,
		Email:     res.Email,
		FirstName: res.FirstName,
		LastName:  res.LastName,
		FullName:  res.FullName,
		Roles:     claims.Roles,
		PlazaID:   claims.PlazaID,
		PlazaName: claims.PlazaName,
	}
	if claims.UserID != 0 {
		p.ID = claims.UserID
	}
	if len(p.Roles) == 0 {
		p.Roles = res.Roles
	}
	if p.PlazaID == 0 {
		p.PlazaID = res.PlazaID
	}
	if p.PlazaName == "" {
		p.PlazaName = res.PlazaName
	}
	p.Permissions = MapRolesToPermissions(p.Roles)
	return p
}

// mergeProfile rebuilds a restored profile from stored fields plus
// decoded claims, claims taking precedence where present. Permissions
// are always recomputed from the final role set.
func mergeProfile(stored *UserProfile, claims *Claims) *UserProfile {
	p := *stored
	if claims.Subject != "" {
		p.Username = claims.Subject
	}
	if claims.UserID != 0 {
		p.ID = claims.UserID
	}
	if len(claims.Roles) > 0 {
		p.Roles = claims.Roles
	}
	if claims.PlazaID != 0 {
		p.PlazaID = claims.PlazaID
	}
	if claims.PlazaName != "" {
		p.PlazaName = claims.PlazaName
	}
	p.Permissions = MapRolesToPermissions(p.Roles)
	return &p
}

func snapshot(subs []func(*UserProfile)) []func(*UserProfile) {
	out := make([]func(*UserProfile), len(subs))
	copy(out, subs)
	return out
}
