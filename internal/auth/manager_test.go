package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoginClient returns a canned result or error, optionally blocking
// until released so logins can be held in flight.
type fakeLoginClient struct {
	result  *LoginResult
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeLoginClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// recordingNavigator counts navigation side effects.
type recordingNavigator struct {
	mu    sync.Mutex
	calls int
}

func (n *recordingNavigator) NavigateToLogin() {
	n.mu.Lock()
	n.calls++
	n.mu.Unlock()
}

func (n *recordingNavigator) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

func managerToken(t *testing.T, sub string, roles []string, exp time.Time) string {
	t.Helper()
	return signToken(t, jwt.MapClaims{
		"sub":       sub,
		"userId":    float64(7),
		"roles":     rolesClaim(roles),
		"plazaId":   float64(3),
		"plazaName": "Plaza Central",
		"exp":       exp.Unix(),
	})
}

func rolesClaim(roles []string) []interface{} {
	out := make([]interface{}, len(roles))
	for i, r := range roles {
		out[i] = r
	}
	return out
}

func TestManagerLogin(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := managerToken(t, "maria", []string{"MANAGER"}, now.Add(time.Hour))

	store := NewMemoryStore()
	client := &fakeLoginClient{result: &LoginResult{
		AccessToken: token,
		ID:          99, // claims carry userId 7, which wins
		Username:    "ignored-by-claims",
		Email:       "maria@plaza.test",
		FullName:    "Maria Lopez",
		Roles:       []string{"EMPLOYEE_GENERAL"},
	}}
	m := NewManager(store, client).WithClock(func() time.Time { return now })

	profile, err := m.Login(context.Background(), "maria", "secret")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, m.State())
	assert.True(t, m.IsAuthenticated())

	// Claims take precedence over response body fields.
	assert.Equal(t, "maria", profile.Username)
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, []string{"MANAGER"}, profile.Roles)
	assert.Equal(t, int64(3), profile.PlazaID)
	assert.Equal(t, "Plaza Central", profile.PlazaName)

	// Body fields fill what the claims do not carry.
	assert.Equal(t, "maria@plaza.test", profile.Email)
	assert.Equal(t, "Maria Lopez", profile.FullName)

	// Permissions derive from the final role set.
	assert.True(t, m.Can(PermPlazaWrite))
	assert.False(t, m.Can(PermBulletinWrite))
	assert.True(t, m.HasRole("MANAGER"))

	// Session persisted.
	storedToken, storedProfile, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, token, storedToken)
	assert.Equal(t, "maria", storedProfile.Username)

	// Authorizer sees the token.
	got, ok := m.Token()
	assert.True(t, ok)
	assert.Equal(t, token, got)
}

func TestManagerLoginFailure(t *testing.T) {
	store := NewMemoryStore()
	client := &fakeLoginClient{err: errors.New("bad credentials")}
	m := NewManager(store, client)

	_, err := m.Login(context.Background(), "maria", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad credentials")

	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.CurrentUser())

	_, _, loadErr := store.Load()
	assert.True(t, IsAuthError(loadErr, ErrSessionNotFound))
}

func TestManagerLoginUndecodableToken(t *testing.T) {
	client := &fakeLoginClient{result: &LoginResult{AccessToken: "not-a-jwt"}}
	m := NewManager(NewMemoryStore(), client)

	_, err := m.Login(context.Background(), "maria", "secret")
	require.Error(t, err)
	assert.True(t, IsAuthError(err, ErrTokenMalformed))
	assert.Equal(t, StateAnonymous, m.State())
}

func TestManagerLogout(t *testing.T) {
	now := time.Now()
	token := managerToken(t, "maria", []string{"MANAGER"}, now.Add(time.Hour))

	store := NewMemoryStore()
	nav := &recordingNavigator{}
	client := &fakeLoginClient{result: &LoginResult{AccessToken: token}}
	m := NewManager(store, client).WithNavigator(nav)

	_, err := m.Login(context.Background(), "maria", "secret")
	require.NoError(t, err)

	var published []*UserProfile
	m.Subscribe(func(p *UserProfile) { published = append(published, p) })

	m.Logout()
	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.CurrentUser())
	assert.Equal(t, 1, nav.count())

	_, ok := m.Token()
	assert.False(t, ok)

	_, _, loadErr := store.Load()
	assert.True(t, IsAuthError(loadErr, ErrSessionNotFound))

	// Second logout: same end state, navigation fires again, but no
	// second nil publication.
	m.Logout()
	assert.Equal(t, StateAnonymous, m.State())
	assert.Equal(t, 2, nav.count())

	// Initial delivery (authenticated) plus one nil on the first logout.
	require.Len(t, published, 2)
	assert.NotNil(t, published[0])
	assert.Nil(t, published[1])
}

func TestManagerLogoutWinsOverInFlightLogin(t *testing.T) {
	now := time.Now()
	token := managerToken(t, "maria", []string{"MANAGER"}, now.Add(time.Hour))

	store := NewMemoryStore()
	client := &fakeLoginClient{
		result:  &LoginResult{AccessToken: token},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	m := NewManager(store, client)

	errCh := make(chan error, 1)
	go func() {
		_, err := m.Login(context.Background(), "maria", "secret")
		errCh <- err
	}()

	<-client.started
	m.Logout()
	close(client.release)

	err := <-errCh
	require.Error(t, err)
	assert.True(t, IsAuthError(err, ErrSessionSuperseded))

	// The stale result must not resurrect the session.
	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.IsAuthenticated())
	_, _, loadErr := store.Load()
	assert.True(t, IsAuthError(loadErr, ErrSessionNotFound))
}

func TestManagerExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := managerToken(t, "maria", []string{"MANAGER"}, now.Add(time.Hour))

	var mu sync.Mutex
	current := now
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	store := NewMemoryStore()
	nav := &recordingNavigator{}
	client := &fakeLoginClient{result: &LoginResult{AccessToken: token}}
	m := NewManager(store, client).WithNavigator(nav).WithClock(clock)

	_, err := m.Login(context.Background(), "maria", "secret")
	require.NoError(t, err)
	assert.True(t, m.IsAuthenticated())

	mu.Lock()
	current = now.Add(2 * time.Hour)
	mu.Unlock()

	// Lazy expiry: the check evicts the session.
	assert.False(t, m.IsAuthenticated())
	assert.Equal(t, StateAnonymous, m.State())
	assert.Nil(t, m.CurrentUser())
	assert.Equal(t, 1, nav.count())

	_, _, loadErr := store.Load()
	assert.True(t, IsAuthError(loadErr, ErrSessionNotFound))
}

func TestManagerRestore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("valid stored session", func(t *testing.T) {
		token := managerToken(t, "maria", []string{"MANAGER"}, now.Add(time.Hour))
		store := NewMemoryStore()
		require.NoError(t, store.Save(token, &UserProfile{
			Username: "stale-name",
			Email:    "maria@plaza.test",
			Roles:    []string{"EMPLOYEE_GENERAL"},
		}))

		m := NewManager(store, &fakeLoginClient{}).WithClock(clock)
		profile := m.Restore()
		require.NotNil(t, profile)

		// Claims win over the stored profile.
		assert.Equal(t, "maria", profile.Username)
		assert.Equal(t, []string{"MANAGER"}, profile.Roles)
		assert.True(t, profile.Can(PermPlazaWrite))
		// Stored fields survive where claims are silent.
		assert.Equal(t, "maria@plaza.test", profile.Email)

		assert.Equal(t, StateAuthenticated, m.State())
		assert.True(t, m.IsAuthenticated())
	})

	t.Run("no stored session", func(t *testing.T) {
		m := NewManager(NewMemoryStore(), &fakeLoginClient{}).WithClock(clock)
		assert.Nil(t, m.Restore())
		assert.Equal(t, StateAnonymous, m.State())
	})

	t.Run("expired stored session is cleared", func(t *testing.T) {
		token := managerToken(t, "maria", []string{"MANAGER"}, now.Add(-time.Hour))
		store := NewMemoryStore()
		require.NoError(t, store.Save(token, testProfile()))

		nav := &recordingNavigator{}
		m := NewManager(store, &fakeLoginClient{}).WithClock(clock).WithNavigator(nav)
		assert.Nil(t, m.Restore())
		assert.Equal(t, StateAnonymous, m.State())

		_, _, err := store.Load()
		assert.True(t, IsAuthError(err, ErrSessionNotFound))
	})

	t.Run("undecodable stored token is cleared", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save("garbage", testProfile()))

		m := NewManager(store, &fakeLoginClient{}).WithClock(clock)
		assert.Nil(t, m.Restore())

		_, _, err := store.Load()
		assert.True(t, IsAuthError(err, ErrSessionNotFound))
	})
}

func TestManagerSubscribe(t *testing.T) {
	now := time.Now()
	token := managerToken(t, "maria", []string{"MANAGER"}, now.Add(time.Hour))
	client := &fakeLoginClient{result: &LoginResult{AccessToken: token}}
	m := NewManager(NewMemoryStore(), client)

	var published []*UserProfile
	m.Subscribe(func(p *UserProfile) { published = append(published, p) })

	// Nothing delivered while anonymous.
	assert.Empty(t, published)

	_, err := m.Login(context.Background(), "maria", "secret")
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "maria", published[0].Username)

	// A late subscriber gets the current profile immediately.
	var late *UserProfile
	m.Subscribe(func(p *UserProfile) { late = p })
	require.NotNil(t, late)
	assert.Equal(t, "maria", late.Username)

	m.Logout()
	require.Len(t, published, 2)
	assert.Nil(t, published[1])
}

func TestManagerAfterLoginHook(t *testing.T) {
	now := time.Now()
	token := managerToken(t, "maria", []string{"MANAGER"}, now.Add(time.Hour))
	client := &fakeLoginClient{result: &LoginResult{AccessToken: token}}

	fired := make(chan struct{})
	m := NewManager(NewMemoryStore(), client).WithAfterLogin(func() { close(fired) })

	_, err := m.Login(context.Background(), "maria", "secret")
	require.NoError(t, err)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("after-login hook did not fire")
	}
}
