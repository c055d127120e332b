package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/auth"
	"github.com/Arquitectura-KodeHaus/plazactl/internal/config"
	"github.com/Arquitectura-KodeHaus/plazactl/internal/guard"
	"github.com/Arquitectura-KodeHaus/plazactl/internal/log"
	"github.com/Arquitectura-KodeHaus/plazactl/internal/modules"
	"github.com/Arquitectura-KodeHaus/plazactl/internal/platform"
)

// app wires the session core to the platform client for one process.
// The manager owns session state; the transport, gate and guard only
// read it.
type app struct {
	cfg     *config.Config
	log     *log.Logger
	manager *auth.Manager
	gate    *modules.Gate
	guard   *guard.Guard
	client  *platform.Client
}

var currentApp *app

// getApp builds the application wiring once per process.
func getApp() (*app, error) {
	if currentApp != nil {
		return currentApp, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := log.New(cfg.Log.Level, cfg.Log.Format)

	store := auth.NewFileStore(cfg.Session.Path)
	nav := &loginNavigator{}

	// The transport needs the manager for tokens and the manager needs
	// the client for login, so the transport's hooks are bound after
	// both exist.
	transport := &platform.AuthTransport{}
	client := platform.NewClient(cfg.API.BaseURL, transport, cfg.API.Timeout)

	manager := auth.NewManager(store, &loginClient{client: client}).
		WithNavigator(nav).
		WithLogger(logger)
	transport.Source = manager
	transport.OnDenied = manager.Logout

	gate := modules.NewGate(client, manager.IsAuthenticated).WithLogger(logger)
	manager.WithAfterLogin(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
		defer cancel()
		gate.Refresh(ctx)
	})

	currentApp = &app{
		cfg:     cfg,
		log:     logger,
		manager: manager,
		gate:    gate,
		guard:   guard.New(manager, nav),
		client:  client,
	}
	return currentApp, nil
}

// requireAuth restores the stored session and consults the route guard.
// Protected commands call this before touching the backend.
func (a *app) requireAuth() error {
	a.manager.Restore()
	if !a.guard.CanEnter() {
		return fmt.Errorf("authentication required")
	}
	return nil
}

// requireModule refreshes the module gate and checks that the named
// feature module is enabled for this plaza. Fail-open: an unreachable
// modules endpoint never blocks a command.
func (a *app) requireModule(ctx context.Context, name string) error {
	a.gate.Refresh(ctx)
	if !a.gate.IsAvailable(name) {
		return fmt.Errorf("module %q is not enabled for this plaza", name)
	}
	return nil
}

// loginClient adapts the platform client to the session manager's
// LoginClient interface.
type loginClient struct {
	client *platform.Client
}

func (l *loginClient) Login(ctx context.Context, username, password string) (*auth.LoginResult, error) {
	res, err := l.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return &auth.LoginResult{
		AccessToken: res.AccessToken,
		ID:          res.ID,
		Username:    res.Username,
		Email:       res.Email,
		FirstName:   res.FirstName,
		LastName:    res.LastName,
		FullName:    res.FullName,
		PlazaID:     res.PlazaID,
		PlazaName:   res.PlazaName,
		Roles:       res.Roles,
	}, nil
}

// loginNavigator is the CLI's stand-in for redirecting to the login
// view: it prints the sign-in hint.
type loginNavigator struct{}

func (n *loginNavigator) NavigateToLogin() {
	fmt.Fprintln(os.Stderr, `Use "plazactl auth login" to sign in.`)
}

// parseID parses a numeric ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// commandContext returns a request-scoped context for one backend call.
func (a *app) commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := a.cfg.API.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(parent, timeout)
}
