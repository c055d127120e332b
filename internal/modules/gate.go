// Package modules implements tenant feature-module visibility gating.
//
// The gate holds the module list the backend reports for the tenant and
// answers "is module X visible". An empty list is the distinguished
// "unknown" state and reads as everything visible, keeping older
// deployments without module gating working (fail-open).
package modules

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/log"
)

// Module is one feature module as reported by the backend, normalized.
type Module struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
	Route       string `json:"route,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Fetcher retrieves raw module descriptors from the backend. The raw
// maps are normalized by the gate; shapes vary between backend
// revisions.
type Fetcher interface {
	FetchModules(ctx context.Context) ([]map[string]interface{}, error)
}

// Gate owns the tenant's module visibility list.
type Gate struct {
	fetcher Fetcher

	// authenticated is a read-only view of the session state, injected
	// instead of a manager back-reference to avoid an ownership cycle.
	authenticated func() bool

	log *log.Logger

	mu      sync.RWMutex
	modules []Module
}

// NewGate creates a gate over the given fetcher and session accessor.
func NewGate(fetcher Fetcher, authenticated func() bool) *Gate {
	return &Gate{
		fetcher:       fetcher,
		authenticated: authenticated,
		log:           log.Nop(),
	}
}

// WithLogger sets the gate's logger.
func (g *Gate) WithLogger(l *log.Logger) *Gate {
	g.log = l
	return g
}

// Refresh replaces the held module list with the backend's current
// answer. On any failure, or when no session exists, the list becomes
// empty, which is the fail-open sentinel; refresh failures never
// propagate. Triggered after every successful login and retryable from
// the UI.
func (g *Gate) Refresh(ctx context.Context) {
	if g.authenticated != nil && !g.authenticated() {
		g.replace(nil)
		return
	}

	raw, err := g.fetcher.FetchModules(ctx)
	if err != nil {
		g.log.Warn("module refresh failed, falling back to show-all", zap.Error(err))
		g.replace(nil)
		return
	}

	normalized := make([]Module, 0, len(raw))
	for _, entry := range raw {
		if m, ok := normalize(entry); ok {
			normalized = append(normalized, m)
		}
	}
	if len(normalized) == 0 {
		g.replace(nil)
		return
	}
	g.log.Debug("module list refreshed", zap.Int("count", len(normalized)))
	g.replace(normalized)
}

// IsAvailable reports whether the named module is visible. With an
// empty list everything is visible; otherwise the name must match
// case-insensitively and the module must be enabled.
func (g *Gate) IsAvailable(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.modules) == 0 {
		return true
	}
	for _, m := range g.modules {
		if strings.EqualFold(m.Name, name) && m.Enabled {
			return true
		}
	}
	return false
}

// Available returns the enabled modules, in backend order.
func (g *Gate) Available() []Module {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Module, 0, len(g.modules))
	for _, m := range g.modules {
		if m.Enabled {
			out = append(out, m)
		}
	}
	return out
}

// RouteFor returns the route of an enabled module, or "" when the
// module is unknown or disabled.
func (g *Gate) RouteFor(name string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, m := range g.modules {
		if strings.EqualFold(m.Name, name) && m.Enabled {
			return m.Route
		}
	}
	return ""
}

func (g *Gate) replace(modules []Module) {
	g.mu.Lock()
	g.modules = modules
	g.mu.Unlock()
}

// normalize maps one raw backend descriptor to a Module. The backend
// has shipped both English and Spanish field names; entries without a
// usable name are dropped.
func normalize(raw map[string]interface{}) (Module, bool) {
	name := stringField(raw, "name", "nombre")
	if name == "" {
		return Module{}, false
	}

	m := Module{
		ID:          stringField(raw, "id"),
		Name:        name,
		Description: stringField(raw, "description", "descripcion"),
		Enabled:     true,
		Route:       stringField(raw, "route"),
		Icon:        stringField(raw, "icon"),
	}

	// enabled defaults to true unless the backend says otherwise,
	// either as a bool or as the legacy estado string.
	if enabled, ok := raw["enabled"].(bool); ok {
		m.Enabled = enabled
	} else if estado := stringField(raw, "estado"); estado != "" {
		m.Enabled = strings.EqualFold(estado, "activo")
	}

	if m.Route == "" {
		m.Route = "/" + strings.ToLower(name)
	}
	return m, true
}

// stringField returns the first non-empty value among the keys.
// Numeric IDs (JSON numbers arrive as float64) render as integer text.
func stringField(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
