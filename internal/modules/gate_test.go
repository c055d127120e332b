package modules

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	raw []map[string]interface{}
	err error
}

func (f *fakeFetcher) FetchModules(ctx context.Context) ([]map[string]interface{}, error) {
	return f.raw, f.err
}

func authenticated() bool { return true }

func TestGateFailOpen(t *testing.T) {
	tests := []struct {
		name    string
		fetcher *fakeFetcher
	}{
		{"fetch error", &fakeFetcher{err: errors.New("boom")}},
		{"empty list", &fakeFetcher{raw: []map[string]interface{}{}}},
		{"nil list", &fakeFetcher{}},
		{"only invalid entries", &fakeFetcher{raw: []map[string]interface{}{
			{"description": "no name here"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(tt.fetcher, authenticated)
			g.Refresh(context.Background())

			assert.True(t, g.IsAvailable("Parking"))
			assert.True(t, g.IsAvailable("anything-at-all"))
			assert.Empty(t, g.Available())
		})
	}
}

func TestGateNotAuthenticated(t *testing.T) {
	fetcher := &fakeFetcher{raw: []map[string]interface{}{
		{"name": "Parking", "enabled": false},
	}}
	g := NewGate(fetcher, func() bool { return false })
	g.Refresh(context.Background())

	// Without a session the list is not fetched; fail-open applies.
	assert.True(t, g.IsAvailable("Parking"))
}

func TestGateDisabledModule(t *testing.T) {
	fetcher := &fakeFetcher{raw: []map[string]interface{}{
		{"name": "Parking", "enabled": false},
		{"name": "Bulletin", "enabled": true},
		{"name": "Security"},
	}}
	g := NewGate(fetcher, authenticated)
	g.Refresh(context.Background())

	assert.False(t, g.IsAvailable("Parking"))
	assert.True(t, g.IsAvailable("Bulletin"))
	// enabled defaults to true when absent.
	assert.True(t, g.IsAvailable("Security"))
	// Listed backends close the gate for unknown modules.
	assert.False(t, g.IsAvailable("Payments"))
}

func TestGateCaseInsensitive(t *testing.T) {
	fetcher := &fakeFetcher{raw: []map[string]interface{}{
		{"name": "Parking", "enabled": true},
	}}
	g := NewGate(fetcher, authenticated)
	g.Refresh(context.Background())

	for _, name := range []string{"Parking", "parking", "PARKING", "pArKiNg"} {
		assert.True(t, g.IsAvailable(name), name)
	}
}

func TestGateSpanishFields(t *testing.T) {
	fetcher := &fakeFetcher{raw: []map[string]interface{}{
		{"nombre": "Parqueadero", "descripcion": "Control de parqueo", "estado": "activo"},
		{"nombre": "Carteleras", "estado": "inactivo"},
	}}
	g := NewGate(fetcher, authenticated)
	g.Refresh(context.Background())

	assert.True(t, g.IsAvailable("Parqueadero"))
	assert.False(t, g.IsAvailable("Carteleras"))

	mods := g.Available()
	require.Len(t, mods, 1)
	assert.Equal(t, "Parqueadero", mods[0].Name)
	assert.Equal(t, "Control de parqueo", mods[0].Description)
}

func TestGateRoutes(t *testing.T) {
	fetcher := &fakeFetcher{raw: []map[string]interface{}{
		{"name": "Parking", "route": "/parqueadero"},
		{"name": "Bulletin"},
		{"name": "Security", "enabled": false},
	}}
	g := NewGate(fetcher, authenticated)
	g.Refresh(context.Background())

	assert.Equal(t, "/parqueadero", g.RouteFor("Parking"))
	// Route defaults to the lowercased name.
	assert.Equal(t, "/bulletin", g.RouteFor("bulletin"))
	// Disabled and unknown modules have no route.
	assert.Equal(t, "", g.RouteFor("Security"))
	assert.Equal(t, "", g.RouteFor("Payments"))
}

func TestGateNumericID(t *testing.T) {
	fetcher := &fakeFetcher{raw: []map[string]interface{}{
		{"id": float64(4), "name": "Parking"},
	}}
	g := NewGate(fetcher, authenticated)
	g.Refresh(context.Background())

	mods := g.Available()
	require.Len(t, mods, 1)
	assert.Equal(t, "4", mods[0].ID)
}

func TestGateRefreshReplacesList(t *testing.T) {
	fetcher := &fakeFetcher{raw: []map[string]interface{}{
		{"name": "Parking", "enabled": true},
	}}
	g := NewGate(fetcher, authenticated)
	g.Refresh(context.Background())
	assert.False(t, g.IsAvailable("Bulletin"))

	// Backend stops publishing a list: back to fail-open.
	fetcher.raw = nil
	g.Refresh(context.Background())
	assert.True(t, g.IsAvailable("Bulletin"))
}
