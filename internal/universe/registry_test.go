package universe

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"startrek/internal/planet"
	"startrek/internal/shared/errors"
	"startrek/internal/ship"
	"startrek/internal/spatial"

	"github.com/stretchr/testify/require"
)

func newRegistry() *Registry {
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustPlanet(t *testing.T, name string) *planet.Planet {
	t.Helper()
	p, err := planet.New(name, spatial.NewPosition("blah", "blah", "blah"))
	require.NoError(t, err)
	return p
}

func mustShip(t *testing.T, name string, at *planet.Planet) *ship.Ship {
	t.Helper()
	s, err := ship.NewAtPlanet(name, 400, at)
	require.NoError(t, err)
	return s
}

func TestRegistry_Starts_Empty(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()

	req.Zero(registry.Len())
	req.Empty(registry.Objects())
}

func TestRegistry_Add_Preserves_Order(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()
	earth := mustPlanet(t, "Earth")
	vulcan := mustPlanet(t, "Vulcan")
	enterprise := mustShip(t, "Enterprise", earth)

	// When three objects are added in one call
	req.NoError(registry.Add(earth, enterprise, vulcan))

	// Then the registry grows by three, in order
	req.Equal(3, registry.Len())
	req.Equal([]spatial.SpaceObject{earth, enterprise, vulcan}, registry.Objects())
}

func TestRegistry_Add_Grows_By_N(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()
	req.NoError(registry.Add(mustPlanet(t, "Earth")))

	before := registry.Len()
	req.NoError(registry.Add(mustPlanet(t, "Vulcan"), mustPlanet(t, "Romulus")))

	req.Equal(before+2, registry.Len())
	objects := registry.Objects()
	req.Equal("Vulcan", objects[1].(*planet.Planet).Name)
	req.Equal("Romulus", objects[2].(*planet.Planet).Name)
}

func TestRegistry_Allows_Duplicates(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()
	earth := mustPlanet(t, "Earth")

	req.NoError(registry.Add(earth, earth))

	req.Equal(2, registry.Len())
	req.Same(registry.Objects()[0], registry.Objects()[1])
}

func TestRegistry_Add_Rejects_Nil_Atomically(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()
	var missing *planet.Planet

	err := registry.Add(mustPlanet(t, "Earth"), missing)
	req.True(errors.IsValidation(err))

	err = registry.Add(nil)
	req.True(errors.IsValidation(err))

	req.Zero(registry.Len())
}

func TestRegistry_Objects_Is_A_Copy(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()
	req.NoError(registry.Add(mustPlanet(t, "Earth")))

	objects := registry.Objects()
	objects[0] = mustPlanet(t, "Impostor")

	req.Equal("Earth", registry.Objects()[0].(*planet.Planet).Name)
}

func TestRegistry_Holds_References(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()
	earth := mustPlanet(t, "Earth")
	req.NoError(registry.Add(earth))

	earth.Name = "Terra"

	req.Equal("Terra", registry.Planets()[0].Name)
}

func TestRegistry_Kind_Views(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()
	earth := mustPlanet(t, "Earth")
	vulcan := mustPlanet(t, "Vulcan")
	enterprise := mustShip(t, "Enterprise", earth)
	req.NoError(registry.Add(earth, enterprise, vulcan))

	req.Equal([]*planet.Planet{earth, vulcan}, registry.Planets())
	req.Equal([]*ship.Ship{enterprise}, registry.Ships())
}

func TestRegistry_Snapshot(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()
	earth := mustPlanet(t, "Earth")
	enterprise := mustShip(t, "Enterprise", earth)
	req.NoError(registry.Add(earth, enterprise))

	raw, err := registry.Snapshot()

	req.NoError(err)
	req.JSONEq(`[
		{"kind":"planet","object":{"name":"Earth","position":{"x":"blah","y":"blah","z":"blah"}}},
		{"kind":"ship","object":{"name":"Enterprise","crew":400,"position":{"x":"blah","y":"blah","z":"blah"}}}
	]`, string(raw))
}

func TestRegistry_Snapshot_Empty(t *testing.T) {
	req := require.New(t)

	raw, err := newRegistry().Snapshot()

	req.NoError(err)
	req.JSONEq(`[]`, string(raw))
}

func TestRegistry_Concurrent_Add(t *testing.T) {
	req := require.New(t)
	registry := newRegistry()
	earth := mustPlanet(t, "Earth")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = registry.Add(earth, earth)
			_ = registry.Objects()
		}()
	}
	wg.Wait()

	req.Equal(40, registry.Len())
}
