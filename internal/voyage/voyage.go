package voyage

import (
	"fmt"
	"log/slog"

	"startrek/internal/planet"
	"startrek/internal/ship"
	"startrek/internal/spatial"
	"startrek/internal/universe"
)

type Scene struct {
	Earth      *planet.Planet
	Vulcan     *planet.Planet
	Enterprise *ship.Ship
}

// Build creates Earth, Vulcan and the Enterprise (crew 400, docked at Earth)
// and registers them as [earth, enterprise, vulcan].
func Build(registry *universe.Registry) (*Scene, error) {
	logger := slog.With("component", "voyage", "operation", "build")

	earth, err := planet.New("Earth", spatial.NewPosition("blah", "blah", "blah"))
	if err != nil {
		return nil, fmt.Errorf("failed to create earth: %w", err)
	}

	vulcan, err := planet.New("Vulcan", spatial.NewPosition("blah", "blah", "blah"))
	if err != nil {
		return nil, fmt.Errorf("failed to create vulcan: %w", err)
	}

	enterprise, err := ship.NewAtPlanet("Enterprise", 400, earth)
	if err != nil {
		return nil, fmt.Errorf("failed to create enterprise: %w", err)
	}

	if err := registry.Add(earth, enterprise, vulcan); err != nil {
		return nil, fmt.Errorf("failed to register scene: %w", err)
	}

	logger.Info("Scene built", "objects", registry.Len())
	return &Scene{Earth: earth, Vulcan: vulcan, Enterprise: enterprise}, nil
}

// Run builds the scene and sends the Enterprise to Vulcan.
func Run(registry *universe.Registry) (*Scene, error) {
	scene, err := Build(registry)
	if err != nil {
		return nil, err
	}

	scene.Enterprise.GoToPlanet(scene.Vulcan)
	return scene, nil
}
