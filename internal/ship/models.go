package ship

import (
	"log/slog"

	"startrek/internal/planet"
	"startrek/internal/shared/errors"
	"startrek/internal/shared/validation"
	"startrek/internal/spatial"
)

type Ship struct {
	Name     string           `json:"name" validate:"required"`
	Crew     int64            `json:"crew"`
	Position spatial.Position `json:"position"`
}

// New builds a ship at position. Crew is not range-checked.
func New(name string, crew int64, position spatial.Position) (*Ship, error) {
	ship := &Ship{
		Name:     name,
		Crew:     crew,
		Position: position,
	}

	if err := validation.Struct("ship", ship); err != nil {
		return nil, err
	}

	slog.Debug("Ship created", "component", "ship", "name", name, "crew", crew, "position", position)
	return ship, nil
}

// NewAtPlanet builds a ship at the planet's current position. Later moves of
// the planet do not move the ship.
func NewAtPlanet(name string, crew int64, p *planet.Planet) (*Ship, error) {
	if p == nil {
		return nil, errors.Validationf("ship %q needs a planet to start from", name)
	}
	return New(name, crew, p.Position)
}

func (s *Ship) Kind() spatial.Kind {
	return spatial.KindShip
}

func (s *Ship) CurrentPosition() spatial.Position {
	return s.Position
}

func (s *Ship) SetPosition(position spatial.Position) {
	s.Position = position
}
