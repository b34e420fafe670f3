package planet

import (
	"log/slog"

	"startrek/internal/shared/validation"
	"startrek/internal/spatial"
)

type Planet struct {
	Name     string           `json:"name" validate:"required"`
	Position spatial.Position `json:"position"`
}

func New(name string, position spatial.Position) (*Planet, error) {
	planet := &Planet{
		Name:     name,
		Position: position,
	}

	if err := validation.Struct("planet", planet); err != nil {
		return nil, err
	}

	slog.Debug("Planet created", "component", "planet", "name", name, "position", position)
	return planet, nil
}

func (p *Planet) Kind() spatial.Kind {
	return spatial.KindPlanet
}

func (p *Planet) CurrentPosition() spatial.Position {
	return p.Position
}

func (p *Planet) SetPosition(position spatial.Position) {
	p.Position = position
}
