package ship

import (
	"fmt"

	"startrek/internal/captainslog"
	"startrek/internal/planet"
	"startrek/internal/spatial"
)

// GoToPosition records the intent to travel to position in the captain's log.
// The ship's own position is left as it is.
func (s *Ship) GoToPosition(position spatial.Position) {
	captainslog.Log(fmt.Sprintf("Going to position %v", position))
}

// GoToPlanet records the intent to travel to p in the captain's log.
// The ship's own position is left as it is.
func (s *Ship) GoToPlanet(p *planet.Planet) {
	captainslog.Log(fmt.Sprintf("Going to planet %s", p.Name))
}
