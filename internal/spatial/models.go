package spatial

import "encoding/json"

type Kind string

const (
	KindPlanet Kind = "planet"
	KindShip   Kind = "ship"
)

// Position is an opaque triple of location descriptors. It is a plain value:
// assigning or passing it copies it. Fields are not changed in place; replace
// the whole Position instead.
type Position struct {
	X string `json:"x"`
	Y string `json:"y"`
	Z string `json:"z"`
}

func NewPosition(x, y, z string) Position {
	return Position{X: x, Y: y, Z: z}
}

// SpaceObject is anything placed in the universe. Implementations hold only
// plain data so they can always be encoded.
type SpaceObject interface {
	Kind() Kind
	CurrentPosition() Position
	SetPosition(Position)
}

// Envelope tags an encoded SpaceObject with its kind.
type Envelope struct {
	Kind   Kind            `json:"kind"`
	Object json.RawMessage `json:"object"`
}

// Seal encodes obj into an Envelope.
func Seal(obj SpaceObject) (Envelope, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Kind: obj.Kind(), Object: raw}, nil
}
