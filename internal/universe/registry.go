package universe

import (
	"encoding/json"
	"log/slog"
	"sync"

	"startrek/internal/planet"
	"startrek/internal/shared/errors"
	"startrek/internal/ship"
	"startrek/internal/spatial"

	"github.com/samber/lo"
)

// Registry is an ordered, append-only collection of every SpaceObject
// registered into the universe. It does not own the objects and does not
// check for duplicates.
type Registry struct {
	mu      sync.RWMutex
	objects []spatial.SpaceObject
	logger  *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	logger.Debug("Initializing universe registry")

	return &Registry{
		logger: logger.With("component", "universe_registry"),
	}
}

// Add appends objects in order. A nil entry rejects the whole call and
// nothing is appended.
func (r *Registry) Add(objects ...spatial.SpaceObject) error {
	for i, obj := range objects {
		if obj == nil || isNilPointer(obj) {
			return errors.Validationf("space object at index %d is nil", i)
		}
	}

	r.mu.Lock()
	r.objects = append(r.objects, objects...)
	total := len(r.objects)
	r.mu.Unlock()

	r.logger.Debug("Space objects registered", "operation", "add", "added", len(objects), "total", total)
	return nil
}

// Objects returns the registered objects in insertion order. The slice is a
// copy; the objects are shared.
func (r *Registry) Objects() []spatial.SpaceObject {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]spatial.SpaceObject, len(r.objects))
	copy(out, r.objects)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}

func (r *Registry) Planets() []*planet.Planet {
	return lo.FilterMap(r.Objects(), func(obj spatial.SpaceObject, _ int) (*planet.Planet, bool) {
		p, ok := obj.(*planet.Planet)
		return p, ok
	})
}

func (r *Registry) Ships() []*ship.Ship {
	return lo.FilterMap(r.Objects(), func(obj spatial.SpaceObject, _ int) (*ship.Ship, bool) {
		s, ok := obj.(*ship.Ship)
		return s, ok
	})
}

// Snapshot encodes the registry as a JSON array of kind-tagged objects in
// insertion order.
func (r *Registry) Snapshot() ([]byte, error) {
	logger := r.logger.With("operation", "snapshot")

	objects := r.Objects()
	envelopes := make([]spatial.Envelope, 0, len(objects))
	for i, obj := range objects {
		env, err := spatial.Seal(obj)
		if err != nil {
			logger.Error("Failed to encode space object", "index", i, "kind", obj.Kind(), "error", err)
			return nil, errors.WrapInternal("failed to encode space object", err)
		}
		envelopes = append(envelopes, env)
	}

	raw, err := json.Marshal(envelopes)
	if err != nil {
		return nil, errors.WrapInternal("failed to encode universe", err)
	}

	logger.Debug("Universe snapshot taken", "objects", len(envelopes), "size_bytes", len(raw))
	return raw, nil
}

func isNilPointer(obj spatial.SpaceObject) bool {
	switch o := obj.(type) {
	case *planet.Planet:
		return o == nil
	case *ship.Ship:
		return o == nil
	default:
		return false
	}
}
