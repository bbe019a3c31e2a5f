package gamedata

import (
	"errors"
	"math/rand"
)

// ObjectRegistry holds loaded object definitions and provides spawning utilities.
type ObjectRegistry struct {
	objects     []ObjectDef
	totalWeight int
}

// NewObjectRegistry creates a registry from loaded object definitions.
func NewObjectRegistry(objects []ObjectDef) *ObjectRegistry {
	totalWeight := 0
	for _, o := range objects {
		if o.SpawnWeight > 0 {
			totalWeight += o.SpawnWeight
		}
	}
	return &ObjectRegistry{
		objects:     objects,
		totalWeight: totalWeight,
	}
}

// LoadObjectRegistry loads a registry from the source. The player template is required.
func (s Source) LoadObjectRegistry() (*ObjectRegistry, error) {
	objects, err := s.LoadObjects()
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, errors.New("no objects loaded from objects.json")
	}
	registry := NewObjectRegistry(objects)
	if registry.GetByID(PlayerID) == nil {
		return nil, errors.New("objects.json has no player template")
	}
	return registry, nil
}

// LoadObjectRegistry loads and creates a registry from the embedded objects.json.
func LoadObjectRegistry() (*ObjectRegistry, error) {
	return Embedded().LoadObjectRegistry()
}

// MustLoadObjectRegistry loads a registry, panicking on error.
func MustLoadObjectRegistry() *ObjectRegistry {
	registry, err := LoadObjectRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random NPC definition using weighted probability.
// Objects with higher spawnWeight are more likely to be selected; objects
// with zero weight (the player) are never selected. Returns nil when
// nothing can spawn.
func (r *ObjectRegistry) SpawnRandom(rng *rand.Rand) *ObjectDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.objects {
		if r.objects[i].SpawnWeight <= 0 {
			continue
		}
		cumulative += r.objects[i].SpawnWeight
		if roll < cumulative {
			return &r.objects[i]
		}
	}

	return nil
}

// GetByID returns the object definition with the given ID, or nil if not found.
func (r *ObjectRegistry) GetByID(id string) *ObjectDef {
	for i := range r.objects {
		if r.objects[i].ID == id {
			return &r.objects[i]
		}
	}
	return nil
}

// Player returns the player template, or nil if missing.
func (r *ObjectRegistry) Player() *ObjectDef {
	return r.GetByID(PlayerID)
}

// Count returns the number of object types in the registry.
func (r *ObjectRegistry) Count() int {
	return len(r.objects)
}
