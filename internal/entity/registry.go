package entity

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an ID is not registered.
var ErrNotFound = errors.New("entity not found")

// Registry holds the session's objects keyed by ID, in insertion order.
// The player is tracked by ID rather than by position in the list.
type Registry struct {
	byID   map[uuid.UUID]*Object
	order  []uuid.UUID
	player uuid.UUID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[uuid.UUID]*Object),
	}
}

// Add registers an object and returns its ID. Adding the same object twice is a no-op.
func (r *Registry) Add(obj *Object) uuid.UUID {
	if obj.ID == uuid.Nil {
		obj.ID = uuid.New()
	}
	if _, ok := r.byID[obj.ID]; !ok {
		r.byID[obj.ID] = obj
		r.order = append(r.order, obj.ID)
	}
	return obj.ID
}

// Get returns the object with the given ID, or nil if not found.
func (r *Registry) Get(id uuid.UUID) *Object {
	return r.byID[id]
}

// Remove unregisters an object. Removing the player clears the player reference.
func (r *Registry) Remove(id uuid.UUID) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.player == id {
		r.player = uuid.Nil
	}
}

// SetPlayer marks a registered object as the player.
func (r *Registry) SetPlayer(id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	r.player = id
	return nil
}

// Player returns the player object, or nil if none is set.
func (r *Registry) Player() *Object {
	return r.byID[r.player]
}

// All returns every object in insertion order.
func (r *Registry) All() []*Object {
	objects := make([]*Object, 0, len(r.order))
	for _, id := range r.order {
		objects = append(objects, r.byID[id])
	}
	return objects
}

// Count returns the number of registered objects.
func (r *Registry) Count() int {
	return len(r.order)
}
