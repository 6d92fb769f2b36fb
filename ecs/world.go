package ecs

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDeadEntity is returned when a structural change targets an entity that is not alive
var ErrDeadEntity = errors.New("entity is not alive")

// World manages all entities and components.
//
// Structural changes (entity creation and deletion) can either be applied
// immediately, which is only safe when no system pass is in flight, or buffered
// with LazyCreate/QueueDelete and applied at the single commit point Maintain.
// Component values are always mutated in place and are visible immediately.
type World struct {
	ids   entityAllocator
	alive map[EntityID]bool
	// One sparse store per component type
	stores map[ComponentID]componentStore
	// Buffered structural changes, applied by Maintain
	pendingCreates []*Builder
	pendingDeletes []EntityID
	deleteQueued   map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		alive:        make(map[EntityID]bool),
		stores:       make(map[ComponentID]componentStore),
		deleteQueued: make(map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world immediately
func (w *World) CreateEntity() EntityID {
	id := w.ids.allocate()
	w.alive[id] = true
	return id
}

// LazyCreate reserves an entity ID whose components only become visible at the next Maintain
func (w *World) LazyCreate() *Builder {
	return &Builder{world: w, id: w.ids.allocate()}
}

// DeleteEntity removes an entity and all its components immediately
func (w *World) DeleteEntity(entityID EntityID) error {
	if !w.alive[entityID] {
		return fmt.Errorf("delete entity %d: %w", entityID, ErrDeadEntity)
	}
	for _, store := range w.stores {
		delete(store, entityID)
	}
	delete(w.alive, entityID)
	return nil
}

// QueueDelete buffers an entity deletion until the next Maintain.
// Queuing the same entity more than once is harmless.
func (w *World) QueueDelete(entityID EntityID) {
	if w.deleteQueued[entityID] {
		return
	}
	w.deleteQueued[entityID] = true
	w.pendingDeletes = append(w.pendingDeletes, entityID)
}

// IsQueuedForDeletion reports whether the entity will be removed at the next Maintain
func (w *World) IsQueuedForDeletion(entityID EntityID) bool {
	return w.deleteQueued[entityID]
}

// Maintain is the commit point: buffered creations become visible, then
// buffered deletions are applied. A deletion of an entity that is no longer
// alive means the world model was violated and is reported as an error.
func (w *World) Maintain() error {
	creates := w.pendingCreates
	deletes := w.pendingDeletes
	w.pendingCreates = nil
	w.pendingDeletes = nil
	w.deleteQueued = make(map[EntityID]bool)

	for _, b := range creates {
		w.alive[b.id] = true
		for _, c := range b.components {
			w.AddComponent(b.id, c.id, c.component)
		}
	}

	var errs []error
	for _, id := range deletes {
		if err := w.DeleteEntity(id); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("maintain: %w", errors.Join(errs...))
	}
	return nil
}

// IsAlive reports whether the entity exists in the world
func (w *World) IsAlive(entityID EntityID) bool {
	return w.alive[entityID]
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// AddComponent adds a component to an entity, replacing any component of the same type
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if !w.alive[entityID] {
		return
	}

	store, exists := w.stores[componentID]
	if !exists {
		store = make(componentStore)
		w.stores[componentID] = store
	}

	store[entityID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if store, exists := w.stores[componentID]; exists {
		component, exists := store[entityID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, exists := w.GetComponent(entityID, componentID)
	return exists
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if store, exists := w.stores[componentID]; exists {
		delete(store, entityID)
	}
}

// ClearComponent removes every component of the given type from all entities
func (w *World) ClearComponent(componentID ComponentID) {
	delete(w.stores, componentID)
}

// GetEntitiesWithComponent returns all entities that have a specific component, in ascending ID order
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []EntityID {
	return w.stores[componentID].owners()
}

// Query returns the entities that carry every listed component, in ascending ID order
func (w *World) Query(componentIDs ...ComponentID) []EntityID {
	if len(componentIDs) == 0 {
		return w.GetAllEntities()
	}

	// Walk the smallest store and probe the others
	smallest := componentIDs[0]
	for _, id := range componentIDs[1:] {
		if len(w.stores[id]) < len(w.stores[smallest]) {
			smallest = id
		}
	}

	entities := make([]EntityID, 0, len(w.stores[smallest]))
	for entityID := range w.stores[smallest] {
		matches := true
		for _, id := range componentIDs {
			if _, ok := w.stores[id][entityID]; !ok {
				matches = false
				break
			}
		}
		if matches {
			entities = append(entities, entityID)
		}
	}
	sortIDs(entities)
	return entities
}

// GetAllEntities returns every live entity in ascending ID order
func (w *World) GetAllEntities() []EntityID {
	entities := make([]EntityID, 0, len(w.alive))
	for id := range w.alive {
		entities = append(entities, id)
	}
	sortIDs(entities)
	return entities
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// GetAs retrieves a component and asserts it to the concrete type T
func GetAs[T Component](w *World, entityID EntityID, componentID ComponentID) (T, bool) {
	var zero T
	component, ok := w.GetComponent(entityID, componentID)
	if !ok {
		return zero, false
	}
	typed, ok := component.(T)
	return typed, ok
}
