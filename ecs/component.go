package ecs

// ComponentID names a component type. The values live in the components package.
type ComponentID uint

// Component is any value stored against an entity. Stores hold pointers, so
// systems mutate components in place.
type Component any

// componentStore holds every component of one type, keyed by its owner
type componentStore map[EntityID]Component

// owners returns the entities holding a component of this type in ascending order
func (s componentStore) owners() []EntityID {
	ids := make([]EntityID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}
