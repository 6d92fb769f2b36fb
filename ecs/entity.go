package ecs

// EntityID is a unique identifier for an entity.
// IDs are allocated per world, start at 1 and are never reused, so a stale
// reference to a deleted entity simply stops resolving.
type EntityID uint64

// NoEntity is the zero EntityID. It never refers to a live entity.
const NoEntity EntityID = 0

// entityAllocator hands out monotonically increasing entity IDs
type entityAllocator struct {
	next EntityID
}

// allocate returns the next unused entity ID
func (a *entityAllocator) allocate() EntityID {
	a.next++
	return a.next
}
