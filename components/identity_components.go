package components

import (
	"github.com/oklog/ulid/v2"

	"ebiten-delve/ecs"
)

// unnamed is shown for entities that carry no Name
const unnamed = "something"

// NameComponent is the display name used in the log and the menus
type NameComponent struct {
	Name string
}

// NewNameComponent creates a name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{Name: name}
}

// MarkerComponent gives an entity a stable identity that survives save and reload
type MarkerComponent struct {
	ID ulid.ULID
}

// NewMarkerComponent allocates a fresh marker. ULIDs are never reused.
func NewMarkerComponent() *MarkerComponent {
	return &MarkerComponent{ID: ulid.Make()}
}

// DisplayName returns an entity's name, or a generic word when it has none
func DisplayName(world *ecs.World, id ecs.EntityID) string {
	if name, ok := ecs.GetAs[*NameComponent](world, id, Name); ok && name.Name != "" {
		return name.Name
	}
	return unnamed
}
