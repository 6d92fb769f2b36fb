package gamestate

import (
	"context"

	"ebiten-delve/systems"
)

// Persistence saves and restores a run. Load rebuilds the world in place,
// restores the map and player resources, and rebuilds the tile contents by
// indexing the map rather than from stored data.
type Persistence interface {
	Save(ctx context.Context, sim *systems.Context) error
	Load(ctx context.Context, sim *systems.Context) error
}
