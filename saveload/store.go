// Package saveload persists a run to a single JSON file. Entities are keyed
// by their stable marker so owner references survive the ID reshuffle a
// reload causes.
package saveload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oklog/ulid/v2"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
	"ebiten-delve/systems"
)

// ErrNoSave is returned by Load when there is no save file
var ErrNoSave = errors.New("no saved game")

// FileStore saves and loads a run at a fixed path
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the save file location
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether a save file is present
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save writes the map and every marked entity to disk
func (s *FileStore) Save(ctx context.Context, sim *systems.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snap, err := takeSnapshot(sim.World, sim.Map, sim.Player)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write save: %w", err)
	}

	sim.Logger.Debug("saved game", "path", s.path, "entities", len(snap.Entities), "bytes", len(data))
	return nil
}

// Load replaces the world contents, the map and the player with the saved
// run, then removes the save file. The world is left untouched if the file
// cannot be read or decoded.
func (s *FileStore) Load(ctx context.Context, sim *systems.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNoSave
	}
	if err != nil {
		return fmt.Errorf("read save: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode save: %w", err)
	}
	decoded, err := snap.decode()
	if err != nil {
		return fmt.Errorf("decode save: %w", err)
	}

	world := sim.World
	for _, id := range world.GetAllEntities() {
		if err := world.DeleteEntity(id); err != nil {
			return err
		}
	}

	ids := make(map[ulid.ULID]ecs.EntityID, len(decoded))
	for _, d := range decoded {
		id := world.CreateEntity()
		world.AddComponent(id, components.Marker, &components.MarkerComponent{ID: d.marker})
		ids[d.marker] = id
	}

	for _, d := range decoded {
		id := ids[d.marker]
		for cid, component := range d.components {
			world.AddComponent(id, cid, component)
		}
		if d.backpack != nil {
			world.AddComponent(id, components.InBackpack, &components.InBackpackComponent{Owner: ids[d.backpack.Owner]})
		}
		if d.equipped != nil {
			world.AddComponent(id, components.Equipped, &components.EquippedComponent{
				Owner: ids[d.equipped.Owner],
				Slot:  d.equipped.Slot,
			})
		}
		if vs, ok := ecs.GetAs[*components.ViewshedComponent](world, id, components.Viewshed); ok {
			vs.Dirty = true
		}
	}

	m := snap.Map
	if m.Bloodstains == nil {
		m.Bloodstains = make(map[int]bool)
	}
	sim.Map = m
	sim.Player = ids[snap.Player]
	systems.NewMapIndexingSystem().Run(sim)

	if err := os.Remove(s.path); err != nil {
		sim.Logger.Warn("could not remove save after loading", "path", s.path, "error", err)
	}

	sim.Logger.Debug("loaded game", "path", s.path, "entities", len(decoded), "player", sim.Player)
	return nil
}
