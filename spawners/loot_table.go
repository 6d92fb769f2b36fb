package spawners

import (
	"fmt"

	"ebiten-delve/data"
	"ebiten-delve/dungeon"
	"ebiten-delve/random"
)

// maxPlacementTries bounds the search for a free tile for each spawn
const maxPlacementTries = 20

// roomTableEntry weighs one spawnable template by dungeon depth
type roomTableEntry struct {
	name   string
	weight func(depth int) int
}

func fixed(w int) func(int) int { return func(int) int { return w } }

var roomTableEntries = []roomTableEntry{
	{"Goblin", fixed(10)},
	{"Orc", func(d int) int { return 1 + d }},
	{"Health Potion", fixed(7)},
	{"Fireball Scroll", func(d int) int { return 2 + d/2 }},
	{"Confusion Scroll", func(d int) int { return 2 + d/2 }},
	{"Magic Missile Scroll", fixed(4)},
	{"Dagger", fixed(3)},
	{"Longsword", func(d int) int { return d - 1 }},
	{"Shield", fixed(3)},
	{"Tower Shield", func(d int) int { return d - 1 }},
}

// RoomTable returns the weighted spawn table for a dungeon depth.
// Stronger monsters and gear become more likely the deeper the level.
func RoomTable(depth int) *random.RandomTable {
	table := random.NewRandomTable()
	for _, e := range roomTableEntries {
		table.Add(e.name, e.weight(depth))
	}
	return table
}

// CheckTemplates returns an error naming every spawn table entry the catalogue
// has no monster or item template for, at any depth
func CheckTemplates(templates *data.EntityTemplateManager) error {
	var missing []string
	for _, e := range roomTableEntries {
		_, monster := templates.GetTemplate(e.name)
		_, item := templates.GetItemTemplate(e.name)
		if !monster && !item {
			missing = append(missing, e.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("catalogue has no template for %q", missing)
	}
	return nil
}

// Placement is one rolled spawn whose template is known to exist
type Placement struct {
	Pos        dungeon.Point
	TemplateID string
}

// PlanRoom rolls the spawns of a room without touching the world. It fails if
// a rolled name has no template, so a plan can always be placed.
func (s *EntitySpawner) PlanRoom(room dungeon.Rect, depth, maxSpawns int) ([]Placement, error) {
	table := RoomTable(depth)
	numSpawns := s.rng.RollDice(1, maxSpawns+3) - 3 + (depth - 1)

	// Pick unique tiles first, in roll order
	var plan []Placement
	taken := make(map[dungeon.Point]bool)
	for i := 0; i < numSpawns; i++ {
		for tries := 0; tries < maxPlacementTries; tries++ {
			p := dungeon.Point{
				X: room.X1 + s.rng.RollDice(1, abs(room.X2-room.X1)),
				Y: room.Y1 + s.rng.RollDice(1, abs(room.Y2-room.Y1)),
			}
			if taken[p] {
				continue
			}
			taken[p] = true

			name := table.Roll(s.rng)
			if name != random.NoSpawn {
				if !s.hasTemplate(name) {
					return nil, fmt.Errorf("plan room at %d,%d: no template found with ID '%s'", p.X, p.Y, name)
				}
				plan = append(plan, Placement{Pos: p, TemplateID: name})
			}
			break
		}
	}
	return plan, nil
}

// Place queues the entities of a plan for creation at the next Maintain
func (s *EntitySpawner) Place(plan []Placement) error {
	for _, p := range plan {
		if _, err := s.Spawn(p.Pos.X, p.Pos.Y, p.TemplateID); err != nil {
			return fmt.Errorf("place at %d,%d: %w", p.Pos.X, p.Pos.Y, err)
		}
	}
	return nil
}

// SpawnRoom fills a room with monsters and items rolled from the depth's table
func (s *EntitySpawner) SpawnRoom(room dungeon.Rect, depth, maxSpawns int) error {
	plan, err := s.PlanRoom(room, depth, maxSpawns)
	if err != nil {
		return err
	}
	return s.Place(plan)
}

func (s *EntitySpawner) hasTemplate(id string) bool {
	if _, ok := s.templateManager.GetTemplate(id); ok {
		return true
	}
	_, ok := s.templateManager.GetItemTemplate(id)
	return ok
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
