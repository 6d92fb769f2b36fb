package gamestate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-delve/components"
	"ebiten-delve/config"
	"ebiten-delve/data"
	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
	"ebiten-delve/generation"
	"ebiten-delve/random"
	"ebiten-delve/spawners"
	"ebiten-delve/systems"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openLevel returns a single open room of w x h with its center at Rooms[0]
func openLevel(w, h, depth int) *dungeon.Map {
	m := dungeon.NewMap(w, h, depth)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Tiles[m.Idx(x, y)] = dungeon.TileFloor
		}
	}
	m.Rooms = []dungeon.Rect{dungeon.NewRect(0, 0, w-2, h-2)}
	m.PopulateBlocked()
	return m
}

type scenario struct {
	state   *State
	sim     *systems.Context
	spawner *spawners.EntitySpawner
}

func newScenario(t *testing.T, initial RunState) *scenario {
	t.Helper()
	world := ecs.NewWorld()
	rng := random.NewRNG(3)
	logger := discardLogger()
	spawner := spawners.NewEntitySpawner(world, data.DefaultTemplates(), rng, logger)

	m := openLevel(20, 20, 1)
	x, y := m.Rooms[0].Center()
	player := spawner.CreatePlayer(x, y)
	require.NoError(t, world.Maintain())

	sim := &systems.Context{
		World:  world,
		Map:    m,
		Player: player,
		RNG:    rng,
		Log:    systems.NewGameLog(100),
		Logger: logger,
	}
	gen := generation.NewDungeonGenerator(generation.DefaultConfig(), rng)
	state := New(sim, Options{Generator: gen, Spawner: spawner, MaxSpawns: 4, Initial: initial})
	return &scenario{state: state, sim: sim, spawner: spawner}
}

func (sc *scenario) tick(t *testing.T, cmd Command) RunState {
	t.Helper()
	rs, err := sc.state.Tick(context.Background(), cmd)
	require.NoError(t, err)
	return rs
}

func (sc *scenario) playerPos(t *testing.T) components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetAs[*components.PositionComponent](sc.sim.World, sc.sim.Player, components.Position)
	require.True(t, ok)
	return *pos
}

func (sc *scenario) hp(t *testing.T, id ecs.EntityID) int {
	t.Helper()
	stats, ok := ecs.GetAs[*components.CombatStatsComponent](sc.sim.World, id, components.CombatStats)
	require.True(t, ok)
	return stats.HP
}

func (sc *scenario) item(t *testing.T, x, y int, name string) ecs.EntityID {
	t.Helper()
	id, err := sc.spawner.CreateItem(x, y, name)
	require.NoError(t, err)
	require.NoError(t, sc.sim.World.Maintain())
	return id
}

// turn plays one full player turn and monster turn after the command
func (sc *scenario) turn(t *testing.T, cmd Command) {
	t.Helper()
	require.Equal(t, PlayerTurn, sc.tick(t, cmd).Kind)
	require.Equal(t, MonsterTurn, sc.tick(t, NoCommand()).Kind)
	rs := sc.tick(t, NoCommand())
	if rs.Kind != GameOver {
		require.Equal(t, AwaitingInput, rs.Kind)
	}
}

func TestEndToEnd_PlayerKillsApproachingMonster(t *testing.T) {
	sc := newScenario(t, state(PreRun))
	start := sc.playerPos(t)
	monster, err := sc.spawner.CreateMonster(start.X+2, start.Y, "Goblin")
	require.NoError(t, err)
	require.NoError(t, sc.sim.World.Maintain())

	assert.Equal(t, AwaitingInput, sc.tick(t, NoCommand()).Kind)

	// The goblin closes in while the player waits
	sc.turn(t, Wait())
	pos, _ := ecs.GetAs[*components.PositionComponent](sc.sim.World, monster, components.Position)
	assert.Equal(t, components.PositionComponent{X: start.X + 1, Y: start.Y}, *pos)

	var hps []int
	for i := 0; i < 3; i++ {
		sc.turn(t, Move(1, 0))
		hps = append(hps, sc.hp(t, monster))
	}
	assert.Equal(t, []int{12, 8, 4}, hps)
	assert.Equal(t, 30-3*2, sc.hp(t, sc.sim.Player))

	sc.turn(t, Move(1, 0))
	assert.False(t, sc.sim.World.IsAlive(monster))
	assert.True(t, sc.sim.Log.Contains("Goblin is dead"))
	assert.Equal(t, start, sc.playerPos(t))
	assert.True(t, sc.sim.Map.Bloodstains[sc.sim.Map.Idx(start.X+1, start.Y)])
}

func TestPlayerDeath_EntersGameOver(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	start := sc.playerPos(t)
	monster, err := sc.spawner.CreateMonster(start.X+1, start.Y, "Orc")
	require.NoError(t, err)
	require.NoError(t, sc.sim.World.Maintain())
	require.NoError(t, sc.state.RunPipeline(systems.PhasePreRun))

	orc, _ := ecs.GetAs[*components.CombatStatsComponent](sc.sim.World, monster, components.CombatStats)
	orc.Power = 100

	require.Equal(t, PlayerTurn, sc.tick(t, Wait()).Kind)
	require.Equal(t, MonsterTurn, sc.tick(t, NoCommand()).Kind)
	assert.Equal(t, GameOver, sc.tick(t, NoCommand()).Kind)

	// The player is never deleted, and nothing moves any more
	assert.True(t, sc.sim.World.IsAlive(sc.sim.Player))
	assert.Equal(t, GameOver, sc.tick(t, Move(1, 0)).Kind)
	assert.True(t, sc.sim.Log.Contains("You are dead!"))
}

func TestAwaitingInput_BlockedMoveKeepsWaiting(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	require.NoError(t, sc.state.RunPipeline(systems.PhasePreRun))

	pos, _ := ecs.GetAs[*components.PositionComponent](sc.sim.World, sc.sim.Player, components.Position)
	pos.X = 1
	assert.Equal(t, AwaitingInput, sc.tick(t, Move(-1, 0)).Kind)
	assert.Equal(t, AwaitingInput, sc.tick(t, NoCommand()).Kind)
}

func TestAwaitingInput_PickUp(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	start := sc.playerPos(t)

	assert.Equal(t, AwaitingInput, sc.tick(t, PickUp()).Kind)
	assert.Equal(t, "There is nothing here to pick up.", sc.sim.Log.Last())

	potion := sc.item(t, start.X, start.Y, "Health Potion")
	require.NoError(t, sc.state.RunPipeline(systems.PhasePreRun))

	sc.turn(t, PickUp())
	assert.Equal(t, []ecs.EntityID{potion}, sc.state.MenuItems(ShowInventory))
	assert.Equal(t, []ecs.EntityID{potion}, sc.state.MenuItems(ShowDropItem))
	assert.Empty(t, sc.state.MenuItems(ShowRemoveItem))
}

func TestInventoryMenu_UseAndCancel(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	start := sc.playerPos(t)
	potion := sc.item(t, start.X, start.Y, "Health Potion")
	require.NoError(t, sc.state.RunPipeline(systems.PhasePreRun))
	sc.turn(t, PickUp())

	assert.Equal(t, ShowInventory, sc.tick(t, OpenInventory()).Kind)
	assert.Equal(t, ShowInventory, sc.tick(t, NoCommand()).Kind)
	assert.Equal(t, AwaitingInput, sc.tick(t, Cancel()).Kind)

	stats, _ := ecs.GetAs[*components.CombatStatsComponent](sc.sim.World, sc.sim.Player, components.CombatStats)
	stats.HP = 10

	sc.tick(t, OpenInventory())
	// Items not in the menu are ignored
	assert.Equal(t, ShowInventory, sc.tick(t, Select(ecs.EntityID(9999))).Kind)
	assert.Equal(t, PlayerTurn, sc.tick(t, Select(potion)).Kind)
	sc.tick(t, NoCommand())
	assert.Equal(t, 18, stats.HP)
	assert.False(t, sc.sim.World.IsAlive(potion))
}

func TestDropAndRemoveMenus(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	start := sc.playerPos(t)
	dagger := sc.item(t, start.X, start.Y, "Dagger")
	require.NoError(t, sc.state.RunPipeline(systems.PhasePreRun))
	sc.turn(t, PickUp())

	// Equip, unequip, drop
	sc.tick(t, OpenInventory())
	sc.turn(t, Select(dagger))
	assert.Equal(t, []ecs.EntityID{dagger}, sc.state.MenuItems(ShowRemoveItem))

	assert.Equal(t, ShowRemoveItem, sc.tick(t, OpenRemove()).Kind)
	sc.turn(t, Select(dagger))
	assert.Equal(t, []ecs.EntityID{dagger}, sc.state.MenuItems(ShowDropItem))

	assert.Equal(t, ShowDropItem, sc.tick(t, OpenDrop()).Kind)
	sc.turn(t, Select(dagger))
	pos, ok := ecs.GetAs[*components.PositionComponent](sc.sim.World, dagger, components.Position)
	require.True(t, ok)
	assert.Equal(t, start, *pos)
}

func TestTargeting(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	start := sc.playerPos(t)
	scroll := sc.item(t, start.X, start.Y, "Magic Missile Scroll")
	monster, err := sc.spawner.CreateMonster(start.X+3, start.Y+3, "Goblin")
	require.NoError(t, err)
	require.NoError(t, sc.sim.World.Maintain())
	require.NoError(t, sc.state.RunPipeline(systems.PhasePreRun))
	sc.turn(t, PickUp())

	// Selecting a ranged item asks for a target
	sc.tick(t, OpenInventory())
	rs := sc.tick(t, Select(scroll))
	assert.Equal(t, RunState{Kind: ShowTargeting, Range: 6, Item: scroll}, rs)
	assert.Equal(t, rs, sc.tick(t, NoCommand()))

	// Out of range counts as a cancel
	assert.False(t, sc.state.ValidTarget(6, start.X+7, start.Y))
	assert.Equal(t, AwaitingInput, sc.tick(t, Target(start.X+7, start.Y)).Kind)
	assert.True(t, sc.sim.World.IsAlive(scroll))

	// Find the monster wherever it walked to, then fire
	sc.tick(t, OpenInventory())
	sc.tick(t, Select(scroll))
	before := sc.hp(t, monster)
	mpos, _ := ecs.GetAs[*components.PositionComponent](sc.sim.World, monster, components.Position)
	require.True(t, sc.state.ValidTarget(6, mpos.X, mpos.Y))
	assert.Equal(t, PlayerTurn, sc.tick(t, Target(mpos.X, mpos.Y)).Kind)
	sc.tick(t, NoCommand()) // player pass: damage accumulates
	sc.tick(t, NoCommand()) // monster pass: damage resolves

	assert.Equal(t, before-8, sc.hp(t, monster))
	assert.False(t, sc.sim.World.IsAlive(scroll))
}

func TestDescend(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	start := sc.playerPos(t)

	assert.Equal(t, AwaitingInput, sc.tick(t, Descend()).Kind)
	assert.Equal(t, "There is no way down from here.", sc.sim.Log.Last())

	sc.sim.Map.Tiles[sc.sim.Map.Idx(start.X, start.Y)] = dungeon.TileDownStairs
	assert.Equal(t, NextLevel, sc.tick(t, Descend()).Kind)
	assert.Equal(t, PreRun, sc.tick(t, NoCommand()).Kind)
	assert.Equal(t, 2, sc.sim.Map.Depth)
	assert.Equal(t, AwaitingInput, sc.tick(t, NoCommand()).Kind)
}

func TestGotoNextLevel_KeepsOnlyPlayerAndBelongings(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	start := sc.playerPos(t)
	w := sc.sim.World

	carried := sc.item(t, start.X, start.Y, "Health Potion")
	w.RemoveComponent(carried, components.Position)
	w.AddComponent(carried, components.InBackpack, &components.InBackpackComponent{Owner: sc.sim.Player})
	worn := sc.item(t, start.X, start.Y, "Shield")
	w.RemoveComponent(worn, components.Position)
	w.AddComponent(worn, components.Equipped, &components.EquippedComponent{Owner: sc.sim.Player, Slot: components.SlotShield})
	floor := sc.item(t, 3, 3, "Dagger")
	monster, err := sc.spawner.CreateMonster(5, 5, "Goblin")
	require.NoError(t, err)
	require.NoError(t, w.Maintain())

	stats, _ := ecs.GetAs[*components.CombatStatsComponent](w, sc.sim.Player, components.CombatStats)
	stats.HP = 5

	var changes []systems.LevelChangeEvent
	ecs.Listen(w.GetEventManager(), systems.EventLevelChange, func(e systems.LevelChangeEvent) {
		changes = append(changes, e)
	})

	require.NoError(t, sc.state.GotoNextLevel())

	assert.True(t, w.IsAlive(sc.sim.Player))
	assert.True(t, w.IsAlive(carried))
	assert.True(t, w.IsAlive(worn))
	assert.False(t, w.IsAlive(floor))
	assert.False(t, w.IsAlive(monster))

	m := sc.sim.Map
	assert.Equal(t, 2, m.Depth)
	cx, cy := m.Rooms[0].Center()
	assert.Equal(t, components.PositionComponent{X: cx, Y: cy}, sc.playerPos(t))
	assert.Equal(t, 15, stats.HP)
	vs, _ := ecs.GetAs[*components.ViewshedComponent](w, sc.sim.Player, components.Viewshed)
	assert.True(t, vs.Dirty)
	assert.Equal(t, []systems.LevelChangeEvent{{Depth: 2}}, changes)
	assert.Equal(t, "You descend to the next level, and take a moment to heal.", sc.sim.Log.Last())

	// Nothing was spawned in the arrival room
	first := m.Rooms[0]
	for _, id := range w.Query(components.Position) {
		if id == sc.sim.Player {
			continue
		}
		pos, _ := ecs.GetAs[*components.PositionComponent](w, id, components.Position)
		inFirst := pos.X > first.X1 && pos.X <= first.X2 && pos.Y > first.Y1 && pos.Y <= first.Y2
		assert.False(t, inFirst, "entity %d spawned in the arrival room", id)
	}
}

func TestGotoNextLevel_HealKeepsHigherHP(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	stats, _ := ecs.GetAs[*components.CombatStatsComponent](sc.sim.World, sc.sim.Player, components.CombatStats)
	stats.HP = 25

	require.NoError(t, sc.state.GotoNextLevel())
	assert.Equal(t, 25, stats.HP)
}

type failingGenerator struct{}

func (failingGenerator) Generate(depth int) (*dungeon.Map, error) {
	return nil, generation.ErrNoRooms
}

func TestGotoNextLevel_GenerationFailureLeavesWorldIntact(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	sc.state.generator = failingGenerator{}
	monster, err := sc.spawner.CreateMonster(5, 5, "Goblin")
	require.NoError(t, err)
	require.NoError(t, sc.sim.World.Maintain())

	before := sc.sim.Map
	count := sc.sim.World.EntityCount()
	start := sc.playerPos(t)

	err = sc.state.GotoNextLevel()
	assert.ErrorIs(t, err, generation.ErrNoRooms)
	assert.Same(t, before, sc.sim.Map)
	assert.Equal(t, count, sc.sim.World.EntityCount())
	assert.True(t, sc.sim.World.IsAlive(monster))
	assert.Equal(t, start, sc.playerPos(t))

	// Through the scheduler the run carries on at the old level
	sc.state.runState = state(NextLevel)
	rs, err := sc.state.Tick(context.Background(), NoCommand())
	assert.ErrorIs(t, err, generation.ErrNoRooms)
	assert.Equal(t, AwaitingInput, rs.Kind)
}

// twoRoomGenerator always returns an open level with an arrival room and one spawn room
type twoRoomGenerator struct{}

func (twoRoomGenerator) Generate(depth int) (*dungeon.Map, error) {
	m := openLevel(20, 20, depth)
	m.Rooms = []dungeon.Rect{dungeon.NewRect(1, 1, 5, 5), dungeon.NewRect(10, 10, 6, 6)}
	return m, nil
}

func TestGotoNextLevel_SpawnFailureLeavesWorldIntact(t *testing.T) {
	sc := newScenario(t, state(AwaitingInput))
	start := sc.playerPos(t)
	floor := sc.item(t, start.X+1, start.Y, "Dagger")
	monster, err := sc.spawner.CreateMonster(5, 5, "Goblin")
	require.NoError(t, err)
	require.NoError(t, sc.sim.World.Maintain())

	// A catalogue with nothing but the player cannot fill a room
	playerOnly := data.NewEntityTemplateManager()
	playerOnly.Player = data.DefaultTemplates().Player
	sc.state.spawner = spawners.NewEntitySpawner(sc.sim.World, playerOnly, random.NewRNG(5), discardLogger())
	sc.state.generator = twoRoomGenerator{}
	// Deep enough that every room rolls several spawns
	sc.sim.Map.Depth = 9

	before := sc.sim.Map
	count := sc.sim.World.EntityCount()

	err = sc.state.GotoNextLevel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no template")

	assert.Same(t, before, sc.sim.Map)
	assert.True(t, sc.sim.World.IsAlive(floor))
	assert.True(t, sc.sim.World.IsAlive(monster))
	assert.Equal(t, start, sc.playerPos(t))
	require.NoError(t, sc.sim.World.Maintain())
	assert.Equal(t, count, sc.sim.World.EntityCount())
}

type fakePersistence struct {
	saved, loaded int
	loadErr       error
}

func (f *fakePersistence) Save(ctx context.Context, sim *systems.Context) error {
	f.saved++
	return nil
}

func (f *fakePersistence) Load(ctx context.Context, sim *systems.Context) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded++
	return nil
}

func TestMainMenuAndSave(t *testing.T) {
	sc := newScenario(t, RunState{Kind: MainMenu, Selection: SelectNewGame})
	store := &fakePersistence{}
	sc.state.persistence = store
	ctx := context.Background()

	rs := sc.tick(t, MenuHighlight(SelectQuit))
	assert.Equal(t, RunState{Kind: MainMenu, Selection: SelectQuit}, rs)
	assert.Equal(t, rs, sc.tick(t, NoCommand()))

	_, err := sc.state.Tick(ctx, MenuSelect(SelectQuit))
	assert.ErrorIs(t, err, ErrQuit)

	assert.Equal(t, PreRun, sc.tick(t, MenuSelect(SelectNewGame)).Kind)
	assert.Equal(t, AwaitingInput, sc.tick(t, NoCommand()).Kind)

	assert.Equal(t, SaveGame, sc.tick(t, Save()).Kind)
	assert.Equal(t, RunState{Kind: MainMenu, Selection: SelectLoadGame}, sc.tick(t, NoCommand()))
	assert.Equal(t, 1, store.saved)

	assert.Equal(t, AwaitingInput, sc.tick(t, MenuSelect(SelectLoadGame)).Kind)
	assert.Equal(t, 1, store.loaded)

	// A failed load stays on the menu
	store.loadErr = errors.New("disk on fire")
	sc.state.runState = RunState{Kind: MainMenu, Selection: SelectLoadGame}
	rs, err = sc.state.Tick(ctx, MenuSelect(SelectLoadGame))
	assert.Error(t, err)
	assert.Equal(t, MainMenu, rs.Kind)
}

func TestSaveWithoutPersistence(t *testing.T) {
	sc := newScenario(t, state(SaveGame))
	rs, err := sc.state.Tick(context.Background(), NoCommand())
	assert.ErrorIs(t, err, ErrNoPersistence)
	assert.Equal(t, AwaitingInput, rs.Kind)
}

func TestNewGame(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11

	s, err := NewGame(cfg, discardLogger(), nil)
	require.NoError(t, err)

	assert.Equal(t, RunState{Kind: MainMenu, Selection: SelectNewGame}, s.RunState())
	sim := s.Context()
	assert.Equal(t, 1, sim.Map.Depth)
	x, y := sim.Map.Rooms[0].Center()
	pos, ok := ecs.GetAs[*components.PositionComponent](sim.World, sim.Player, components.Position)
	require.True(t, ok)
	assert.Equal(t, components.PositionComponent{X: x, Y: y}, *pos)
	assert.Equal(t, int64(11), sim.RNG.Seed())

	ctx := context.Background()
	_, err = s.Tick(ctx, MenuSelect(SelectNewGame))
	require.NoError(t, err)
	rs, err := s.Tick(ctx, NoCommand())
	require.NoError(t, err)
	assert.Equal(t, AwaitingInput, rs.Kind)
	assert.True(t, sim.Map.VisibleTiles[sim.Map.Idx(x, y)])
}

func TestNewGame_RejectsTinyMap(t *testing.T) {
	cfg := config.Default()
	cfg.MapWidth = 5
	_, err := NewGame(cfg, discardLogger(), nil)
	assert.ErrorIs(t, err, generation.ErrNoRooms)
}

func TestNewGame_RejectsCatalogueMissingSpawnTemplates(t *testing.T) {
	full := data.DefaultTemplates()
	catalogue := data.Catalogue{Player: *full.Player}
	for _, m := range full.Templates {
		catalogue.Monsters = append(catalogue.Monsters, *m)
	}
	for id, item := range full.ItemTemplates {
		// Only rolled from depth 2 on
		if id == "Longsword" {
			continue
		}
		catalogue.Items = append(catalogue.Items, *item)
	}
	raw, err := json.Marshal(catalogue)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "templates.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg := config.Default()
	cfg.Seed = 11
	cfg.TemplatesPath = path
	_, err = NewGame(cfg, discardLogger(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Longsword")
}

func TestNewGame_BSPLayout(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 4
	cfg.Generator = "bsp"

	s, err := NewGame(cfg, discardLogger(), nil)
	require.NoError(t, err)

	sim := s.Context()
	require.NotEmpty(t, sim.Map.Rooms)
	x, y := sim.Map.Rooms[0].Center()
	pos, _ := ecs.GetAs[*components.PositionComponent](sim.World, sim.Player, components.Position)
	assert.Equal(t, components.PositionComponent{X: x, Y: y}, *pos)
}
