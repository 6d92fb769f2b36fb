package gamestate

import (
	"fmt"
	"log/slog"
	"time"

	"ebiten-delve/config"
	"ebiten-delve/data"
	"ebiten-delve/ecs"
	"ebiten-delve/generation"
	"ebiten-delve/random"
	"ebiten-delve/spawners"
	"ebiten-delve/systems"
)

// NewGame builds the first level and the player from the configuration and
// returns a scheduler sitting on the main menu
func NewGame(cfg config.Config, logger *slog.Logger, persistence Persistence) (*State, error) {
	if logger == nil {
		logger = slog.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := random.NewRNG(seed)

	templates := data.DefaultTemplates()
	if cfg.TemplatesPath != "" {
		loaded, err := data.LoadTemplatesFromFile(cfg.TemplatesPath)
		if err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
		templates = loaded
	}
	if err := spawners.CheckTemplates(templates); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	templates.Player.Health = cfg.PlayerHP
	templates.Player.Power = cfg.PlayerPower
	templates.Player.Defense = cfg.PlayerDefense
	templates.Player.VisionRange = cfg.ViewRange

	generator := generation.NewDungeonGenerator(generation.Config{
		Width:       cfg.MapWidth,
		Height:      cfg.MapHeight,
		MaxRooms:    cfg.MaxRooms,
		MinRoomSize: cfg.RoomMinSize,
		MaxRoomSize: cfg.RoomMaxSize,
		Algorithm:   generation.Algorithm(cfg.Generator),
	}, rng)

	m, err := generator.Generate(1)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	world := ecs.NewWorld()
	spawner := spawners.NewEntitySpawner(world, templates, rng, logger)

	playerX, playerY := m.Rooms[0].Center()
	player := spawner.CreatePlayer(playerX, playerY)
	for _, room := range m.Rooms[1:] {
		if err := spawner.SpawnRoom(room, m.Depth, cfg.MaxSpawns); err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
	}
	if err := world.Maintain(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	sim := &systems.Context{
		World:  world,
		Map:    m,
		Player: player,
		RNG:    rng,
		Log:    systems.NewGameLog(cfg.LogCapacity),
		Logger: logger,
	}
	sim.Log.AddAlert("Welcome to the dungeon!")
	logger.Info("new game", "seed", seed, "rooms", len(m.Rooms), "entities", world.EntityCount())

	return New(sim, Options{
		Generator:   generator,
		Spawner:     spawner,
		Persistence: persistence,
		MaxSpawns:   cfg.MaxSpawns,
		Initial:     RunState{Kind: MainMenu, Selection: SelectNewGame},
	}), nil
}
