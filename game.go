package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-delve/config"
	"ebiten-delve/gamestate"
	"ebiten-delve/input"
	"ebiten-delve/saveload"
	"ebiten-delve/screens"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg        config.Config
	logger     *slog.Logger
	store      *saveload.FileStore
	state      *gamestate.State
	decoder    *input.Decoder
	base       *screens.BaseScreen
	gameScreen *screens.GameScreen
	stack      *screens.ScreenStack
}

// NewGame creates a new game instance sitting on the main menu
func NewGame(cfg config.Config, logger *slog.Logger) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		store:   saveload.NewFileStore(cfg.SavePath),
		decoder: input.NewDecoder(input.EbitenDevice{}, config.TileWidth, config.TileHeight),
		base:    screens.NewBaseScreen(screens.NewTileset(config.TileWidth, config.TileHeight)),
		stack:   screens.NewScreenStack(),
	}
	if err := g.newRun(); err != nil {
		return nil, err
	}
	return g, nil
}

// newRun replaces the current run with a freshly generated one
func (g *Game) newRun() error {
	state, err := gamestate.NewGame(g.cfg, g.logger, g.store)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	g.state = state
	g.gameScreen = screens.NewGameScreen(g.base, state)
	g.syncScreens()
	return nil
}

// Update advances the scheduler by one tick per frame
func (g *Game) Update() error {
	rs := g.state.RunState()

	if rs.Kind == gamestate.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return g.newRun()
		}
		return nil
	}

	cmd := gamestate.NoCommand()
	if rs.AcceptsInput() {
		cmd = g.decoder.Decode(rs, g.state.MenuItems(rs.Kind))
	}

	_, err := g.state.Tick(context.Background(), cmd)
	switch {
	case errors.Is(err, gamestate.ErrQuit):
		return ebiten.Termination
	case err != nil && recoverable(rs.Kind):
		g.logger.Warn("action failed", "state", rs, "error", err)
	case err != nil:
		return err
	}

	g.syncScreens()
	return nil
}

// recoverable reports whether a tick error in this state leaves the run playable
func recoverable(kind gamestate.RunStateKind) bool {
	switch kind {
	case gamestate.MainMenu, gamestate.NextLevel, gamestate.SaveGame:
		return true
	default:
		return false
	}
}

// syncScreens rebuilds the screen stack for the current run state
func (g *Game) syncScreens() {
	rs := g.state.RunState()
	switch rs.Kind {
	case gamestate.MainMenu:
		g.stack.Reset(screens.NewStartScreen(g.base, rs.Selection, g.store.Exists()))
	case gamestate.ShowInventory, gamestate.ShowDropItem, gamestate.ShowRemoveItem:
		items := g.state.MenuItems(rs.Kind)
		g.stack.Reset(g.gameScreen, screens.NewItemMenuScreen(g.base, rs.Kind, g.state.Context().World, items))
	case gamestate.ShowTargeting:
		g.stack.Reset(g.gameScreen, screens.NewTargetingScreen(g.base, g.state, rs.Range))
	case gamestate.GameOver:
		g.stack.Reset(g.gameScreen, screens.NewGameOverScreen(g.base))
	default:
		g.stack.Reset(g.gameScreen)
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
