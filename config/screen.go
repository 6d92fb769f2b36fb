package config

// Screen layout configuration
const (
	// Cell size in pixels; the debug font is 6x16
	TileWidth  = 8
	TileHeight = 16

	// Window dimensions in cells
	ScreenWidth  = 80
	ScreenHeight = 50

	// UI layout
	GameScreenWidth  = 80 // Map area width in cells
	GameScreenHeight = 43 // Map area height in cells
	LogPanelHeight   = ScreenHeight - GameScreenHeight

	// Window dimensions in pixels (derived from cell dimensions)
	WindowWidth  = ScreenWidth * TileWidth
	WindowHeight = ScreenHeight * TileHeight
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth * 3 / 2, WindowHeight * 3 / 2
}
