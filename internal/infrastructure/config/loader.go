package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultFile is the config file read by LoadGame
const DefaultFile = "game.json"

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader rooted at dir
func NewLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads the named JSON file on top of Default, so omitted fields keep
// their default values, and validates the result.
func (l *Loader) Load(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return cfg, nil
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	return l.Load(DefaultFile)
}

// Default returns the built-in configuration: a resizable 640x480 window at
// 60 ticks per second with assets under resource/.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Title:     "Player Test",
			Width:     640,
			Height:    480,
			Framerate: 60,
			Resizable: true,
		},
		Assets: AssetsConfig{
			Root:         "resource",
			TextureDir:   "texture",
			Font:         "font/TrenchThin-aZ1J.ttf",
			FontSize:     30,
			Placeholders: true,
		},
		Input: InputConfig{
			RepeatDelay:    24,
			RepeatInterval: 4,
		},
		Player: PlayerConfig{
			Velocity: 10,
			Width:    16,
			Height:   16,
			Texture:  "player.png",
		},
		Menu: MenuConfig{
			ButtonWidth:  200,
			ButtonHeight: 50,
			Spacing:      60,
			Texture:      "button.png",
		},
		Save: SaveConfig{
			Restore: true,
		},
	}
}

// Validate rejects sizes and rates that cannot produce a playable window.
func (c *GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("display.width", c.Display.Width)
	positive("display.height", c.Display.Height)
	positive("display.framerate", c.Display.Framerate)
	positive("input.repeatDelay", c.Input.RepeatDelay)
	positive("input.repeatInterval", c.Input.RepeatInterval)
	positive("player.velocity", c.Player.Velocity)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("menu.buttonWidth", c.Menu.ButtonWidth)
	positive("menu.buttonHeight", c.Menu.ButtonHeight)
	positive("menu.spacing", c.Menu.Spacing)

	if c.Assets.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("assets.fontSize must be positive, got %g", c.Assets.FontSize))
	}

	return errors.Join(errs...)
}

// Overrides carries command line values that take precedence over the file.
// Zero values leave the file value untouched.
type Overrides struct {
	AssetsRoot string
	SavePath   string
	Debug      bool
}

// Apply writes the non-zero overrides into c.
func (o Overrides) Apply(c *GameConfig) {
	if o.AssetsRoot != "" {
		c.Assets.Root = o.AssetsRoot
	}
	if o.SavePath != "" {
		c.Save.Path = o.SavePath
	}
	if o.Debug {
		c.Debug = true
	}
}
