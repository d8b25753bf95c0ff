// Package scene defines the Scene interface for game screens.
//
// Each game screen (intro, menu, playing, pause, options) implements the
// Scene interface. Scenes never hold a pointer to the game; they receive a
// Deps value with the narrow ports they are allowed to use.
package scene

import (
	"context"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playertest/internal/application/state"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
	"github.com/younwookim/playertest/internal/domain/ui"
	"github.com/younwookim/playertest/internal/infrastructure/config"
	"github.com/younwookim/playertest/internal/infrastructure/storage"
)

// Scene represents a game screen.
//
// The stack calls Init when the scene becomes active for the first time,
// Pause/Resume when another scene is pushed above it or popped off it, and
// Cleanup when it is removed for good.
type Scene interface {
	// Init prepares the scene. An error aborts the transition.
	Init() error

	// Cleanup releases what Init acquired.
	Cleanup()

	// Pause is called when another scene is pushed above this one.
	Pause()

	// Resume is called when the scene above this one is popped.
	Resume()

	// HandleEvent reacts to a single input event.
	HandleEvent(ev event.Event)

	// Update advances the scene by one tick.
	Update() error

	// Draw renders the scene through the renderer.
	Draw(r Renderer)

	// Kind identifies the scene variant.
	Kind() state.Kind
}

// Navigator is the set of screen transitions a scene may request.
// Requests made while handling an event take effect immediately, so the
// remaining events of the batch go to the new top scene.
type Navigator interface {
	MainMenu()
	StartGame()
	Pause()
	Resume()
	QuitToMenu()
	OpenOptions()
	Back()
	Quit()
}

// Textures resolves texture names to handles owned by the cache.
type Textures interface {
	Get(name string) texture.Handle
	Size(tex texture.Handle) (w, h int, ok bool)
}

// Renderer is the drawing surface scenes paint on.
type Renderer interface {
	ui.ButtonDrawer

	// Size returns the current drawable area.
	Size() (w, h int)
	DrawBackground(tex texture.Handle)
	DrawTexture(tex texture.Handle, x, y int)
	DrawText(s string, x, y, w, h int)
	DrawOverlay(c color.Color)
	// DrawFrozen paints the frame captured when the game was paused.
	DrawFrozen()
	// Canvas exposes the offscreen target for widget toolkits.
	Canvas() *ebiten.Image
}

// SessionStore persists the play state between runs.
type SessionStore interface {
	SaveSession(ctx context.Context, s storage.Session) error
	LatestSession(ctx context.Context) (storage.Session, bool, error)
}

// Settings holds runtime toggles shared between scenes and the game loop.
type Settings struct {
	ShowFPS bool
}

// Deps bundles everything a scene may use.
type Deps struct {
	Nav      Navigator
	Textures Textures
	// Viewport reports the drawable area for layout and clamping.
	Viewport func() (w, h int)
	Logger   *log.Logger
	Config   *config.GameConfig
	Settings *Settings
	// Store is nil when saving is disabled.
	Store SessionStore
}
