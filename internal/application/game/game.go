// Package game provides the main game loop that owns the scene stack and
// performs the transitions scenes request.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playertest/internal/application/scene"
	"github.com/younwookim/playertest/internal/application/system"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/infrastructure/config"
)

// Display is the renderer as seen by the game loop.
type Display interface {
	scene.Renderer
	HandleEvent(ev event.Event)
	Clear()
	Present(screen *ebiten.Image)
	Freeze()
	Thaw()
	DrawDebug(s string)
	Dispose()
}

// TextureCache is the texture cache as seen by the game loop.
type TextureCache interface {
	scene.Textures
	Init(names ...string) error
	Dispose()
}

// Store is a session store that must be closed at shutdown.
type Store interface {
	scene.SessionStore
	io.Closer
}

// Factory builds a fresh scene for each transition.
type Factory struct {
	Intro   func(scene.Deps) scene.Scene
	Menu    func(scene.Deps) scene.Scene
	Playing func(scene.Deps) scene.Scene
	Pause   func(scene.Deps) scene.Scene
	Options func(scene.Deps) scene.Scene
}

// Options configures a Game.
type Options struct {
	Config   *config.GameConfig
	Logger   *log.Logger
	Input    system.EventSource
	Display  Display
	Textures TextureCache
	// Store may be nil
	Store  Store
	Scenes Factory
}

// Game implements ebiten.Game and scene.Navigator.
type Game struct {
	cfg      *config.GameConfig
	logger   *log.Logger
	input    system.EventSource
	display  Display
	textures TextureCache
	store    Store
	scenes   Factory
	settings *scene.Settings

	stack   *Stack
	pause   scene.Scene
	paused  bool
	running bool
	navErr  error

	resizeW, resizeH int
}

// New creates a game. Call Init before running it.
func New(opts Options) *Game {
	return &Game{
		cfg:      opts.Config,
		logger:   opts.Logger,
		input:    opts.Input,
		display:  opts.Display,
		textures: opts.Textures,
		store:    opts.Store,
		scenes:   opts.Scenes,
		settings: &scene.Settings{ShowFPS: opts.Config.Debug},
		stack:    NewStack(opts.Logger),
		running:  true,
	}
}

// Init loads the preloaded textures, builds and initialises the retained
// pause scene and enters the intro. Any failure aborts startup.
func (g *Game) Init() error {
	if err := g.textures.Init(); err != nil {
		return fmt.Errorf("texture cache: %w", err)
	}

	g.pause = g.scenes.Pause(g.deps())
	if g.pause == nil {
		return errors.New("pause scene: factory returned nil")
	}
	if err := g.pause.Init(); err != nil {
		return fmt.Errorf("init %s scene: %w", g.pause.Kind(), err)
	}
	g.stack.Retain(g.pause)

	if err := g.stack.Push(g.scenes.Intro(g.deps())); err != nil {
		return err
	}
	return nil
}

// deps builds the dependency set handed to a new scene
func (g *Game) deps() scene.Deps {
	d := scene.Deps{
		Nav:      g,
		Textures: g.textures,
		Viewport: g.display.Size,
		Logger:   g.logger,
		Config:   g.cfg,
		Settings: g.settings,
	}
	if g.store != nil {
		d.Store = g.store
	}
	return d
}

// Update polls input, dispatches it to the active scene and updates it.
func (g *Game) Update() error {
	events := g.input.Poll()
	if g.resizeW > 0 {
		events = append([]event.Event{event.WindowResized{W: g.resizeW, H: g.resizeH}}, events...)
		g.resizeW, g.resizeH = 0, 0
	}

	for _, ev := range events {
		g.dispatch(ev)
		if g.navErr != nil {
			return g.navErr
		}
	}

	if !g.running {
		return ebiten.Termination
	}

	top := g.stack.Top()
	if top == nil {
		return errors.New("no active scene")
	}
	return top.Update()
}

// dispatch routes one event. The top is looked up per event so a
// transition takes effect for the rest of the batch.
func (g *Game) dispatch(ev event.Event) {
	switch e := ev.(type) {
	case event.Quit:
		g.Quit()
	case event.KeyDown:
		if e.Key == event.KeyF3 && !e.Repeat {
			g.settings.ShowFPS = !g.settings.ShowFPS
		}
	}

	if event.IsWindowEvent(ev) {
		g.display.HandleEvent(ev)
	}

	if top := g.stack.Top(); top != nil {
		top.HandleEvent(ev)
	}
}

// Draw renders the active scene on a cleared canvas. Overlays shown while
// paused repaint the frozen frame themselves.
func (g *Game) Draw(screen *ebiten.Image) {
	g.display.Clear()
	if top := g.stack.Top(); top != nil {
		top.Draw(g.display)
	}
	if g.settings.ShowFPS {
		g.display.DrawDebug(fmt.Sprintf("FPS: %0.1f\nTPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	g.display.Present(screen)
}

// Layout follows the window size. A change is delivered as a
// WindowResized event on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.cfg.Display.Resizable {
		return g.cfg.Display.Width, g.cfg.Display.Height
	}
	w, h := g.display.Size()
	if outsideWidth != w || outsideHeight != h {
		g.resizeW, g.resizeH = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// Shutdown cleans up every scene, the pause scene, the canvas, the
// textures and the store, in that order.
func (g *Game) Shutdown() {
	g.stack.Clear()
	if g.pause != nil {
		g.pause.Cleanup()
		g.pause = nil
	}
	g.display.Thaw()
	g.display.Dispose()
	g.textures.Dispose()
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			g.logger.Warn("closing session store", "error", err)
		}
	}
	g.logger.Info("shutdown complete")
}

// Running reports whether Quit has not been requested yet
func (g *Game) Running() bool {
	return g.running
}

// Paused reports whether the pause overlay is up
func (g *Game) Paused() bool {
	return g.paused
}

// Settings returns the shared runtime toggles
func (g *Game) Settings() *scene.Settings {
	return g.settings
}

// Stack exposes the scene stack
func (g *Game) Stack() *Stack {
	return g.stack
}

func (g *Game) fail(err error) {
	if err != nil && g.navErr == nil {
		g.navErr = err
		g.logger.Error("scene transition failed", "error", err)
	}
}

// MainMenu replaces the active scene with the menu.
func (g *Game) MainMenu() {
	g.fail(g.stack.Change(g.scenes.Menu(g.deps())))
}

// StartGame replaces the active scene with gameplay.
func (g *Game) StartGame() {
	g.fail(g.stack.Change(g.scenes.Playing(g.deps())))
}

// Pause freezes the current frame and pushes the pause overlay.
func (g *Game) Pause() {
	if g.paused {
		return
	}
	g.paused = true
	g.display.Freeze()
	if err := g.stack.Push(g.pause); err != nil {
		g.paused = false
		g.display.Thaw()
		g.fail(err)
	}
}

// Resume pops the pause overlay.
func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.stack.Pop()
	g.paused = false
	g.display.Thaw()
}

// QuitToMenu leaves the paused game for the main menu.
func (g *Game) QuitToMenu() {
	g.Resume()
	g.MainMenu()
}

// OpenOptions pushes the options screen.
func (g *Game) OpenOptions() {
	g.fail(g.stack.Push(g.scenes.Options(g.deps())))
}

// Back pops the active scene. The bottom scene is never popped.
func (g *Game) Back() {
	if g.stack.Len() > 1 {
		g.stack.Pop()
	}
}

// Quit ends the loop after the current batch.
func (g *Game) Quit() {
	if g.running {
		g.logger.Info("quit requested")
	}
	g.running = false
}
