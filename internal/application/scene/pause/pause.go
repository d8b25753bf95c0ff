// Package pause provides the overlay shown on top of a paused game.
//
// The pause scene is built once and retained by the game for the whole
// run, so Init only re-lays out the buttons after the first call.
package pause

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/younwookim/playertest/internal/application/scene"
	"github.com/younwookim/playertest/internal/application/state"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
	"github.com/younwookim/playertest/internal/domain/ui"
)

// Texture is the translucent pause backdrop
const Texture = "pause.png"

// Shade dims the frozen frame when the backdrop texture is missing
var Shade = color.RGBA{0, 0, 0, 160}

// Pause offers Resume, Options, Main Menu and Quit
type Pause struct {
	deps       scene.Deps
	logger     *log.Logger
	background texture.Handle
	buttons    *ui.Menu
	inits      int
}

// New creates the pause scene
func New(deps scene.Deps) *Pause {
	return &Pause{
		deps:   deps,
		logger: deps.Logger.With("scene", state.KindPaused),
	}
}

func (s *Pause) Init() error {
	s.inits++
	s.logger.Debug("init", "count", s.inits)
	if s.buttons == nil {
		s.build()
	}
	s.buttons.Layout(s.deps.Viewport())
	return nil
}

func (s *Pause) build() {
	cfg := s.deps.Config.Menu
	s.background = s.deps.Textures.Get(Texture)
	tex := s.deps.Textures.Get(cfg.Texture)

	s.buttons = ui.NewMenu(cfg.Spacing)
	s.buttons.Add(ui.NewButton("Resume", ui.ActionResume, tex, cfg.ButtonWidth, cfg.ButtonHeight))
	s.buttons.Add(ui.NewButton("Options", ui.ActionOptions, tex, cfg.ButtonWidth, cfg.ButtonHeight))
	s.buttons.Add(ui.NewButton("Main Menu", ui.ActionMainMenu, tex, cfg.ButtonWidth, cfg.ButtonHeight))
	s.buttons.Add(ui.NewButton("Quit", ui.ActionQuit, tex, cfg.ButtonWidth, cfg.ButtonHeight))
}

// Cleanup keeps the buttons; the scene is reused on the next pause.
func (s *Pause) Cleanup() { s.logger.Debug("cleanup") }
func (s *Pause) Pause()   { s.logger.Debug("pause") }

func (s *Pause) Resume() {
	s.logger.Debug("resume")
	s.buttons.Layout(s.deps.Viewport())
}

func (s *Pause) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.Quit:
		s.deps.Nav.Quit()
	case event.WindowResized:
		s.buttons.Layout(e.W, e.H)
	case event.MouseMotion:
		s.buttons.HandleEvent(e)
	case event.MouseButtonDown:
		s.activate(s.buttons.Clicked(e))
	case event.KeyDown:
		if !e.Repeat && e.Key == event.KeyEscape {
			s.deps.Nav.Resume()
		}
	}
}

func (s *Pause) activate(a ui.Action) {
	switch a {
	case ui.ActionResume:
		s.deps.Nav.Resume()
	case ui.ActionOptions:
		s.deps.Nav.OpenOptions()
	case ui.ActionMainMenu:
		s.deps.Nav.QuitToMenu()
	case ui.ActionQuit:
		s.deps.Nav.Quit()
	}
}

func (s *Pause) Update() error { return nil }

func (s *Pause) Draw(r scene.Renderer) {
	r.DrawFrozen()
	if s.background.Valid() {
		r.DrawBackground(s.background)
	} else {
		r.DrawOverlay(Shade)
	}
	s.buttons.Draw(r)
}

func (s *Pause) Kind() state.Kind { return state.KindPaused }

// Buttons exposes the button column
func (s *Pause) Buttons() *ui.Menu { return s.buttons }

// Inits returns how many times the scene has been entered
func (s *Pause) Inits() int { return s.inits }
