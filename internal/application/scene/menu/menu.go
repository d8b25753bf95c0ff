// Package menu provides the main menu scene.
package menu

import (
	"github.com/charmbracelet/log"
	"github.com/younwookim/playertest/internal/application/scene"
	"github.com/younwookim/playertest/internal/application/state"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
	"github.com/younwookim/playertest/internal/domain/ui"
)

// Texture is the menu background
const Texture = "menu.png"

// Menu offers Start, Options and Quit
type Menu struct {
	deps       scene.Deps
	logger     *log.Logger
	background texture.Handle
	buttons    *ui.Menu
}

// New creates the menu scene
func New(deps scene.Deps) *Menu {
	return &Menu{
		deps:   deps,
		logger: deps.Logger.With("scene", state.KindMenu),
	}
}

func (s *Menu) Init() error {
	s.logger.Debug("init")
	cfg := s.deps.Config.Menu
	s.background = s.deps.Textures.Get(Texture)
	tex := s.deps.Textures.Get(cfg.Texture)

	s.buttons = ui.NewMenu(cfg.Spacing)
	s.buttons.Add(ui.NewButton("Start", ui.ActionStart, tex, cfg.ButtonWidth, cfg.ButtonHeight))
	s.buttons.Add(ui.NewButton("Options", ui.ActionOptions, tex, cfg.ButtonWidth, cfg.ButtonHeight))
	s.buttons.Add(ui.NewButton("Quit", ui.ActionQuit, tex, cfg.ButtonWidth, cfg.ButtonHeight))
	s.buttons.Layout(s.deps.Viewport())
	return nil
}

func (s *Menu) Cleanup() { s.logger.Debug("cleanup") }
func (s *Menu) Pause()   { s.logger.Debug("pause") }

// Resume re-lays out the buttons; the window may have been resized while
// another scene was on top.
func (s *Menu) Resume() {
	s.logger.Debug("resume")
	s.buttons.Layout(s.deps.Viewport())
}

func (s *Menu) HandleEvent(ev event.Event) {
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
		if !e.Repeat && e.Key == event.KeyEnter {
			s.deps.Nav.StartGame()
		}
	}
}

func (s *Menu) activate(a ui.Action) {
	if a != ui.ActionNone {
		s.logger.Debug("button clicked", "action", a)
	}
	switch a {
	case ui.ActionStart:
		s.deps.Nav.StartGame()
	case ui.ActionOptions:
		s.deps.Nav.OpenOptions()
	case ui.ActionQuit:
		s.deps.Nav.Quit()
	}
}

func (s *Menu) Update() error { return nil }

func (s *Menu) Draw(r scene.Renderer) {
	r.DrawBackground(s.background)
	s.buttons.Draw(r)
}

func (s *Menu) Kind() state.Kind { return state.KindMenu }

// Buttons exposes the button column
func (s *Menu) Buttons() *ui.Menu { return s.buttons }
