// Package intro provides the splash screen shown at startup.
package intro

import (
	"github.com/charmbracelet/log"
	"github.com/younwookim/playertest/internal/application/scene"
	"github.com/younwookim/playertest/internal/application/state"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
)

// Texture is the intro background
const Texture = "INTRO.bmp"

const hint = "Press Enter"

// Intro shows the splash image until Enter is pressed
type Intro struct {
	deps       scene.Deps
	logger     *log.Logger
	background texture.Handle
}

// New creates the intro scene
func New(deps scene.Deps) *Intro {
	return &Intro{
		deps:   deps,
		logger: deps.Logger.With("scene", state.KindIntro),
	}
}

func (s *Intro) Init() error {
	s.logger.Debug("init")
	s.background = s.deps.Textures.Get(Texture)
	return nil
}

func (s *Intro) Cleanup() { s.logger.Debug("cleanup") }
func (s *Intro) Pause()   { s.logger.Debug("pause") }
func (s *Intro) Resume()  { s.logger.Debug("resume") }

func (s *Intro) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.Quit:
		s.deps.Nav.Quit()
	case event.KeyDown:
		if e.Repeat {
			return
		}
		switch e.Key {
		case event.KeyEnter:
			s.deps.Nav.MainMenu()
		case event.KeyEscape:
			s.deps.Nav.Quit()
		case event.KeyArrowUp, event.KeyArrowDown, event.KeyArrowLeft, event.KeyArrowRight:
			s.logger.Debug("key pressed", "key", e.Key)
		}
	}
}

func (s *Intro) Update() error { return nil }

func (s *Intro) Draw(r scene.Renderer) {
	r.DrawBackground(s.background)
	w, h := r.Size()
	r.DrawText(hint, 0, h-h/4, w, h/8)
}

func (s *Intro) Kind() state.Kind { return state.KindIntro }
