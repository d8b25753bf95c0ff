// Package playing provides the main gameplay scene.
package playing

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/younwookim/playertest/internal/application/scene"
	"github.com/younwookim/playertest/internal/application/state"
	"github.com/younwookim/playertest/internal/domain/entity"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
	"github.com/younwookim/playertest/internal/infrastructure/storage"
)

// Texture is the gameplay background
const Texture = "game.png"

// storeTimeout bounds each session store call
const storeTimeout = 2 * time.Second

// Playing moves a single player around the window
type Playing struct {
	deps       scene.Deps
	logger     *log.Logger
	background texture.Handle
	player     *entity.Player
}

// New creates the gameplay scene
func New(deps scene.Deps) *Playing {
	return &Playing{
		deps:   deps,
		logger: deps.Logger.With("scene", state.KindPlaying),
	}
}

func (s *Playing) Init() error {
	s.logger.Debug("init")
	cfg := s.deps.Config.Player

	s.background = s.deps.Textures.Get(Texture)
	tex := s.deps.Textures.Get(cfg.Texture)

	w, h := cfg.Width, cfg.Height
	if tw, th, ok := s.deps.Textures.Size(tex); ok {
		w, h = tw, th
	}
	s.player = entity.NewPlayer(tex, w, h, cfg.Velocity)

	if s.deps.Store != nil && s.deps.Config.Save.Restore {
		s.restore()
	}
	return nil
}

func (s *Playing) restore() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	sess, ok, err := s.deps.Store.LatestSession(ctx)
	if err != nil {
		s.logger.Warn("could not load last session", "error", err)
		return
	}
	if !ok {
		return
	}
	aw, ah := s.deps.Viewport()
	s.player.SetPos(sess.PlayerX, sess.PlayerY, aw, ah)
	s.logger.Info("session restored", "id", sess.ID, "x", s.player.X, "y", s.player.Y)
}

// Cleanup saves the player position when a store is configured. A failed
// save is logged and otherwise ignored.
func (s *Playing) Cleanup() {
	s.logger.Debug("cleanup")
	if s.deps.Store == nil || s.player == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	sess := storage.NewSession(s.player.X, s.player.Y)
	if err := s.deps.Store.SaveSession(ctx, sess); err != nil {
		s.logger.Warn("could not save session", "error", err)
		return
	}
	s.logger.Debug("session saved", "id", sess.ID)
}

// Pause drops held keys; their releases go to the overlay instead.
func (s *Playing) Pause() {
	s.logger.Debug("pause")
	s.player.Release()
}

func (s *Playing) Resume() { s.logger.Debug("resume") }

func (s *Playing) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.Quit:
		s.deps.Nav.Quit()
		return
	case event.FocusChanged:
		// Key releases are not delivered to an unfocused window
		if !e.Focused {
			s.player.Release()
		}
		return
	case event.KeyDown:
		if e.Key == event.KeyEscape {
			if !e.Repeat {
				s.deps.Nav.Pause()
			}
			return
		}
	}
	s.player.HandleEvent(ev)
}

func (s *Playing) Update() error {
	s.player.Update(s.deps.Viewport())
	return nil
}

func (s *Playing) Draw(r scene.Renderer) {
	r.DrawBackground(s.background)
	r.DrawTexture(s.player.Texture, s.player.X, s.player.Y)
}

func (s *Playing) Kind() state.Kind { return state.KindPlaying }

// Player returns the controlled player
func (s *Playing) Player() *entity.Player { return s.player }
