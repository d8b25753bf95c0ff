package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/younwookim/playertest/internal/application/scene"
	"github.com/younwookim/playertest/internal/application/state"
)

// Stack is the ordered set of live scenes. Only the top scene is active;
// the ones below it are paused, not destroyed.
type Stack struct {
	entries  []scene.Scene
	phases   map[scene.Scene]state.Phase
	retained map[scene.Scene]bool
	logger   *log.Logger
}

// NewStack creates an empty stack
func NewStack(logger *log.Logger) *Stack {
	return &Stack{
		phases:   make(map[scene.Scene]state.Phase),
		retained: make(map[scene.Scene]bool),
		logger:   logger,
	}
}

// Top returns the active scene, or nil when the stack is empty
func (s *Stack) Top() scene.Scene {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Len returns the number of scenes on the stack
func (s *Stack) Len() int {
	return len(s.entries)
}

// Kinds lists the scene kinds from bottom to top.
func (s *Stack) Kinds() []state.Kind {
	kinds := make([]state.Kind, len(s.entries))
	for i, sc := range s.entries {
		kinds[i] = sc.Kind()
	}
	return kinds
}

// Retain marks sc as persistent: Pop and Change take it off the stack
// without cleaning it up. The owner cleans it up at shutdown.
func (s *Stack) Retain(sc scene.Scene) {
	s.retained[sc] = true
}

// Phase reports where sc is in its lifecycle
func (s *Stack) Phase(sc scene.Scene) state.Phase {
	return s.phases[sc]
}

// Push pauses the current top and makes sc active. If sc fails to
// initialise it is removed again and the previous top resumes.
func (s *Stack) Push(sc scene.Scene) error {
	prev := s.Top()
	if prev != nil {
		prev.Pause()
		s.phases[prev] = state.PhasePausedBelowTop
	}

	if err := s.enter(sc); err != nil {
		if prev != nil {
			prev.Resume()
			s.phases[prev] = state.PhaseActive
		}
		return err
	}
	return nil
}

// Change replaces the current top with sc.
func (s *Stack) Change(sc scene.Scene) error {
	if top := s.Top(); top != nil {
		s.entries = s.entries[:len(s.entries)-1]
		s.leave(top)
	}
	return s.enter(sc)
}

// Pop removes the top scene and resumes the one below it.
func (s *Stack) Pop() {
	top := s.Top()
	if top == nil {
		return
	}
	s.entries = s.entries[:len(s.entries)-1]
	s.leave(top)

	if next := s.Top(); next != nil {
		next.Resume()
		s.phases[next] = state.PhaseActive
		s.logger.Debug("scene resumed", "scene", next.Kind())
	}
}

// Clear removes every scene from the top down.
func (s *Stack) Clear() {
	for len(s.entries) > 0 {
		top := s.Top()
		s.entries = s.entries[:len(s.entries)-1]
		s.leave(top)
	}
}

func (s *Stack) enter(sc scene.Scene) error {
	s.entries = append(s.entries, sc)
	if err := sc.Init(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return fmt.Errorf("init %s scene: %w", sc.Kind(), err)
	}
	s.phases[sc] = state.PhaseActive
	s.logger.Info("scene entered", "scene", sc.Kind(), "depth", len(s.entries))
	return nil
}

func (s *Stack) leave(sc scene.Scene) {
	if s.retained[sc] {
		s.phases[sc] = state.PhaseDormant
		s.logger.Debug("scene retained", "scene", sc.Kind())
		return
	}
	sc.Cleanup()
	s.phases[sc] = state.PhaseCleanedUp
	s.logger.Info("scene left", "scene", sc.Kind())
}
