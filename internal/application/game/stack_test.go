package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/playertest/internal/application/state"
	"github.com/younwookim/playertest/internal/infrastructure/logging"
)

func newTestStack() *Stack {
	return NewStack(logging.Discard())
}

func TestStack_Empty(t *testing.T) {
	s := newTestStack()

	assert.Nil(t, s.Top())
	assert.Zero(t, s.Len())
	s.Pop()
	s.Clear()
}

func TestStack_PushPausesPrevious(t *testing.T) {
	s := newTestStack()
	a := &mockScene{kind: state.KindMenu}
	b := &mockScene{kind: state.KindOptions}

	require.NoError(t, s.Push(a))
	require.NoError(t, s.Push(b))

	assert.Equal(t, b, s.Top())
	assert.Equal(t, 1, a.pauseCalled)
	assert.Equal(t, 1, b.initCalled)
	assert.Equal(t, state.PhasePausedBelowTop, s.Phase(a))
	assert.Equal(t, state.PhaseActive, s.Phase(b))
}

func TestStack_PopIsLIFO(t *testing.T) {
	s := newTestStack()
	scenes := []*mockScene{
		{kind: state.KindIntro},
		{kind: state.KindMenu},
		{kind: state.KindPlaying},
		{kind: state.KindOptions},
	}
	for _, sc := range scenes {
		require.NoError(t, s.Push(sc))
	}

	for i := len(scenes) - 1; i > 0; i-- {
		s.Pop()
		assert.Equal(t, scenes[i-1], s.Top(), "pop returns to the scene active before push %d", i)
		assert.Equal(t, 1, scenes[i].cleanupCalled)
		assert.Equal(t, 1, scenes[i-1].resumeCalled)
		assert.Equal(t, state.PhaseCleanedUp, s.Phase(scenes[i]))
	}
}

func TestStack_Change(t *testing.T) {
	s := newTestStack()
	intro := &mockScene{kind: state.KindIntro}
	menu := &mockScene{kind: state.KindMenu}

	require.NoError(t, s.Push(intro))
	require.NoError(t, s.Change(menu))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, menu, s.Top())
	assert.Equal(t, 1, intro.cleanupCalled)
	assert.Zero(t, intro.pauseCalled, "change does not pause")
	assert.Equal(t, state.PhaseCleanedUp, s.Phase(intro))
}

func TestStack_ChangeOnEmpty(t *testing.T) {
	s := newTestStack()
	menu := &mockScene{kind: state.KindMenu}

	require.NoError(t, s.Change(menu))

	assert.Equal(t, menu, s.Top())
}

func TestStack_IntroMenuPausePopScenario(t *testing.T) {
	s := newTestStack()
	intro := &mockScene{kind: state.KindIntro}
	menu := &mockScene{kind: state.KindMenu}
	pause := &mockScene{kind: state.KindPaused}
	s.Retain(pause)

	require.NoError(t, s.Push(intro))
	require.NoError(t, s.Change(menu))
	require.NoError(t, s.Push(pause))
	s.Pop()

	assert.Equal(t, menu, s.Top())
	assert.Equal(t, state.PhaseActive, s.Phase(menu))
	assert.Zero(t, pause.cleanupCalled, "the retained scene is not cleaned up on pop")
	assert.Equal(t, state.PhaseDormant, s.Phase(pause))
}

func TestStack_RetainedSurvivesChange(t *testing.T) {
	s := newTestStack()
	pause := &mockScene{kind: state.KindPaused}
	s.Retain(pause)

	require.NoError(t, s.Push(pause))
	require.NoError(t, s.Change(&mockScene{kind: state.KindMenu}))

	assert.Zero(t, pause.cleanupCalled)
	assert.Equal(t, state.PhaseDormant, s.Phase(pause))
}

func TestStack_PushInitFailure(t *testing.T) {
	s := newTestStack()
	menu := &mockScene{kind: state.KindMenu}
	broken := &mockScene{kind: state.KindOptions, initErr: errors.New("no widgets")}
	require.NoError(t, s.Push(menu))

	err := s.Push(broken)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Options")
	assert.Contains(t, err.Error(), "no widgets")
	assert.Equal(t, menu, s.Top())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, menu.resumeCalled, "the previous top resumes")
	assert.Equal(t, state.PhaseActive, s.Phase(menu))
	assert.Equal(t, state.PhaseUninitialized, s.Phase(broken))
}

func TestStack_Clear(t *testing.T) {
	s := newTestStack()
	menu := &mockScene{kind: state.KindMenu}
	playing := &mockScene{kind: state.KindPlaying}
	pause := &mockScene{kind: state.KindPaused}
	s.Retain(pause)
	require.NoError(t, s.Push(menu))
	require.NoError(t, s.Push(playing))
	require.NoError(t, s.Push(pause))

	s.Clear()

	assert.Zero(t, s.Len())
	assert.Equal(t, 1, menu.cleanupCalled)
	assert.Equal(t, 1, playing.cleanupCalled)
	assert.Zero(t, pause.cleanupCalled)
	assert.Zero(t, menu.resumeCalled, "clear does not resume scenes it is about to remove")
}

func TestStack_Kinds(t *testing.T) {
	s := newTestStack()
	require.NoError(t, s.Push(&mockScene{kind: state.KindMenu}))
	require.NoError(t, s.Push(&mockScene{kind: state.KindOptions}))

	assert.Equal(t, []state.Kind{state.KindMenu, state.KindOptions}, s.Kinds())
}
