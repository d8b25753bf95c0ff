package intro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/playertest/internal/application/scene/scenetest"
	"github.com/younwookim/playertest/internal/application/state"
	"github.com/younwookim/playertest/internal/domain/event"
)

func newIntro(t *testing.T) (*Intro, *scenetest.Nav) {
	t.Helper()
	nav := &scenetest.Nav{}
	tex := scenetest.NewTextures(map[string]scenetest.Size{Texture: {W: 640, H: 480}})
	s := New(scenetest.Deps(nav, tex, scenetest.NewRenderer(640, 480)))
	require.NoError(t, s.Init())
	return s, nav
}

func TestIntro_Kind(t *testing.T) {
	s, _ := newIntro(t)
	assert.Equal(t, state.KindIntro, s.Kind())
}

func TestIntro_HandleEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   event.Event
		want []string
	}{
		{"enter opens menu", event.KeyDown{Key: event.KeyEnter}, []string{"MainMenu"}},
		{"escape quits", event.KeyDown{Key: event.KeyEscape}, []string{"Quit"}},
		{"quit quits", event.Quit{}, []string{"Quit"}},
		{"repeated enter ignored", event.KeyDown{Key: event.KeyEnter, Repeat: true}, nil},
		{"arrow only logs", event.KeyDown{Key: event.KeyArrowUp}, nil},
		{"key up ignored", event.KeyUp{Key: event.KeyEnter}, nil},
		{"mouse ignored", event.MouseButtonDown{Button: event.MouseLeft, X: 1, Y: 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, nav := newIntro(t)
			s.HandleEvent(tt.ev)
			assert.Equal(t, tt.want, nav.Calls)
		})
	}
}

func TestIntro_Draw(t *testing.T) {
	s, _ := newIntro(t)
	r := scenetest.NewRenderer(640, 480)

	s.Draw(r)

	assert.Equal(t, []string{"background", "text"}, r.Calls)
	assert.Equal(t, []string{hint}, r.Texts)
	assert.NoError(t, s.Update())
}
