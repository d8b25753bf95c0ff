package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/playertest/internal/application/scene/scenetest"
	"github.com/younwookim/playertest/internal/application/state"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/ui"
)

func newMenu(t *testing.T) (*Menu, *scenetest.Nav, *scenetest.Renderer) {
	t.Helper()
	nav := &scenetest.Nav{}
	r := scenetest.NewRenderer(640, 480)
	tex := scenetest.NewTextures(map[string]scenetest.Size{
		Texture:      {W: 640, H: 480},
		"button.png": {W: 200, H: 100},
	})
	s := New(scenetest.Deps(nav, tex, r))
	require.NoError(t, s.Init())
	return s, nav, r
}

func TestMenu_Init_Layout(t *testing.T) {
	s, _, _ := newMenu(t)

	assert.Equal(t, state.KindMenu, s.Kind())
	buttons := s.Buttons().Buttons()
	require.Len(t, buttons, 3)

	wantLabels := []string{"Start", "Options", "Quit"}
	wantActions := []ui.Action{ui.ActionStart, ui.ActionOptions, ui.ActionQuit}
	wantY := []int{80, 140, 200}
	for i, b := range buttons {
		assert.Equal(t, wantLabels[i], b.Label)
		assert.Equal(t, wantActions[i], b.Action)
		assert.Equal(t, 220, b.X)
		assert.Equal(t, wantY[i], b.Y)
		assert.True(t, b.Texture.Valid())
	}
}

func TestMenu_Clicks(t *testing.T) {
	tests := []struct {
		name string
		y    int
		want []string
	}{
		{"start", 90, []string{"StartGame"}},
		{"options", 150, []string{"OpenOptions"}},
		{"quit", 210, []string{"Quit"}},
		{"empty space", 400, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, nav, _ := newMenu(t)
			s.HandleEvent(event.MouseButtonDown{Button: event.MouseLeft, X: 300, Y: tt.y})
			assert.Equal(t, tt.want, nav.Calls)
		})
	}
}

func TestMenu_RightClickIgnored(t *testing.T) {
	s, nav, _ := newMenu(t)
	s.HandleEvent(event.MouseButtonDown{Button: event.MouseRight, X: 300, Y: 90})
	assert.Empty(t, nav.Calls)
}

func TestMenu_Keys(t *testing.T) {
	s, nav, _ := newMenu(t)

	s.HandleEvent(event.KeyDown{Key: event.KeyEnter, Repeat: true})
	assert.Empty(t, nav.Calls)

	s.HandleEvent(event.KeyDown{Key: event.KeyEnter})
	assert.Equal(t, []string{"StartGame"}, nav.Calls)

	s.HandleEvent(event.Quit{})
	assert.Equal(t, "Quit", nav.Last())
}

func TestMenu_Hover(t *testing.T) {
	s, _, _ := newMenu(t)
	buttons := s.Buttons().Buttons()

	s.HandleEvent(event.MouseMotion{X: 300, Y: 150})
	assert.False(t, buttons[0].Hovered())
	assert.True(t, buttons[1].Hovered())
	assert.False(t, buttons[2].Hovered())
}

func TestMenu_Resize(t *testing.T) {
	s, _, r := newMenu(t)

	s.HandleEvent(event.WindowResized{W: 800, H: 600})
	first := s.Buttons().Buttons()[0]
	assert.Equal(t, 300, first.X)
	assert.Equal(t, 100, first.Y)

	// Resume picks up a size change missed while covered
	r.W, r.H = 640, 480
	s.Resume()
	assert.Equal(t, 220, first.X)
	assert.Equal(t, 80, first.Y)
}

func TestMenu_Draw(t *testing.T) {
	s, _, _ := newMenu(t)
	r := scenetest.NewRenderer(640, 480)

	s.Draw(r)

	assert.Equal(t, []string{"background", "button", "button", "button"}, r.Calls)
	assert.NoError(t, s.Update())
}
