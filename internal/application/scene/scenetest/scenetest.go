// Package scenetest provides fakes for testing scenes without a window.
package scenetest

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playertest/internal/application/scene"
	"github.com/younwookim/playertest/internal/domain/texture"
	"github.com/younwookim/playertest/internal/domain/ui"
	"github.com/younwookim/playertest/internal/infrastructure/config"
	"github.com/younwookim/playertest/internal/infrastructure/logging"
	"github.com/younwookim/playertest/internal/infrastructure/storage"
)

// Nav records the transitions a scene requested, in order.
type Nav struct {
	Calls []string
}

func (n *Nav) MainMenu()    { n.Calls = append(n.Calls, "MainMenu") }
func (n *Nav) StartGame()   { n.Calls = append(n.Calls, "StartGame") }
func (n *Nav) Pause()       { n.Calls = append(n.Calls, "Pause") }
func (n *Nav) Resume()      { n.Calls = append(n.Calls, "Resume") }
func (n *Nav) QuitToMenu()  { n.Calls = append(n.Calls, "QuitToMenu") }
func (n *Nav) OpenOptions() { n.Calls = append(n.Calls, "OpenOptions") }
func (n *Nav) Back()        { n.Calls = append(n.Calls, "Back") }
func (n *Nav) Quit()        { n.Calls = append(n.Calls, "Quit") }

// Last returns the most recent call or ""
func (n *Nav) Last() string {
	if len(n.Calls) == 0 {
		return ""
	}
	return n.Calls[len(n.Calls)-1]
}

// Size is a texture size
type Size struct{ W, H int }

// Textures hands out sequential handles for known names. Unknown names
// resolve to texture.None.
type Textures struct {
	Sizes   map[string]Size
	handles map[string]texture.Handle
	names   []string
}

// NewTextures creates a fake cache that knows the given names
func NewTextures(sizes map[string]Size) *Textures {
	return &Textures{Sizes: sizes, handles: map[string]texture.Handle{}}
}

func (t *Textures) Get(name string) texture.Handle {
	if h, ok := t.handles[name]; ok {
		return h
	}
	if _, ok := t.Sizes[name]; !ok {
		return texture.None
	}
	t.names = append(t.names, name)
	h := texture.Handle(len(t.names))
	t.handles[name] = h
	return h
}

func (t *Textures) Size(tex texture.Handle) (w, h int, ok bool) {
	if !tex.Valid() || int(tex) > len(t.names) {
		return 0, 0, false
	}
	s := t.Sizes[t.names[tex-1]]
	return s.W, s.H, true
}

// Renderer records draw calls by name.
type Renderer struct {
	W, H    int
	Calls   []string
	Buttons []*ui.Button
	Texts   []string
	canvas  *ebiten.Image
}

// NewRenderer creates a fake renderer of the given size
func NewRenderer(w, h int) *Renderer {
	return &Renderer{W: w, H: h}
}

func (r *Renderer) Size() (w, h int) { return r.W, r.H }

func (r *Renderer) DrawBackground(tex texture.Handle) {
	r.Calls = append(r.Calls, "background")
}

func (r *Renderer) DrawTexture(tex texture.Handle, x, y int) {
	r.Calls = append(r.Calls, "texture")
}

func (r *Renderer) DrawText(s string, x, y, w, h int) {
	r.Calls = append(r.Calls, "text")
	r.Texts = append(r.Texts, s)
}

func (r *Renderer) DrawOverlay(c color.Color) { r.Calls = append(r.Calls, "overlay") }
func (r *Renderer) DrawFrozen()               { r.Calls = append(r.Calls, "frozen") }

func (r *Renderer) DrawButton(b *ui.Button) {
	r.Calls = append(r.Calls, "button")
	r.Buttons = append(r.Buttons, b)
}

func (r *Renderer) Canvas() *ebiten.Image {
	if r.canvas == nil {
		r.canvas = ebiten.NewImage(r.W, r.H)
	}
	return r.canvas
}

// Store is an in-memory session store.
type Store struct {
	Saved   []storage.Session
	SaveErr error
	LoadErr error
}

func (s *Store) SaveSession(ctx context.Context, sess storage.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saved = append(s.Saved, sess)
	return nil
}

func (s *Store) LatestSession(ctx context.Context) (storage.Session, bool, error) {
	if s.LoadErr != nil {
		return storage.Session{}, false, s.LoadErr
	}
	if len(s.Saved) == 0 {
		return storage.Session{}, false, nil
	}
	return s.Saved[len(s.Saved)-1], true, nil
}

// Deps builds a dependency set around the given fakes. The viewport
// follows r's size.
func Deps(nav *Nav, tex *Textures, r *Renderer) scene.Deps {
	return scene.Deps{
		Nav:      nav,
		Textures: tex,
		Viewport: r.Size,
		Logger:   logging.Discard(),
		Config:   config.Default(),
		Settings: &scene.Settings{},
	}
}
