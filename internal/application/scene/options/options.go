// Package options provides the settings screen.
//
// Input goes through the same event batch as every other scene: a ui.Menu
// owns the hit boxes and hover state, while ebitenui only paints the
// widgets. No ebitenui handler is registered, so the toolkit never acts on
// the live mouse.
package options

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font"

	"github.com/younwookim/playertest/internal/application/scene"
	"github.com/younwookim/playertest/internal/application/state"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
	"github.com/younwookim/playertest/internal/domain/ui"
)

// Title is drawn above the buttons
const Title = "Options"

// Backdrop is laid over the frozen gameplay frame, or over the cleared
// canvas when the screen was opened from the main menu.
var Backdrop = color.RGBA{16, 16, 32, 220}

var (
	colorIdle  = color.NRGBA{R: 170, G: 170, B: 180, A: 255}
	colorHover = color.NRGBA{R: 135, G: 135, B: 150, A: 255}
	colorLabel = color.NRGBA{254, 255, 255, 255}
	colorMuted = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
)

// Options lets the player toggle runtime settings
type Options struct {
	deps   scene.Deps
	logger *log.Logger
	face   font.Face

	buttons *ui.Menu
	fps     *ui.Button

	ui      *ebitenui.UI
	widgets []*widget.Button
	idle    *widget.ButtonImage
	hover   *widget.ButtonImage
}

// New creates the options scene. face is used for every widget label.
func New(deps scene.Deps, face font.Face) *Options {
	return &Options{
		deps:   deps,
		logger: deps.Logger.With("scene", state.KindOptions),
		face:   face,
		idle:   solid(colorIdle),
		hover:  solid(colorHover),
	}
}

// solid paints every toolkit state alike; hover is tracked by ui.Menu.
func solid(c color.Color) *widget.ButtonImage {
	img := euiimage.NewNineSliceColor(c)
	return &widget.ButtonImage{Idle: img, Hover: img, Pressed: img}
}

func (s *Options) Init() error {
	s.logger.Debug("init")
	cfg := s.deps.Config.Menu
	s.buttons = ui.NewMenu(cfg.Spacing)
	s.fps = ui.NewButton(s.fpsLabel(), ui.ActionToggleFPS, texture.None, cfg.ButtonWidth, cfg.ButtonHeight)
	s.buttons.Add(s.fps)
	s.buttons.Add(ui.NewButton("Back", ui.ActionBack, texture.None, cfg.ButtonWidth, cfg.ButtonHeight))
	s.layout(s.deps.Viewport())
	return nil
}

// layout places the hit boxes and rebuilds the widgets on top of them.
func (s *Options) layout(areaW, areaH int) {
	s.buttons.Layout(areaW, areaH)

	buttons := s.buttons.Buttons()
	top := buttons[0].Y
	spacing := 0
	if len(buttons) > 1 {
		spacing = max(buttons[1].Y-buttons[0].Y-buttons[0].H, 0)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(spacing),
			widget.RowLayoutOpts.Padding(widget.Insets{Top: top}),
		)),
	)

	textColor := &widget.ButtonTextColor{Idle: colorLabel, Disabled: colorMuted}
	s.widgets = s.widgets[:0]
	for _, b := range buttons {
		w := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
				widget.WidgetOpts.MinSize(b.W, b.H),
			),
			widget.ButtonOpts.Image(s.imageFor(b)),
			widget.ButtonOpts.Text(b.Label, s.face, textColor),
		)
		root.AddChild(w)
		s.widgets = append(s.widgets, w)
	}

	s.ui = &ebitenui.UI{Container: root}
}

func (s *Options) imageFor(b *ui.Button) *widget.ButtonImage {
	if b.Hovered() {
		return s.hover
	}
	return s.idle
}

// sync copies hover state and labels from the hit boxes to the widgets.
func (s *Options) sync() {
	for i, b := range s.buttons.Buttons() {
		s.widgets[i].Image = s.imageFor(b)
		s.widgets[i].Text().Label = b.Label
	}
}

func (s *Options) fpsLabel() string {
	if s.deps.Settings.ShowFPS {
		return "Show FPS: On"
	}
	return "Show FPS: Off"
}

func (s *Options) refreshLabel() {
	s.fps.Label = s.fpsLabel()
	s.sync()
}

// ToggleFPS flips the frame counter overlay
func (s *Options) ToggleFPS() {
	s.deps.Settings.ShowFPS = !s.deps.Settings.ShowFPS
	s.refreshLabel()
	s.logger.Debug("fps overlay toggled", "show", s.deps.Settings.ShowFPS)
}

// FPSLabel returns the current label of the toggle
func (s *Options) FPSLabel() string { return s.fps.Label }

// Buttons exposes the button column
func (s *Options) Buttons() *ui.Menu { return s.buttons }

func (s *Options) Cleanup() {
	s.logger.Debug("cleanup")
	s.ui = nil
	s.widgets = nil
}

func (s *Options) Pause() { s.logger.Debug("pause") }

// Resume re-lays out the column and refreshes the toggle label; F3 may have
// flipped it meanwhile.
func (s *Options) Resume() {
	s.logger.Debug("resume")
	s.layout(s.deps.Viewport())
	s.refreshLabel()
}

func (s *Options) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.Quit:
		s.deps.Nav.Quit()
	case event.WindowResized:
		s.layout(e.W, e.H)
	case event.MouseMotion:
		s.buttons.HandleEvent(e)
		s.sync()
	case event.MouseButtonDown:
		s.activate(s.buttons.Clicked(e))
	case event.KeyDown:
		if e.Repeat {
			return
		}
		switch e.Key {
		case event.KeyEscape:
			s.deps.Nav.Back()
		case event.KeyF3:
			s.refreshLabel()
		}
	}
}

func (s *Options) activate(a ui.Action) {
	switch a {
	case ui.ActionToggleFPS:
		s.ToggleFPS()
	case ui.ActionBack:
		s.deps.Nav.Back()
	}
}

func (s *Options) Update() error { return nil }

func (s *Options) Draw(r scene.Renderer) {
	s.drawBackdrop(r)
	s.ui.Draw(r.Canvas())
}

// drawBackdrop repaints the frozen frame under the dimming layer and titles
// the screen.
func (s *Options) drawBackdrop(r scene.Renderer) {
	r.DrawFrozen()
	r.DrawOverlay(Backdrop)
	w, _ := r.Size()
	first := s.buttons.Buttons()[0]
	r.DrawText(Title, 0, first.Y-first.H, w, first.H)
}

func (s *Options) Kind() state.Kind { return state.KindOptions }
