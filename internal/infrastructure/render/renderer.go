// Package render draws scenes onto an offscreen canvas that is presented to
// the ebiten screen once per frame.
package render

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/playertest/internal/domain/event"
	"github.com/younwookim/playertest/internal/domain/texture"
	"github.com/younwookim/playertest/internal/domain/ui"
)

var (
	colorClear = color.RGBA{0, 0, 0, 255}
	colorText  = color.RGBA{240, 240, 240, 255}
)

// ImageSource resolves handles to GPU images. The texture cache implements it.
type ImageSource interface {
	Image(h texture.Handle) *ebiten.Image
}

// Renderer owns the canvas and the font face.
type Renderer struct {
	images ImageSource
	face   text.Face
	logger *log.Logger

	canvas *ebiten.Image
	frozen *ebiten.Image
	w, h   int
	warned map[texture.Handle]bool
}

// New creates a renderer with a w x h canvas.
func New(images ImageSource, face text.Face, w, h int, logger *log.Logger) *Renderer {
	return &Renderer{
		images: images,
		face:   face,
		logger: logger,
		canvas: ebiten.NewImage(w, h),
		w:      w,
		h:      h,
		warned: make(map[texture.Handle]bool),
	}
}

// Size returns the canvas size
func (r *Renderer) Size() (w, h int) {
	return r.w, r.h
}

// Canvas returns the offscreen target
func (r *Renderer) Canvas() *ebiten.Image {
	return r.canvas
}

// HandleEvent follows window resizes. Other events are ignored.
func (r *Renderer) HandleEvent(ev event.Event) {
	if e, ok := ev.(event.WindowResized); ok {
		r.resize(e.W, e.H)
	}
}

// resize reallocates the canvas, keeping the current content top-left aligned.
func (r *Renderer) resize(w, h int) {
	if w <= 0 || h <= 0 || (w == r.w && h == r.h) {
		return
	}
	next := ebiten.NewImage(w, h)
	next.DrawImage(r.canvas, nil)
	r.canvas.Deallocate()
	r.canvas = next
	r.w, r.h = w, h
	r.logger.Debug("canvas resized", "w", w, "h", h)
}

// Clear fills the canvas with the clear colour
func (r *Renderer) Clear() {
	r.canvas.Fill(colorClear)
}

// Present copies the canvas to the screen.
func (r *Renderer) Present(screen *ebiten.Image) {
	screen.DrawImage(r.canvas, nil)
}

// lookup returns the image for h. Absent handles are reported once each.
func (r *Renderer) lookup(h texture.Handle) *ebiten.Image {
	img := r.images.Image(h)
	if img == nil && !r.warned[h] {
		r.warned[h] = true
		r.logger.Warn("draw skipped, texture not loaded", "handle", int(h))
	}
	return img
}

// DrawBackground stretches the texture over the whole canvas.
func (r *Renderer) DrawBackground(h texture.Handle) {
	img := r.lookup(h)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.w)/float64(b.Dx()), float64(r.h)/float64(b.Dy()))
	r.canvas.DrawImage(img, op)
}

// DrawTexture draws the whole texture with its top-left corner at (x, y).
func (r *Renderer) DrawTexture(h texture.Handle, x, y int) {
	img := r.lookup(h)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	r.canvas.DrawImage(img, op)
}

// DrawClip draws the clip region of the texture at (x, y).
func (r *Renderer) DrawClip(h texture.Handle, x, y int, clip image.Rectangle) {
	img := r.lookup(h)
	if img == nil {
		return
	}
	sub := img.SubImage(clip.Add(img.Bounds().Min)).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	r.canvas.DrawImage(sub, op)
}

// DrawText centres s inside the box at (x, y) of size w x h.
func (r *Renderer) DrawText(s string, x, y, w, h int) {
	if r.face == nil || s == "" {
		return
	}
	tw, th := text.Measure(s, r.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+(float64(w)-tw)/2, float64(y)+(float64(h)-th)/2)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(r.canvas, s, r.face, op)
}

// DrawButton draws the button's current frame and its centred label.
func (r *Renderer) DrawButton(b *ui.Button) {
	r.DrawClip(b.Texture, b.X, b.Y, b.Clip())
	r.DrawText(b.Label, b.X, b.Y, b.W, b.H)
}

// DrawOverlay fills the canvas with a translucent colour
func (r *Renderer) DrawOverlay(c color.Color) {
	vector.DrawFilledRect(r.canvas, 0, 0, float32(r.w), float32(r.h), c, false)
}

// DrawDebug prints s in the top-left corner
func (r *Renderer) DrawDebug(s string) {
	ebitenutil.DebugPrint(r.canvas, s)
}

// Freeze snapshots the canvas so it can be painted under an overlay.
func (r *Renderer) Freeze() {
	r.Thaw()
	r.frozen = ebiten.NewImage(r.w, r.h)
	r.frozen.DrawImage(r.canvas, nil)
}

// Frozen reports whether a snapshot is held
func (r *Renderer) Frozen() bool {
	return r.frozen != nil
}

// DrawFrozen paints the snapshot taken by Freeze, if any.
func (r *Renderer) DrawFrozen() {
	if r.frozen == nil {
		return
	}
	r.canvas.DrawImage(r.frozen, nil)
}

// Thaw releases the snapshot
func (r *Renderer) Thaw() {
	if r.frozen != nil {
		r.frozen.Deallocate()
		r.frozen = nil
	}
}

// Dispose releases the canvas and any snapshot.
func (r *Renderer) Dispose() {
	r.Thaw()
	if r.canvas != nil {
		r.canvas.Deallocate()
		r.canvas = nil
	}
}
