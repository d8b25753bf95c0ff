package resource

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // PNG textures
	"io/fs"
	"path"
	"strings"

	_ "golang.org/x/image/bmp" // BMP textures (the intro screen)
)

// ErrNoPlaceholder is returned for names the placeholder loader cannot
// synthesise.
var ErrNoPlaceholder = errors.New("no placeholder for texture")

// Loader produces a decoded image for a texture name.
type Loader interface {
	Load(name string) (image.Image, error)
}

// FSLoader reads textures from dir inside fsys and decodes PNG or BMP.
type FSLoader struct {
	fsys fs.FS
	dir  string
}

// NewFSLoader creates a loader reading <dir>/<name> from fsys
func NewFSLoader(fsys fs.FS, dir string) *FSLoader {
	return &FSLoader{fsys: fsys, dir: dir}
}

// Load reads and decodes the named texture file
func (l *FSLoader) Load(name string) (image.Image, error) {
	p := path.Join(l.dir, name)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", p, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", p, err)
	}
	return img, nil
}

// PlaceholderLoader synthesises the built-in textures so the game is
// playable without an asset directory.
type PlaceholderLoader struct {
	ButtonW, ButtonH int
	PlayerW, PlayerH int
	// BackgroundW and BackgroundH size the full-screen textures
	BackgroundW, BackgroundH int
}

var backgroundColors = map[string]color.RGBA{
	"intro": {24, 24, 48, 255},
	"menu":  {32, 48, 72, 255},
	"game":  {20, 60, 40, 255},
	"pause": {0, 0, 0, 160},
}

// Load returns a generated image for the known texture names
func (l *PlaceholderLoader) Load(name string) (image.Image, error) {
	base := strings.ToLower(strings.TrimSuffix(name, path.Ext(name)))
	switch base {
	case "button":
		return buttonSheet(l.ButtonW, l.ButtonH), nil
	case "player":
		return dot(l.PlayerW, l.PlayerH), nil
	}
	if c, ok := backgroundColors[base]; ok {
		return gradient(l.BackgroundW, l.BackgroundH, c), nil
	}
	return nil, fmt.Errorf("%w %q", ErrNoPlaceholder, name)
}

// buttonSheet draws the normal frame above the highlighted frame.
func buttonSheet(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, 2*h))
	frame(img, image.Rect(0, 0, w, h), color.RGBA{70, 70, 90, 255}, color.RGBA{140, 140, 170, 255})
	frame(img, image.Rect(0, h, w, 2*h), color.RGBA{90, 110, 160, 255}, color.RGBA{220, 220, 255, 255})
	return img
}

func frame(img *image.RGBA, r image.Rectangle, fill, border color.RGBA) {
	draw.Draw(img, r, &image.Uniform{C: border}, image.Point{}, draw.Src)
	draw.Draw(img, r.Inset(2), &image.Uniform{C: fill}, image.Point{}, draw.Src)
}

// dot draws a filled circle inscribed in a w x h box.
func dot(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	r := min(cx, cy)
	fill := color.RGBA{230, 80, 80, 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

// gradient darkens c towards the bottom edge.
func gradient(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		shade := 1 - 0.5*float64(y)/float64(max(h, 1))
		row := color.RGBA{
			R: uint8(float64(c.R) * shade),
			G: uint8(float64(c.G) * shade),
			B: uint8(float64(c.B) * shade),
			A: c.A,
		}
		draw.Draw(img, image.Rect(0, y, w, y+1), &image.Uniform{C: row}, image.Point{}, draw.Src)
	}
	return img
}

// ChainLoader tries each loader in order and returns the first success.
type ChainLoader []Loader

// Load returns the first successful load, or every error joined
func (c ChainLoader) Load(name string) (image.Image, error) {
	var errs []error
	for _, l := range c {
		img, err := l.Load(name)
		if err == nil {
			return img, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("no loaders for %q", name)
	}
	return nil, errors.Join(errs...)
}
