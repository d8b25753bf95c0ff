package resource

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encode(t *testing.T, enc func(*bytes.Buffer, image.Image) error, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{255, 0, 0, 255}}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func pngEncode(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) }
func bmpEncode(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) }

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"texture/menu.png":  {Data: encode(t, pngEncode, 64, 32)},
		"texture/INTRO.bmp": {Data: encode(t, bmpEncode, 40, 30)},
		"texture/bad.png":   {Data: []byte("not an image")},
	}
	loader := NewFSLoader(fsys, "texture")

	t.Run("png", func(t *testing.T) {
		img, err := loader.Load("menu.png")
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 64, 32), img.Bounds())
	})

	t.Run("bmp", func(t *testing.T) {
		img, err := loader.Load("INTRO.bmp")
		require.NoError(t, err)
		assert.Equal(t, 40, img.Bounds().Dx())
		assert.Equal(t, 30, img.Bounds().Dy())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := loader.Load("game.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "texture/game.png")
	})

	t.Run("corrupt", func(t *testing.T) {
		_, err := loader.Load("bad.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

func TestPlaceholderLoader(t *testing.T) {
	loader := &PlaceholderLoader{
		ButtonW: 200, ButtonH: 50,
		PlayerW: 16, PlayerH: 16,
		BackgroundW: 640, BackgroundH: 480,
	}

	tests := []struct {
		name string
		want image.Rectangle
	}{
		{"button.png", image.Rect(0, 0, 200, 100)},
		{"player.png", image.Rect(0, 0, 16, 16)},
		{"INTRO.bmp", image.Rect(0, 0, 640, 480)},
		{"menu.png", image.Rect(0, 0, 640, 480)},
		{"game.png", image.Rect(0, 0, 640, 480)},
		{"pause.png", image.Rect(0, 0, 640, 480)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := loader.Load(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds())
		})
	}

	_, err := loader.Load("unknown.png")
	assert.ErrorIs(t, err, ErrNoPlaceholder)
}

func TestPlaceholderLoader_ButtonFramesDiffer(t *testing.T) {
	loader := &PlaceholderLoader{ButtonW: 200, ButtonH: 50}

	img, err := loader.Load("button.png")
	require.NoError(t, err)

	assert.NotEqual(t, img.At(100, 25), img.At(100, 75), "hover frame is highlighted")
}

type stubLoader struct {
	img image.Image
	err error
}

func (s stubLoader) Load(string) (image.Image, error) { return s.img, s.err }

func TestChainLoader(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	t.Run("first success wins", func(t *testing.T) {
		got, err := ChainLoader{stubLoader{err: errA}, stubLoader{img: img}}.Load("x")
		require.NoError(t, err)
		assert.Same(t, img, got)
	})

	t.Run("all errors joined", func(t *testing.T) {
		_, err := ChainLoader{stubLoader{err: errA}, stubLoader{err: errB}}.Load("x")
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
	})

	t.Run("empty chain", func(t *testing.T) {
		_, err := ChainLoader{}.Load("x")
		assert.Error(t, err)
	})
}
