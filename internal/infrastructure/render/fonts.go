package render

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

// LoadFace loads the TTF at name from fsys. A missing file falls back to the
// embedded Go Regular face; a file that exists but cannot be parsed is an
// error.
func LoadFace(fsys fs.FS, name string, size float64, logger *log.Logger) (text.Face, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("font not found, using built-in face", "font", name)
		return FallbackFace(size)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", name, err)
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return text.NewGoXFace(face), nil
}

// FallbackFace returns the embedded Go Regular face at the given size.
func FallbackFace(size float64) (text.Face, error) {
	face, err := GoRegular(size)
	if err != nil {
		return nil, err
	}
	return text.NewGoXFace(face), nil
}

// GoRegular returns the embedded Go Regular font as a font.Face, the form
// the widget toolkit expects.
func GoRegular(size float64) (font.Face, error) {
	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}
