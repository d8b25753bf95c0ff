package render

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFace(t *testing.T) {
	fsys := fstest.MapFS{
		"font/good.ttf":    {Data: goregular.TTF},
		"font/corrupt.ttf": {Data: []byte("not a font")},
	}

	t.Run("valid font", func(t *testing.T) {
		var buf bytes.Buffer
		face, err := LoadFace(fsys, "font/good.ttf", 30, log.New(&buf))
		require.NoError(t, err)
		assert.NotNil(t, face)
		assert.NotContains(t, buf.String(), "built-in")
	})

	t.Run("missing font falls back", func(t *testing.T) {
		var buf bytes.Buffer
		face, err := LoadFace(fsys, "font/TrenchThin-aZ1J.ttf", 30, log.New(&buf))
		require.NoError(t, err)
		assert.NotNil(t, face)
		assert.Contains(t, buf.String(), "using built-in face")
	})

	t.Run("corrupt font fails", func(t *testing.T) {
		_, err := LoadFace(fsys, "font/corrupt.ttf", 30, log.New(&bytes.Buffer{}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse font")
	})
}

func TestFallbackFace(t *testing.T) {
	face, err := FallbackFace(16)
	require.NoError(t, err)
	assert.NotNil(t, face)
}

func TestGoRegular(t *testing.T) {
	face, err := GoRegular(20)
	require.NoError(t, err)
	assert.Positive(t, face.Metrics().Height.Ceil())
}
