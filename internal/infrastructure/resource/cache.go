// Package resource owns texture memory. Scenes, controls and entities refer
// to textures through texture.Handle values handed out by the Cache.
package resource

import (
	"errors"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playertest/internal/domain/texture"
)

// Preloaded are the textures loaded by Init.
var Preloaded = []string{"pause.png", "button.png"}

type entry struct {
	name string
	src  image.Image
	img  *ebiten.Image
}

// Cache maps texture names to handles. Each distinct name is loaded at most
// once; a failed load is remembered as texture.None.
type Cache struct {
	loader  Loader
	logger  *log.Logger
	handles map[string]texture.Handle
	// entries[h-1] backs handle h
	entries []entry
}

// NewCache creates an empty cache backed by loader
func NewCache(loader Loader, logger *log.Logger) *Cache {
	return &Cache{
		loader:  loader,
		logger:  logger,
		handles: make(map[string]texture.Handle),
	}
}

// Init preloads the given textures, or Preloaded when none are given.
// Individual load failures are logged, not returned.
func (c *Cache) Init(names ...string) error {
	if c.loader == nil {
		return errors.New("resource: no texture loader configured")
	}
	if len(names) == 0 {
		names = Preloaded
	}
	for _, name := range names {
		c.Get(name)
	}
	c.logger.Debug("textures preloaded", "names", c.Len(), "loaded", len(c.entries))
	return nil
}

// Get returns the handle for name, loading it on first request.
func (c *Cache) Get(name string) texture.Handle {
	if h, ok := c.handles[name]; ok {
		return h
	}

	src, err := c.loader.Load(name)
	if err != nil {
		c.logger.Error("texture load failed", "name", name, "error", err)
		c.handles[name] = texture.None
		return texture.None
	}

	c.entries = append(c.entries, entry{name: name, src: src})
	h := texture.Handle(len(c.entries))
	c.handles[name] = h
	c.logger.Debug("texture loaded", "name", name, "handle", int(h))
	return h
}

// Size returns the pixel size of the texture.
func (c *Cache) Size(tex texture.Handle) (w, h int, ok bool) {
	e := c.entry(tex)
	if e == nil {
		return 0, 0, false
	}
	b := e.src.Bounds()
	return b.Dx(), b.Dy(), true
}

// Image returns the GPU image for h, uploading it on first use.
// It returns nil for absent handles.
func (c *Cache) Image(h texture.Handle) *ebiten.Image {
	e := c.entry(h)
	if e == nil {
		return nil
	}
	if e.img == nil {
		e.img = ebiten.NewImageFromImage(e.src)
	}
	return e.img
}

// Name returns the texture name h was loaded from
func (c *Cache) Name(h texture.Handle) string {
	if e := c.entry(h); e != nil {
		return e.name
	}
	return ""
}

// Len returns the number of distinct names requested so far
func (c *Cache) Len() int {
	return len(c.handles)
}

// Dispose releases every uploaded image. Handles are invalid afterwards.
func (c *Cache) Dispose() {
	for i := range c.entries {
		if c.entries[i].img != nil {
			c.entries[i].img.Deallocate()
		}
	}
	c.logger.Debug("texture cache disposed", "textures", len(c.entries))
	c.entries = nil
	c.handles = make(map[string]texture.Handle)
}

func (c *Cache) entry(h texture.Handle) *entry {
	if !h.Valid() || int(h) > len(c.entries) {
		return nil
	}
	return &c.entries[h-1]
}
