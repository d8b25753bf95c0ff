// Package texture defines the non-owning texture handle shared by scenes,
// controls and entities. Image memory is owned by the texture cache.
package texture

// Handle refers to a texture held by the cache.
type Handle int

// None is the absent texture. It is returned when a texture failed to load.
const None Handle = 0

// Valid reports whether h refers to a loaded texture.
func (h Handle) Valid() bool {
	return h > None
}
