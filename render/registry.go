package render

import (
	"image"
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// Registry caches textures by path. It is read-only from the perspective of
// the rendering core: views resolve textures through it at draw time but
// never mutate it.
type Registry struct {
	images     map[string]*ebiten.Image
	assets     fs.FS
	defaultTex *ebiten.Image
}

// NewRegistry creates an empty texture registry.
func NewRegistry() *Registry {
	return &Registry{images: make(map[string]*ebiten.Image)}
}

// Register stores an image by path.
func (r *Registry) Register(path string, img *ebiten.Image) {
	if r == nil || path == "" || img == nil {
		return
	}
	r.images[path] = img
}

// Get returns the cached texture for path.
func (r *Registry) Get(path string) (*ebiten.Image, bool) {
	if r == nil || path == "" {
		return nil, false
	}
	img, ok := r.images[path]
	return img, ok
}

// GetOrDefault returns the cached texture for path, or a placeholder texture
// when the path has not been loaded. It never returns nil.
func (r *Registry) GetOrDefault(path string) *ebiten.Image {
	if img, ok := r.Get(path); ok {
		return img
	}
	if r.defaultTex == nil {
		r.defaultTex = newPlaceholder()
	}
	return r.defaultTex
}

// newPlaceholder builds the magenta/black checker drawn for missing textures.
func newPlaceholder() *ebiten.Image {
	const n = 16
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	magenta := color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
	black := color.NRGBA{A: 0xff}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x/(n/2)+y/(n/2))%2 == 0 {
				img.SetNRGBA(x, y, magenta)
			} else {
				img.SetNRGBA(x, y, black)
			}
		}
	}
	return ebiten.NewImageFromImage(img)
}
