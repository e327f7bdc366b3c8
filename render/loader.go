package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// Load decodes the image at path and caches it in the registry. An embedded
// filesystem set via SetAssets is tried first, then the disk.
func (r *Registry) Load(path string) (*ebiten.Image, error) {
	if r == nil || path == "" {
		return nil, fmt.Errorf("render: empty texture path")
	}
	if img, ok := r.Get(path); ok {
		return img, nil
	}
	img, err := r.loadFromAssetsOrFS(path)
	if err != nil {
		return nil, err
	}
	r.Register(path, img)
	return img, nil
}

// SetAssets sets an embedded filesystem searched before the disk by Load.
func (r *Registry) SetAssets(assets fs.FS) {
	if r == nil {
		return
	}
	r.assets = assets
}

func (r *Registry) loadFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if r.assets != nil {
		if b, err := fs.ReadFile(r.assets, filepath.ToSlash(path)); err == nil {
			if img, err := decode(b); err == nil {
				return img, nil
			}
		}
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if img, err := decode(b); err == nil {
				return img, nil
			}
		}
	}
	return nil, fmt.Errorf("render: failed to load texture %s", path)
}

func decode(b []byte) (*ebiten.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
