// Package sprite renders sprite-sheet animations driven by a state machine.
package sprite

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/animkit/geom"
)

// HasBox is implemented by anything a view can be attached to. The bounding
// box anchors the view in world space and feeds the camera's off-screen test.
type HasBox interface {
	GetBox() geom.Box
}

// Camera projects world-space boxes into screen space. BoxRenderables
// returning false means off-screen; views skip drawing without error.
type Camera interface {
	BoxRenderables(box geom.Box) (geom.Point, geom.Box, bool)
	PointsPerPixel() float64
}

// TextureRegistry resolves texture paths to loaded textures. Get is used
// during animation construction to read sheet dimensions; GetOrDefault is
// used on every draw and never returns nil.
type TextureRegistry interface {
	Get(path string) (*ebiten.Image, bool)
	GetOrDefault(path string) *ebiten.Image
}

// View displays a single fixed-size region of a sprite sheet. It should
// generally be used wrapped by an Animation.
type View struct {
	pos       geom.Point
	frameSize geom.Size
	// cursor is the origin of the sheet sub-rectangle currently displayed.
	// Its dimensions always equal frameSize; only the origin moves.
	cursor  geom.Point
	texture string
}

// NewView creates a View displaying the texture at the given path, one frame
// at a time, translated by pos relative to the viewed entity's box.
func NewView(pos geom.Point, frameSize geom.Size, texturePath string) (*View, error) {
	if frameSize.W <= 0 || frameSize.H <= 0 {
		return nil, fmt.Errorf("sprite: frame size must be positive, got %gx%g", frameSize.W, frameSize.H)
	}
	if texturePath == "" {
		return nil, fmt.Errorf("sprite: empty texture path")
	}
	return &View{pos: pos, frameSize: frameSize, texture: texturePath}, nil
}

// SetCursorOrigin moves the origin of the displayed sheet sub-rectangle.
// No validation: an origin outside the sheet is clipped by the renderer.
func (v *View) SetCursorOrigin(p geom.Point) {
	v.cursor = p
}

// CursorOrigin returns the origin of the displayed sheet sub-rectangle.
func (v *View) CursorOrigin() geom.Point {
	return v.cursor
}

// FrameSize returns the size of one sheet cell.
func (v *View) FrameSize() geom.Size {
	return v.frameSize
}

// TexturePath returns the path the view's texture is resolved from.
func (v *View) TexturePath() string {
	return v.texture
}

// Render draws the view's current frame anchored to the viewed entity's box.
// Off-screen entities are skipped.
func (v *View) Render(viewed HasBox, screen *ebiten.Image, cam Camera, reg TextureRegistry) {
	origin, _, ok := cam.BoxRenderables(viewed.GetBox())
	if !ok {
		return
	}
	scale := cam.PointsPerPixel()

	src := image.Rect(
		int(v.cursor.X),
		int(v.cursor.Y),
		int(v.cursor.X+v.frameSize.W),
		int(v.cursor.Y+v.frameSize.H),
	)
	tex := reg.GetOrDefault(v.texture)
	frame, _ := tex.SubImage(src).(*ebiten.Image)
	if frame == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(origin.X-v.pos.X*scale, origin.Y-v.pos.Y*scale)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
}

type viewYAML struct {
	Position  geom.Point `yaml:"position"`
	FrameSize geom.Size  `yaml:"frame_size"`
	Texture   string     `yaml:"texture"`
}

// MarshalYAML encodes the view. The cursor is not persisted; it is derived
// from the owning animation's frame index on decode.
func (v *View) MarshalYAML() (interface{}, error) {
	return viewYAML{Position: v.pos, FrameSize: v.frameSize, Texture: v.texture}, nil
}

// UnmarshalYAML decodes a view with its cursor at the sheet origin.
func (v *View) UnmarshalYAML(value *yaml.Node) error {
	var dto viewYAML
	if err := value.Decode(&dto); err != nil {
		return err
	}
	decoded, err := NewView(dto.Position, dto.FrameSize, dto.Texture)
	if err != nil {
		return err
	}
	*v = *decoded
	return nil
}
