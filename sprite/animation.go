package sprite

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/animkit/geom"
)

// Animation advances a View across the frames of a single sprite sheet.
// It should generally be used wrapped by a Machine.
type Animation struct {
	view *View
	// frameCount is the number of frames in the sheet. 0 means a static
	// frame that never advances.
	frameCount int
	frameNum   int
	msPerFrame float64
	axis       geom.Axis
	// lastUpdate is the instant the current frame was set. Never persisted.
	lastUpdate time.Time
}

// NewAnimation creates an Animation over the sprite sheet at texturePath,
// which must already be loaded in the registry.
// axis is the sheet axis that adding to gets to the next frame. frameCount 0
// infers the count from the sheet extent along that axis; a positive count
// larger than the sheet fits is an error.
func NewAnimation(pos geom.Point, frameSize geom.Size, texturePath string, msPerFrame float64, axis geom.Axis, frameCount int, reg TextureRegistry) (*Animation, error) {
	view, err := NewView(pos, frameSize, texturePath)
	if err != nil {
		return nil, err
	}

	tex, ok := reg.Get(texturePath)
	if !ok {
		return nil, &TextureNotLoadedError{Path: texturePath}
	}
	bounds := tex.Bounds()
	var maxFrames int
	switch axis {
	case geom.AxisY:
		maxFrames = int(float64(bounds.Dy()) / frameSize.H)
	default:
		maxFrames = int(float64(bounds.Dx()) / frameSize.W)
	}

	if frameCount > maxFrames {
		return nil, &TooManyFramesError{Requested: frameCount, Max: maxFrames}
	}
	if frameCount <= 0 {
		frameCount = maxFrames
	}

	return &Animation{
		view:       view,
		frameCount: frameCount,
		msPerFrame: msPerFrame,
		axis:       axis,
		lastUpdate: time.Now(),
	}, nil
}

// NewStaticFrame wraps a View as an "animation" that only ever displays the
// frame the view is already showing.
func NewStaticFrame(view *View) *Animation {
	return &Animation{
		view:       view,
		frameCount: 0,
		msPerFrame: 1000,
		axis:       geom.AxisX,
		lastUpdate: time.Now(),
	}
}

// Reset prepares the animation to be started again.
func (a *Animation) Reset() {
	a.frameNum = 0
	a.lastUpdate = time.Now()
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	return a.frameNum
}

// FrameCount returns the number of frames in the sheet.
func (a *Animation) FrameCount() int {
	return a.frameCount
}

// View returns the wrapped view.
func (a *Animation) View() *View {
	return a.view
}

// advance moves the animation forward by however many frames have elapsed
// since the last update, wrapping around the frame count.
func (a *Animation) advance(now time.Time) {
	if a.frameCount <= 0 || a.msPerFrame <= 0 {
		return
	}
	elapsed := int(float64(now.Sub(a.lastUpdate).Milliseconds()) / a.msPerFrame)
	if elapsed <= 0 {
		return
	}
	a.lastUpdate = now
	a.frameNum = (a.frameNum + elapsed) % a.frameCount
	a.syncCursor()
}

// syncCursor positions the view's cursor at the current frame.
func (a *Animation) syncCursor() {
	switch a.axis {
	case geom.AxisY:
		a.view.SetCursorOrigin(geom.Point{Y: float64(a.frameNum) * a.view.frameSize.H})
	default:
		a.view.SetCursorOrigin(geom.Point{X: float64(a.frameNum) * a.view.frameSize.W})
	}
}

// Render advances the animation and draws its current frame.
// Elapsed time is measured against our own timestamp rather than the host
// loop's reported delta, which is not reliable for this.
func (a *Animation) Render(viewed HasBox, screen *ebiten.Image, cam Camera, reg TextureRegistry) {
	a.advance(time.Now())
	a.view.Render(viewed, screen, cam, reg)
}

type animationYAML struct {
	Position   geom.Point `yaml:"position"`
	FrameSize  geom.Size  `yaml:"frame_size"`
	Texture    string     `yaml:"texture"`
	MSPerFrame float64    `yaml:"ms_per_frame"`
	Axis       geom.Axis  `yaml:"axis"`
	FrameCount int        `yaml:"frame_count"`
	Frame      int        `yaml:"frame"`
}

// MarshalYAML encodes the animation. The live texture and the last-update
// timestamp are excluded: the texture is reconstructed from its path at first
// use and the timestamp restarts at decode time.
func (a *Animation) MarshalYAML() (interface{}, error) {
	return animationYAML{
		Position:   a.view.pos,
		FrameSize:  a.view.frameSize,
		Texture:    a.view.texture,
		MSPerFrame: a.msPerFrame,
		Axis:       a.axis,
		FrameCount: a.frameCount,
		Frame:      a.frameNum,
	}, nil
}

// UnmarshalYAML decodes an animation with a fresh last-update timestamp.
// The frame count is taken as-is; it is not re-validated against the sheet
// because the texture may not be loaded yet.
func (a *Animation) UnmarshalYAML(value *yaml.Node) error {
	var dto animationYAML
	if err := value.Decode(&dto); err != nil {
		return err
	}
	view, err := NewView(dto.Position, dto.FrameSize, dto.Texture)
	if err != nil {
		return err
	}
	a.view = view
	a.frameCount = dto.FrameCount
	a.msPerFrame = dto.MSPerFrame
	a.axis = dto.Axis
	a.frameNum = 0
	if a.frameCount > 0 && dto.Frame > 0 {
		a.frameNum = dto.Frame % a.frameCount
	}
	a.lastUpdate = time.Now()
	a.syncCursor()
	return nil
}
