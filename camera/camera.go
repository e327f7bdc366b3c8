package camera

import (
	"math"

	"github.com/milk9111/animkit/geom"
)

// Camera maps world coordinates onto the screen, centered on a given world
// coordinate, with zoom, smoothed follow and optional world-bound clamping.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// New creates a camera with the given logical screen size and initial zoom.
func New(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
	// default position at screen center in world coords
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// SetSmooth sets the follow smoothing factor. 0 snaps to the target.
func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// PointsPerPixel returns the world-to-pixel scale factor applied to anything
// drawn through this camera.
func (c *Camera) PointsPerPixel() float64 {
	return c.zoom
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// viewBox returns the current view rectangle in world coordinates.
func (c *Camera) viewBox() geom.Box {
	left, top := c.ViewTopLeft()
	if c.zoom == 0 {
		return geom.Box{X: left, Y: top}
	}
	return geom.Box{
		X: left,
		Y: top,
		W: float64(c.screenW) / c.zoom,
		H: float64(c.screenH) / c.zoom,
	}
}

// BoxRenderables projects a world-space box into screen space. It returns the
// screen position of the box origin and the box's screen-space rectangle.
// ok is false when the box is entirely outside the view; callers must treat
// that as "skip drawing", not as an error.
func (c *Camera) BoxRenderables(box geom.Box) (geom.Point, geom.Box, bool) {
	if c == nil || c.zoom <= 0 {
		return geom.Point{}, geom.Box{}, false
	}
	if !box.Intersects(c.viewBox()) {
		return geom.Point{}, geom.Box{}, false
	}
	left, top := c.ViewTopLeft()
	origin := geom.Point{
		X: (box.X - left) * c.zoom,
		Y: (box.Y - top) * c.zoom,
	}
	screenBox := geom.Box{
		X: origin.X,
		Y: origin.Y,
		W: box.W * c.zoom,
		H: box.H * c.zoom,
	}
	return origin, screenBox, true
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}

	// snap position to 1/zoom grid to align source texels to integer screen pixels
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}

	if c.zoom == 0 {
		return
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	halfW := viewW / 2.0
	halfH := viewH / 2.0
	if c.worldW > 0 {
		minX := halfW
		maxX := c.worldW - halfW
		if maxX < minX {
			// world smaller than view: center on world
			c.PosX = c.worldW / 2.0
		} else {
			c.PosX = geom.Clamp(c.PosX, minX, maxX)
		}
	}
	if c.worldH > 0 {
		minY := halfH
		maxY := c.worldH - halfH
		if maxY < minY {
			c.PosY = c.worldH / 2.0
		} else {
			c.PosY = geom.Clamp(c.PosY, minY, maxY)
		}
	}
}
