package camera

import (
	"testing"

	"github.com/milk9111/animkit/geom"
)

func TestBoxRenderables(t *testing.T) {
	cam := New(640, 360, 2.0)
	// default camera center is (320, 180); the view covers 320x180 world
	// units from (160, 90)

	cases := []struct {
		name       string
		box        geom.Box
		wantOK     bool
		wantOrigin geom.Point
	}{
		{"inside", geom.Box{X: 200, Y: 100, W: 10, H: 10}, true, geom.Point{X: 80, Y: 20}},
		{"at_view_origin", geom.Box{X: 160, Y: 90, W: 5, H: 5}, true, geom.Point{X: 0, Y: 0}},
		{"straddling_edge", geom.Box{X: 155, Y: 85, W: 10, H: 10}, true, geom.Point{X: -10, Y: -10}},
		{"left_of_view", geom.Box{X: 0, Y: 100, W: 10, H: 10}, false, geom.Point{}},
		{"below_view", geom.Box{X: 200, Y: 400, W: 10, H: 10}, false, geom.Point{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			origin, screenBox, ok := cam.BoxRenderables(c.box)
			if ok != c.wantOK {
				t.Fatalf("BoxRenderables(%v) ok = %v, want %v", c.box, ok, c.wantOK)
			}
			if !ok {
				return
			}
			if origin != c.wantOrigin {
				t.Fatalf("origin = %v, want %v", origin, c.wantOrigin)
			}
			if screenBox.W != c.box.W*2 || screenBox.H != c.box.H*2 {
				t.Fatalf("screen box %v should scale %v by zoom", screenBox, c.box)
			}
		})
	}
}

func TestPointsPerPixel(t *testing.T) {
	cam := New(640, 360, 1.5)
	if got := cam.PointsPerPixel(); got != 1.5 {
		t.Fatalf("PointsPerPixel() = %v, want 1.5", got)
	}
	cam.SetZoom(3)
	if got := cam.PointsPerPixel(); got != 3 {
		t.Fatalf("PointsPerPixel() after SetZoom = %v, want 3", got)
	}
	cam.SetZoom(-1) // ignored
	if got := cam.PointsPerPixel(); got != 3 {
		t.Fatalf("negative zoom should be ignored, got %v", got)
	}
}

func TestUpdateSnapsWithoutSmoothing(t *testing.T) {
	cam := New(640, 360, 1.0)
	cam.SetSmooth(0)
	cam.Update(500, 250)
	if cam.PosX != 500 || cam.PosY != 250 {
		t.Fatalf("camera at (%v, %v), want (500, 250)", cam.PosX, cam.PosY)
	}
}

func TestUpdateClampsToWorldBounds(t *testing.T) {
	cam := New(640, 360, 1.0)
	cam.SetSmooth(0)
	cam.SetWorldBounds(2000, 1000)

	cam.Update(0, 0)
	if cam.PosX != 320 || cam.PosY != 180 {
		t.Fatalf("camera should clamp to (320, 180), got (%v, %v)", cam.PosX, cam.PosY)
	}

	cam.Update(5000, 5000)
	if cam.PosX != 2000-320 || cam.PosY != 1000-180 {
		t.Fatalf("camera should clamp to (%v, %v), got (%v, %v)", 2000-320, 1000-180, cam.PosX, cam.PosY)
	}
}

func TestUpdateCentersWhenWorldSmallerThanView(t *testing.T) {
	cam := New(640, 360, 1.0)
	cam.SetSmooth(0)
	cam.SetWorldBounds(300, 100)

	cam.Update(150, 50)
	if cam.PosX != 150 || cam.PosY != 50 {
		t.Fatalf("camera should center on small world, got (%v, %v)", cam.PosX, cam.PosY)
	}
}

func TestViewTopLeft(t *testing.T) {
	cam := New(640, 360, 2.0)
	left, top := cam.ViewTopLeft()
	if left != 160 || top != 90 {
		t.Fatalf("ViewTopLeft() = (%v, %v), want (160, 90)", left, top)
	}
}
