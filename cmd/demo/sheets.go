package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/animkit/render"
)

// registerSheets builds the demo's sprite sheets procedurally so the binary
// needs no image assets. Each frame gets a sliding accent bar so frame
// advancement is visible.
func registerSheets(reg *render.Registry) {
	reg.Register("player_idle.png", makeSheet(6, 32, 48, colornames.Steelblue, colornames.Lightsteelblue))
	reg.Register("player_walk.png", makeSheet(6, 32, 48, colornames.Seagreen, colornames.Palegreen))
	reg.Register("player_jump.png", makeSheet(2, 32, 48, colornames.Indianred, colornames.Mistyrose))
	reg.Register("torch.png", makeSheet(1, 16, 32, colornames.Goldenrod, colornames.Orangered))
}

func makeSheet(frames, frameW, frameH int, base, accent color.RGBA) *ebiten.Image {
	img := image.NewNRGBA(image.Rect(0, 0, frames*frameW, frameH))
	for f := 0; f < frames; f++ {
		x0 := f * frameW
		for y := 0; y < frameH; y++ {
			for x := 0; x < frameW; x++ {
				img.Set(x0+x, y, base)
			}
		}
		// accent bar walks down the frame as the index grows
		barY := (f * frameH) / max(frames, 1)
		for y := barY; y < barY+4 && y < frameH; y++ {
			for x := 2; x < frameW-2; x++ {
				img.Set(x0+x, y, accent)
			}
		}
	}
	return ebiten.NewImageFromImage(img)
}
