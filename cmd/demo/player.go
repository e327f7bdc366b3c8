package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/animkit/geom"
	"github.com/milk9111/animkit/script"
)

// playerState is the scripted state type the player machine runs on.
type playerState = script.State[*Player]

const (
	playerW = 24
	playerH = 44

	moveSpeed = 220
	jumpSpeed = 620
)

// Player is the demo's viewed entity: a Chipmunk body plus the attributes the
// transition policy reads.
type Player struct {
	body *cp.Body
}

func NewPlayer(space *cp.Space, x, y float64) *Player {
	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x, Y: y})
	space.AddBody(body)

	shape := cp.NewBox(body, playerW, playerH, 0)
	shape.SetFriction(0.9)
	space.AddShape(shape)

	return &Player{body: body}
}

func (p *Player) Update() {
	v := p.body.Velocity()

	vx := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		vx -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		vx += moveSpeed
	}

	vy := v.Y
	if ebiten.IsKeyPressed(ebiten.KeySpace) && p.grounded() {
		vy = -jumpSpeed
	}

	p.body.SetVelocity(vx, vy)
}

// Center returns the body position, used as the camera target.
func (p *Player) Center() (float64, float64) {
	pos := p.body.Position()
	return pos.X, pos.Y
}

func (p *Player) grounded() bool {
	pos := p.body.Position()
	return pos.Y+playerH/2 >= groundY-2 && math.Abs(p.body.Velocity().Y) < 5
}

// GetBox anchors the player's sprite in world space.
func (p *Player) GetBox() geom.Box {
	pos := p.body.Position()
	return geom.Box{
		X: pos.X - playerW/2 - 4, // sprite is wider than the collider
		Y: pos.Y - playerH/2 - 4,
		W: 32,
		H: 48,
	}
}

// ScriptAttrs exposes the attributes the transition policy reads.
func (p *Player) ScriptAttrs() map[string]interface{} {
	v := p.body.Velocity()
	return map[string]interface{}{
		"vx":       v.X,
		"vy":       v.Y,
		"grounded": p.grounded(),
	}
}
