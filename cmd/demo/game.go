package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/milk9111/animkit/animdef"
	"github.com/milk9111/animkit/camera"
	"github.com/milk9111/animkit/geom"
	"github.com/milk9111/animkit/logger"
	"github.com/milk9111/animkit/render"
	"github.com/milk9111/animkit/sprite"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	worldWidth  = 2560
	worldHeight = 720
	groundY     = 600
)

// torch is a fixed decoration exercising the single-animation machine path.
type torch struct {
	box geom.Box
}

func (t *torch) GetBox() geom.Box { return t.box }

type Game struct {
	frames int

	space    *cp.Space
	player   *Player
	registry *render.Registry
	cam      *camera.Camera

	machine      *sprite.Machine[playerState, *Player]
	torchMachine *sprite.Machine[sprite.StaticState[*torch], *torch]
	torch        *torch

	defsDir string
	watcher *animdef.Watcher
}

// NewGame assembles the demo world. defsDir empty means the embedded
// definitions are used; watch rebuilds the player machine when a definition
// file changes.
func NewGame(defsDir string, watch bool) (*Game, error) {
	registry := render.NewRegistry()
	registerSheets(registry)

	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: 1400})
	addGround(space)

	player := NewPlayer(space, 200, groundY-100)

	g := &Game{
		space:    space,
		player:   player,
		registry: registry,
		cam:      camera.New(screenWidth, screenHeight, 1.0),
		defsDir:  defsDir,
	}
	g.cam.SetWorldBounds(worldWidth, worldHeight)

	machine, err := g.loadMachine()
	if err != nil {
		return nil, err
	}
	g.machine = machine

	torchView, err := sprite.NewView(geom.Point{}, geom.Size{W: 16, H: 32}, "torch.png")
	if err != nil {
		return nil, err
	}
	g.torch = &torch{box: geom.Box{X: 600, Y: groundY - 32, W: 16, H: 32}}
	g.torchMachine = sprite.NewStaticMachine[*torch](sprite.NewStaticFrame(torchView))

	if watch && defsDir != "" {
		watcher, err := animdef.NewWatcher(defsDir)
		if err != nil {
			return nil, fmt.Errorf("demo: watch %s: %w", defsDir, err)
		}
		g.watcher = watcher
	}

	return g, nil
}

// loadMachine builds the player machine from the configured definitions.
func (g *Game) loadMachine() (*sprite.Machine[playerState, *Player], error) {
	var (
		spec   animdef.MachineSpec
		policy []byte
		err    error
	)
	if g.defsDir != "" {
		spec, err = animdef.LoadSpec[animdef.MachineSpec](filepath.Join(g.defsDir, "machine.yaml"))
		if err != nil {
			return nil, err
		}
		policy, err = os.ReadFile(filepath.Join(g.defsDir, spec.Script))
		if err != nil {
			return nil, fmt.Errorf("demo: load policy %s: %w", spec.Script, err)
		}
	} else {
		spec, err = animdef.LoadSpecFS[animdef.MachineSpec](defaultDefs, "defs/machine.yaml")
		if err != nil {
			return nil, err
		}
		policy, err = defaultDefs.ReadFile("defs/" + spec.Script)
		if err != nil {
			return nil, fmt.Errorf("demo: load policy %s: %w", spec.Script, err)
		}
	}
	return animdef.BuildMachine[*Player](spec, policy, g.registry)
}

// Close releases the definition watcher, if any.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.reloadIfChanged()

	g.player.Update()
	g.space.Step(1.0 / 60.0)

	cx, cy := g.player.Center()
	g.cam.Update(cx, cy)

	return nil
}

// reloadIfChanged drains pending watcher events and rebuilds the machine.
func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			logger.Info("demo: definition changed", zap.String("file", name))
			changed = true
		case err := <-g.watcher.Errors:
			logger.Error("demo: watcher error", zap.Error(err))
		default:
			if changed {
				machine, err := g.loadMachine()
				if err != nil {
					logger.Error("demo: reload failed", zap.Error(err))
					return
				}
				g.machine = machine
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x1a, G: 0x1c, B: 0x2c, A: 0xff})
	g.drawGround(screen)

	g.torchMachine.Render(g.torch, screen, g.cam, g.registry)
	g.machine.Render(g.player, screen, g.cam, g.registry)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  state: %v  arrows/A-D move, space jumps",
		ebiten.ActualFPS(), g.machine.CurrentState(),
	))
}

func (g *Game) drawGround(screen *ebiten.Image) {
	origin, box, ok := g.cam.BoxRenderables(geom.Box{X: 0, Y: groundY, W: worldWidth, H: worldHeight - groundY})
	if !ok {
		return
	}
	vector.DrawFilledRect(screen,
		float32(origin.X), float32(origin.Y),
		float32(box.W), float32(box.H),
		colornames.Darkolivegreen, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func addGround(space *cp.Space) {
	segments := []struct {
		a, b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: groundY}, b: cp.Vector{X: worldWidth, Y: groundY}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldHeight}},
		{a: cp.Vector{X: worldWidth, Y: 0}, b: cp.Vector{X: worldWidth, Y: worldHeight}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.9)
		space.AddShape(shape)
	}
}
