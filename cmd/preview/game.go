package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/milk9111/animkit/animdef"
	"github.com/milk9111/animkit/camera"
	"github.com/milk9111/animkit/geom"
	"github.com/milk9111/animkit/logger"
	"github.com/milk9111/animkit/render"
	"github.com/milk9111/animkit/sprite"

	"github.com/ebitenui/ebitenui"
)

const (
	screenWidth  = 960
	screenHeight = 540
)

// previewControl carries the state the UI wants the machine to enter next.
type previewControl struct {
	pending string
}

// previewState forces transitions requested through the UI instead of
// deriving them from entity attributes.
type previewState struct {
	name string
	ctl  *previewControl
}

func (s previewState) NextState(*previewEntity) (previewState, bool) {
	if s.ctl == nil || s.ctl.pending == "" || s.ctl.pending == s.name {
		return s, false
	}
	next := previewState{name: s.ctl.pending, ctl: s.ctl}
	s.ctl.pending = ""
	return next, true
}

func (s previewState) String() string { return s.name }

// previewEntity pins the animation to a fixed spot in the view.
type previewEntity struct {
	box geom.Box
}

func (e *previewEntity) GetBox() geom.Box { return e.box }

type Game struct {
	registry *render.Registry
	cam      *camera.Camera
	entity   *previewEntity
	machine  *sprite.Machine[previewState, *previewEntity]

	ui          *ebitenui.UI
	specBytes   []byte
	clipboardOK bool
	statusText  string
}

func NewGame(specPath, sheetDir string) (*Game, error) {
	spec, err := animdef.LoadSpec[animdef.MachineSpec](specPath)
	if err != nil {
		return nil, err
	}
	specBytes, err := os.ReadFile(specPath)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()

	g := &Game{
		registry:  registry,
		cam:       camera.New(screenWidth, screenHeight, 3.0),
		specBytes: specBytes,
	}
	g.cam.SetSmooth(0)

	ctl := &previewControl{}
	animations := make(map[previewState]*sprite.Animation, len(spec.States))
	names := make([]string, 0, len(spec.States))
	for name, animSpec := range spec.States {
		ensureSheet(registry, sheetDir, animSpec)
		anim, err := animSpec.Build(registry)
		if err != nil {
			return nil, fmt.Errorf("preview: build state %s: %w", name, err)
		}
		animations[previewState{name: name, ctl: ctl}] = anim
		names = append(names, name)
	}
	sort.Strings(names)

	machine, err := sprite.NewMachine[previewState, *previewEntity](
		previewState{name: spec.Initial, ctl: ctl}, animations)
	if err != nil {
		return nil, err
	}
	g.machine = machine

	// park the entity at the view center
	first := spec.States[spec.Initial]
	g.entity = &previewEntity{box: geom.Box{
		X: g.cam.PosX - first.FrameW/2,
		Y: g.cam.PosY - first.FrameH/2,
		W: first.FrameW,
		H: first.FrameH,
	}}

	if err := clipboard.Init(); err != nil {
		logger.Warn("preview: clipboard unavailable", zap.Error(err))
	} else {
		g.clipboardOK = true
	}

	g.ui = newUI(names, ctl, g)
	return g, nil
}

// ensureSheet loads a sheet from disk, falling back to a generated
// placeholder sized for the spec so the preview still runs without assets.
func ensureSheet(reg *render.Registry, dir string, spec animdef.AnimationSpec) {
	if _, ok := reg.Get(spec.Sheet); ok {
		return
	}
	path := spec.Sheet
	if dir != "" {
		path = filepath.Join(dir, spec.Sheet)
	}
	if img, err := reg.Load(path); err == nil {
		reg.Register(spec.Sheet, img)
		return
	}

	frames := spec.FrameCount
	if frames <= 0 {
		frames = 4
	}
	w, h := int(spec.FrameW)*frames, int(spec.FrameH)
	if spec.Axis == geom.AxisY {
		w, h = int(spec.FrameW), int(spec.FrameH)*frames
	}
	placeholder := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			shade := uint8(60 + 40*((x/int(spec.FrameW)+y/int(spec.FrameH))%2))
			placeholder.SetNRGBA(x, y, color.NRGBA{R: shade, G: shade, B: shade + 40, A: 0xff})
		}
	}
	reg.Register(spec.Sheet, ebiten.NewImageFromImage(placeholder))
	logger.Warn("preview: sheet not found, using placeholder", zap.String("sheet", spec.Sheet))
}

// copySpec puts the raw spec YAML on the system clipboard.
func (g *Game) copySpec() {
	if !g.clipboardOK {
		g.statusText = "clipboard unavailable"
		return
	}
	clipboard.Write(clipboard.FmtText, g.specBytes)
	g.statusText = "spec copied to clipboard"
}

func (g *Game) Update() error {
	g.ui.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff})

	g.machine.Render(g.entity, screen, g.cam, g.registry)
	g.ui.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("state: %v  %s", g.machine.CurrentState(), g.statusText),
		8, screenHeight-16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
