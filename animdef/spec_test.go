package animdef

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/animkit/geom"
	"github.com/milk9111/animkit/render"
	"github.com/milk9111/animkit/script"
	"github.com/milk9111/animkit/sprite"
)

const machineYAML = `
initial: idle
script: player.tengo
states:
  idle:
    sheet: idle.png
    frame_w: 20
    frame_h: 20
    ms_per_frame: 100
    axis: x
    frame_count: 3
  walk:
    sheet: walk.png
    frame_w: 20
    frame_h: 20
    ms_per_frame: 80
    axis: x
`

func TestLoadSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.yaml")
	if err := os.WriteFile(path, []byte(machineYAML), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	spec, err := LoadSpec[MachineSpec](path)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if spec.Initial != "idle" {
		t.Fatalf("initial = %q, want idle", spec.Initial)
	}
	if spec.Script != "player.tengo" {
		t.Fatalf("script = %q", spec.Script)
	}
	if len(spec.States) != 2 {
		t.Fatalf("states = %d, want 2", len(spec.States))
	}
	idle := spec.States["idle"]
	if idle.Sheet != "idle.png" || idle.FrameCount != 3 || idle.Axis != geom.AxisX {
		t.Fatalf("idle spec = %+v", idle)
	}
	if walk := spec.States["walk"]; walk.FrameCount != 0 {
		t.Fatalf("omitted frame_count should stay 0, got %d", walk.FrameCount)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[MachineSpec](filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadSpecBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("initial: [unclosed"), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	if _, err := LoadSpec[MachineSpec](path); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestLoadSpecFS(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/machine.yaml": &fstest.MapFile{Data: []byte(machineYAML)},
	}

	spec, err := LoadSpecFS[MachineSpec](fsys, "defs/machine.yaml")
	if err != nil {
		t.Fatalf("LoadSpecFS: %v", err)
	}
	if spec.Initial != "idle" {
		t.Fatalf("initial = %q, want idle", spec.Initial)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.yaml")

	in := AnimationSpec{
		Sheet:      "hero.png",
		FrameW:     24,
		FrameH:     32,
		MSPerFrame: 90,
		Axis:       geom.AxisY,
		FrameCount: 5,
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := LoadSpec[AnimationSpec](path)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestAnimationSpecBuild(t *testing.T) {
	reg := render.NewRegistry()
	reg.Register("idle.png", ebiten.NewImage(60, 20))

	spec := AnimationSpec{Sheet: "idle.png", FrameW: 20, FrameH: 20, MSPerFrame: 100}
	anim, err := spec.Build(reg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if anim.FrameCount() != 3 {
		t.Fatalf("frame count = %d, want 3", anim.FrameCount())
	}
}

func TestAnimationSpecBuildStatic(t *testing.T) {
	spec := AnimationSpec{Sheet: "torch.png", FrameW: 16, FrameH: 16, Static: true}
	// static frames never read the sheet, so no registry is needed
	anim, err := spec.Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if anim.FrameCount() != 0 {
		t.Fatalf("static frame count = %d, want 0", anim.FrameCount())
	}
}

func TestAnimationSpecBuildMissingSheet(t *testing.T) {
	reg := render.NewRegistry()
	spec := AnimationSpec{Sheet: "nope.png", FrameW: 20, FrameH: 20, MSPerFrame: 100}

	_, err := spec.Build(reg)
	var notLoaded *sprite.TextureNotLoadedError
	if !errors.As(err, &notLoaded) {
		t.Fatalf("expected TextureNotLoadedError, got %v", err)
	}
}

type defEntity struct {
	attrs map[string]interface{}
}

func (e *defEntity) GetBox() geom.Box { return geom.Box{} }

func (e *defEntity) ScriptAttrs() map[string]interface{} { return e.attrs }

const togglePolicy = `
next_state := func(current, viewed) {
	if viewed.moving {
		return "walk"
	}
	return "idle"
}
`

func TestBuildMachine(t *testing.T) {
	reg := render.NewRegistry()
	reg.Register("idle.png", ebiten.NewImage(60, 20))
	reg.Register("walk.png", ebiten.NewImage(80, 20))

	var spec MachineSpec
	if s, err := decodeSpec[MachineSpec]("machine.yaml", []byte(machineYAML)); err != nil {
		t.Fatalf("decode: %v", err)
	} else {
		spec = s
	}

	m, err := BuildMachine[*defEntity](spec, []byte(togglePolicy), reg)
	if err != nil {
		t.Fatalf("BuildMachine: %v", err)
	}
	if m.CurrentState().Name != "idle" {
		t.Fatalf("initial state = %v, want idle", m.CurrentState())
	}
}

func TestBuildMachineValidation(t *testing.T) {
	reg := render.NewRegistry()
	reg.Register("idle.png", ebiten.NewImage(60, 20))

	states := map[string]AnimationSpec{
		"idle": {Sheet: "idle.png", FrameW: 20, FrameH: 20, MSPerFrame: 100},
	}

	cases := []struct {
		name string
		spec MachineSpec
	}{
		{"no_initial", MachineSpec{States: states}},
		{"no_states", MachineSpec{Initial: "idle"}},
		{"initial_not_in_states", MachineSpec{Initial: "run", States: states}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := BuildMachine[*defEntity](c.spec, []byte(togglePolicy), reg); err == nil {
				t.Fatalf("expected error for %s", c.name)
			}
		})
	}
}

func TestBuildMachineBadPolicy(t *testing.T) {
	reg := render.NewRegistry()
	reg.Register("idle.png", ebiten.NewImage(60, 20))

	spec := MachineSpec{
		Initial: "idle",
		States: map[string]AnimationSpec{
			"idle": {Sheet: "idle.png", FrameW: 20, FrameH: 20, MSPerFrame: 100},
		},
	}
	if _, err := BuildMachine[*defEntity](spec, []byte("next_state := func("), reg); err == nil {
		t.Fatalf("expected compile error")
	}
}

var _ script.Entity = (*defEntity)(nil)
