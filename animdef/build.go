package animdef

import (
	"fmt"

	"github.com/milk9111/animkit/geom"
	"github.com/milk9111/animkit/script"
	"github.com/milk9111/animkit/sprite"
)

// Build constructs the animation the spec describes. The sheet must already
// be loaded in the registry unless the spec is static.
func (s AnimationSpec) Build(reg sprite.TextureRegistry) (*sprite.Animation, error) {
	pos := geom.Point{X: s.OffsetX, Y: s.OffsetY}
	size := geom.Size{W: s.FrameW, H: s.FrameH}
	if s.Static {
		view, err := sprite.NewView(pos, size, s.Sheet)
		if err != nil {
			return nil, err
		}
		return sprite.NewStaticFrame(view), nil
	}
	return sprite.NewAnimation(pos, size, s.Sheet, s.MSPerFrame, s.Axis, s.FrameCount, reg)
}

// BuildMachine constructs a scripted state machine from spec. policySrc is
// the tengo source of the transition policy (the file named by spec.Script;
// loading it is the caller's concern so specs can come from any filesystem).
func BuildMachine[V script.Entity](spec MachineSpec, policySrc []byte, reg sprite.TextureRegistry) (*sprite.Machine[script.State[V], V], error) {
	if spec.Initial == "" {
		return nil, fmt.Errorf("animdef: machine spec has no initial state")
	}
	if len(spec.States) == 0 {
		return nil, fmt.Errorf("animdef: machine spec has no states")
	}

	policy, err := script.CompilePolicy(policySrc)
	if err != nil {
		return nil, fmt.Errorf("animdef: machine policy: %w", err)
	}

	animations := make(map[script.State[V]]*sprite.Animation, len(spec.States))
	for name, animSpec := range spec.States {
		anim, err := animSpec.Build(reg)
		if err != nil {
			return nil, fmt.Errorf("animdef: build state %s: %w", name, err)
		}
		animations[script.NewState[V](name, policy)] = anim
	}

	return sprite.NewMachine[script.State[V], V](script.NewState[V](spec.Initial, policy), animations)
}
