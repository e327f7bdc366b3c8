package sprite

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/animkit/logger"
)

// Machine displays one of a set of Animations, chosen by a discrete state
// that a policy re-evaluates on every render tick.
//
// The state->animation mapping is total: every state the policy can reach
// must have an entry. Machines are not safe for concurrent use; render calls
// for one machine must not overlap.
type Machine[S States[S, V], V HasBox] struct {
	current    S
	animations map[S]*Animation
}

// NewMachine creates a Machine starting in initial. animations must have an
// entry for initial.
func NewMachine[S States[S, V], V HasBox](initial S, animations map[S]*Animation) (*Machine[S, V], error) {
	if _, ok := animations[initial]; !ok {
		return nil, &NoAnimationForStateError{State: fmt.Sprintf("%v", initial)}
	}
	return &Machine[S, V]{current: initial, animations: animations}, nil
}

// NewStaticMachine creates a Machine that always plays a single animation.
func NewStaticMachine[V HasBox](animation *Animation) *Machine[StaticState[V], V] {
	state := StaticState[V]{}
	return &Machine[StaticState[V], V]{
		current:    state,
		animations: map[StaticState[V]]*Animation{state: animation},
	}
}

// CurrentState returns the state currently being rendered.
func (m *Machine[S, V]) CurrentState() S {
	return m.current
}

// SetStateAnimation sets the Animation for a given state.
func (m *Machine[S, V]) SetStateAnimation(state S, animation *Animation) {
	if m.animations == nil {
		m.animations = make(map[S]*Animation)
	}
	m.animations[state] = animation
}

// SetCurrentState transitions to newState, resetting its animation.
// Fails if there is no animation for newState, leaving the current state
// unchanged.
func (m *Machine[S, V]) SetCurrentState(newState S) error {
	anim, ok := m.animations[newState]
	if !ok {
		return &NoAnimationForStateError{State: fmt.Sprintf("%v", newState)}
	}
	anim.Reset()
	m.current = newState
	return nil
}

// step runs one tick of policy evaluation. A requested transition into an
// unmapped state is a policy-authoring bug, not a runtime fault: it is logged
// and dropped so the render loop keeps going in the old state.
func (m *Machine[S, V]) step(viewed V) {
	next, ok := m.current.NextState(viewed)
	if !ok {
		return
	}
	if err := m.SetCurrentState(next); err != nil {
		logger.Warn("sprite: dropped state transition",
			zap.String("from", fmt.Sprintf("%v", m.current)),
			zap.String("to", fmt.Sprintf("%v", next)),
			zap.Error(err))
	}
}

// Render evaluates the transition policy, then draws the animation of the
// resulting state.
func (m *Machine[S, V]) Render(viewed V, screen *ebiten.Image, cam Camera, reg TextureRegistry) {
	m.step(viewed)
	anim, ok := m.animations[m.current]
	if !ok {
		// The mapping is checked at construction and on every transition,
		// so a miss here means it was corrupted elsewhere.
		panic(fmt.Sprintf("sprite: no animation for current state %v", m.current))
	}
	anim.Render(viewed, screen, cam, reg)
}
