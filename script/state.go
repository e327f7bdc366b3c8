package script

import (
	"go.uber.org/zap"

	"github.com/milk9111/animkit/logger"
)

// State is a named animation state whose transitions a shared Policy decides.
// It satisfies sprite.States, so machines can be assembled entirely from
// definition files.
type State[V Entity] struct {
	Name   string
	policy *Policy
}

// NewState creates a state evaluated by policy.
func NewState[V Entity](name string, policy *Policy) State[V] {
	return State[V]{Name: name, policy: policy}
}

// NextState asks the policy for the next state. A policy evaluation error is
// logged and treated as "no change" so the render loop keeps going.
func (s State[V]) NextState(viewed V) (State[V], bool) {
	if s.policy == nil {
		return s, false
	}
	next, err := s.policy.Eval(s.Name, viewed.ScriptAttrs())
	if err != nil {
		logger.Error("script: policy evaluation failed",
			zap.String("state", s.Name),
			zap.Error(err))
		return s, false
	}
	if next == "" || next == s.Name {
		return s, false
	}
	return State[V]{Name: next, policy: s.policy}, true
}

// String returns the state name.
func (s State[V]) String() string {
	return s.Name
}
