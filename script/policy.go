// Package script compiles tengo transition policies for animation state
// machines, so which animation plays next can be authored in data instead of
// Go.
package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/animkit/sprite"
)

// Entity is the viewed type scripted policies can inspect.
type Entity interface {
	sprite.HasBox
	// ScriptAttrs exposes the entity attributes transition scripts can read.
	ScriptAttrs() map[string]interface{}
}

// policyDispatchScript is appended to every policy source. The policy must
// define next_state(current, viewed); returning "" means stay.
const policyDispatchScript = `
__next = next_state(__current, __viewed)
`

// Policy is a compiled transition policy. It is not safe for concurrent use;
// evaluate it from the single thread that owns the machine.
type Policy struct {
	compiled *tengo.Compiled
}

// CompilePolicy compiles tengo policy source. The source must define a
// next_state(current, viewed) function taking the current state name and a
// map of entity attributes, and returning the next state name ("" to stay).
func CompilePolicy(src []byte) (*Policy, error) {
	full := make([]byte, 0, len(src)+len(policyDispatchScript)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, policyDispatchScript...)

	s := tengo.NewScript(full)
	_ = s.Add("__current", "")
	_ = s.Add("__viewed", map[string]interface{}{})
	_ = s.Add("__next", "")
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile policy: %w", err)
	}
	return &Policy{compiled: compiled}, nil
}

// Eval runs the policy for the given state name and entity attributes.
// It returns the next state name, or "" when the state should not change.
func (p *Policy) Eval(current string, attrs map[string]interface{}) (string, error) {
	if p == nil || p.compiled == nil {
		return "", fmt.Errorf("script: nil policy")
	}
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	if err := p.compiled.Set("__current", current); err != nil {
		return "", fmt.Errorf("script: eval policy: %w", err)
	}
	if err := p.compiled.Set("__viewed", attrs); err != nil {
		return "", fmt.Errorf("script: eval policy: %w", err)
	}
	if err := p.compiled.Run(); err != nil {
		return "", fmt.Errorf("script: eval policy: %w", err)
	}
	next := p.compiled.Get("__next")
	if next == nil || next.IsUndefined() {
		return "", nil
	}
	return strings.TrimSpace(next.String()), nil
}
