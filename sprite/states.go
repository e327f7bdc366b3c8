package sprite

// States defines the set of discrete states a Machine can render. State
// values key the state->animation mapping, so the type must be comparable;
// diagnostics format them with %v.
//
// NextState decides the state to render next from the live viewed entity.
// Returning ok == false means the state should not change.
type States[S comparable, V HasBox] interface {
	comparable
	NextState(viewed V) (S, bool)
}

// StaticState is a state set that always remains on the same state. Use it
// when a single animation should play with no transition logic.
type StaticState[V HasBox] struct{}

// NextState never requests a transition.
func (StaticState[V]) NextState(V) (StaticState[V], bool) {
	return StaticState[V]{}, false
}
