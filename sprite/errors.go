package sprite

import "fmt"

// TextureNotLoadedError is returned when an animation is constructed against
// a texture the registry has not loaded.
type TextureNotLoadedError struct {
	Path string
}

func (e *TextureNotLoadedError) Error() string {
	return fmt.Sprintf("sprite: texture %q is not loaded", e.Path)
}

// TooManyFramesError is returned when a requested frame count would overflow
// the sprite sheet along the animation's advance axis.
type TooManyFramesError struct {
	Requested int
	Max       int
}

func (e *TooManyFramesError) Error() string {
	return fmt.Sprintf("sprite: requested %d frames but the sheet only fits %d", e.Requested, e.Max)
}

// NoAnimationForStateError is returned when a state machine is asked to enter
// a state it has no animation for.
type NoAnimationForStateError struct {
	State string
}

func (e *NoAnimationForStateError) Error() string {
	return fmt.Sprintf("sprite: no animation loaded for state %s", e.State)
}
