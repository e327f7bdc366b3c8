package geom

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Axis is a sheet axis along which successive animation frames are laid out.
type Axis int

const (
	// AxisX walks frames left-to-right.
	AxisX Axis = iota
	// AxisY walks frames top-to-bottom.
	AxisY
)

// String returns the string representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the axis as "x" or "y".
func (a Axis) MarshalYAML() (interface{}, error) {
	if a != AxisX && a != AxisY {
		return nil, fmt.Errorf("geom: invalid axis %d", int(a))
	}
	return a.String(), nil
}

// UnmarshalYAML decodes "x" or "y" (empty defaults to "x").
func (a *Axis) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("geom: axis must be a string")
	}
	switch value.Value {
	case "", "x":
		*a = AxisX
	case "y":
		*a = AxisY
	default:
		return fmt.Errorf("geom: invalid axis %q", value.Value)
	}
	return nil
}
