// Package animdef loads sprite animation and state machine definitions from
// YAML files and builds the runtime types from them.
package animdef

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/animkit/geom"
)

// AnimationSpec describes one sprite animation.
type AnimationSpec struct {
	Sheet      string    `yaml:"sheet"`
	FrameW     float64   `yaml:"frame_w"`
	FrameH     float64   `yaml:"frame_h"`
	OffsetX    float64   `yaml:"offset_x"`
	OffsetY    float64   `yaml:"offset_y"`
	MSPerFrame float64   `yaml:"ms_per_frame"`
	Axis       geom.Axis `yaml:"axis"`
	// FrameCount 0 infers the count from the sheet extent along the axis.
	FrameCount int `yaml:"frame_count"`
	// Static marks a single never-advancing frame.
	Static bool `yaml:"static"`
}

// MachineSpec describes a state machine: one animation per named state, an
// initial state and the tengo script deciding transitions.
type MachineSpec struct {
	Initial string                   `yaml:"initial"`
	Script  string                   `yaml:"script"`
	States  map[string]AnimationSpec `yaml:"states"`
}

// LoadSpec reads and unmarshals the YAML spec at filename.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := os.ReadFile(filename)
	if err != nil {
		return zero, fmt.Errorf("animdef: load %s: %w", filename, err)
	}
	return decodeSpec[T](filename, data)
}

// LoadSpecFS reads and unmarshals a YAML spec from a filesystem, typically an
// embedded one.
func LoadSpecFS[T any](fsys fs.FS, filename string) (T, error) {
	var zero T
	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return zero, fmt.Errorf("animdef: load %s: %w", filename, err)
	}
	return decodeSpec[T](filename, data)
}

func decodeSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("animdef: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// Save marshals v to YAML and writes it to filename.
func Save(filename string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("animdef: marshal %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("animdef: write %s: %w", filename, err)
	}
	return nil
}
