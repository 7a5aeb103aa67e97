package world

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// blockSpecFields mirrors the structured form of a stack-configuration
// entry: `{name, x_size?, y_size?, weight?, type?}`. A bare letter is the
// shorthand that leaves every other field at its default.
type blockSpecFields struct {
	Name   string   `json:"name" yaml:"name"`
	XSize  int      `json:"x_size,omitempty" yaml:"x_size,omitempty"`
	YSize  int      `json:"y_size,omitempty" yaml:"y_size,omitempty"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Type   string   `json:"type,omitempty" yaml:"type,omitempty"`
}

func (b *BlockSpec) fromFields(f blockSpecFields) error {
	if len(f.Name) != 1 {
		return fmt.Errorf("block name must be a single letter, got %q", f.Name)
	}
	b.Name = rune(f.Name[0])
	b.XSize = f.XSize
	if b.XSize == 0 {
		b.XSize = DefaultXSize
	}
	b.YSize = f.YSize
	if b.YSize == 0 {
		b.YSize = DefaultYSize
	}
	b.Weight = f.Weight
	b.Type = f.Type
	return nil
}

// UnmarshalJSON accepts either a bare single-letter string ("A") or a
// structured object, per the initial_stacks grammar in the HTTP surface.
func (b *BlockSpec) UnmarshalJSON(data []byte) error {
	var letter string
	if err := json.Unmarshal(data, &letter); err == nil {
		return b.fromFields(blockSpecFields{Name: letter})
	}
	var fields blockSpecFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	return b.fromFields(fields)
}

// MarshalJSON renders a block spec back out as a structured object.
func (b BlockSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockSpecFields{
		Name:   string(b.Name),
		XSize:  b.XSize,
		YSize:  b.YSize,
		Weight: b.Weight,
		Type:   b.Type,
	})
}

// UnmarshalYAML accepts either a bare single-letter scalar or a structured
// mapping, mirroring UnmarshalJSON for on-disk scenario files.
func (b *BlockSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var letter string
		if err := node.Decode(&letter); err != nil {
			return err
		}
		return b.fromFields(blockSpecFields{Name: letter})
	}
	var fields blockSpecFields
	if err := node.Decode(&fields); err != nil {
		return err
	}
	return b.fromFields(fields)
}
