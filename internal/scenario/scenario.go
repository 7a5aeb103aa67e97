// Package scenario loads and serves the read-only, immutable-after-load
// registry of named scenarios: an initial stack configuration, a rule
// variant, and a goal. Scenarios are loaded once from disk at startup (one
// YAML file each) and never written back.
package scenario

import "blocksworld/internal/world"

// Step is a lightweight, non-executable description of one plan action,
// used only for a scenario's optional optimal_plan hint.
type Step struct {
	Action string `yaml:"action" json:"action"`
	Block  string `yaml:"block,omitempty" json:"block,omitempty"`
	Block1 string `yaml:"block1,omitempty" json:"block1,omitempty"`
	Block2 string `yaml:"block2,omitempty" json:"block2,omitempty"`
}

// Scenario is an immutable, named bundle of initial state + rule variant +
// goal, as loaded from one scenario file. The json tags mirror the yaml
// ones so the HTTP /scenarios surface serialises identically to the
// on-disk format.
type Scenario struct {
	ID                string             `yaml:"id" json:"id"`
	Name              string             `yaml:"name" json:"name"`
	Description       string             `yaml:"description" json:"description"`
	ConstraintSetName string             `yaml:"constraint_set" json:"constraint_set"`
	InitialState      *world.StackConfig `yaml:"initial_state" json:"initial_state,omitempty"`
	Goal              *world.StackConfig `yaml:"goal" json:"goal,omitempty"`
	OptimalPlan       []Step             `yaml:"optimal_plan,omitempty" json:"optimal_plan,omitempty"`
}
