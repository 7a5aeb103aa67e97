// Package constraint implements the pluggable rule framework that validates
// every action against the current world state before the simulation loop
// dispatches it. Constraints are composed into named ConstraintSets (base,
// block-size, Hanoi-towers, partial-observability) managed by a Manager that
// holds exactly one active set at a time.
package constraint

import (
	"blocksworld/internal/scenario"
	"blocksworld/internal/world"
)

// Context carries the read-only collaborators a constraint may need beyond
// the (state, action) pair itself: the scenario registry for start-time
// lookups, and the set of constraint-set names a PreStart payload may select.
type Context struct {
	Scenarios          *scenario.Registry
	ConstraintSetNames []string
}

// Constraint is a single named predicate over (state, action). It is
// permitted to write resolved references onto the action and to call
// action.SetInvalid(reason) as a side effect when it returns false.
type Constraint interface {
	Name() string
	Evaluate(ctx *Context, state *world.State, action world.Action) bool
}

// Func adapts a plain function into a Constraint, the way the base library
// constructs each named rule below.
type Func struct {
	name string
	eval func(ctx *Context, state *world.State, action world.Action) bool
}

func (f Func) Name() string { return f.name }

func (f Func) Evaluate(ctx *Context, state *world.State, action world.Action) bool {
	return f.eval(ctx, state, action)
}

func newConstraint(name string, eval func(*Context, *world.State, world.Action) bool) Constraint {
	return Func{name: name, eval: eval}
}
