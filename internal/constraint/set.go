package constraint

import "blocksworld/internal/world"

// Set is an ordered composition of constraints per action kind — one named
// rule variant. Evaluation is short-circuit: the first failing constraint
// has already marked the action invalid; if every constraint for the
// action's kind passes, the action is marked valid.
type Set struct {
	Name      string
	RulesText string

	byKind map[world.ActionKind][]Constraint
}

// NewSet creates an empty named constraint set with human-readable rules text.
func NewSet(name, rulesText string) *Set {
	return &Set{Name: name, RulesText: rulesText, byKind: make(map[world.ActionKind][]Constraint)}
}

// On registers the ordered constraint list for one action kind, returning
// the set for chaining.
func (s *Set) On(kind world.ActionKind, constraints ...Constraint) *Set {
	s.byKind[kind] = constraints
	return s
}

// Validate runs the constraint list registered for action.Kind() in order.
// An action kind with no registered list is always valid (e.g. Quit).
func (s *Set) Validate(ctx *Context, state *world.State, action world.Action) bool {
	for _, c := range s.byKind[action.Kind()] {
		if !c.Evaluate(ctx, state, action) {
			return false
		}
	}
	action.SetValid()
	return true
}
