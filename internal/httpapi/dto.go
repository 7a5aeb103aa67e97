package httpapi

import "blocksworld/internal/world"

// startRequest is the optional body of POST /start_simulation. Exactly one
// of ScenarioID or {ConstraintSet, InitialStacks} may be populated; neither
// defaults to the base set with a random world (ValidStartData enforces
// this at validation time).
type startRequest struct {
	ScenarioID    string             `json:"scenario_id,omitempty"`
	InitialStacks *world.StackConfig `json:"initial_stacks,omitempty"`
	ConstraintSet string             `json:"constraint_set,omitempty"`
}

type blockRequest struct {
	Block string `json:"block"`
}

type pairRequest struct {
	Block1 string `json:"block1"`
	Block2 string `json:"block2"`
}

// planStepRequest mirrors one entry of a plan body: {action, block?, block1?, block2?}.
type planStepRequest struct {
	Action string `json:"action"`
	Block  string `json:"block,omitempty"`
	Block1 string `json:"block1,omitempty"`
	Block2 string `json:"block2,omitempty"`
}

type planRequest struct {
	Plan []planStepRequest `json:"plan"`
}

// resultResponse is the uniform {result: message} envelope for every
// non-GET endpoint's success and validation-failure bodies.
type resultResponse struct {
	Result string `json:"result"`
}

// planFailureResponse is the structured executed/offending/skipped report
// spec §4.8/§6 requires on a 400 from /execute_plan or /verify_plan.
type planFailureResponse struct {
	Result   string           `json:"result"`
	Executed []planStepReport `json:"executed"`
	Offender *planStepReport  `json:"offender,omitempty"`
	Skipped  []planStepReport `json:"skipped"`
}

type planStepReport struct {
	Index  int    `json:"index"`
	Reason string `json:"reason,omitempty"`
}

func toStepReports(steps []world.PlanStepResult) []planStepReport {
	out := make([]planStepReport, len(steps))
	for i, s := range steps {
		out[i] = planStepReport{Index: s.Index, Reason: s.Reason}
	}
	return out
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func (r planStepRequest) toAction() (world.Action, bool) {
	switch r.Action {
	case "pick_up":
		return world.NewPickUpAction(firstRune(r.Block)), true
	case "put_down":
		return world.NewPutDownAction(), true
	case "stack":
		return world.NewStackAction(firstRune(r.Block1), firstRune(r.Block2)), true
	case "unstack":
		return world.NewUnstackAction(firstRune(r.Block1), firstRune(r.Block2)), true
	default:
		return nil, false
	}
}
