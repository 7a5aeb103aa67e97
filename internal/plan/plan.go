// Package plan implements the plan executor/verifier: it sequences a
// submitted plan's motion actions one at a time through the same
// constraint-validate-then-dispatch pipeline ordinary actions use, and
// guarantees Verify mode is a pure no-op via a deep-copy snapshot/restore of
// world state.
package plan

import "blocksworld/internal/world"

// Queue holds one in-progress plan run: its steps, the world snapshot taken
// at acceptance time, and the bookkeeping needed to build a PlanReport if a
// step is ever invalidated.
type Queue struct {
	action   *world.PlanAction
	snapshot *world.State

	cursor     int
	executed   []world.PlanStepResult
	dispatched bool
}

// NewQueue snapshots state and accepts a plan for sequencing. The snapshot
// is always taken, even in Execute mode, since an aborted Verify-mode run
// needs it and the cost of an unused snapshot is negligible next to a
// verification-mode branch scattered through the caller.
func NewQueue(action *world.PlanAction, state *world.State) *Queue {
	return &Queue{
		action:   action,
		snapshot: state.Snapshot(),
	}
}

// RunID returns the plan run's correlation ID.
func (q *Queue) RunID() string { return q.action.RunID }

// Mode returns whether this run executes live or verifies against the snapshot.
func (q *Queue) Mode() world.PlanMode { return q.action.Mode }

// Action returns the PlanAction this queue is sequencing, so the caller can
// reply on its channel.
func (q *Queue) Action() *world.PlanAction { return q.action }

// Pending reports whether there is another step to dispatch.
func (q *Queue) Pending() bool {
	return q.cursor < len(q.action.Steps)
}

// Current returns the step at the cursor. Callers must check Pending first.
func (q *Queue) Current() world.Action {
	return q.action.Steps[q.cursor]
}

// RecordSuccess marks the current step complete and advances the cursor.
func (q *Queue) RecordSuccess() {
	q.executed = append(q.executed, world.PlanStepResult{Index: q.cursor, Step: q.Current()})
	q.cursor++
	q.dispatched = false
}

// Dispatched reports whether the current step has already been validated
// and handed to the robot this run, so the loop does not redispatch it on
// every tick while its motion is still in flight.
func (q *Queue) Dispatched() bool { return q.dispatched }

// MarkDispatched records that the current step has been handed off.
func (q *Queue) MarkDispatched() { q.dispatched = true }

// Abort builds the plan report for a step that failed validation: every
// previously completed step, the offending step with its failure reason,
// and the remaining steps that will never run.
func (q *Queue) Abort(reason string) *world.PlanReport {
	offender := world.PlanStepResult{Index: q.cursor, Step: q.Current(), Reason: reason}

	var skipped []world.PlanStepResult
	for i := q.cursor + 1; i < len(q.action.Steps); i++ {
		skipped = append(skipped, world.PlanStepResult{Index: i, Step: q.action.Steps[i]})
	}

	return &world.PlanReport{
		RunID:    q.action.RunID,
		Mode:     q.action.Mode,
		Executed: q.executed,
		Offender: &offender,
		Skipped:  skipped,
	}
}

// Complete builds the plan report for a run where every step succeeded.
func (q *Queue) Complete() *world.PlanReport {
	return &world.PlanReport{
		RunID:    q.action.RunID,
		Mode:     q.action.Mode,
		Executed: q.executed,
	}
}

// Snapshot returns the world state captured at plan acceptance time, for
// restoration on Verify-mode completion or abort.
func (q *Queue) Snapshot() *world.State { return q.snapshot }
