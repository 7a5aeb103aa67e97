package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocksworld/internal/world"
)

func newSteps() []world.Action {
	return []world.Action{
		world.NewPickUpAction('A'),
		world.NewPickUpAction('B'),
	}
}

func TestQueueAdvancesAndCompletes(t *testing.T) {
	state := world.NewState()
	state.Robot = world.NewRobot()
	action := world.NewPlanAction("run-1", newSteps(), world.PlanExecute)

	q := NewQueue(action, state)
	require.True(t, q.Pending())
	assert.Equal(t, world.KindPickUp, q.Current().Kind())

	q.RecordSuccess()
	require.True(t, q.Pending())
	q.RecordSuccess()
	assert.False(t, q.Pending())

	report := q.Complete()
	assert.Len(t, report.Executed, 2)
	assert.Nil(t, report.Offender)
}

func TestQueueAbortReportsExecutedOffenderAndSkipped(t *testing.T) {
	state := world.NewState()
	state.Robot = world.NewRobot()
	steps := []world.Action{
		world.NewPickUpAction('A'),
		world.NewPickUpAction('B'),
		world.NewPickUpAction('C'),
	}
	action := world.NewPlanAction("run-2", steps, world.PlanVerify)

	q := NewQueue(action, state)
	q.RecordSuccess() // step 0 (A) succeeds

	report := q.Abort("robot is not idle")
	assert.Len(t, report.Executed, 1)
	require.NotNil(t, report.Offender)
	assert.Equal(t, 1, report.Offender.Index)
	assert.Equal(t, "robot is not idle", report.Offender.Reason)
	assert.Len(t, report.Skipped, 1)
	assert.Equal(t, 2, report.Skipped[0].Index)
}

func TestQueueSnapshotIndependentOfLiveState(t *testing.T) {
	state := world.NewState()
	state.Running = true
	action := world.NewPlanAction("run-3", newSteps(), world.PlanVerify)

	q := NewQueue(action, state)
	state.Running = false

	assert.True(t, q.Snapshot().Running)
}
