package sim

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocksworld/internal/constraint"
	"blocksworld/internal/scenario"
	"blocksworld/internal/world"
)

func newTestLoop(t *testing.T) *Loop {
	t.Helper()
	scenarios := scenario.NewRegistry()
	mgr, err := constraint.NewManager(&constraint.Context{Scenarios: scenarios}, "base", constraint.DefaultSets()...)
	require.NoError(t, err)
	return New(mgr, scenarios, nil, zerolog.Nop(), time.Millisecond)
}

func TestTickDispatchesStartAndReplies(t *testing.T) {
	l := newTestLoop(t)
	cfg := world.StackConfig{{{Name: 'A'}}, {}, {}}
	start := world.NewStartAction("base", &cfg)

	l.Inbound <- start
	l.tick()

	select {
	case reply := <-start.Reply():
		assert.True(t, reply.Success)
	default:
		t.Fatal("expected a reply after dispatching Start")
	}
	assert.True(t, l.State.Running)
	assert.Len(t, l.State.Stacks, 3)
}

func TestTickPicksUpBlockOverSeveralTicks(t *testing.T) {
	l := newTestLoop(t)
	cfg := world.StackConfig{{{Name: 'A'}}, {}, {}}
	buildWorld(l.State, &cfg)

	pick := world.NewPickUpAction('A')
	l.Inbound <- pick
	l.tick()

	// Keep ticking (no new candidates) until the motion completes.
	for i := 0; i < 50 && l.State.Robot.State != world.RobotHolding; i++ {
		l.tick()
	}

	require.Equal(t, world.RobotHolding, l.State.Robot.State)
	select {
	case reply := <-pick.Reply():
		assert.True(t, reply.Success)
	default:
		t.Fatal("expected pick_up to have replied by the time the robot is holding")
	}
}

func TestPlanVerifyModeRestoresSnapshot(t *testing.T) {
	l := newTestLoop(t)
	cfg := world.StackConfig{{{Name: 'A'}, {Name: 'B'}}, {}, {}}
	buildWorld(l.State, &cfg)

	steps := []world.Action{
		world.NewUnstackAction('B', 'A'),
		world.NewPutDownAction(),
	}
	planAction := world.NewPlanAction("run-1", steps, world.PlanVerify)

	l.Inbound <- planAction
	for i := 0; i < 500 && l.planQueue != nil; i++ {
		l.tick()
	}

	select {
	case reply := <-planAction.Reply():
		assert.True(t, reply.Success)
	default:
		t.Fatal("expected the plan to have completed")
	}
	require.Len(t, l.State.Stacks, 3)
	assert.Equal(t, 2, l.State.Stacks[0].Len())
	assert.False(t, l.State.Robot.Verifying)
}

func TestPlanAbortReportsOffenderAndSkipped(t *testing.T) {
	l := newTestLoop(t)
	cfg := world.StackConfig{{{Name: 'A'}}, {{Name: 'B'}}, {}}
	buildWorld(l.State, &cfg)

	steps := []world.Action{
		world.NewPickUpAction('A'),
		world.NewPickUpAction('B'),
	}
	planAction := world.NewPlanAction("run-2", steps, world.PlanExecute)

	l.Inbound <- planAction
	for i := 0; i < 500 && l.planQueue != nil; i++ {
		l.tick()
	}

	select {
	case reply := <-planAction.Reply():
		assert.False(t, reply.Success)
		assert.Contains(t, reply.Message, "not idle")
		report, ok := reply.Payload.(*world.PlanReport)
		require.True(t, ok)
		assert.Len(t, report.Executed, 1)
		require.NotNil(t, report.Offender)
		assert.Equal(t, 1, report.Offender.Index)
		assert.Empty(t, report.Skipped)
	default:
		t.Fatal("expected the plan to have aborted")
	}
	// Execute-mode aborts keep the executed prefix: block A stays held.
	assert.Equal(t, world.RobotHolding, l.State.Robot.State)
}
