package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPopTopY(t *testing.T) {
	s := NewStack(1, 10)
	require.Equal(t, 0, s.TopY())

	a := NewBlock('A')
	s.Push(a)
	assert.Equal(t, 1, s.TopY())
	assert.Equal(t, 10, a.X)
	assert.Equal(t, 0, a.Y)

	b := NewBlock('B')
	b.YSize = 2
	s.Push(b)
	assert.Equal(t, 3, s.TopY())
	assert.Equal(t, 1, b.Y)

	top, err := s.PopTop()
	require.NoError(t, err)
	assert.Equal(t, 'B', top.Name)
	assert.Equal(t, 1, s.Len())

	_, err = s.PopTop()
	require.NoError(t, err)
	_, err = s.PopTop()
	assert.ErrorIs(t, err, ErrStackEmpty)
}

func TestStackBelowAndContains(t *testing.T) {
	s := NewStack(1, 0)
	s.Push(NewBlock('A'))
	s.Push(NewBlock('B'))

	assert.True(t, s.Contains('A'))
	assert.False(t, s.Contains('Z'))
	require.NotNil(t, s.Below('B'))
	assert.Equal(t, 'A', s.Below('B').Name)
	assert.Nil(t, s.Below('A'))
}

func TestStateToStatusDictIsPureView(t *testing.T) {
	st := NewState()
	st.Running = true
	st.Robot = NewRobot()
	stack := NewStack(1, 0)
	stack.Push(NewBlock('A'))
	st.Stacks = []*Stack{stack}

	first := st.ToStatusDict()
	second := st.ToStatusDict()
	assert.Equal(t, first, second)

	// Mutating the returned dict must not affect world state.
	first["running"] = false
	assert.True(t, st.Running)
}

func TestStateSnapshotRestoreIsDeepCopy(t *testing.T) {
	st := NewState()
	st.Running = true
	st.Robot = NewRobot()
	stack := NewStack(1, 0)
	stack.Push(NewBlock('A'))
	st.Stacks = []*Stack{stack}

	snap := st.Snapshot()

	// Mutate live state after taking the snapshot.
	_, err := st.Stacks[0].PopTop()
	require.NoError(t, err)
	st.Running = false

	assert.Equal(t, 1, snap.Stacks[0].Len())
	assert.True(t, snap.Running)

	st.Restore(snap)
	assert.True(t, st.Running)
	assert.Equal(t, 1, st.Stacks[0].Len())
	assert.Equal(t, 'A', st.Stacks[0].Top().Name)

	// Restored stacks/blocks must be independent copies, not aliases.
	st.Stacks[0].Top().X = 999
	assert.NotEqual(t, 999, snap.Stacks[0].Top().X)
}

func TestRobotFullPickAndPlaceCycle(t *testing.T) {
	source := NewStack(1, 0)
	source.Push(NewBlock('A'))
	target := NewStack(2, 20)

	r := NewRobot()
	action := NewPickUpAction('A')
	r.BeginPick(source, 0, 0, action)

	var event MotionEvent
	ticks := 0
	for event != PickCompleted && ticks < 50 {
		event = r.Step()
		ticks++
	}
	require.Equal(t, PickCompleted, event)
	assert.Equal(t, RobotHolding, r.State)
	require.NotNil(t, r.HeldBlock)
	assert.Equal(t, 'A', r.HeldBlock.Name)
	assert.Equal(t, 0, source.Len())

	place := NewPutDownAction()
	r.BeginPlace(target, 20, 0, place)
	event = MotionEvent(NoEvent)
	ticks = 0
	for event != PlaceCompleted && ticks < 50 {
		event = r.Step()
		ticks++
	}
	require.Equal(t, PlaceCompleted, event)
	assert.Equal(t, RobotIdle, r.State)
	assert.Nil(t, r.HeldBlock)
	assert.Equal(t, 1, target.Len())
	assert.Equal(t, 'A', target.Top().Name)
}

func TestRobotVerifyingModeCompletesInstantly(t *testing.T) {
	source := NewStack(1, 0)
	source.Push(NewBlock('A'))

	r := NewRobot()
	r.Verifying = true
	r.BeginPick(source, 50, 50, NewPickUpAction('A'))

	// MOVING_TO_PICK -> PICKING -> LIFTING -> HOLDING: at most 3 ticks
	// regardless of distance, since verification ignores Speed.
	var event MotionEvent
	for i := 0; i < 3 && event != PickCompleted; i++ {
		event = r.Step()
	}
	assert.Equal(t, PickCompleted, event)
	assert.Equal(t, 50, r.X)
	assert.Equal(t, 50, r.Y)
}

func TestAcceptsAction(t *testing.T) {
	r := NewRobot()
	assert.True(t, r.AcceptsAction())
	r.State = RobotMovingToPick
	assert.False(t, r.AcceptsAction())
	r.State = RobotHolding
	assert.True(t, r.AcceptsAction())
}
