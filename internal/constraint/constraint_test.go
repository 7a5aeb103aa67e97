package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocksworld/internal/builder"
	"blocksworld/internal/scenario"
	"blocksworld/internal/world"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	ctx := &Context{Scenarios: scenario.NewRegistry()}
	m, err := NewManager(ctx, "base", DefaultSets()...)
	require.NoError(t, err)
	return m
}

func runningState(cfg world.StackConfig) *world.State {
	s := world.NewState()
	s.Running = true
	s.Robot = world.NewRobot()
	s.Stacks = builder.Build(&cfg)
	return s
}

func TestPickUpOnGroundIsValid(t *testing.T) {
	m := newTestManager(t)
	s := runningState(world.StackConfig{{{Name: 'A'}}, {}, {}})

	action := world.NewPickUpAction('A')
	ok := m.Validate(s, action)

	require.True(t, ok)
	assert.Equal(t, world.Valid, action.Validity())
	require.NotNil(t, action.ResolvedStack)
	assert.Equal(t, 1, action.ResolvedStack.Number)
}

func TestPickUpRefusedWhenStacked(t *testing.T) {
	m := newTestManager(t)
	s := runningState(world.StackConfig{{{Name: 'A'}, {Name: 'B'}}, {}, {}})

	action := world.NewPickUpAction('A')
	ok := m.Validate(s, action)

	require.False(t, ok)
	assert.Equal(t, world.Invalid, action.Validity())
	assert.Contains(t, action.InvalidReason(), "not on top")
}

func TestUnstackThenStack(t *testing.T) {
	m := newTestManager(t)
	s := runningState(world.StackConfig{{{Name: 'A'}, {Name: 'B'}}, {}, {{Name: 'C'}}})

	unstack := world.NewUnstackAction('B', 'A')
	require.True(t, m.Validate(s, unstack))
	require.NotNil(t, unstack.ResolvedBlock)
	require.NotNil(t, unstack.ResolvedStack)

	// Simulate the robot having picked B up.
	s.Stacks[0].PopTop()
	s.Robot.State = world.RobotHolding
	s.Robot.HeldBlock = unstack.ResolvedBlock

	stackAction := world.NewStackAction('B', 'C')
	require.True(t, m.Validate(s, stackAction))
	assert.Equal(t, 'C', stackAction.ResolvedTarget.Name)
}

func TestPutDownRequiresFreeStack(t *testing.T) {
	m := newTestManager(t)
	s := runningState(world.StackConfig{{{Name: 'A'}}, {{Name: 'B'}}})
	s.Robot.State = world.RobotHolding
	held, _ := s.Stacks[0].PopTop()
	s.Robot.HeldBlock = held

	action := world.NewPutDownAction()
	ok := m.Validate(s, action)
	require.True(t, ok)
	assert.NotNil(t, action.TargetStack)
}

func TestPutDownFailsWithoutFreeStack(t *testing.T) {
	m := newTestManager(t)
	s := runningState(world.StackConfig{{{Name: 'A'}}, {{Name: 'B'}}})
	s.Robot.State = world.RobotHolding
	s.Robot.HeldBlock = world.NewBlock('C')

	action := world.NewPutDownAction()
	ok := m.Validate(s, action)
	assert.False(t, ok)
	assert.Contains(t, action.InvalidReason(), "no empty stack")
}

func TestBlockSizeVariantRejectsNarrowerTarget(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.SetActive("block_size"))

	s := runningState(world.StackConfig{
		{{Name: 'A', XSize: 2}},
		{{Name: 'B', XSize: 1}},
	})
	s.Robot.State = world.RobotHolding
	held, _ := s.Stacks[0].PopTop()
	s.Robot.HeldBlock = held

	action := world.NewStackAction('A', 'B')
	ok := m.Validate(s, action)
	assert.False(t, ok)
	assert.Contains(t, action.InvalidReason(), "narrower")
}

func TestGetStatusRequiresRunning(t *testing.T) {
	m := newTestManager(t)
	s := world.NewState()

	action := world.NewGetStatusAction()
	ok := m.Validate(s, action)
	assert.False(t, ok)
	assert.Equal(t, world.Invalid, action.Validity())
}

func TestPartialObservabilityRedactsDeepBlocks(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.SetActive("partial_observability"))

	s := runningState(world.StackConfig{{{Name: 'A'}, {Name: 'B'}, {Name: 'C'}}})
	action := world.NewGetStatusAction()
	require.True(t, m.Validate(s, action))

	stacks := action.Status["stacks"].([]map[string]any)
	blocks := stacks[0]["blocks"].([]map[string]any)
	assert.Equal(t, "unknown", blocks[0]["name"])
	assert.Equal(t, "B", blocks[1]["name"])
	assert.Equal(t, "C", blocks[2]["name"])
}
