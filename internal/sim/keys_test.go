package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocksworld/internal/world"
)

func TestTranslateKeyPickVsUnstack(t *testing.T) {
	l := newTestLoop(t)
	cfg := world.StackConfig{{{Name: 'A'}}, {{Name: 'B'}, {Name: 'C'}}, {}}
	buildWorld(l.State, &cfg)

	pick := l.translateKey(Key('A'))
	require.IsType(t, &world.PickUpAction{}, pick)

	unstack := l.translateKey(Key('C'))
	require.IsType(t, &world.UnstackAction{}, unstack)
	assert.Equal(t, 'C', unstack.(*world.UnstackAction).BlockName)
	assert.Equal(t, 'B', unstack.(*world.UnstackAction).BelowName)
}

func TestTranslateKeyStackWhileHolding(t *testing.T) {
	l := newTestLoop(t)
	cfg := world.StackConfig{{{Name: 'A'}}, {{Name: 'B'}}, {}}
	buildWorld(l.State, &cfg)
	l.State.Robot.State = world.RobotHolding
	l.State.Robot.HeldBlock = world.NewBlock('A')

	action := l.translateKey(Key('B'))
	require.IsType(t, &world.StackAction{}, action)
	stackAction := action.(*world.StackAction)
	assert.Equal(t, 'A', stackAction.BlockName)
	assert.Equal(t, 'B', stackAction.TargetName)
}

func TestTranslateKeySpaceAndEscapeAndClose(t *testing.T) {
	l := newTestLoop(t)

	assert.IsType(t, &world.PreStartAction{}, l.translateKey(KeySpace))

	cfg := world.StackConfig{{{Name: 'A'}}, {}, {}}
	buildWorld(l.State, &cfg)
	assert.IsType(t, &world.StopAction{}, l.translateKey(KeyEscape))

	l.State.Robot.State = world.RobotHolding
	l.State.Robot.HeldBlock = world.NewBlock('A')
	assert.IsType(t, &world.PutDownAction{}, l.translateKey(KeySpace))

	assert.IsType(t, &world.QuitAction{}, l.translateKey(KeyWindowClose))
}
