package world

import "errors"

// Sentinel errors of the world model, to be tested with errors.Is rather than
// by inspecting message text. Stack.PopTop returns ErrStackEmpty; the
// constraint layer reports its failures as Action.SetInvalid reasons and does
// not return these sentinels.
var (
	// ErrNotRunning indicates an operation requires a running simulation.
	ErrNotRunning = errors.New("simulation is not running")
	// ErrAlreadyRunning indicates Start was called on a running simulation.
	ErrAlreadyRunning = errors.New("simulation is already running")
	// ErrBlockNotFound indicates a named block does not exist in the world.
	ErrBlockNotFound = errors.New("block not found")
	// ErrDuplicateBlockName indicates two blocks in a configuration share a name.
	ErrDuplicateBlockName = errors.New("duplicate block name")
	// ErrStackEmpty indicates PopTop was called on an empty stack.
	ErrStackEmpty = errors.New("stack is empty")
	// ErrStackIndexRange indicates a stack number outside the configured range.
	ErrStackIndexRange = errors.New("stack number out of range")
	// ErrNoFreeStack indicates no empty stack is available.
	ErrNoFreeStack = errors.New("no empty stack available")
	// ErrRobotNotIdle indicates a motion action was accepted while the robot
	// was not in a state that accepts new actions.
	ErrRobotNotIdle = errors.New("robot is not idle")
	// ErrRobotNotHolding indicates a place action was attempted while the
	// robot is not holding a block.
	ErrRobotNotHolding = errors.New("robot is not holding a block")
	// ErrActionInFlight indicates a second action was dispatched to the robot
	// while one was already executing; this should never be reachable if
	// dispatch respects RobotIdle/RobotHolding gating.
	ErrActionInFlight = errors.New("robot already has an action in flight")
)
