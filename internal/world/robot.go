package world

// RobotMotionState is the closed set of states the robot's motion state
// machine can be in. Transitions are driven one step per tick by Robot.Step.
type RobotMotionState int

const (
	RobotIdle RobotMotionState = iota
	RobotMovingToPick
	RobotPicking
	RobotLifting
	RobotHolding
	RobotMovingToPlace
	RobotLowering
	RobotReleasing
)

func (s RobotMotionState) String() string {
	switch s {
	case RobotIdle:
		return "IDLE"
	case RobotMovingToPick:
		return "MOVING_TO_PICK"
	case RobotPicking:
		return "PICKING"
	case RobotLifting:
		return "LIFTING"
	case RobotHolding:
		return "HOLDING"
	case RobotMovingToPlace:
		return "MOVING_TO_PLACE"
	case RobotLowering:
		return "LOWERING"
	case RobotReleasing:
		return "RELEASING"
	default:
		return "UNKNOWN"
	}
}

// Speed is the per-tick movement step used for animated (non-verification)
// motion; each Step moves the robot's grip by at most Speed units toward its
// current target.
const Speed = 4

// Robot carries at most one block and executes exactly one motion action at
// a time. HeldBlock is non-nil iff State is past the pick transfer and
// before the release transfer (LIFTING, HOLDING, MOVING_TO_PLACE or LOWERING).
type Robot struct {
	State     RobotMotionState
	HeldBlock *Block
	X, Y      int // current grip coordinates

	InFlight  Action // the motion action currently being executed, if any
	Verifying bool   // when true, Step completes state transitions instantly

	targetX, targetY int
	sourceStack      *Stack
	targetStack      *Stack
}

// NewRobot returns a robot parked at the origin, idle, holding nothing.
func NewRobot() *Robot {
	return &Robot{State: RobotIdle}
}

// AcceptsAction reports whether the robot's motion state machine will accept
// a newly validated action this tick (spec: state = IDLE or HOLDING).
func (r *Robot) AcceptsAction() bool {
	return r.State == RobotIdle || r.State == RobotHolding
}

// Clone returns a deep copy of the robot. HeldBlock, if any, is cloned too;
// InFlight is intentionally not copied — it is a live reference to an
// in-progress action's reply channel and is not meaningful inside a
// snapshot used only for plan-verification rollback.
func (r *Robot) Clone() *Robot {
	clone := *r
	clone.InFlight = nil
	clone.HeldBlock = r.HeldBlock.Clone()
	clone.sourceStack = nil
	clone.targetStack = nil
	return &clone
}
