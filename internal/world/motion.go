package world

// MotionEvent reports what, if anything, completed during a Robot.Step call,
// so the dispatcher (which owns action-specific success messages) knows when
// to fire an in-flight action's reply and clear it.
type MotionEvent int

const (
	// NoEvent means the robot is idle, holding, or still travelling.
	NoEvent MotionEvent = iota
	// PickCompleted fires on the LIFTING -> HOLDING transition.
	PickCompleted
	// PlaceCompleted fires on the RELEASING -> IDLE transition.
	PlaceCompleted
)

// BeginPick transitions an idle robot into MOVING_TO_PICK, resolving the
// coordinate it must reach and the stack the block will be lifted from.
func (r *Robot) BeginPick(source *Stack, targetX, targetY int, action Action) {
	r.State = RobotMovingToPick
	r.targetX, r.targetY = targetX, targetY
	r.sourceStack = source
	r.InFlight = action
}

// BeginPlace transitions a holding robot into MOVING_TO_PLACE, resolving the
// coordinate it must reach and the stack the held block will be placed onto.
func (r *Robot) BeginPlace(target *Stack, targetX, targetY int, action Action) {
	r.State = RobotMovingToPlace
	r.targetX, r.targetY = targetX, targetY
	r.targetStack = target
	r.InFlight = action
}

// Step advances the motion state machine by one tick. In verification mode,
// the same transition sequence is traversed but every movement state
// completes its target instantly, so one code path serves both animated
// and batch (plan verification) execution.
func (r *Robot) Step() MotionEvent {
	if r.State == RobotIdle || r.State == RobotHolding {
		return NoEvent
	}

	if r.Verifying {
		r.X, r.Y = r.targetX, r.targetY
	} else {
		r.X = stepToward(r.X, r.targetX, Speed)
		r.Y = stepToward(r.Y, r.targetY, Speed)
	}
	if r.HeldBlock != nil {
		r.HeldBlock.X, r.HeldBlock.Y = r.X, r.Y
	}

	if r.X != r.targetX || r.Y != r.targetY {
		return NoEvent // still travelling toward target
	}

	switch r.State {
	case RobotMovingToPick:
		r.State = RobotPicking
		return NoEvent
	case RobotPicking:
		block, err := r.sourceStack.PopTop()
		if err != nil {
			panic("blocksworld: robot entered PICKING over an empty stack: " + err.Error())
		}
		block.X, block.Y = r.X, r.Y
		r.HeldBlock = block
		r.sourceStack = nil
		r.State = RobotLifting
		return NoEvent
	case RobotLifting:
		r.State = RobotHolding
		return PickCompleted
	case RobotMovingToPlace:
		r.State = RobotLowering
		return NoEvent
	case RobotLowering:
		r.targetStack.Push(r.HeldBlock)
		r.HeldBlock = nil
		r.targetStack = nil
		r.State = RobotReleasing
		return NoEvent
	case RobotReleasing:
		r.State = RobotIdle
		return PlaceCompleted
	default:
		return NoEvent
	}
}

// ClearInFlight drops the robot's reference to its current action, once the
// dispatcher has delivered the reply.
func (r *Robot) ClearInFlight() {
	r.InFlight = nil
}

func stepToward(current, target, speed int) int {
	if current < target {
		if current+speed > target {
			return target
		}
		return current + speed
	}
	if current-speed < target {
		return target
	}
	return current - speed
}
