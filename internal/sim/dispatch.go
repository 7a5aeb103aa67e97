package sim

import (
	"fmt"

	"blocksworld/internal/plan"
	"blocksworld/internal/world"
)

// dispatch handles one externally-sourced candidate action (HTTP or
// interactive) per spec §4.10. Invalid actions are replied to immediately
// with a kind-specific failure prefix; valid actions are routed to the
// world-mutating or robot-handing logic appropriate to their kind.
func (l *Loop) dispatch(action world.Action, valid bool) {
	if !valid {
		action.ReplyFailure(failurePrefix(action.Kind()) + action.InvalidReason())
		return
	}

	switch a := action.(type) {
	case *world.QuitAction:
		l.quit = true
		a.ReplySuccess("shutting down", nil)

	case *world.PreStartAction:
		l.dispatchPreStart(a)

	case *world.StartAction:
		buildWorld(l.State, a.StackConfig)
		a.ReplySuccess(fmt.Sprintf("simulation started with constraint set %q", a.ConstraintSetName), nil)

	case *world.StopAction:
		l.State.Running = false
		a.ReplySuccess("simulation stopped", nil)

	case *world.GetStatusAction:
		a.ReplySuccess("status retrieved", a.Status)

	case *world.GetRulesAction:
		a.Rules = l.Manager.GetRules()
		a.ReplySuccess("rules retrieved", a.Rules)

	case *world.GetScenarioAction:
		a.ReplySuccess("scenario retrieved", a.Scenario)

	case *world.PickUpAction:
		x, y := a.Target()
		l.State.Robot.BeginPick(a.ResolvedStack, x, y, a)

	case *world.UnstackAction:
		x, y := a.Target()
		l.State.Robot.BeginPick(a.ResolvedStack, x, y, a)

	case *world.PutDownAction:
		x, y := a.Target()
		l.State.Robot.BeginPlace(a.TargetStack, x, y, a)

	case *world.StackAction:
		x, y := a.Target()
		l.State.Robot.BeginPlace(a.ResolvedTargetStack, x, y, a)

	case *world.PlanAction:
		l.beginPlan(a)

	default:
		action.ReplyFailure(fmt.Sprintf("unhandled action kind %s", action.Kind()))
	}
}

// dispatchPreStart resolves the constraint-set swap and builds the Start
// action spec §4.10 describes, forwarding Start's own reply back onto
// PreStart's channel so the HTTP caller (blocked on PreStart.Reply())
// observes Start's outcome. The constraint set is swapped first, then the
// PreStart payload is validated again under the newly active set (so a
// variant's start-time checks, such as Hanoi's ValidStartConfig, apply to the
// simulation they start), and only then is the Start action validated/built.
// The ordering is recorded in DESIGN.md. A failure after the swap leaves the
// new set active.
func (l *Loop) dispatchPreStart(a *world.PreStartAction) {
	if err := l.Manager.SetActive(a.ResolvedConstraintSet); err != nil {
		a.ReplyFailure(err.Error())
		return
	}
	if !l.Manager.Validate(l.State, a) {
		a.ReplyFailure(failurePrefix(a.Kind()) + a.InvalidReason())
		return
	}

	start := world.NewStartAction(a.ResolvedConstraintSet, a.ResolvedStackConfig)
	ok := l.Manager.Validate(l.State, start)
	if !ok {
		a.ReplyFailure(failurePrefix(start.Kind()) + start.InvalidReason())
		return
	}
	buildWorld(l.State, start.StackConfig)
	a.ReplySuccess(fmt.Sprintf("simulation started with constraint set %q", start.ConstraintSetName), nil)
}

// beginPlan accepts a Plan action: snapshot state, build the step queue,
// and switch the robot into verification mode if requested (spec §4.8).
func (l *Loop) beginPlan(a *world.PlanAction) {
	l.planQueue = plan.NewQueue(a, l.State)
	if a.Mode == world.PlanVerify {
		l.State.Robot.Verifying = true
	}
}

// dispatchPlanStep handles one plan-sourced motion step. An invalid step
// aborts the plan immediately; a valid one is handed to the robot and
// tracked as in-flight so drainPlanStep can pick up its eventual reply.
func (l *Loop) dispatchPlanStep(action world.Action, valid bool) {
	if !valid {
		l.finishPlan(l.planQueue.Abort(action.InvalidReason()))
		return
	}

	l.planQueue.MarkDispatched()
	l.planStepInFlight = action

	switch a := action.(type) {
	case *world.PickUpAction:
		x, y := a.Target()
		l.State.Robot.BeginPick(a.ResolvedStack, x, y, a)
	case *world.UnstackAction:
		x, y := a.Target()
		l.State.Robot.BeginPick(a.ResolvedStack, x, y, a)
	case *world.PutDownAction:
		x, y := a.Target()
		l.State.Robot.BeginPlace(a.TargetStack, x, y, a)
	case *world.StackAction:
		x, y := a.Target()
		l.State.Robot.BeginPlace(a.ResolvedTargetStack, x, y, a)
	default:
		l.finishPlan(l.planQueue.Abort(fmt.Sprintf("plan step kind %s is not a motion action", action.Kind())))
	}
}

// completeMotion fires the in-flight action's reply on a motion completion
// event, per spec §4.7's "on entering LIFTING→HOLDING / RELEASING→IDLE"
// contracts, and clears the robot's reference to it.
func (l *Loop) completeMotion(event world.MotionEvent) {
	action := l.State.Robot.InFlight
	if action == nil {
		return
	}
	l.State.Robot.ClearInFlight()

	switch event {
	case world.PickCompleted:
		switch a := action.(type) {
		case *world.PickUpAction:
			a.ReplySuccess(fmt.Sprintf("block %c picked up successfully from stack %d", a.BlockName, a.ResolvedStack.Number), nil)
		case *world.UnstackAction:
			a.ReplySuccess(fmt.Sprintf("block %c unstacked successfully from block %c", a.BlockName, a.BelowName), nil)
		}
	case world.PlaceCompleted:
		switch a := action.(type) {
		case *world.PutDownAction:
			a.ReplySuccess(fmt.Sprintf("block %c put down successfully on stack %d", a.ResolvedBlock.Name, a.TargetStack.Number), nil)
		case *world.StackAction:
			a.ReplySuccess(fmt.Sprintf("block %c stacked successfully on block %c", a.BlockName, a.TargetName), nil)
		}
	}
}

// failurePrefix supplies the action-specific prefix spec §7 requires ahead
// of a constraint's own reason message, e.g. "Block could not be picked up - ".
func failurePrefix(kind world.ActionKind) string {
	switch kind {
	case world.KindPickUp:
		return "Block could not be picked up - "
	case world.KindPutDown:
		return "Block could not be put down - "
	case world.KindStack:
		return "Block could not be stacked - "
	case world.KindUnstack:
		return "Block could not be unstacked - "
	case world.KindStart, world.KindPreStart:
		return "Simulation could not be started - "
	case world.KindStop:
		return "Simulation could not be stopped - "
	case world.KindGetStatus:
		return "Status could not be retrieved - "
	case world.KindGetScenario:
		return "Scenario could not be retrieved - "
	default:
		return ""
	}
}
