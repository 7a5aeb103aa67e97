// Package sim implements the ticked simulation loop (spec C9): the single
// goroutine that owns WorldState, drains the HTTP/interactive/plan candidate
// sources in priority order, validates and dispatches one action per tick,
// advances the robot's motion state machine, and renders. Grounded on the
// teacher's robotImpl.startWorker select-loop in
// b-librobot/librobot/librobot_robot.go, generalised from a per-robot task
// queue to one world-owning loop arbitrating three candidate sources.
package sim

import (
	"context"
	"time"

	channerics "github.com/niceyeti/channerics/channels"
	"github.com/rs/zerolog"

	"blocksworld/internal/builder"
	"blocksworld/internal/constraint"
	"blocksworld/internal/plan"
	"blocksworld/internal/render"
	"blocksworld/internal/scenario"
	"blocksworld/internal/world"
)

// Loop owns WorldState exclusively and ticks at a fixed rate. Nothing
// outside this goroutine may read or write State once Run has started.
type Loop struct {
	State     *world.State
	Manager   *constraint.Manager
	Scenarios *scenario.Registry
	Renderer  render.Renderer
	Log       zerolog.Logger

	TickRate time.Duration

	// Inbound is the HTTP transport's single shared channel; every request
	// handler pushes one action and then blocks on that action's own reply
	// channel (spec §5).
	Inbound chan world.Action

	// Interactive is polled non-blockingly each tick (spec §4.9 step 1);
	// raw key events are translated into actions by translateKey, which
	// alone may read l.State from outside the rest of dispatch because it
	// always runs on this goroutine.
	Interactive chan Key

	planQueue       *plan.Queue
	planStepInFlight world.Action

	quit bool
}

// New builds a loop over an empty, not-running world.
func New(mgr *constraint.Manager, scenarios *scenario.Registry, renderer render.Renderer, logger zerolog.Logger, tickRate time.Duration) *Loop {
	return &Loop{
		State:       world.NewState(),
		Manager:     mgr,
		Scenarios:   scenarios,
		Renderer:    renderer,
		Log:         logger,
		TickRate:    tickRate,
		Inbound:     make(chan world.Action, 64),
		Interactive: make(chan Key, 1),
	}
}

// Run ticks until a Quit action is dispatched or ctx is cancelled,
// whichever comes first. It is the only goroutine permitted to touch
// l.State. The ticker itself is channerics.NewTicker rather than a bare
// time.Ticker, so cancelling ctx stops ticking immediately instead of
// leaking the next tick's goroutine wakeup (grounded on the teacher pack's
// own use of channerics.NewTicker for a context-scoped ticker in
// niceyeti-tabular/tabular/server/server.go's publishEleUpdates).
func (l *Loop) Run(ctx context.Context) {
	for range channerics.NewTicker(ctx.Done(), l.TickRate) {
		l.tick()
		if l.quit {
			return
		}
	}
}

// tick performs exactly the nine steps of spec §4.9, in order.
func (l *Loop) tick() {
	var candidate world.Action
	var isPlanStep bool

	// 1. Poll the interactive ingest (non-blocking; may yield nothing).
	select {
	case k := <-l.Interactive:
		if a := l.translateKey(k); a != nil {
			candidate = a
		}
	default:
	}

	// 2. HTTP candidate replaces interactive, but only while no plan is active.
	if l.planQueue == nil {
		select {
		case a := <-l.Inbound:
			candidate = a
		default:
		}
	}

	// 3. A pending, not-yet-dispatched plan step outranks everything, once
	// the robot is available to accept it.
	if l.planQueue != nil && l.planQueue.Pending() && !l.planQueue.Dispatched() && l.State.Robot.AcceptsAction() {
		candidate = l.planQueue.Current()
		isPlanStep = true
	}

	// 4. Validate and dispatch the chosen candidate, if any.
	if candidate != nil {
		ok := l.Manager.Validate(l.State, candidate)
		if isPlanStep {
			l.dispatchPlanStep(candidate, ok)
		} else {
			l.dispatch(candidate, ok)
		}
	}

	// 5. Advance the robot's motion state machine by one step.
	if l.State.Robot != nil {
		if event := l.State.Robot.Step(); event != world.NoEvent {
			l.completeMotion(event)
		}
	}

	// 6/7. Drain the in-flight plan step's local reply, advancing or
	// finalising the plan as needed.
	l.drainPlanStep()

	// 8. Render, unless a plan is executing in verification mode.
	if l.Renderer != nil && !(l.State.Robot != nil && l.State.Robot.Verifying) {
		if err := l.Renderer.Render(l.State); err != nil {
			l.Log.Error().Err(err).Msg("render failed")
		}
	}

	// 9. Sleep to pace ticks is implicit in the ticker driving this method.
}

// drainPlanStep non-blockingly checks whether the currently in-flight plan
// step's reply has arrived, and advances or finalises the plan queue.
func (l *Loop) drainPlanStep() {
	if l.planQueue == nil || l.planStepInFlight == nil {
		return
	}
	select {
	case reply := <-l.planStepInFlight.Reply():
		l.planStepInFlight = nil
		if reply.Success {
			l.Log.Debug().Str("component", "plan").Str("outcome", "step_success").Msg(reply.Message)
			l.planQueue.RecordSuccess()
			if !l.planQueue.Pending() {
				l.finishPlan(l.planQueue.Complete())
			}
		} else {
			l.Log.Debug().Str("component", "plan").Str("outcome", "step_failure").Msg(reply.Message)
			l.finishPlan(l.planQueue.Abort(reply.Message))
		}
	default:
	}
}

// finishPlan delivers the plan's report to the original caller, restores
// the snapshot in Verify mode, and retires the plan queue.
func (l *Loop) finishPlan(report *world.PlanReport) {
	action := l.planQueue.Action()
	if report.Offender == nil {
		action.ReplySuccess("plan completed successfully", report)
	} else {
		action.ReplyFailureWith(report.Offender.Reason, report)
	}
	if l.planQueue.Mode() == world.PlanVerify {
		l.State.Restore(l.planQueue.Snapshot())
	}
	if l.State.Robot != nil {
		l.State.Robot.Verifying = false
	}
	l.planQueue = nil
	l.planStepInFlight = nil
}

// buildWorld materialises stacks and a fresh robot from cfg (nil ⇒ random
// default layout), the way StartAction dispatch requires.
func buildWorld(state *world.State, cfg *world.StackConfig) {
	state.Stacks = builder.Build(cfg)
	state.Robot = world.NewRobot()
	state.Running = true
}
