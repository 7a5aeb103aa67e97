package world

// ActionKind tags the runtime variant of an Action. The constraint manager
// and the simulation loop's dispatcher both switch on Kind() to select
// behaviour, rather than relying on inheritance.
type ActionKind int

const (
	KindQuit ActionKind = iota
	KindPreStart
	KindStart
	KindStop
	KindGetStatus
	KindGetRules
	KindGetScenario
	KindPickUp
	KindPutDown
	KindStack
	KindUnstack
	KindPlan
)

func (k ActionKind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindPreStart:
		return "pre_start"
	case KindStart:
		return "start"
	case KindStop:
		return "stop"
	case KindGetStatus:
		return "get_status"
	case KindGetRules:
		return "get_rules"
	case KindGetScenario:
		return "get_scenario"
	case KindPickUp:
		return "pick_up"
	case KindPutDown:
		return "put_down"
	case KindStack:
		return "stack"
	case KindUnstack:
		return "unstack"
	case KindPlan:
		return "plan"
	default:
		return "unknown"
	}
}

// Validity is the tri-state an action moves through during the pipeline:
// created unvalidated, then marked valid or invalid(reason) by exactly one
// constraint evaluation pass.
type Validity int

const (
	Unvalidated Validity = iota
	Valid
	Invalid
)

// Reply is the single message placed on an action's reply channel once the
// simulation loop has finished processing it.
type Reply struct {
	Success bool
	Message string
	Payload any
}

// Action is a tagged variant over every request the simulator accepts. Each
// exposes validity-tracking and a single-shot reply channel; motion actions
// additionally resolve references onto themselves during constraint
// validation so dispatch never re-performs a lookup.
type Action interface {
	Kind() ActionKind
	Validity() Validity
	InvalidReason() string
	SetValid()
	SetInvalid(reason string)
	ReplySuccess(message string, payload any)
	ReplyFailure(message string)
	ReplyFailureWith(message string, payload any)
	Reply() chan Reply
}

// Targetable is implemented by motion actions once constraints have resolved
// the coordinate the robot must drive to.
type Targetable interface {
	Target() (x, y int)
}

// base is embedded by every concrete Action and implements the validity and
// reply-channel bookkeeping common to all of them.
type base struct {
	kind     ActionKind
	validity Validity
	reason   string
	replyCh  chan Reply
}

func newBase(kind ActionKind) base {
	return base{kind: kind, replyCh: make(chan Reply, 1)}
}

func (b *base) Kind() ActionKind        { return b.kind }
func (b *base) Validity() Validity      { return b.validity }
func (b *base) InvalidReason() string   { return b.reason }
func (b *base) SetValid()               { b.validity = Valid }
func (b *base) Reply() chan Reply       { return b.replyCh }

func (b *base) SetInvalid(reason string) {
	b.validity = Invalid
	b.reason = reason
}

func (b *base) ReplySuccess(message string, payload any) {
	b.replyCh <- Reply{Success: true, Message: message, Payload: payload}
}

func (b *base) ReplyFailure(message string) {
	b.replyCh <- Reply{Success: false, Message: message}
}

// ReplyFailureWith is ReplyFailure plus a payload, for failures that carry
// structured detail beyond the message (e.g. a PlanReport enumerating
// executed/offending/skipped steps).
func (b *base) ReplyFailureWith(message string, payload any) {
	b.replyCh <- Reply{Success: false, Message: message, Payload: payload}
}

// QuitAction requests that the simulation loop terminate after this tick.
type QuitAction struct{ base }

func NewQuitAction() *QuitAction { return &QuitAction{base: newBase(KindQuit)} }

// PreStartAction validates start parameters (scenario_id xor constraint_set
// + stack_config xor neither) and, on success, resolves the concrete
// ConstraintSetName/StackConfig that the dispatcher uses to enqueue a
// StartAction.
type PreStartAction struct {
	base
	ScenarioID       string
	ConstraintSet    string
	InitialStacks    *StackConfig

	ResolvedConstraintSet string
	ResolvedStackConfig   *StackConfig
}

func NewPreStartAction(scenarioID, constraintSet string, initialStacks *StackConfig) *PreStartAction {
	return &PreStartAction{
		base:          newBase(KindPreStart),
		ScenarioID:    scenarioID,
		ConstraintSet: constraintSet,
		InitialStacks: initialStacks,
	}
}

// StartAction builds the world from resolved parameters and flips running on.
type StartAction struct {
	base
	ConstraintSetName string
	StackConfig       *StackConfig
}

func NewStartAction(constraintSetName string, cfg *StackConfig) *StartAction {
	return &StartAction{base: newBase(KindStart), ConstraintSetName: constraintSetName, StackConfig: cfg}
}

// StopAction halts the running simulation.
type StopAction struct{ base }

func NewStopAction() *StopAction { return &StopAction{base: newBase(KindStop)} }

// GetStatusAction requests a structured view of the world. Status is
// attached by the SimulationRunning constraint (or the partial-observability
// variant) on success.
type GetStatusAction struct {
	base
	Status map[string]any
}

func NewGetStatusAction() *GetStatusAction { return &GetStatusAction{base: newBase(KindGetStatus)} }

// GetRulesAction requests the active constraint set's human-readable rules text.
type GetRulesAction struct {
	base
	Rules string
}

func NewGetRulesAction() *GetRulesAction { return &GetRulesAction{base: newBase(KindGetRules)} }

// GetScenarioAction looks up a scenario by name or ID. Scenario is left as
// `any` to avoid an import cycle between world and the scenario package;
// the HTTP layer serialises the reply payload holding it as-is.
type GetScenarioAction struct {
	base
	NameOrID string
	Scenario any
}

func NewGetScenarioAction(nameOrID string) *GetScenarioAction {
	return &GetScenarioAction{base: newBase(KindGetScenario), NameOrID: nameOrID}
}

// PickUpAction picks up a named block that is alone on the ground (no block
// below it and none above it). A block resting on another block is taken
// with UnstackAction instead.
type PickUpAction struct {
	base
	BlockName rune

	ResolvedBlock *Block
	ResolvedStack *Stack
}

func NewPickUpAction(blockName rune) *PickUpAction {
	return &PickUpAction{base: newBase(KindPickUp), BlockName: blockName}
}

func (a *PickUpAction) Target() (int, int) {
	return a.ResolvedStack.X, a.ResolvedStack.TopY()
}

// PutDownAction places the held block onto any empty stack.
type PutDownAction struct {
	base

	ResolvedBlock *Block
	TargetStack   *Stack
}

func NewPutDownAction() *PutDownAction { return &PutDownAction{base: newBase(KindPutDown)} }

func (a *PutDownAction) Target() (int, int) {
	return a.TargetStack.X, a.TargetStack.TopY()
}

// StackAction places the held block on top of a named target block.
type StackAction struct {
	base
	BlockName  rune // the block being held, named for symmetry with Unstack
	TargetName rune // the block to stack onto

	ResolvedBlock       *Block
	ResolvedTarget      *Block
	ResolvedTargetStack *Stack
}

func NewStackAction(blockName, targetName rune) *StackAction {
	return &StackAction{base: newBase(KindStack), BlockName: blockName, TargetName: targetName}
}

func (a *StackAction) Target() (int, int) {
	return a.ResolvedTargetStack.X, a.ResolvedTargetStack.TopY()
}

// UnstackAction picks up a named block from the top of a stack where it
// sits directly on top of another named block.
type UnstackAction struct {
	base
	BlockName rune
	BelowName rune

	ResolvedBlock *Block
	ResolvedStack *Stack
}

func NewUnstackAction(blockName, belowName rune) *UnstackAction {
	return &UnstackAction{base: newBase(KindUnstack), BlockName: blockName, BelowName: belowName}
}

func (a *UnstackAction) Target() (int, int) {
	return a.ResolvedStack.X, a.ResolvedStack.TopY()
}

// PlanMode selects whether a Plan mutates live state or runs against a
// snapshot that is always restored.
type PlanMode int

const (
	PlanExecute PlanMode = iota
	PlanVerify
)

func (m PlanMode) String() string {
	if m == PlanVerify {
		return "verify"
	}
	return "execute"
}

// PlanStepResult records the outcome of a single step for the plan report.
type PlanStepResult struct {
	Index  int
	Step   Action
	Reason string
}

// PlanReport describes a completed or aborted plan run.
type PlanReport struct {
	RunID    string
	Mode     PlanMode
	Executed []PlanStepResult
	Offender *PlanStepResult
	Skipped  []PlanStepResult
}

// PlanAction sequences motion actions and, in Verify mode, guarantees no
// visible state change survives the call.
type PlanAction struct {
	base
	RunID string
	Steps []Action
	Mode  PlanMode
}

func NewPlanAction(runID string, steps []Action, mode PlanMode) *PlanAction {
	return &PlanAction{base: newBase(KindPlan), RunID: runID, Steps: steps, Mode: mode}
}
