package constraint

import "blocksworld/internal/world"

const baseRules = `Base rules:
  - Exactly one block may be held by the robot at a time.
  - pick_up(X): X must be alone on the ground (its stack has only X in it).
  - unstack(X, Y): X must be clear and directly on top of Y.
  - stack(X, Y): the robot must be holding X; Y must be clear.
  - put_down(X): any empty stack may receive X.
`

const blockSizeRules = baseRules + `
Block-size variant:
  - stack(X, Y) additionally requires Y be at least as wide as X.
`

const hanoiRules = baseRules + `
Hanoi-towers variant:
  - stack(X, Y) additionally requires Y be strictly wider than X.
  - start configurations must use unique block widths, strictly decreasing
    bottom-to-top within every stack.
`

const partialObservabilityRules = baseRules + `
Partial-observability variant:
  - get_status reports only the top two blocks of each stack by name;
    deeper blocks are reported as "unknown".
`

// commonActions registers the constraint lists shared by every variant for
// action kinds the variants never change: simulation lifecycle, queries
// other than status, and plan submission.
func commonActions(set *Set) *Set {
	return set.
		On(world.KindStart, SimulationNotRunning()).
		On(world.KindStop, SimulationRunning()).
		On(world.KindGetRules).
		On(world.KindGetScenario, ScenarioExists()).
		On(world.KindQuit).
		On(world.KindPlan, SimulationRunning())
}

// BaseConstraintSet implements classic blocksworld pickup/unstack/stack/putdown.
func BaseConstraintSet() *Set {
	set := NewSet("base", baseRules)
	commonActions(set)
	set.On(world.KindPreStart, ValidStartData(), UniqueBlockNames())
	set.On(world.KindGetStatus, SimulationRunning())
	set.On(world.KindPickUp, RobotIdle(), BlockExists(), BlockOnTopOfStack(), OnlyBlockInStack())
	set.On(world.KindPutDown, RobotHolding(), FreeStackAvailable())
	set.On(world.KindUnstack, RobotIdle(), BlockExists(), BlockOnTopOfStack(), BlocksOnSameStack(), BlockBelowRelationship())
	set.On(world.KindStack, RobotHolding(), BlockExists(), RobotHoldingSpecificBlock(), BlockOnTopOfStack())
	return set
}

// BlockSizeConstraintSet requires stacking targets be at least as wide as
// the block being stacked.
func BlockSizeConstraintSet() *Set {
	set := NewSet("block_size", blockSizeRules)
	commonActions(set)
	set.On(world.KindPreStart, ValidStartData(), UniqueBlockNames())
	set.On(world.KindGetStatus, SimulationRunning())
	set.On(world.KindPickUp, RobotIdle(), BlockExists(), BlockOnTopOfStack(), OnlyBlockInStack())
	set.On(world.KindPutDown, RobotHolding(), FreeStackAvailable())
	set.On(world.KindUnstack, RobotIdle(), BlockExists(), BlockOnTopOfStack(), BlocksOnSameStack(), BlockBelowRelationship())
	set.On(world.KindStack, RobotHolding(), BlockExists(), RobotHoldingSpecificBlock(), BlockOnTopOfStack(), BlockBelowWiderEqual())
	return set
}

// HanoiTowersConstraintSet enforces strict decreasing widths, Tower-of-Hanoi style.
func HanoiTowersConstraintSet() *Set {
	set := NewSet("hanoi_towers", hanoiRules)
	commonActions(set)
	set.On(world.KindPreStart, ValidStartData(), UniqueBlockNames(), ValidStartConfig())
	set.On(world.KindGetStatus, SimulationRunning())
	set.On(world.KindPickUp, RobotIdle(), BlockExists(), BlockOnTopOfStack(), OnlyBlockInStack())
	set.On(world.KindPutDown, RobotHolding(), FreeStackAvailable())
	set.On(world.KindUnstack, RobotIdle(), BlockExists(), BlockOnTopOfStack(), BlocksOnSameStack(), BlockBelowRelationship())
	set.On(world.KindStack, RobotHolding(), BlockExists(), RobotHoldingSpecificBlock(), BlockOnTopOfStack(), BlockBelowWider())
	return set
}

// PartialObservabilityConstraintSet is the base ruleset with a redacted
// get_status view and otherwise identical mechanics.
func PartialObservabilityConstraintSet() *Set {
	set := NewSet("partial_observability", partialObservabilityRules)
	commonActions(set)
	set.On(world.KindPreStart, ValidStartData(), UniqueBlockNames())
	set.On(world.KindGetStatus, PartialObservabilityStatus())
	set.On(world.KindPickUp, RobotIdle(), BlockExists(), BlockOnTopOfStack(), OnlyBlockInStack())
	set.On(world.KindPutDown, RobotHolding(), FreeStackAvailable())
	set.On(world.KindUnstack, RobotIdle(), BlockExists(), BlockOnTopOfStack(), BlocksOnSameStack(), BlockBelowRelationship())
	set.On(world.KindStack, RobotHolding(), BlockExists(), RobotHoldingSpecificBlock(), BlockOnTopOfStack())
	return set
}

// DefaultSets returns all four named constraint sets, as registered with a
// Manager at startup.
func DefaultSets() []*Set {
	return []*Set{
		BaseConstraintSet(),
		BlockSizeConstraintSet(),
		HanoiTowersConstraintSet(),
		PartialObservabilityConstraintSet(),
	}
}
