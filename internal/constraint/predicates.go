package constraint

import (
	"fmt"
	"sort"

	"blocksworld/internal/world"
)

// SimulationRunning requires a running simulation. On success for a
// GetStatusAction it attaches the status dict, so downstream dispatch need
// not query world state a second time.
func SimulationRunning() Constraint {
	return newConstraint("SimulationRunning", func(_ *Context, s *world.State, a world.Action) bool {
		if !s.Running {
			a.SetInvalid("simulation is not running")
			return false
		}
		if gs, ok := a.(*world.GetStatusAction); ok {
			gs.Status = s.ToStatusDict()
		}
		return true
	})
}

// SimulationNotRunning requires the simulation not be running, used to gate Start.
func SimulationNotRunning() Constraint {
	return newConstraint("SimulationNotRunning", func(_ *Context, s *world.State, a world.Action) bool {
		if s.Running {
			a.SetInvalid("simulation is already running")
			return false
		}
		return true
	})
}

// RobotIdle requires the robot be in the IDLE state.
func RobotIdle() Constraint {
	return newConstraint("RobotIdle", func(_ *Context, s *world.State, a world.Action) bool {
		if s.Robot == nil || s.Robot.State != world.RobotIdle {
			a.SetInvalid("robot is not idle")
			return false
		}
		return true
	})
}

// RobotHolding requires the robot be in the HOLDING state.
func RobotHolding() Constraint {
	return newConstraint("RobotHolding", func(_ *Context, s *world.State, a world.Action) bool {
		if s.Robot == nil || s.Robot.State != world.RobotHolding {
			a.SetInvalid("robot is not holding a block")
			return false
		}
		return true
	})
}

// BlockExists resolves every block name an action references and attaches
// the found Block/Stack references. It supports PickUp, Unstack and Stack
// actions, each of which name one or two blocks differently.
func BlockExists() Constraint {
	return newConstraint("BlockExists", func(_ *Context, s *world.State, a world.Action) bool {
		switch action := a.(type) {
		case *world.PickUpAction:
			block, stack, ok := s.FindBlock(action.BlockName)
			if !ok {
				action.SetInvalid(fmt.Sprintf("block %c does not exist", action.BlockName))
				return false
			}
			action.ResolvedBlock, action.ResolvedStack = block, stack
			return true

		case *world.UnstackAction:
			block, stack, ok := s.FindBlock(action.BlockName)
			if !ok {
				action.SetInvalid(fmt.Sprintf("block %c does not exist", action.BlockName))
				return false
			}
			if _, _, ok := s.FindBlock(action.BelowName); !ok {
				action.SetInvalid(fmt.Sprintf("block %c does not exist", action.BelowName))
				return false
			}
			action.ResolvedBlock, action.ResolvedStack = block, stack
			return true

		case *world.StackAction:
			if _, _, ok := s.FindBlock(action.BlockName); !ok {
				action.SetInvalid(fmt.Sprintf("block %c does not exist", action.BlockName))
				return false
			}
			target, targetStack, ok := s.FindBlock(action.TargetName)
			if !ok {
				action.SetInvalid(fmt.Sprintf("block %c does not exist", action.TargetName))
				return false
			}
			action.ResolvedTarget, action.ResolvedTargetStack = target, targetStack
			return true

		default:
			return true
		}
	})
}

// RobotHoldingSpecificBlock requires the robot's held block to match the
// action's named block (used by Stack, where BlockName names the held block
// being stacked onto TargetName).
func RobotHoldingSpecificBlock() Constraint {
	return newConstraint("RobotHoldingSpecificBlock", func(_ *Context, s *world.State, a world.Action) bool {
		action, ok := a.(*world.StackAction)
		if !ok {
			return true
		}
		if s.Robot == nil || s.Robot.HeldBlock == nil || s.Robot.HeldBlock.Name != action.BlockName {
			action.SetInvalid(fmt.Sprintf("robot is not holding block %c", action.BlockName))
			return false
		}
		action.ResolvedBlock = s.Robot.HeldBlock
		return true
	})
}

// BlockOnTopOfStack requires the relevant named block be the clear (topmost)
// block of its stack. For PickUp and Unstack that is BlockName; for Stack it
// is the target block (TargetName), which must be clear to stack onto.
func BlockOnTopOfStack() Constraint {
	return newConstraint("BlockOnTopOfStack", func(_ *Context, s *world.State, a world.Action) bool {
		switch action := a.(type) {
		case *world.PickUpAction:
			stack := action.ResolvedStack
			if stack == nil || stack.Top() == nil || stack.Top().Name != action.BlockName {
				action.SetInvalid(fmt.Sprintf("block %c is not on top of a stack", action.BlockName))
				return false
			}
			return true

		case *world.UnstackAction:
			stack := action.ResolvedStack
			if stack == nil || stack.Top() == nil || stack.Top().Name != action.BlockName {
				action.SetInvalid(fmt.Sprintf("block %c is not on top of a stack", action.BlockName))
				return false
			}
			return true

		case *world.StackAction:
			stack := action.ResolvedTargetStack
			if stack == nil || stack.Top() == nil || stack.Top().Name != action.TargetName {
				action.SetInvalid(fmt.Sprintf("block %c is not on top of a stack", action.TargetName))
				return false
			}
			return true

		default:
			return true
		}
	})
}

// OnlyBlockInStack requires the stack containing the named block to have
// length 1 — i.e. the block sits alone on the ground. PickUp requires this;
// Unstack requires the opposite (BlockBelowRelationship implies length > 1).
func OnlyBlockInStack() Constraint {
	return newConstraint("OnlyBlockInStack", func(_ *Context, s *world.State, a world.Action) bool {
		action, ok := a.(*world.PickUpAction)
		if !ok {
			return true
		}
		if action.ResolvedStack == nil || action.ResolvedStack.Len() != 1 {
			action.SetInvalid(fmt.Sprintf("block %c is not alone on its stack", action.BlockName))
			return false
		}
		return true
	})
}

// FreeStackAvailable requires at least one empty stack, attaching it for
// PutDown to place the held block on the ground.
func FreeStackAvailable() Constraint {
	return newConstraint("FreeStackAvailable", func(_ *Context, s *world.State, a world.Action) bool {
		action, ok := a.(*world.PutDownAction)
		if !ok {
			return true
		}
		free := s.FreeStack()
		if free == nil {
			action.SetInvalid("no empty stack available to put the block down")
			return false
		}
		action.ResolvedBlock = s.Robot.HeldBlock
		action.TargetStack = free
		return true
	})
}

// BlocksOnSameStack requires an Unstack action's two named blocks to occupy
// the same stack.
func BlocksOnSameStack() Constraint {
	return newConstraint("BlocksOnSameStack", func(_ *Context, s *world.State, a world.Action) bool {
		action, ok := a.(*world.UnstackAction)
		if !ok {
			return true
		}
		if !action.ResolvedStack.Contains(action.BelowName) {
			action.SetInvalid(fmt.Sprintf("block %c is not on the same stack as block %c", action.BlockName, action.BelowName))
			return false
		}
		return true
	})
}

// BlockBelowRelationship requires that, for Unstack, BelowName sits directly
// beneath BlockName in their shared stack.
func BlockBelowRelationship() Constraint {
	return newConstraint("BlockBelowRelationship", func(_ *Context, s *world.State, a world.Action) bool {
		action, ok := a.(*world.UnstackAction)
		if !ok {
			return true
		}
		below := action.ResolvedStack.Below(action.BlockName)
		if below == nil || below.Name != action.BelowName {
			action.SetInvalid(fmt.Sprintf("block %c is not directly below block %c", action.BelowName, action.BlockName))
			return false
		}
		return true
	})
}

// UniqueBlockNames requires every block name in a stack configuration to be
// distinct across the whole configuration.
func UniqueBlockNames() Constraint {
	return newConstraint("UniqueBlockNames", func(_ *Context, _ *world.State, a world.Action) bool {
		action, ok := a.(*world.PreStartAction)
		if !ok || action.InitialStacks == nil {
			return true
		}
		if name, dup := firstDuplicateName(*action.InitialStacks); dup {
			action.SetInvalid(fmt.Sprintf("duplicate block name %c in stack configuration", name))
			return false
		}
		return true
	})
}

func firstDuplicateName(cfg world.StackConfig) (rune, bool) {
	seen := make(map[rune]bool)
	for _, stack := range cfg {
		for _, spec := range stack {
			if seen[spec.Name] {
				return spec.Name, true
			}
			seen[spec.Name] = true
		}
	}
	return 0, false
}

// ValidStartData validates a PreStart payload: either scenario_id alone, or
// constraint_set (+ optional compatible stack_config), or neither (defaults
// to the base set with a random world). On success it populates
// ResolvedConstraintSet/ResolvedStackConfig for the Start action the
// dispatcher will enqueue.
func ValidStartData() Constraint {
	return newConstraint("ValidStartData", func(ctx *Context, _ *world.State, a world.Action) bool {
		action, ok := a.(*world.PreStartAction)
		if !ok {
			return true
		}

		hasScenario := action.ScenarioID != ""
		hasOverride := action.ConstraintSet != "" || action.InitialStacks != nil

		switch {
		case hasScenario && hasOverride:
			action.SetInvalid("start payload must specify either scenario_id or constraint_set/initial_stacks, not both")
			return false

		case hasScenario:
			sc, ok := ctx.Scenarios.GetByIDOrName(action.ScenarioID)
			if !ok {
				action.SetInvalid(fmt.Sprintf("unknown scenario %q", action.ScenarioID))
				return false
			}
			action.ResolvedConstraintSet = sc.ConstraintSetName
			action.ResolvedStackConfig = sc.InitialState
			return true

		case hasOverride:
			name := action.ConstraintSet
			if name == "" {
				name = "base"
			}
			if !containsString(ctx.ConstraintSetNames, name) {
				action.SetInvalid(fmt.Sprintf("unknown constraint set %q", name))
				return false
			}
			action.ResolvedConstraintSet = name
			action.ResolvedStackConfig = action.InitialStacks
			return true

		default:
			action.ResolvedConstraintSet = "base"
			action.ResolvedStackConfig = nil
			return true
		}
	})
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

// BlockBelowWiderEqual is the BlockSizeConstraintSet addition to Stack:
// the target block's width must be at least the held block's width.
func BlockBelowWiderEqual() Constraint {
	return newConstraint("BlockBelowWiderEqual", func(_ *Context, _ *world.State, a world.Action) bool {
		action, ok := a.(*world.StackAction)
		if !ok || action.ResolvedBlock == nil || action.ResolvedTarget == nil {
			return true
		}
		if action.ResolvedTarget.XSize < action.ResolvedBlock.XSize {
			action.SetInvalid(fmt.Sprintf("block %c is narrower than block %c", action.TargetName, action.BlockName))
			return false
		}
		return true
	})
}

// BlockBelowWider is the HanoiTowersConstraintSet addition to Stack: the
// target block's width must be strictly greater than the held block's width.
func BlockBelowWider() Constraint {
	return newConstraint("BlockBelowWider", func(_ *Context, _ *world.State, a world.Action) bool {
		action, ok := a.(*world.StackAction)
		if !ok || action.ResolvedBlock == nil || action.ResolvedTarget == nil {
			return true
		}
		if action.ResolvedTarget.XSize <= action.ResolvedBlock.XSize {
			action.SetInvalid(fmt.Sprintf("block %c is not wider than block %c", action.TargetName, action.BlockName))
			return false
		}
		return true
	})
}

// PartialObservabilityStatus is the PartialObservabilityConstraintSet's
// GetStatus replacement: it behaves like SimulationRunning, but the attached
// status dict redacts block names deeper than the top two of each stack.
func PartialObservabilityStatus() Constraint {
	return newConstraint("PartialObservabilityStatus", func(_ *Context, s *world.State, a world.Action) bool {
		if !s.Running {
			a.SetInvalid("simulation is not running")
			return false
		}
		gs, ok := a.(*world.GetStatusAction)
		if !ok {
			return true
		}
		dict := s.ToStatusDict()
		redactDeepBlocks(dict)
		gs.Status = dict
		return true
	})
}

func redactDeepBlocks(dict map[string]any) {
	stacks, ok := dict["stacks"].([]map[string]any)
	if !ok {
		return
	}
	for _, stack := range stacks {
		blocks, ok := stack["blocks"].([]map[string]any)
		if !ok {
			continue
		}
		for i := 0; i < len(blocks)-2; i++ {
			blocks[i]["name"] = "unknown"
		}
	}
}

// ScenarioExists resolves a GetScenario action's name-or-id lookup, so the
// HTTP layer can turn a failed lookup into a 404 rather than a 400.
func ScenarioExists() Constraint {
	return newConstraint("ScenarioExists", func(ctx *Context, _ *world.State, a world.Action) bool {
		action, ok := a.(*world.GetScenarioAction)
		if !ok {
			return true
		}
		sc, found := ctx.Scenarios.GetByIDOrName(action.NameOrID)
		if !found {
			action.SetInvalid(fmt.Sprintf("unknown scenario %q", action.NameOrID))
			return false
		}
		action.Scenario = sc
		return true
	})
}

// ValidStartConfig is the HanoiTowersConstraintSet's start-time addition: it
// requires unique widths across every block and strictly decreasing widths
// bottom-to-top within each configured stack.
func ValidStartConfig() Constraint {
	return newConstraint("ValidStartConfig", func(_ *Context, _ *world.State, a world.Action) bool {
		action, ok := a.(*world.PreStartAction)
		if !ok || action.InitialStacks == nil {
			return true
		}
		cfg := *action.InitialStacks

		widths := make(map[int]bool)
		for _, stack := range cfg {
			sizes := make([]int, len(stack))
			for i, spec := range stack {
				size := spec.XSize
				if size == 0 {
					size = world.DefaultXSize
				}
				if widths[size] {
					action.SetInvalid(fmt.Sprintf("duplicate block width %d: Hanoi towers requires unique widths", size))
					return false
				}
				widths[size] = true
				sizes[i] = size
			}
			if !sort.SliceIsSorted(sizes, func(i, j int) bool { return sizes[i] > sizes[j] }) {
				action.SetInvalid("stacks must be arranged with strictly decreasing block widths bottom-to-top")
				return false
			}
		}
		return true
	})
}
