package world

import "sort"

// State is the entire mutable world: whether a simulation is running, the
// robot, and the fixed set of stacks. It is owned exclusively by the
// simulation loop's tick goroutine; nothing else may mutate it directly.
type State struct {
	Running bool
	Robot   *Robot
	Stacks  []*Stack
}

// NewState returns an empty, not-running world.
func NewState() *State {
	return &State{Running: false}
}

// AllBlocks returns every block in the world, including the robot's held
// block if any, in stack order followed by the held block last.
func (s *State) AllBlocks() []*Block {
	var blocks []*Block
	for _, st := range s.Stacks {
		blocks = append(blocks, st.Blocks()...)
	}
	if s.Robot != nil && s.Robot.HeldBlock != nil {
		blocks = append(blocks, s.Robot.HeldBlock)
	}
	return blocks
}

// FindBlock locates a block by name anywhere in the world: on a stack or
// held by the robot. It returns the block, the stack it is on (nil if held),
// and whether it was found.
func (s *State) FindBlock(name rune) (block *Block, stack *Stack, ok bool) {
	if s.Robot != nil && s.Robot.HeldBlock != nil && s.Robot.HeldBlock.Name == name {
		return s.Robot.HeldBlock, nil, true
	}
	for _, st := range s.Stacks {
		if i := st.IndexOf(name); i >= 0 {
			return st.Blocks()[i], st, true
		}
	}
	return nil, nil, false
}

// FreeStack returns the first empty stack, or nil if none exist.
func (s *State) FreeStack() *Stack {
	for _, st := range s.Stacks {
		if st.Len() == 0 {
			return st
		}
	}
	return nil
}

// ToStatusDict is a pure view of the world: it never mutates state. The
// PartialObservabilityConstraintSet variant post-processes the result to
// redact deep block names (see constraint package).
func (s *State) ToStatusDict() map[string]any {
	stacks := make([]map[string]any, 0, len(s.Stacks))
	for _, st := range s.Stacks {
		blocks := make([]map[string]any, 0, st.Len())
		for _, b := range st.Blocks() {
			blocks = append(blocks, blockDict(b))
		}
		stacks = append(stacks, map[string]any{
			"number": st.Number,
			"blocks": blocks,
		})
	}
	sort.Slice(stacks, func(i, j int) bool {
		return stacks[i]["number"].(int) < stacks[j]["number"].(int)
	})

	robotDict := map[string]any{
		"state":      "IDLE",
		"held_block": nil,
	}
	if s.Robot != nil {
		robotDict["state"] = s.Robot.State.String()
		if s.Robot.HeldBlock != nil {
			robotDict["held_block"] = blockDict(s.Robot.HeldBlock)
		}
	}

	return map[string]any{
		"running": s.Running,
		"stacks":  stacks,
		"robot":   robotDict,
	}
}

func blockDict(b *Block) map[string]any {
	d := map[string]any{
		"name":   string(b.Name),
		"x":      b.X,
		"y":      b.Y,
		"x_size": b.XSize,
		"y_size": b.YSize,
		"color":  b.Color,
	}
	if b.Weight != nil {
		d["weight"] = *b.Weight
	}
	if b.Type != "" {
		d["type"] = b.Type
	}
	return d
}

// Snapshot returns a deep copy of the entire world state, suitable for
// Restore after a Verify-mode plan run completes or aborts. Execute-mode
// runs are never restored.
func (s *State) Snapshot() *State {
	clone := &State{Running: s.Running}
	if s.Robot != nil {
		clone.Robot = s.Robot.Clone()
	}
	clone.Stacks = make([]*Stack, len(s.Stacks))
	for i, st := range s.Stacks {
		clone.Stacks[i] = st.Clone()
	}
	return clone
}

// Restore overwrites the receiver's contents with a previously taken
// snapshot, in place, so callers holding a *State pointer observe the
// restored world without needing to re-acquire a reference.
func (s *State) Restore(snapshot *State) {
	s.Running = snapshot.Running
	s.Robot = snapshot.Robot.Clone()
	s.Stacks = make([]*Stack, len(snapshot.Stacks))
	for i, st := range snapshot.Stacks {
		s.Stacks[i] = st.Clone()
	}
}
