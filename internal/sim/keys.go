package sim

import "blocksworld/internal/world"

// Key is one interactive input event (spec §6 interactive surface). Letter
// keys carry their rune value directly; the remaining three are named
// events with no natural rune encoding.
type Key rune

const (
	// KeySpace: Start when stopped, Put-down when holding.
	KeySpace Key = ' '
	// KeyEscape: Stop the running simulation.
	KeyEscape Key = 0x1b
	// KeyWindowClose: Quit the process.
	KeyWindowClose Key = 0
)

// translateKey turns one interactive key event into a concrete action, with
// the Pick-vs-Unstack disambiguation spec §6 describes: a letter key while
// IDLE triggers Pick if the named block sits alone on its stack, Unstack
// (naming the block directly below) otherwise. This inspects l.State
// directly, which is safe only because translateKey runs on the tick-loop
// goroutine that exclusively owns State.
func (l *Loop) translateKey(k Key) world.Action {
	switch k {
	case KeyWindowClose:
		return world.NewQuitAction()
	case KeyEscape:
		return world.NewStopAction()
	case KeySpace:
		if l.State.Robot != nil && l.State.Robot.State == world.RobotHolding {
			return world.NewPutDownAction()
		}
		if !l.State.Running {
			return world.NewPreStartAction("", "", nil)
		}
		return nil
	}

	letter := rune(k)
	if l.State.Robot == nil {
		return nil
	}
	switch l.State.Robot.State {
	case world.RobotIdle:
		_, stack, ok := l.State.FindBlock(letter)
		if !ok || stack == nil {
			return nil
		}
		if stack.Len() == 1 {
			return world.NewPickUpAction(letter)
		}
		if below := stack.Below(letter); below != nil {
			return world.NewUnstackAction(letter, below.Name)
		}
		return nil
	case world.RobotHolding:
		if l.State.Robot.HeldBlock == nil {
			return nil
		}
		return world.NewStackAction(l.State.Robot.HeldBlock.Name, letter)
	default:
		return nil
	}
}
