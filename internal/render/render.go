// Package render draws the current world state once per simulation tick.
// TerminalRenderer is grounded directly on the teacher's
// b-librobot/librobot_warehouse.go Render/ClearScreen functions: a
// strings.Builder assembling a text grid, printed with ANSI cursor-reset
// escapes so repeated frames overwrite in place rather than scrolling.
package render

import (
	"fmt"

	"blocksworld/internal/world"
)

// Renderer draws one frame of the world. The simulation loop skips calling
// it while a plan is running in verification mode.
type Renderer interface {
	Render(state *world.State) error
}

// ClearScreen resets the terminal to a blank canvas, using the same ANSI
// escapes as the teacher's librobot.ClearScreen.
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}
