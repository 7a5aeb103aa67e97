package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"blocksworld/internal/world"
)

// TerminalRenderer draws an ASCII view of the world to an io.Writer (stdout
// by default), one frame per call, in the teacher's Render style: a single
// strings.Builder assembled then flushed in one Print call.
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{out: os.Stdout}
}

// NewTerminalRendererTo returns a renderer writing to an arbitrary writer,
// for tests.
func NewTerminalRendererTo(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: w}
}

// Render draws every stack bottom-to-top and a one-line robot status below.
// On the real stdout target it clears the screen first so successive frames
// overwrite in place instead of scrolling, matching the teacher's
// ClearScreen-then-Render pairing; writers used in tests are left alone so
// assertions see only the frame text.
func (t *TerminalRenderer) Render(state *world.State) error {
	if t.out == os.Stdout {
		ClearScreen()
	}

	var b strings.Builder
	b.WriteString("--- Blocks-World View ---\n")

	maxHeight := 0
	for _, s := range state.Stacks {
		if s.Len() > maxHeight {
			maxHeight = s.Len()
		}
	}

	for row := maxHeight - 1; row >= 0; row-- {
		for _, s := range state.Stacks {
			blocks := s.Blocks()
			if row < len(blocks) {
				fmt.Fprintf(&b, "[%c]", blocks[row].Name)
			} else {
				b.WriteString(" . ")
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for range state.Stacks {
		b.WriteString("----")
	}
	b.WriteString("\n")
	for _, s := range state.Stacks {
		fmt.Fprintf(&b, "%-4d", s.Number)
	}
	b.WriteString("\n")

	if state.Robot != nil {
		held := "none"
		if state.Robot.HeldBlock != nil {
			held = string(state.Robot.HeldBlock.Name)
		}
		fmt.Fprintf(&b, "Robot: state=%s held=%s pos=(%d,%d)\n", state.Robot.State, held, state.Robot.X, state.Robot.Y)
	}
	b.WriteString("-------------------------\n")

	_, err := fmt.Fprint(t.out, b.String())
	return err
}
