// Package interactive is the local keyboard ingest adapter (spec C10). It
// is grounded on c-robotcli/robot_cli.go's interactive mode: a
// bufio.NewReader(os.Stdin) loop reading one line at a time, trimmed and
// lower-cased, with an "exit" escape hatch.
//
// Simplification (recorded in DESIGN.md): the spec's interactive surface is
// specified at true keypress granularity (a single letter key, Space,
// Escape, window-close). No raw-terminal/keypress library is present
// anywhere in the retrieved example pack — every interactive CLI in it
// reads whole lines via bufio, the same as the teacher. Rather than
// fabricate a dependency the corpus never reaches for, this adapter keeps
// the teacher's line-oriented idiom: a line holding one letter maps to that
// key event, and "space"/"esc"/"quit" are recognised as their own lines.
// The simulation loop's translateKey disambiguation (Pick vs Unstack,
// Stack vs Put-down) is unaffected either way.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"blocksworld/internal/sim"
)

// Run reads lines from in until EOF or a quit line, translating each into a
// sim.Key event pushed onto loop.Interactive. It returns when the process
// should stop reading input, which for "quit"/"exit" is after signalling
// KeyWindowClose so the tick loop winds down on its own schedule.
func Run(loop *sim.Loop, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Interactive Blocks-World CLI. Type 'help' for available commands.")
	printHelp(out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "help":
			printHelp(out)
			continue
		case "quit", "exit":
			loop.Interactive <- sim.KeyWindowClose
			return nil
		case "esc", "escape", "stop":
			loop.Interactive <- sim.KeyEscape
			continue
		case "space", "sp", "start":
			loop.Interactive <- sim.KeySpace
			continue
		}

		letter := upperFirstLetter(line)
		if letter == 0 {
			fmt.Fprintf(out, "unrecognized input %q; type 'help' for commands\n", line)
			continue
		}
		loop.Interactive <- sim.Key(letter)
	}
	return scanner.Err()
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "  <letter A-Z>  pick up / unstack / stack onto that block")
	fmt.Fprintln(out, "  space         start the simulation, or put down the held block")
	fmt.Fprintln(out, "  esc           stop the running simulation")
	fmt.Fprintln(out, "  quit          exit the CLI")
}

func upperFirstLetter(line string) rune {
	r := firstRune(line)
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return 0
	}
	return r
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
