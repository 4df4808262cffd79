// Package cli provides the plain line-protocol driver: read a line,
// interpret it, print the single response line, stop on Exit or
// end-of-input.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/erer-can/witcher-tracker/engine"
)

// CLI runs the interpreter over a reader/writer pair.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Prompt    string // printed before each read; set empty for piped input
	EchoInput bool   // echo each input line (for script playback)
}

// New creates a CLI wired to the given engine on stdin/stdout.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
		Prompt: ">> ",
	}
}

// Run loops: prompt → read → interpret → print. Every input line
// produces exactly one output line, except Exit which produces none.
func (c *CLI) Run() {
	scanner := bufio.NewScanner(c.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if c.Prompt != "" {
			fmt.Fprint(c.Out, c.Prompt)
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if c.EchoInput {
			fmt.Fprintln(c.Out, line)
		}

		result := c.Engine.Step(line)
		if result.Exit {
			return
		}
		fmt.Fprintln(c.Out, result.Output)
	}
}
