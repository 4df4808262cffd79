// witcher-tracker is a line-oriented interpreter for Geralt's alchemy
// ledger: ingredients, potions, trophies, formulas, and the bestiary.
// Usage: witcher-tracker [--version] [--plain] [--script <file>] [--journal <file.lua>]
package main

import (
	"fmt"
	"os"

	"github.com/erer-can/witcher-tracker/cli"
	"github.com/erer-can/witcher-tracker/engine"
	"github.com/erer-can/witcher-tracker/loader"
	"github.com/erer-can/witcher-tracker/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var scriptFile string
	var journalFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("witcher-tracker %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--journal":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--journal requires a file path\n")
				os.Exit(1)
			}
			i++
			journalFile = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Usage: witcher-tracker [--version] [--plain] [--script <file>] [--journal <file.lua>]\n")
			os.Exit(1)
		}
	}

	eng := engine.New()
	if journalFile != "" {
		world, err := loader.Load(journalFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
			os.Exit(1)
		}
		eng = engine.NewWithWorld(world)
	}

	// Script mode: feed a file of commands through the engine, echoing
	// each line after the prompt.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use the plain CLI if --plain or stdout is not a terminal, so piped
	// transcripts stay byte-exact.
	if plain || !isTerminal() {
		c := cli.New(eng)
		if !isTerminal() {
			c.Prompt = ""
		}
		c.Run()
		return
	}

	if err := tui.Run(eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
