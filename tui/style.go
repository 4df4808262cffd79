package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/erer-can/witcher-tracker/engine"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("178"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("178"))

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("71"))

	styleFailure = lipgloss.NewStyle().
			Foreground(lipgloss.Color("173"))

	styleInvalid = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleNotice = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleReport = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)

// lineKind identifies the type of a response line for styling.
type lineKind int

const (
	kindReport lineKind = iota // query results (counts, listings)
	kindSuccess
	kindFailure
	kindInvalid
	kindNotice
)

// classifyResponse determines what kind of response line this is, based
// on the fixed response vocabulary of the interpreter.
func classifyResponse(line string) lineKind {
	switch {
	case line == engine.Invalid:
		return kindInvalid
	case line == "Not enough trophies",
		line == "Not enough ingredients",
		line == "Geralt is unprepared and barely escapes with his life",
		strings.HasPrefix(line, "No formula for "),
		strings.HasPrefix(line, "No knowledge of "):
		return kindFailure
	case strings.HasPrefix(line, "Already known"):
		return kindNotice
	case line == "Alchemy ingredients obtained",
		line == "Trade successful",
		strings.HasPrefix(line, "Alchemy item created: "),
		strings.HasPrefix(line, "New bestiary entry added: "),
		strings.HasPrefix(line, "Bestiary entry updated: "),
		strings.HasPrefix(line, "New alchemy formula obtained: "),
		strings.HasPrefix(line, "Geralt defeats "):
		return kindSuccess
	default:
		return kindReport
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindSuccess:
		return styleSuccess.Render(line)
	case kindFailure:
		return styleFailure.Render(line)
	case kindInvalid:
		return styleInvalid.Render(line)
	case kindNotice:
		return styleNotice.Render(line)
	default:
		return styleReport.Render(line)
	}
}

// styledPlayerInput renders the echoed input with the ">> " prompt.
func styledPlayerInput(input string) string {
	return stylePlayerInput.Render(">> " + input)
}
