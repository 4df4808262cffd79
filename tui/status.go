package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ledgerSum totals the units held across all entries of a ledger.
func ledgerSum(ledger map[string]int) int {
	total := 0
	for _, count := range ledger {
		total += count
	}
	return total
}

// renderStatusBar produces a full-width inverted status line showing the
// world totals and how many lines have been interpreted.
func (m Model) renderStatusBar() string {
	w := m.engine.World

	left := fmt.Sprintf(" Witcher Tracker | Ingredients: %d | Potions: %d | Trophies: %d",
		ledgerSum(w.Ingredients), ledgerSum(w.Potions), ledgerSum(w.Trophies))
	right := fmt.Sprintf("L:%d ", w.LineCount)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
