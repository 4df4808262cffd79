// Package tui provides a Bubble Tea terminal UI for the witcher tracker.
package tui

// History keeps recently entered lines for up/down recall. Navigation is
// cursor-based: Older walks back in time, Newer walks forward until it
// falls off the end and returns to fresh input.
type History struct {
	lines  []string
	limit  int
	cursor int // len(lines) = not navigating
}

// NewHistory creates a history buffer holding at most limit lines.
func NewHistory(limit int) *History {
	return &History{limit: limit, cursor: 0}
}

// Add records a line. Consecutive duplicates are collapsed. Adding
// always resets navigation.
func (h *History) Add(line string) {
	if n := len(h.lines); n == 0 || h.lines[n-1] != line {
		h.lines = append(h.lines, line)
		if len(h.lines) > h.limit {
			h.lines = h.lines[len(h.lines)-h.limit:]
		}
	}
	h.cursor = len(h.lines)
}

// Older moves to the previous line, or reports false when history is empty.
func (h *History) Older() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.lines[h.cursor], true
}

// Newer moves toward the most recent line. Past the newest entry it
// reports false, meaning the input field should go back to fresh text.
func (h *History) Newer() (string, bool) {
	if h.cursor >= len(h.lines) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.lines) {
		return "", false
	}
	return h.lines[h.cursor], true
}

// Reset leaves navigation mode.
func (h *History) Reset() {
	h.cursor = len(h.lines)
}
