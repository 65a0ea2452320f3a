package bubbletea

import "github.com/fwojciec/convo"

// WrapText exports wrapText for testing.
func WrapText(text string, width int) []string {
	return wrapText(text, width)
}

// Openness exports a card's tween position for testing.
func Openness(c *Card) float64 {
	return c.openness
}

// Offset returns the scroll position for testing.
func Offset(m Model) (card, skip int) {
	return m.offset, m.skip
}

// CachedHeight returns the cached height of card i in state s at the
// model's current width.
func CachedHeight(m Model, i int, s convo.CardState) (int, bool) {
	if m.heights.width != m.width {
		return 0, false
	}
	h, ok := m.heights.heights[heightKey{index: i, state: s}]
	return h, ok
}
