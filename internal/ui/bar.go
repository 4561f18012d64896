package ui

import "strings"

// DefaultBarWidth is the cell count of a skill table bar
const DefaultBarWidth = 10

const (
	barFilled = "█"
	barEmpty  = "░"
)

// ProgressBar renders progress/needed as width cells. Filled cells round
// down and are clamped to the bar.
func ProgressBar(progress, needed, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if needed > 0 && progress > 0 {
		filled = progress * width / needed
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, width-filled)
}
