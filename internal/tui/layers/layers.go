// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
//
// Returns:
//   - A layer positioned at the center of the screen, or nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := centerOffset(content, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// centerOffset returns the top-left corner that centers content on screen
func centerOffset(content string, screenWidth, screenHeight int) (int, int) {
	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 2
	return max(x, 0), max(y, 0)
}

// ModalWidth picks a dialog width: a fraction of the screen clamped to [minWidth, maxWidth]
func ModalWidth(screenWidth, divisor, minWidth, maxWidth int) int {
	if divisor <= 0 {
		divisor = ModalDefaultWidthDivisor
	}
	width := min(max(screenWidth/divisor, minWidth), maxWidth)
	// Never exceed the screen itself
	return max(min(width, screenWidth-ModalScreenMargin), 1)
}
