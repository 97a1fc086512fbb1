// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := CenteredPosition(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreateFloatingLayer places content with its top-left corner near (x, y),
// shifted back inside the screen when it would spill over an edge.
func CreateFloatingLayer(content string, x, y, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y = ClampedPosition(x, y, lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CenteredPosition returns the top-left corner that centers a box on screen
func CenteredPosition(width, height, screenWidth, screenHeight int) (int, int) {
	x := (screenWidth - width) / 2
	y := (screenHeight - height) / 2
	return max(x, 0), max(y, 0)
}

// ClampedPosition keeps a width x height box at (x, y) on screen
func ClampedPosition(x, y, width, height, screenWidth, screenHeight int) (int, int) {
	x = min(x, screenWidth-width)
	y = min(y, screenHeight-height)
	return max(x, 0), max(y, 0)
}
