package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures the bottom status bar
type StatusBarProps struct {
	Width int
	// Message replaces the default left text, e.g. while dragging
	Message string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "dragboard" or the current message
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := " dragboard"
	if props.Message != "" {
		leftText = " " + props.Message
	}
	rightText := "press ? for help "

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	return StatusBarStyle.Render(leftText + strings.Repeat(" ", gapWidth) + rightText)
}
