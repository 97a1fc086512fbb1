// Package notifications draws the banners stacked in the top-right corner
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// Render renders a notification banner for the given level
func Render(level state.NotificationLevel, message string) string {
	b := bannerFor(level)
	fg, bg := lipgloss.Color(b.fg), lipgloss.Color(b.bg)

	header := b.icon + " " + b.title
	width := min(max(lipgloss.Width(header), lipgloss.Width(message)), maxWidth)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(fg).Bold(true).Width(width).Render(header),
		lipgloss.NewStyle().Foreground(fg).Width(width).Render(message),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bg).
		Background(bg).
		Padding(0, 1).
		Render(content)
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(n.Level, n.Message)
}
