package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// CardProps describes one project card
type CardProps struct {
	Project models.Project
	// Width is the width of the card content, borders excluded
	Width    int
	Selected bool
	// Dragging marks the card currently being dragged
	Dragging bool
}

// RenderCard renders a project as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}             ┃
//	┃ 3 people assigned.  ┃
//	┃ {description, two   ┃
//	┃ wrapped lines}      ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
//
// Cards always have the same height so the board can hit-test them.
func RenderCard(props CardProps) string {
	width := max(props.Width, cardMinWidth)
	bg := lipgloss.Color(theme.CardBg)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(bg).
		Render(truncate.StringWithTail(props.Project.Title, uint(width), ellipsis))

	people := SubtleStyle.
		Background(bg).
		Render(truncate.StringWithTail(props.Project.PersonsLabel(), uint(width), ellipsis))

	desc := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(bg).
		Render(strings.Join(DescriptionLines(props.Project.Description, width, cardDescriptionLines), "\n"))

	border := theme.CardBorder
	switch {
	case props.Dragging:
		border = theme.DraggingBorder
	case props.Selected:
		border = theme.SelectedBorder
	}

	return CardStyle.
		BorderForeground(lipgloss.Color(border)).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, people, desc))
}

// DescriptionLines wraps s to width and returns exactly n lines, marking
// cut-off text with an ellipsis
func DescriptionLines(s string, width, n int) []string {
	wrapped := strings.Split(wordwrap.String(strings.TrimSpace(s), width), "\n")

	lines := make([]string, n)
	for i := range n {
		if i < len(wrapped) {
			lines[i] = truncate.StringWithTail(wrapped[i], uint(width), ellipsis)
		}
	}
	if len(wrapped) > n && n > 0 {
		last := truncate.String(lines[n-1], uint(max(width-1, 0)))
		lines[n-1] = strings.TrimRight(last, " ") + ellipsis
	}
	return lines
}
