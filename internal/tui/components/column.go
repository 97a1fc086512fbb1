package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// ColumnProps describes one board column
type ColumnProps struct {
	Title    string
	Projects []models.Project
	// Width and Height are the outer size of the column
	Width  int
	Height int
	// Selected marks the column holding the cursor
	Selected bool
	// SelectedCard is the index of the highlighted card, or -1
	SelectedCard int
	// Droppable shows the "droppable" marker while a drag hovers the column
	Droppable bool
	// DraggingID is the project being dragged, if it is in this column
	DraggingID string
	// ScrollOffset is the index of the first visible card
	ScrollOffset int
}

// ColumnLayout reports where the cards of a rendered column ended up,
// relative to the column's top-left corner
type ColumnLayout struct {
	Width int
	// FirstCard is the project index of the first visible card
	FirstCard int
	// CardTops is the row offset of each visible card
	CardTops   []int
	CardHeight int
}

// VisibleCards is how many cards fit in a column of the given outer height
func VisibleCards(height int) int {
	available := height - columnBorderLines - columnHeaderLines - scrollIndicatorLines
	return max(available/CardHeight, 1)
}

// ClampScrollOffset keeps offset between the top and the last full page of cards
func ClampScrollOffset(offset, count, visible int) int {
	return min(max(offset, 0), max(count-visible, 0))
}

// CardWidth is the card content width that fits inside a column of the given outer width
func CardWidth(columnWidth int) int {
	// card borders take two more cells
	return max(columnWidth-columnChromeWidth-2, cardMinWidth)
}

// RenderColumn renders a complete column with its title and cards.
// With a fixed height only a window of cards starting at ScrollOffset is drawn.
//
// Layout:
//
//	{Column Title} ({count})
//	▲ N more above (blank at the top)
//	{Card}
//	...
//	▼ N more below (if cards don't fit)
func RenderColumn(props ColumnProps) (string, ColumnLayout) {
	header := fmt.Sprintf("%s (%d)", props.Title, len(props.Projects))
	if props.Droppable {
		header += " " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DropBorder)).
			Bold(true).
			Render("⇣ drop here")
	}

	lines := []string{TitleStyle.Render(header)}
	layout := ColumnLayout{}
	top := 1 + columnHeaderLines // below the border and header

	start, end := 0, len(props.Projects)
	scrolled := props.Height > 0 && len(props.Projects) > 0
	if scrolled {
		visible := VisibleCards(props.Height)
		start = ClampScrollOffset(props.ScrollOffset, len(props.Projects), visible)
		end = min(start+visible, len(props.Projects))

		above := ""
		if start > 0 {
			above = SubtleStyle.Render(fmt.Sprintf("▲ %d more above", start))
		}
		lines = append(lines, above)
		top++
	}
	layout.FirstCard = start

	if len(props.Projects) == 0 {
		lines = append(lines, SubtleStyle.Italic(true).Render("No projects"))
	}

	cardWidth := CardWidth(props.Width)
	for i := start; i < end; i++ {
		p := props.Projects[i]
		card := RenderCard(CardProps{
			Project:  p,
			Width:    cardWidth,
			Selected: props.Selected && i == props.SelectedCard,
			Dragging: props.DraggingID != "" && p.ID.String() == props.DraggingID,
		})
		h := lipgloss.Height(card)

		layout.CardTops = append(layout.CardTops, top)
		layout.CardHeight = h
		lines = append(lines, card)
		top += h
	}

	if scrolled && end < len(props.Projects) {
		lines = append(lines, SubtleStyle.Render(fmt.Sprintf("▼ %d more below", len(props.Projects)-end)))
	}

	style := ColumnStyle.Width(props.Width - 2)
	switch {
	case props.Droppable:
		style = style.BorderForeground(lipgloss.Color(theme.DropBorder)).BorderStyle(lipgloss.DoubleBorder())
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Height sets the content area; borders add two rows
		style = style.Height(props.Height - columnBorderLines)
	}

	rendered := style.Render(strings.Join(lines, "\n"))
	layout.Width = lipgloss.Width(rendered)
	return rendered, layout
}
