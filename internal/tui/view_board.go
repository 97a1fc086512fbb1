package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/components"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/types"
)

const (
	boardTop       = 1 // the header takes the first row
	columnGap      = 1
	minColumnWidth = 24
	maxColumnWidth = 60
)

// columnWidth splits the terminal width between the columns
func columnWidth(screenWidth, columns int) int {
	if columns == 0 {
		return 0
	}
	w := (screenWidth - columnGap*(columns-1)) / columns
	return min(max(w, minColumnWidth), maxColumnWidth)
}

// renderBoard draws every column side by side and reports where they landed
func (m *Model) renderBoard() (string, boardLayout) {
	cols := m.Board.Columns()
	width := columnWidth(m.UiState.Width(), len(cols))
	height := m.UiState.BoardHeight()
	normal := m.UiState.Mode() == state.NormalMode

	draggingID := ""
	if m.DragState.Active() {
		draggingID = m.DragState.ProjectID
	}

	var (
		rendered []string
		layout   boardLayout
		x        int
	)
	gap := strings.Repeat(" ", columnGap)

	for i, col := range cols {
		selected := normal && i == m.UiState.SelectedColumn()
		selectedCard := -1
		if selected {
			selectedCard = m.UiState.SelectedProject()
		}

		view, cl := components.RenderColumn(components.ColumnProps{
			Title:        col.Title(),
			Projects:     col.Projects(),
			Width:        width,
			Height:       height,
			Selected:     selected,
			SelectedCard: selectedCard,
			Droppable:    col.Droppable(),
			DraggingID:   draggingID,
			ScrollOffset: m.UiState.ScrollOffset(i),
		})

		if i > 0 {
			rendered = append(rendered, gap)
			x += columnGap
		}
		rendered = append(rendered, view)
		layout.columns = append(layout.columns, columnRect{
			X:          x,
			Y:          boardTop,
			Width:      cl.Width,
			Height:     lipgloss.Height(view),
			FirstCard:  cl.FirstCard,
			CardTops:   cl.CardTops,
			CardHeight: cl.CardHeight,
		})
		x += cl.Width
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...), layout
}

// scrollToSelection keeps the cursor's card on screen and every other
// column's scroll offset within its cards
func (m *Model) scrollToSelection() {
	visible := components.VisibleCards(m.UiState.BoardHeight())
	for i, col := range m.Board.Columns() {
		if i == m.UiState.SelectedColumn() && col.Len() > 0 {
			m.UiState.EnsureProjectVisible(i, m.UiState.SelectedProject(), col.Len(), visible)
			continue
		}
		m.UiState.SetScrollOffset(i, components.ClampScrollOffset(m.UiState.ScrollOffset(i), col.Len(), visible))
	}
}

// renderHeader is the single title row above the board
func (m *Model) renderHeader() string {
	counts := make([]string, 0, m.Board.Len())
	for _, col := range m.Board.Columns() {
		counts = append(counts, fmt.Sprintf("%d %s", col.Len(), col.Status()))
	}
	return components.TitleStyle.Render("dragboard") + "  " +
		components.SubtleStyle.Render(strings.Join(counts, " · "))
}

// renderStatusBar describes the drag in progress, if any
func (m *Model) renderStatusBar() string {
	msg := ""
	if m.DragState.Active() {
		target := "nowhere"
		if col := m.Board.ColumnAt(m.DragState.HoverColumn); col != nil {
			target = col.Title()
		}
		msg = fmt.Sprintf("dragging %q over %s  (%s to cancel)", m.DragState.Title, target, m.Config.KeyMappings.CancelDrag)
	}
	return components.RenderStatusBar(components.StatusBarProps{Width: m.UiState.Width(), Message: msg})
}

// renderGhost is the card that follows the pointer during a mouse drag
func (m *Model) renderGhost() string {
	p, _, ok := m.Board.Find(types.ProjectID(m.DragState.ProjectID))
	if !ok {
		return ""
	}
	return components.GhostStyle.Render(p.Title + "\n" + components.SubtleStyle.Render(p.PersonsLabel()))
}
