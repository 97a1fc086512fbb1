package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dragboard/internal/dragdrop"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// startKeyboardDrag grabs the selected card and hovers it over its own column
func (m *Model) startKeyboardDrag() {
	card, ok := m.currentCard()
	if !ok {
		return
	}
	column := m.UiState.SelectedColumn()
	p := card.Project()

	m.DragState.Session.Begin(card)
	m.DragState.Started(column, m.UiState.SelectedProject(), p.ID.String(), p.Title, false)
	m.hoverColumn(column)
	m.logger.Debug("keyboard drag started", "project_id", p.ID)
}

// startMouseDrag begins dragging the card a pending press landed on
func (m *Model) startMouseDrag() bool {
	column, index, ok := m.DragState.Pressed()
	if !ok {
		return false
	}
	col := m.Board.ColumnAt(column)
	if col == nil {
		m.DragState.ClearPress()
		return false
	}
	card, ok := col.Card(index)
	if !ok {
		m.DragState.ClearPress()
		return false
	}
	p := card.Project()

	m.DragState.Session.Begin(card)
	m.DragState.Started(column, index, p.ID.String(), p.Title, true)
	m.logger.Debug("mouse drag started", "project_id", p.ID)
	return true
}

// hoverColumn moves the drag over the column at idx; -1 is empty space
func (m *Model) hoverColumn(idx int) {
	m.DragState.HoverColumn = idx
	m.DragState.Session.Hover(m.droppableAt(idx))
}

// droppableAt returns the column at idx as a drop target, or an untyped nil
func (m *Model) droppableAt(idx int) dragdrop.Droppable {
	col := m.Board.ColumnAt(idx)
	if col == nil {
		return nil
	}
	return col
}

// finishDrag releases the drag where it is and follows the project if it moved
func (m *Model) finishDrag() {
	id := types.ProjectID(m.DragState.ProjectID)
	dropped := m.DragState.Session.Release()
	m.DragState.Reset()

	if dropped {
		m.selectProject(id)
	}
	m.logger.Debug("drag finished", "project_id", id, "dropped", dropped)
}

// cancelDrag aborts the drag without moving anything
func (m *Model) cancelDrag() {
	id := m.DragState.ProjectID
	m.DragState.Session.Cancel()
	m.DragState.Reset()
	m.logger.Debug("drag cancelled", "project_id", id)
}

// handleMouseClick selects what was clicked and arms a drag when it is a card
func (m *Model) handleMouseClick(x, y int, button tea.MouseButton) {
	if button != tea.MouseLeft || m.DragState.Active() {
		return
	}
	m.NotificationState.Clear()

	column, card := m.hitTest(x, y)
	if column < 0 {
		return
	}
	if card < 0 {
		m.UiState.SetSelectedColumn(column)
		return
	}
	m.UiState.Select(column, card)
	m.DragState.Press(column, card, x, y)
}

// handleMouseMotion starts a pending drag and tracks the pointer
func (m *Model) handleMouseMotion(x, y int) {
	if !m.DragState.Active() {
		if !m.startMouseDrag() {
			return
		}
	}
	if !m.DragState.ViaMouse {
		return
	}
	m.DragState.X, m.DragState.Y = x, y
	column, _ := m.hitTest(x, y)
	m.hoverColumn(column)
}

// handleMouseRelease drops a mouse drag, or ends a plain click
func (m *Model) handleMouseRelease(x, y int) {
	if !m.DragState.Active() || !m.DragState.ViaMouse {
		m.DragState.ClearPress()
		return
	}
	m.DragState.X, m.DragState.Y = x, y
	column, _ := m.hitTest(x, y)
	m.hoverColumn(column)
	m.finishDrag()
}
