package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// handleNormalMode handles board navigation and the keyboard drag
func (m *Model) handleNormalMode(msg tea.KeyPressMsg) tea.Cmd {
	// Any key dismisses notifications
	m.NotificationState.Clear()

	if m.DragState.Active() {
		m.handleDragKey(msg)
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.ShowHelp):
		m.UiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.AddProject):
		return m.openProjectForm()
	case key.Matches(msg, m.keys.ViewProject):
		if _, ok := m.currentProject(); ok {
			m.UiState.SetMode(state.DetailMode)
		}
	case key.Matches(msg, m.keys.GrabProject):
		m.startKeyboardDrag()
	case key.Matches(msg, m.keys.PrevColumn):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.NextColumn):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.PrevProject):
		m.moveProject(-1)
	case key.Matches(msg, m.keys.NextProject):
		m.moveProject(1)
	}
	return nil
}

// handleDragKey steers a drag in progress
func (m *Model) handleDragKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, m.keys.CancelDrag):
		m.cancelDrag()
	case m.DragState.ViaMouse:
		// the pointer owns the drag; only cancel applies
	case key.Matches(msg, m.keys.DropProject), key.Matches(msg, m.keys.GrabProject):
		m.finishDrag()
	case key.Matches(msg, m.keys.PrevColumn):
		m.hoverColumn(max(m.DragState.HoverColumn-1, 0))
	case key.Matches(msg, m.keys.NextColumn):
		m.hoverColumn(min(m.DragState.HoverColumn+1, m.Board.Len()-1))
	}
}

// moveColumn shifts the column cursor by delta, staying on the board
func (m *Model) moveColumn(delta int) {
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= m.Board.Len() {
		return
	}
	m.UiState.SetSelectedColumn(next)
}

// moveProject shifts the card cursor by delta within the current column
func (m *Model) moveProject(delta int) {
	col := m.currentColumn()
	if col == nil {
		return
	}
	next := m.UiState.SelectedProject() + delta
	if next < 0 || next >= col.Len() {
		return
	}
	m.UiState.SetSelectedProject(next)
}
