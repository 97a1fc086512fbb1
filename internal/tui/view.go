package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/components"
	"github.com/thenoetrevino/dragboard/internal/tui/layers"
	"github.com/thenoetrevino/dragboard/internal/tui/notifications"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// View renders the current state of the application.
// The board is always the base layer; forms, the detail view, help, the
// drag ghost and notifications float above it.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	boardView, _ := m.renderBoard()
	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		boardView,
		m.renderStatusBar(),
	)

	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.ProjectFormMode:
		modal = m.renderProjectFormLayer()
	case state.DetailMode:
		modal = m.renderDetailLayer()
	case state.HelpMode:
		modal = m.renderHelpLayer()
	}
	if modal != nil {
		stack = append(stack, modal)
	}

	if m.DragState.Active() && m.DragState.ViaMouse {
		ghost := layers.CreateFloatingLayer(m.renderGhost(),
			m.DragState.X+1, m.DragState.Y+1, m.UiState.Width(), m.UiState.Height())
		if ghost != nil {
			stack = append(stack, ghost)
		}
	}

	stack = append(stack, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// renderProjectFormLayer renders the new project form modal as a layer
func (m *Model) renderProjectFormLayer() *lipgloss.Layer {
	if m.FormState.ProjectForm == nil {
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Create))
	helpText := components.SubtleStyle.Render("enter: next field  " + m.Config.KeyMappings.SaveForm + ": save  esc: cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("New Project"),
		"",
		m.FormState.ProjectForm.View(),
		"",
		helpText,
	)

	return layers.CreateCenteredLayer(components.ProjectFormBoxStyle.Render(content), m.UiState.Width(), m.UiState.Height())
}

// renderDetailLayer renders the selected project in full
func (m *Model) renderDetailLayer() *lipgloss.Layer {
	p, ok := m.currentProject()
	if !ok {
		return nil
	}
	width := min(max(m.UiState.Width()*6/10, 30), m.UiState.Width()-6)
	detail := components.RenderProjectDetail(components.DetailProps{Project: p, Width: width})
	return layers.CreateCenteredLayer(detail, m.UiState.Width(), m.UiState.Height())
}
