package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.dispatch(msg)
	m.scrollToSelection()
	return model, cmd
}

// dispatch routes a message by type and mode
func (m *Model) dispatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetWidth(size.Width)
		m.UiState.SetHeight(size.Height)
		m.NotificationState.SetWindowSize(size.Width, size.Height)
		return m, nil
	}

	// Forms need ALL messages, not just keys
	if m.UiState.Mode() == state.ProjectFormMode {
		return m, m.updateProjectForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseClickMsg:
		if m.UiState.Mode() == state.NormalMode {
			m.handleMouseClick(msg.X, msg.Y, msg.Button)
		}
	case tea.MouseMotionMsg:
		if m.UiState.Mode() == state.NormalMode {
			m.handleMouseMotion(msg.X, msg.Y)
		}
	case tea.MouseReleaseMsg:
		if m.UiState.Mode() == state.NormalMode {
			m.handleMouseRelease(msg.X, msg.Y)
		}
	}
	return m, nil
}

// handleKey routes a key press by mode
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	}
	return m.handleNormalMode(msg)
}

// handleHelpMode handles input in the help screen.
func (m *Model) handleHelpMode(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ShowHelp), key.Matches(msg, m.keys.Quit), msg.String() == "esc", msg.String() == "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// handleDetailMode handles input while a project is shown in full.
func (m *Model) handleDetailMode(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ViewProject), key.Matches(msg, m.keys.Quit), msg.String() == "esc", msg.String() == "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}
