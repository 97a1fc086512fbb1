package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/huhforms"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/validation"
)

// InvalidInputMessage is shown when the project form is submitted with bad input
const InvalidInputMessage = "Invalid input, please try again"

// DiscardedMessage is shown when a partly filled project form is cancelled
const DiscardedMessage = "New project discarded"

// openProjectForm shows an empty project form
func (m *Model) openProjectForm() tea.Cmd {
	m.FormState.Clear()
	m.FormState.ProjectForm = m.newProjectForm()
	m.UiState.SetMode(state.ProjectFormMode)
	return m.FormState.ProjectForm.Init()
}

// newProjectForm builds a form bound to the current field values
func (m *Model) newProjectForm() *huh.Form {
	form := huhforms.CreateProjectForm(
		&m.FormState.FormTitle,
		&m.FormState.FormDescription,
		&m.FormState.FormPeople,
	).WithTheme(huhforms.CreateDragboardTheme(m.Config.ColorScheme))
	if w := m.UiState.Width(); w > 0 {
		form = form.WithWidth(min(max(w/2, 40), w) - 6)
	}
	return form
}

// closeProjectForm discards the form and its input
func (m *Model) closeProjectForm() tea.Cmd {
	if m.FormState.HasChanges() {
		m.NotificationState.Add(state.LevelInfo, DiscardedMessage)
	}
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
	return tea.ClearScreen
}

// updateProjectForm handles all messages when in ProjectFormMode
func (m *Model) updateProjectForm(msg tea.Msg) tea.Cmd {
	// Check for keyboard shortcuts before passing to form
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case keyMsg.String() == "esc":
			return m.closeProjectForm()
		case key.Matches(keyMsg, m.keys.SaveForm):
			return m.submitProjectForm()
		}
	}

	if m.FormState.ProjectForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	model, cmd := m.FormState.ProjectForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.ProjectForm = f
	}

	if m.FormState.ProjectForm.State == huh.StateCompleted {
		return m.submitProjectForm()
	}
	return cmd
}

// submitProjectForm validates the input and adds the project. Invalid input
// keeps the form open with its values and raises a notification.
func (m *Model) submitProjectForm() tea.Cmd {
	input, err := validation.ValidateProjectInput(
		m.FormState.FormTitle,
		m.FormState.FormDescription,
		m.FormState.FormPeople,
	)
	if err != nil {
		m.logger.Debug("project form rejected", "error", err)
		m.NotificationState.Add(state.LevelError, InvalidInputMessage)
		if m.FormState.ProjectForm == nil || m.FormState.ProjectForm.State != huh.StateNormal {
			m.FormState.ProjectForm = m.newProjectForm()
			return m.FormState.ProjectForm.Init()
		}
		return nil
	}

	id := m.App.Store.AddProject(input.Title, input.Description, input.People)
	m.logger.Info("project added", "project_id", id, "title", input.Title)

	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
	m.selectProject(id)
	return tea.ClearScreen
}
