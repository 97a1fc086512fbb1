// Package tui is the terminal front end of the board: a bubbletea model that
// renders one column per status and lets projects be dragged between them
// with the mouse or the keyboard.
package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/board"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/components"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Model represents the application state for the TUI.
// It is always used through a pointer: the board's columns call back into it.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config
	Board  *board.Board

	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState
	DragState         *state.DragState

	keys   keyMap
	logger *slog.Logger
}

// Compile-time verification that Model redraws board columns
var _ board.Renderer = (*Model)(nil)

// InitialModel creates the TUI model and subscribes its board to the app's store
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	m := &Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		DragState:         state.NewDragState(),
		keys:              newKeyMap(cfg.KeyMappings),
		logger:            application.Logger().With("component", "tui"),
	}
	m.Board = application.NewBoard(m)
	return m
}

// Init initializes the Bubble Tea application
func (m *Model) Init() tea.Cmd {
	return nil
}

// Render is called by a column each time its project list is rebuilt.
// The view itself is drawn from the columns on every frame; this only keeps
// the cursor inside the column it points at, and on screen.
func (m *Model) Render(status models.Status, projects []models.Project) {
	if m.Board == nil {
		return
	}
	col := m.currentColumn()
	if col != nil && col.Status() == status {
		m.UiState.ClampProject(len(projects))
	}
	m.scrollToSelection()
	m.logger.Debug("column redrawn", "status", status, "projects", len(projects))
}

// currentColumn returns the selected column, or nil
func (m *Model) currentColumn() *board.Column {
	return m.Board.ColumnAt(m.UiState.SelectedColumn())
}

// currentCard returns the draggable card under the cursor
func (m *Model) currentCard() (*board.Card, bool) {
	col := m.currentColumn()
	if col == nil {
		return nil, false
	}
	return col.Card(m.UiState.SelectedProject())
}

// currentProject returns the project under the cursor
func (m *Model) currentProject() (models.Project, bool) {
	card, ok := m.currentCard()
	if !ok {
		return models.Project{}, false
	}
	return card.Project(), true
}

// selectProject moves the cursor to wherever the project is now shown
func (m *Model) selectProject(id types.ProjectID) {
	_, col, ok := m.Board.Find(id)
	if !ok {
		return
	}
	for i, p := range col.Projects() {
		if p.ID == id {
			m.UiState.Select(m.Board.IndexOf(col.Status()), i)
			return
		}
	}
}
