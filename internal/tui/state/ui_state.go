package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode      Mode = iota // Default navigation and dragging
	ProjectFormMode             // Adding a new project with huh
	DetailMode                  // Viewing a single project
	HelpMode                    // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case ProjectFormMode:
		return "project-form"
	case DetailMode:
		return "detail"
	case HelpMode:
		return "help"
	}
	return "unknown"
}

// UIState manages the user interface state.
// This includes navigation (column/project selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedProject is the index of the selected card within the selected column
	selectedProject int

	// scrollOffsets is the index of the first visible card, per column index
	scrollOffsets map[int]int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode, scrollOffsets: make(map[int]int)}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index and resets the card cursor.
func (s *UIState) SetSelectedColumn(index int) {
	if index != s.selectedColumn {
		s.selectedProject = 0
	}
	s.selectedColumn = index
}

// SelectedProject returns the index of the selected card in the selected column.
func (s *UIState) SelectedProject() int {
	return s.selectedProject
}

// SetSelectedProject updates the selected card index.
func (s *UIState) SetSelectedProject(index int) {
	s.selectedProject = max(index, 0)
}

// Select moves the cursor to a specific card.
func (s *UIState) Select(column, project int) {
	s.selectedColumn = column
	s.selectedProject = max(project, 0)
}

// ClampProject keeps the card cursor inside a column of count cards.
func (s *UIState) ClampProject(count int) {
	if s.selectedProject >= count {
		s.selectedProject = max(count-1, 0)
	}
}

// ScrollOffset returns the index of the first visible card in a column.
func (s *UIState) ScrollOffset(column int) int {
	return s.scrollOffsets[column]
}

// SetScrollOffset updates the first visible card of a column.
func (s *UIState) SetScrollOffset(column, offset int) {
	s.scrollOffsets[column] = max(offset, 0)
}

// EnsureProjectVisible adjusts a column's scroll offset so that index is
// inside the window of visibleCount cards, and keeps the window within count.
func (s *UIState) EnsureProjectVisible(column, index, count, visibleCount int) {
	offset := s.scrollOffsets[column]

	// If selection is above visible area, scroll up
	if index < offset {
		offset = index
	}

	// If selection is below visible area, scroll down
	if index >= offset+visibleCount {
		offset = index - visibleCount + 1
	}

	// Never leave empty rows under the last card
	offset = min(offset, max(count-visibleCount, 0))
	s.scrollOffsets[column] = max(offset, 0)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// BoardHeight returns the rows available to columns.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) BoardHeight() int {
	const headerHeight = 1
	const statusBarHeight = 1
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
