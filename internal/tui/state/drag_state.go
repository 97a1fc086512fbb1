package state

import "github.com/thenoetrevino/dragboard/internal/dragdrop"

// DragState tracks the drag in progress, whether it comes from the mouse or
// the keyboard. The session does the routing; this adds where it started
// and where the pointer is.
type DragState struct {
	Session *dragdrop.Session

	// SourceColumn and SourceIndex locate the card the drag started from
	SourceColumn int
	SourceIndex  int
	ProjectID    string
	Title        string

	// HoverColumn is the column under the drag, or -1
	HoverColumn int

	// Mouse drags follow the pointer; keyboard drags follow the column cursor
	ViaMouse bool
	X, Y     int

	// pressed is set between a mouse press on a card and the first motion
	pressed      bool
	pressColumn  int
	pressProject int
}

// NewDragState returns an idle drag state
func NewDragState() *DragState {
	return &DragState{Session: dragdrop.NewSession(), HoverColumn: -1}
}

// Active reports whether a drag is in progress
func (s *DragState) Active() bool {
	return s.Session.Active()
}

// Press records a mouse press on a card; the drag starts on motion
func (s *DragState) Press(column, project, x, y int) {
	s.pressed = true
	s.pressColumn = column
	s.pressProject = project
	s.X, s.Y = x, y
}

// Pressed returns the card a pending press landed on
func (s *DragState) Pressed() (column, project int, ok bool) {
	return s.pressColumn, s.pressProject, s.pressed
}

// ClearPress forgets a pending press
func (s *DragState) ClearPress() {
	s.pressed = false
}

// Started records the origin of a drag that has just begun
func (s *DragState) Started(column, index int, projectID, title string, viaMouse bool) {
	s.SourceColumn = column
	s.SourceIndex = index
	s.ProjectID = projectID
	s.Title = title
	s.ViaMouse = viaMouse
	s.HoverColumn = -1
	s.pressed = false
}

// Reset returns to idle after a drop or cancel
func (s *DragState) Reset() {
	s.ProjectID = ""
	s.Title = ""
	s.HoverColumn = -1
	s.ViaMouse = false
	s.pressed = false
}
