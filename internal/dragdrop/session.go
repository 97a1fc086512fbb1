package dragdrop

// Session routes one drag at a time from its source across targets,
// sending the enter/leave/drop signals a native drag would.
type Session struct {
	source   Draggable
	transfer *Transfer
	target   Droppable
	accepted bool
}

// NewSession returns an idle session
func NewSession() *Session {
	return &Session{}
}

// Begin starts dragging source. A drag already in progress is cancelled first.
func (s *Session) Begin(source Draggable) *Transfer {
	if s.Active() {
		s.Cancel()
	}
	s.source = source
	s.transfer = NewTransfer()
	s.target = nil
	s.accepted = false
	source.DragStart(s.transfer)
	return s.transfer
}

// Active reports whether a drag is in progress
func (s *Session) Active() bool {
	return s.source != nil
}

// Source returns the item being dragged, or nil
func (s *Session) Source() Draggable {
	return s.source
}

// Target returns the target currently under the drag, or nil
func (s *Session) Target() Droppable {
	return s.target
}

// Transfer returns the payload of the current drag, or nil
func (s *Session) Transfer() *Transfer {
	return s.transfer
}

// Accepted reports whether the current target accepted the drag
func (s *Session) Accepted() bool {
	return s.accepted
}

// Hover moves the drag over target (nil for empty space). Moving onto a
// different target sends DragLeave to the previous one. Returns whether the
// target accepts the drag.
func (s *Session) Hover(target Droppable) bool {
	if !s.Active() {
		return false
	}
	if target != s.target {
		if s.target != nil {
			s.target.DragLeave()
		}
		s.target = target
		s.accepted = false
	}
	if s.target == nil {
		return false
	}
	s.accepted = s.target.DragOver(s.transfer)
	return s.accepted
}

// Release ends the drag where it is. The drop is delivered only when the
// current target accepted the drag; otherwise the target gets DragLeave.
// Returns whether a drop was delivered.
func (s *Session) Release() bool {
	if !s.Active() {
		return false
	}
	dropped := false
	if s.target != nil {
		if s.accepted {
			s.target.Drop(s.transfer)
			dropped = true
		} else {
			s.target.DragLeave()
		}
	}
	s.finish()
	return dropped
}

// Cancel aborts the drag without dropping
func (s *Session) Cancel() {
	if !s.Active() {
		return
	}
	if s.target != nil {
		s.target.DragLeave()
	}
	s.finish()
}

// finish ends the drag. The transfer is emptied once the source has seen
// it, so a stale reference can never be dropped again.
func (s *Session) finish() {
	s.source.DragEnd(s.transfer)
	s.transfer.ClearData()
	s.source = nil
	s.transfer = nil
	s.target = nil
	s.accepted = false
}
