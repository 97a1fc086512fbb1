package dragdrop

// DropState is the hover state of a drop target
type DropState int

const (
	// DropIdle means no accepted drag is over the target
	DropIdle DropState = iota
	// DropOver means an accepted drag is over the target; the target
	// shows its droppable marker
	DropOver
	// DropCommitted is passed through on a drop before returning to DropIdle
	DropCommitted
)

func (s DropState) String() string {
	switch s {
	case DropOver:
		return "drag-over"
	case DropCommitted:
		return "committed"
	default:
		return "idle"
	}
}

// DropZone is the per-target state machine behind Droppable:
//
//	Idle --over(accepted)--> DragOver --over--> DragOver
//	DragOver --leave--> Idle
//	DragOver --drop--> Committed --> Idle
type DropZone struct {
	accept string
	state  DropState

	// OnChange, when set, observes every state transition
	OnChange func(from, to DropState)
}

// NewDropZone creates an idle zone accepting drags whose first payload type is accept
func NewDropZone(accept string) *DropZone {
	return &DropZone{accept: accept}
}

// State returns the current hover state
func (z *DropZone) State() DropState {
	return z.state
}

// Droppable reports whether the droppable marker should be shown
func (z *DropZone) Droppable() bool {
	return z.state == DropOver
}

// Accepts reports whether the transfer's first payload type is the accepted one
func (z *DropZone) Accepts(t *Transfer) bool {
	if t == nil {
		return false
	}
	types := t.Types()
	return len(types) > 0 && types[0] == z.accept
}

// Over handles a drag entering or moving over the zone. It returns true when
// the drag is accepted, in which case the zone is in DragOver afterwards.
// A rejected drag leaves the state untouched.
func (z *DropZone) Over(t *Transfer) bool {
	if !z.Accepts(t) {
		return false
	}
	z.transition(DropOver)
	return true
}

// Leave returns the zone to Idle
func (z *DropZone) Leave() {
	z.transition(DropIdle)
}

// Drop extracts the accepted payload and returns the zone to Idle.
// It reports false when the zone never accepted the drag or the payload is empty.
func (z *DropZone) Drop(t *Transfer) (string, bool) {
	if z.state != DropOver || t == nil {
		return "", false
	}
	data := t.GetData(z.accept)
	z.transition(DropCommitted)
	z.transition(DropIdle)
	return data, data != ""
}

func (z *DropZone) transition(to DropState) {
	from := z.state
	if from == to {
		return
	}
	z.state = to
	if z.OnChange != nil {
		z.OnChange(from, to)
	}
}
