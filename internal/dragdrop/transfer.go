// Package dragdrop models a drag-and-drop transport independent of any
// input device: a Transfer carries typed payloads from a Draggable source
// to a Droppable target, and a DropZone tracks whether a target is
// currently accepting the drag.
package dragdrop

// MIMEProjectID is the payload type a dragged card stores its project id under
const MIMEProjectID = "text/plain"

// Effect describes what a drop is allowed to do with the dragged item
type Effect int

const (
	EffectNone Effect = iota
	EffectCopy
	EffectMove
	EffectLink
)

func (e Effect) String() string {
	switch e {
	case EffectCopy:
		return "copy"
	case EffectMove:
		return "move"
	case EffectLink:
		return "link"
	default:
		return "none"
	}
}

type item struct {
	format string
	data   string
}

// Transfer is the payload of a single drag operation.
// Payload types keep the order in which they were first set.
type Transfer struct {
	items []item

	// EffectAllowed is set by the source in DragStart
	EffectAllowed Effect
}

// NewTransfer returns an empty transfer
func NewTransfer() *Transfer {
	return &Transfer{}
}

// SetData stores data under format, replacing any previous value for it
func (t *Transfer) SetData(format, data string) {
	for i := range t.items {
		if t.items[i].format == format {
			t.items[i].data = data
			return
		}
	}
	t.items = append(t.items, item{format: format, data: data})
}

// GetData returns the data stored under format, or "" when there is none
func (t *Transfer) GetData(format string) string {
	for _, it := range t.items {
		if it.format == format {
			return it.data
		}
	}
	return ""
}

// Types lists payload formats in the order they were set
func (t *Transfer) Types() []string {
	types := make([]string, 0, len(t.items))
	for _, it := range t.items {
		types = append(types, it.format)
	}
	return types
}

// ClearData drops every payload
func (t *Transfer) ClearData() {
	t.items = nil
}
