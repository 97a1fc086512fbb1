package dragdrop

// Draggable is the source side of a drag
type Draggable interface {
	// DragStart fills the transfer with the item's payload and allowed effect
	DragStart(t *Transfer)
	// DragEnd is called once the drag finished, dropped or not
	DragEnd(t *Transfer)
}

// Droppable is the target side of a drag
type Droppable interface {
	// DragOver reports whether the target accepts this drag. It is called
	// repeatedly while the drag stays over the target.
	DragOver(t *Transfer) bool
	// DragLeave is called when the drag leaves the target without dropping
	DragLeave()
	// Drop delivers the transfer. Only called after DragOver returned true.
	Drop(t *Transfer)
}
