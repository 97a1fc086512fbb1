package tui

// columnRect is where a column and its visible cards sit on screen
type columnRect struct {
	X, Y          int
	Width, Height int
	// FirstCard is the project index of the topmost visible card
	FirstCard int
	// CardTops are row offsets from Y
	CardTops   []int
	CardHeight int
}

// boardLayout is the screen geometry of the rendered board
type boardLayout struct {
	columns []columnRect
}

// hitTest returns the column and the project index of the card under (x, y).
// column is -1 outside every column; card is -1 when the point is on a
// column but not on a card.
func (l boardLayout) hitTest(x, y int) (column, card int) {
	for i, c := range l.columns {
		if x < c.X || x >= c.X+c.Width || y < c.Y || y >= c.Y+c.Height {
			continue
		}
		for j, top := range c.CardTops {
			row := y - c.Y
			if row >= top && row < top+c.CardHeight {
				return i, c.FirstCard + j
			}
		}
		return i, -1
	}
	return -1, -1
}

// hitTest resolves a screen point against the board as currently drawn
func (m *Model) hitTest(x, y int) (column, card int) {
	_, layout := m.renderBoard()
	return layout.hitTest(x, y)
}
