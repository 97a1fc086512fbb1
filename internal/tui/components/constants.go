package components

const (
	cardDescriptionLines = 2 // wrapped description lines shown on a card
	cardMinWidth         = 12
	columnChromeWidth    = 4 // border + horizontal padding
	columnBorderLines    = 2 // top and bottom border
	columnHeaderLines    = 1 // column title and count
	scrollIndicatorLines = 2 // "more above" and "more below" rows
	ellipsis             = "…"
)

// CardHeight is the rendered height of every card, borders included
const CardHeight = 2 + 2 + cardDescriptionLines
