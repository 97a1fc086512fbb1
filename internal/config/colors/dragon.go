package colors

// kanagawa dragon palette
const (
	dragonBlack3 = "#181616"
	dragonBlack4 = "#282727"
	dragonBlack6 = "#625E5A"
	dragonWhite  = "#C5C9C5"
	dragonGreen2 = "#8A9A7B"
	dragonBlue   = "#658594"
	dragonBlue2  = "#8BA4B0"
	dragonViolet = "#8992A7"
	dragonAqua   = "#8EA4A2"
	dragonAsh    = "#737C73"
	roninYellow  = "#FF9E3B"
	samuraiRed   = "#E82424"
	winterBlue   = "#252535"
	winterRed    = "#43242B"
)

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: dragonViolet,
		Create: dragonGreen2,

		ColumnBorder:   dragonBlack6,
		DropBorder:     dragonGreen2,
		CardBorder:     dragonBlack4,
		CardBackground: dragonBlack3,
		SelectedBorder: dragonAqua,
		DraggingBorder: roninYellow,

		Title:  dragonBlue2,
		Subtle: dragonAsh,
		Normal: dragonWhite,

		InfoFg:  dragonBlue,
		InfoBg:  winterBlue,
		ErrorFg: samuraiRed,
		ErrorBg: winterRed,

		StatusBarBg:   dragonViolet, // Matches accent
		StatusBarText: dragonWhite,  // Matches normal text
	}
}
