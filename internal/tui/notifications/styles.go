package notifications

import (
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// maxWidth caps the banner width; longer messages wrap
const maxWidth = 40

type banner struct {
	icon   string
	title  string
	fg, bg string
}

func bannerFor(level state.NotificationLevel) banner {
	if level == state.LevelError {
		return banner{icon: "✕", title: "Error", fg: theme.ErrorFg, bg: theme.ErrorBg}
	}
	return banner{icon: "•", title: "Info", fg: theme.InfoFg, bg: theme.InfoBg}
}
