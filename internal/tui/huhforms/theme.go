package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/config/colors"
)

// CreateDragboardTheme styles huh forms from the board's color scheme.
// The focused field gets the selection border; blurred fields drop it.
func CreateDragboardTheme(scheme colors.ColorScheme) huh.Theme {
	scheme.ApplyDefaults()

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		var (
			border   = lipgloss.Color(scheme.SelectedBorder)
			accent   = lipgloss.Color(scheme.Accent)
			create   = lipgloss.Color(scheme.Create)
			subtle   = lipgloss.Color(scheme.Subtle)
			normal   = lipgloss.Color(scheme.Normal)
			title    = lipgloss.Color(scheme.Title)
			errColor = lipgloss.Color(scheme.ErrorFg)
		)

		f := &t.Focused
		f.Base = f.Base.BorderForeground(border)
		f.Title = f.Title.Foreground(title).Bold(true)
		f.Description = f.Description.Foreground(subtle)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(errColor)
		f.ErrorMessage = f.ErrorMessage.Foreground(errColor)
		f.FocusedButton = f.FocusedButton.Foreground(normal).Background(create).Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(normal).Background(subtle)
		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(subtle)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)
		f.TextInput.Text = f.TextInput.Text.Foreground(normal)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle).Bold(false)

		return t
	})
}
