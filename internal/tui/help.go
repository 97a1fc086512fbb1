package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/components"
	"github.com/thenoetrevino/dragboard/internal/tui/layers"
)

// renderHelpLayer lists every key binding, grouped
func (m *Model) renderHelpLayer() *lipgloss.Layer {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	for _, section := range m.keys.helpSections() {
		b.WriteString("\n" + components.TitleStyle.Render(section.title) + "\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
	}

	b.WriteString("\n" + components.SubtleStyle.Render("Drag cards with the mouse, or grab one and move it with the column keys."))

	return layers.CreateCenteredLayer(components.HelpBoxStyle.Render(b.String()), m.UiState.Width(), m.UiState.Height())
}
