package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// DetailProps configures the project detail overlay
type DetailProps struct {
	Project models.Project
	Width   int
}

// markdown renderers by wrap width; glamour renderers are slow to build
var markdownRenderers sync.Map // map[int]*glamour.TermRenderer

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if r, ok := markdownRenderers.Load(width); ok {
		return r.(*glamour.TermRenderer), nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.DarkStyle),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	actual, _ := markdownRenderers.LoadOrStore(width, r)
	return actual.(*glamour.TermRenderer), nil
}

// RenderMarkdown renders a description as markdown wrapped to width.
// It falls back to the plain text when glamour fails.
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return SubtleStyle.Italic(true).Render("No description")
	}

	r, err := markdownRenderer(width)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// RenderProjectDetail renders a project's full information
func RenderProjectDetail(props DetailProps) string {
	p := props.Project
	width := max(props.Width, 20)

	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Render(p.Status.Title())

	parts := []string{
		TitleStyle.Render(p.Title),
		SubtleStyle.Render(p.PersonsLabel()) + "  " + status,
		"",
		RenderMarkdown(p.Description, width),
		"",
		SubtleStyle.Render("esc: close"),
	}

	return DetailBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
