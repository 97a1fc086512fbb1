package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dragboard/internal/config/colors"
	"github.com/thenoetrevino/dragboard/internal/models"
)

func init() {
	InitStyles(*colors.Default())
}

func project(title string, people int, desc string) models.Project {
	return models.Project{
		ID:          "id-" + title,
		Title:       title,
		Description: desc,
		People:      people,
		Status:      models.StatusActive,
	}
}

func TestRenderCard_ShowsLabel(t *testing.T) {
	card := RenderCard(CardProps{Project: project("Website", 1, "Build the landing page"), Width: 30})

	assert.Contains(t, card, "Website")
	assert.Contains(t, card, "1 person assigned.")
	assert.Contains(t, card, "Build the landing page")
}

func TestRenderCard_PluralPeople(t *testing.T) {
	card := RenderCard(CardProps{Project: project("Website", 3, "Build the landing page"), Width: 30})
	assert.Contains(t, card, "3 people assigned.")
}

func TestRenderCard_FixedHeight(t *testing.T) {
	short := RenderCard(CardProps{Project: project("A", 2, "tiny"), Width: 20})
	long := RenderCard(CardProps{Project: project("B", 2, strings.Repeat("word ", 40)), Width: 20})

	assert.Equal(t, lipgloss.Height(short), lipgloss.Height(long))
	assert.Equal(t, 2+2+cardDescriptionLines, lipgloss.Height(short))
}

func TestDescriptionLines(t *testing.T) {
	lines := DescriptionLines("one two three four five six seven", 10, 2)

	require.Len(t, lines, 2)
	assert.Equal(t, "one two", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ellipsis))

	lines = DescriptionLines("short", 10, 2)
	assert.Equal(t, []string{"short", ""}, lines)
}

func TestRenderColumn_Layout(t *testing.T) {
	projects := []models.Project{
		project("A", 1, "first description"),
		project("B", 2, "second description"),
	}

	out, layout := RenderColumn(ColumnProps{
		Title:        "Active Projects",
		Projects:     projects,
		Width:        40,
		Height:       30,
		SelectedCard: -1,
	})

	assert.Contains(t, out, "Active Projects (2)")
	require.Len(t, layout.CardTops, 2)
	// border, header and the "more above" row come first
	assert.Equal(t, 3, layout.CardTops[0])
	assert.Equal(t, 3+layout.CardHeight, layout.CardTops[1])
	assert.Equal(t, CardHeight, layout.CardHeight)
	assert.Equal(t, 0, layout.FirstCard)
	assert.Equal(t, lipgloss.Width(out), layout.Width)
}

func TestRenderColumn_Overflow(t *testing.T) {
	projects := []models.Project{}
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		projects = append(projects, project(title, 1, "some description"))
	}

	out, layout := RenderColumn(ColumnProps{
		Title:        "Active Projects",
		Projects:     projects,
		Width:        40,
		Height:       16,
		SelectedCard: -1,
	})

	assert.Less(t, len(layout.CardTops), len(projects))
	assert.Contains(t, out, "more below")
	assert.NotContains(t, out, "more above")
}

func TestRenderColumn_ScrollOffset(t *testing.T) {
	projects := []models.Project{}
	for _, title := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"} {
		projects = append(projects, project(title, 1, "some description"))
	}

	// room for exactly two cards
	height := columnBorderLines + columnHeaderLines + scrollIndicatorLines + 2*CardHeight
	require.Equal(t, 2, VisibleCards(height))

	out, layout := RenderColumn(ColumnProps{
		Title:        "Active Projects",
		Projects:     projects,
		Width:        40,
		Height:       height,
		Selected:     true,
		SelectedCard: 3,
		ScrollOffset: 2,
	})

	assert.Equal(t, 2, layout.FirstCard)
	assert.Len(t, layout.CardTops, 2)
	assert.Contains(t, out, "Charlie")
	assert.Contains(t, out, "Delta")
	assert.NotContains(t, out, "Bravo")
	assert.NotContains(t, out, "Echo")
	assert.Contains(t, out, "▲ 2 more above")
	assert.Contains(t, out, "▼ 1 more below")
	assert.Equal(t, height, lipgloss.Height(out))
}

func TestRenderColumn_ScrollOffsetClamped(t *testing.T) {
	projects := []models.Project{project("Alpha", 1, "x"), project("Bravo", 1, "y")}

	out, layout := RenderColumn(ColumnProps{
		Title:        "Active Projects",
		Projects:     projects,
		Width:        40,
		Height:       30,
		SelectedCard: -1,
		ScrollOffset: 9,
	})

	assert.Equal(t, 0, layout.FirstCard)
	assert.Contains(t, out, "Alpha")
	assert.NotContains(t, out, "more")
}

func TestRenderCard_FixedHeight(t *testing.T) {
	short := RenderCard(CardProps{Project: project("A", 1, ""), Width: 20})
	long := RenderCard(CardProps{Project: project("B", 9, strings.Repeat("long words here ", 20)), Width: 20})

	assert.Equal(t, CardHeight, lipgloss.Height(short))
	assert.Equal(t, CardHeight, lipgloss.Height(long))
}

func TestClampScrollOffset(t *testing.T) {
	assert.Equal(t, 0, ClampScrollOffset(-1, 10, 3))
	assert.Equal(t, 4, ClampScrollOffset(4, 10, 3))
	assert.Equal(t, 7, ClampScrollOffset(9, 10, 3))
	assert.Equal(t, 0, ClampScrollOffset(2, 2, 3))
}

func TestRenderColumn_DroppableMarker(t *testing.T) {
	out, _ := RenderColumn(ColumnProps{Title: "Completed Projects", Width: 40, Height: 10, Droppable: true})
	assert.Contains(t, out, "drop here")
	assert.Contains(t, out, "No projects")

	out, _ = RenderColumn(ColumnProps{Title: "Completed Projects", Width: 40, Height: 10})
	assert.NotContains(t, out, "drop here")
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(StatusBarProps{Width: 60})
	assert.Contains(t, bar, "dragboard")
	assert.Contains(t, bar, "press ? for help")

	bar = RenderStatusBar(StatusBarProps{Width: 60, Message: "dragging A"})
	assert.Contains(t, bar, "dragging A")
}

func TestRenderProjectDetail(t *testing.T) {
	out := RenderProjectDetail(DetailProps{Project: project("Website", 4, "Build the **landing** page"), Width: 50})

	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "4 people assigned.")
	assert.Contains(t, out, "Active Projects")
	assert.Contains(t, out, "landing")
}

func TestRenderMarkdown(t *testing.T) {
	assert.Contains(t, RenderMarkdown("  ", 40), "No description")
	assert.Contains(t, RenderMarkdown("ship **the** release", 40), "release")
}

func TestMarkdownRenderer_CachedByWidth(t *testing.T) {
	a, err := markdownRenderer(33)
	require.NoError(t, err)
	b, err := markdownRenderer(33)
	require.NoError(t, err)
	assert.Same(t, a, b)
}
