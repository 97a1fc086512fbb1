package notifications

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

func TestRenderFromState(t *testing.T) {
	out := RenderFromState(state.Notification{Level: state.LevelError, Message: "Invalid input, please try again"})
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "Invalid input, please try again")

	out = RenderFromState(state.Notification{Level: state.LevelInfo, Message: "Project added"})
	assert.Contains(t, out, "Info")
	assert.Contains(t, out, "Project added")
}

func TestRender_WrapsLongMessages(t *testing.T) {
	out := Render(state.LevelInfo, strings.Repeat("word ", 30))

	// border and padding add four columns
	assert.LessOrEqual(t, lipgloss.Width(out), maxWidth+4)
	assert.Greater(t, lipgloss.Height(out), 4)
}
