package board

import (
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/dragdrop"
	"github.com/thenoetrevino/dragboard/internal/models"
)

// Card is the drag source for a single project
type Card struct {
	project models.Project
	logger  *slog.Logger
}

// Compile-time verification that *Card is a drag source
var _ dragdrop.Draggable = (*Card)(nil)

// NewCard wraps a project snapshot
func NewCard(p models.Project, logger *slog.Logger) *Card {
	if logger == nil {
		logger = slog.Default()
	}
	return &Card{project: p, logger: logger}
}

// Project returns the project the card was built from
func (c *Card) Project() models.Project {
	return c.project
}

// DragStart puts the project id on the transfer and asks for a move
func (c *Card) DragStart(t *dragdrop.Transfer) {
	t.SetData(dragdrop.MIMEProjectID, c.project.ID.String())
	t.EffectAllowed = dragdrop.EffectMove
	c.logger.Debug("drag started", "project_id", c.project.ID)
}

// DragEnd has no effect beyond logging
func (c *Card) DragEnd(*dragdrop.Transfer) {
	c.logger.Debug("drag ended", "project_id", c.project.ID)
}
