// Package board implements the column side of the board: each Column
// subscribes to the project store, keeps the projects matching its status
// and acts as the drop target that commits status changes.
package board

import (
	"log/slog"
	"slices"

	"github.com/thenoetrevino/dragboard/internal/dragdrop"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/store"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// ProjectSource is the part of the store a column depends on
type ProjectSource interface {
	Subscribe(listener store.Listener)
	MoveProject(id types.ProjectID, status models.Status)
}

// Renderer redraws a column's card list from scratch
type Renderer interface {
	Render(status models.Status, projects []models.Project)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(status models.Status, projects []models.Project)

// Render calls f(status, projects)
func (f RendererFunc) Render(status models.Status, projects []models.Project) {
	f(status, projects)
}

// Column presents the projects of one status and accepts dropped cards
type Column struct {
	status   models.Status
	source   ProjectSource
	renderer Renderer
	zone     *dragdrop.DropZone
	logger   *slog.Logger

	// projects is rebuilt from every snapshot, never patched
	projects []models.Project
	redraws  int
}

// Compile-time verification that *Column is a drop target
var _ dragdrop.Droppable = (*Column)(nil)

// NewColumn creates the column for status and subscribes it to source.
// renderer may be nil when only the cached view is needed.
func NewColumn(source ProjectSource, status models.Status, renderer Renderer, opts ...Option) *Column {
	cfg := newConfig(opts)

	c := &Column{
		status:   status,
		source:   source,
		renderer: renderer,
		zone:     dragdrop.NewDropZone(dragdrop.MIMEProjectID),
		logger:   cfg.logger.With("column", string(status)),
	}
	c.zone.OnChange = func(from, to dragdrop.DropState) {
		c.logger.Debug("drop state changed", "from", from, "to", to)
	}

	source.Subscribe(c.onProjects)
	return c
}

// onProjects filters a snapshot down to this column and redraws
func (c *Column) onProjects(projects []models.Project) {
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == c.status {
			filtered = append(filtered, p)
		}
	}
	c.projects = filtered
	c.render()
}

func (c *Column) render() {
	c.redraws++
	if c.renderer == nil {
		return
	}
	c.renderer.Render(c.status, slices.Clone(c.projects))
}

// Status returns the status this column shows
func (c *Column) Status() models.Status {
	return c.status
}

// Title returns the column heading
func (c *Column) Title() string {
	return c.status.Title()
}

// Projects returns the cached projects in creation order
func (c *Column) Projects() []models.Project {
	return slices.Clone(c.projects)
}

// Len returns the number of cached projects
func (c *Column) Len() int {
	return len(c.projects)
}

// Cards returns one draggable card per cached project
func (c *Column) Cards() []*Card {
	cards := make([]*Card, 0, len(c.projects))
	for _, p := range c.projects {
		cards = append(cards, NewCard(p, c.logger))
	}
	return cards
}

// Card returns the draggable card at index i
func (c *Column) Card(i int) (*Card, bool) {
	if i < 0 || i >= len(c.projects) {
		return nil, false
	}
	return NewCard(c.projects[i], c.logger), true
}

// Redraws counts how many times the column has been redrawn
func (c *Column) Redraws() int {
	return c.redraws
}

// DropState returns the hover state of the column's drop surface
func (c *Column) DropState() dragdrop.DropState {
	return c.zone.State()
}

// Droppable reports whether the "droppable" marker is shown
func (c *Column) Droppable() bool {
	return c.zone.Droppable()
}

// DragOver accepts drags carrying a project id
func (c *Column) DragOver(t *dragdrop.Transfer) bool {
	return c.zone.Over(t)
}

// DragLeave clears the droppable marker
func (c *Column) DragLeave() {
	c.zone.Leave()
}

// Drop moves the dragged project into this column's status
func (c *Column) Drop(t *dragdrop.Transfer) {
	id, ok := c.zone.Drop(t)
	if !ok {
		c.logger.Debug("drop ignored")
		return
	}
	c.source.MoveProject(types.ProjectID(id), c.status)
}
