package board

import (
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Board is the set of columns, one per status, in models.Statuses order
type Board struct {
	columns []*Column
}

// New creates and subscribes one column per status. All columns share renderer.
func New(source ProjectSource, renderer Renderer, opts ...Option) *Board {
	statuses := models.Statuses()
	b := &Board{columns: make([]*Column, 0, len(statuses))}
	for _, status := range statuses {
		b.columns = append(b.columns, NewColumn(source, status, renderer, opts...))
	}
	return b
}

// Columns returns the columns left to right
func (b *Board) Columns() []*Column {
	return b.columns
}

// Len returns the number of columns
func (b *Board) Len() int {
	return len(b.columns)
}

// ColumnAt returns the column at index i, or nil
func (b *Board) ColumnAt(i int) *Column {
	if i < 0 || i >= len(b.columns) {
		return nil
	}
	return b.columns[i]
}

// Column returns the column for status, or nil
func (b *Board) Column(status models.Status) *Column {
	return b.ColumnAt(b.IndexOf(status))
}

// IndexOf returns the position of the column for status, or -1
func (b *Board) IndexOf(status models.Status) int {
	for i, c := range b.columns {
		if c.status == status {
			return i
		}
	}
	return -1
}

// Find locates a project among the cached column views
func (b *Board) Find(id types.ProjectID) (models.Project, *Column, bool) {
	for _, c := range b.columns {
		for _, p := range c.projects {
			if p.ID == id {
				return p, c, true
			}
		}
	}
	return models.Project{}, nil, false
}
