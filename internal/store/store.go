// Package store holds the canonical list of projects and fans out a full
// snapshot to every subscriber after each mutation.
//
// A Store is not safe for concurrent use. All mutations, notifications and
// redraws run to completion on the caller's goroutine (the bubbletea update
// loop or a CLI command), which is what keeps every snapshot stable while a
// listener redraws.
package store

import (
	"log/slog"
	"slices"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Listener receives a snapshot of every project, in creation order.
// The slice belongs to the listener; later mutations never change it.
type Listener func(projects []models.Project)

// Store is the single source of truth for all projects
type Store struct {
	projects  []models.Project
	listeners []Listener

	newID     func() types.ProjectID
	logger    *slog.Logger
	notifying bool
}

// New creates an empty store
func New(opts ...Option) *Store {
	cfg := storeConfig{
		newID:  types.NewProjectID,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store{
		newID:  cfg.newID,
		logger: cfg.logger,
	}
}

// Subscribe registers a listener for future snapshots.
// It is not called with the current state.
func (s *Store) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.listeners = append(s.listeners, listener)
}

// AddProject appends a new active project and notifies every listener.
// Inputs are trusted; validation belongs to the caller.
func (s *Store) AddProject(title, description string, people int) types.ProjectID {
	s.warnIfNotifying("AddProject")

	project := models.Project{
		ID:          s.uniqueID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      models.StatusActive,
	}
	s.projects = append(s.projects, project)

	s.logger.Debug("project added",
		"project_id", project.ID,
		"title", project.Title,
		"people", project.People)

	s.notify()
	return project.ID
}

// MoveProject sets the status of the project with the given id.
// An unknown id and a move to the current status are both silent no-ops
// that produce no notification.
func (s *Store) MoveProject(id types.ProjectID, status models.Status) {
	s.warnIfNotifying("MoveProject")

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("move ignored: unknown project", "project_id", id, "status", status)
		return
	}

	project := &s.projects[idx]
	if project.Status == status {
		s.logger.Debug("move ignored: status unchanged", "project_id", id, "status", status)
		return
	}

	from := project.Status
	project.Status = status

	s.logger.Debug("project moved",
		"project_id", id,
		"from", from,
		"to", status)

	s.notify()
}

// Projects returns a snapshot of the current projects in creation order
func (s *Store) Projects() []models.Project {
	return slices.Clone(s.projects)
}

// Len returns the number of projects
func (s *Store) Len() int {
	return len(s.projects)
}

// Project looks up a single project by id
func (s *Store) Project(id types.ProjectID) (models.Project, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Project{}, false
	}
	return s.projects[idx], true
}

// notify hands every listener its own copy of the project list,
// in registration order.
func (s *Store) notify() {
	s.notifying = true
	defer func() { s.notifying = false }()

	for _, listener := range s.listeners {
		listener(slices.Clone(s.projects))
	}
}

func (s *Store) indexOf(id types.ProjectID) int {
	return slices.IndexFunc(s.projects, func(p models.Project) bool {
		return p.ID == id
	})
}

// maxIDAttempts bounds how often an injected generator may collide before
// the store falls back to random ids
const maxIDAttempts = 16

// uniqueID draws ids until one is unused
func (s *Store) uniqueID() types.ProjectID {
	for range maxIDAttempts {
		id := s.newID()
		if !id.IsZero() && s.indexOf(id) < 0 {
			return id
		}
		s.logger.Warn("discarding colliding project id", "project_id", id)
	}

	s.logger.Warn("id generator keeps colliding, using random ids", "attempts", maxIDAttempts)
	for {
		if id := types.NewProjectID(); s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store) warnIfNotifying(op string) {
	if s.notifying {
		s.logger.Warn("store mutated from inside a listener", "operation", op)
	}
}
