// Package replay runs a scripted sequence of adds and drags against a board
// without a terminal, then reports where every project ended up.
package replay

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/board"
	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/dragdrop"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
	"github.com/thenoetrevino/dragboard/internal/validation"
)

// Runner replays steps through the same store, columns and drag session the
// terminal UI uses.
type Runner struct {
	app     *app.App
	board   *board.Board
	session *dragdrop.Session
	refs    map[string]types.ProjectID
	redraws int
	logger  *slog.Logger
}

// NewRunner builds a board over the application's store
func NewRunner(application *app.App) *Runner {
	r := &Runner{
		app:     application,
		session: dragdrop.NewSession(),
		refs:    make(map[string]types.ProjectID),
		logger:  application.Logger().With("component", "replay"),
	}
	r.board = application.NewBoard(board.RendererFunc(func(status models.Status, projects []models.Project) {
		r.redraws++
		r.logger.Debug("column redrawn", "status", status, "projects", len(projects))
	}))
	return r
}

// Run executes the script step by step and stops at the first failing step
func (r *Runner) Run(ctx context.Context, script *Script) error {
	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err *cli.CommandError
		switch {
		case step.Add != nil:
			err = r.add(step.Add)
		case step.Move != nil:
			err = r.move(step.Move)
		}
		if err != nil {
			err.Err = fmt.Errorf("step %d: %w", i+1, err.Err)
			return err
		}
	}
	return nil
}

// Redraws counts column redraws across the run
func (r *Runner) Redraws() int {
	return r.redraws
}

func (r *Runner) add(step *AddStep) *cli.CommandError {
	if _, exists := r.refs[step.Ref]; exists {
		return &cli.CommandError{
			Code: cli.ExitDataErr,
			Kind: "DUPLICATE_REF",
			Err:  fmt.Errorf("ref %q is already used", step.Ref),
		}
	}

	input, err := validation.ValidateProjectInput(step.Title, step.Description, step.People)
	if err != nil {
		return &cli.CommandError{
			Code:       cli.ExitValidation,
			Kind:       "VALIDATION_ERROR",
			Err:        err,
			Suggestion: fixFieldsSuggestion(step.Ref, err),
		}
	}

	id := r.app.Store.AddProject(input.Title, input.Description, input.People)
	r.refs[step.Ref] = id
	r.logger.Debug("replayed add", "ref", step.Ref, "project_id", id)
	return nil
}

// fixFieldsSuggestion names every field that failed validation
func fixFieldsSuggestion(ref string, err error) string {
	var fields []string
	for _, fe := range validation.FieldErrors(err) {
		if !slices.Contains(fields, fe.Field) {
			fields = append(fields, fe.Field)
		}
	}
	if len(fields) == 0 {
		return ""
	}
	return fmt.Sprintf("fix %s of %q", strings.Join(fields, ", "), ref)
}

func (r *Runner) move(step *MoveStep) *cli.CommandError {
	status, err := models.ParseStatus(step.To)
	if err != nil {
		return &cli.CommandError{
			Code:       cli.ExitDataErr,
			Kind:       "INVALID_STATUS",
			Err:        err,
			Suggestion: cli.DidYouMean(step.To, statusNames()),
		}
	}

	id, ok := r.refs[step.Ref]
	if !ok {
		return &cli.CommandError{
			Code:       cli.ExitNotFound,
			Kind:       "NOT_FOUND",
			Err:        fmt.Errorf("unknown project ref %q", step.Ref),
			Suggestion: cli.DidYouMean(step.Ref, r.refNames()),
		}
	}

	card, ok := r.cardFor(id)
	if !ok {
		return &cli.CommandError{
			Code: cli.ExitNotFound,
			Kind: "NOT_FOUND",
			Err:  fmt.Errorf("project %q is not on the board", step.Ref),
		}
	}

	target := r.board.Column(status)
	if target == nil {
		return &cli.CommandError{Code: cli.ExitNotFound, Kind: "NOT_FOUND", Err: fmt.Errorf("no column for status %q", status)}
	}

	r.session.Begin(card)
	r.session.Hover(target)
	dropped := r.session.Release()
	r.logger.Debug("replayed move", "ref", step.Ref, "to", status, "dropped", dropped)
	return nil
}

// cardFor finds the draggable card currently showing the project
func (r *Runner) cardFor(id types.ProjectID) (*board.Card, bool) {
	_, col, ok := r.board.Find(id)
	if !ok {
		return nil, false
	}
	for _, card := range col.Cards() {
		if card.Project().ID == id {
			return card, true
		}
	}
	return nil, false
}

func (r *Runner) refNames() []string {
	return slices.Sorted(maps.Keys(r.refs))
}

func statusNames() []string {
	names := []string{}
	for _, s := range models.Statuses() {
		names = append(names, s.String())
	}
	return names
}
