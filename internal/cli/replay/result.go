package replay

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/cli/styles"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Result is the board after a replay
type Result struct {
	Columns []ColumnResult `json:"columns"`

	// ids is every project id in store (insertion) order
	ids []string
}

// ColumnResult is one column as the board shows it
type ColumnResult struct {
	Status   models.Status   `json:"status"`
	Title    string          `json:"title"`
	Projects []ProjectResult `json:"projects"`
}

// ProjectResult is one card, with the script ref that created it
type ProjectResult struct {
	ID          string `json:"id"`
	Ref         string `json:"ref"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// Result snapshots the board as it stands
func (r *Runner) Result() Result {
	refOf := make(map[types.ProjectID]string, len(r.refs))
	for ref, id := range r.refs {
		refOf[id] = ref
	}

	var res Result
	for _, col := range r.board.Columns() {
		cr := ColumnResult{Status: col.Status(), Title: col.Title(), Projects: []ProjectResult{}}
		for _, p := range col.Projects() {
			cr.Projects = append(cr.Projects, ProjectResult{
				ID:          p.ID.String(),
				Ref:         refOf[p.ID],
				Title:       p.Title,
				Description: p.Description,
				People:      p.People,
			})
		}
		res.Columns = append(res.Columns, cr)
	}
	for _, p := range r.app.Store.Projects() {
		res.ids = append(res.ids, p.ID.String())
	}
	return res
}

// IDs lists project ids in the order they were added
func (r Result) IDs() []string {
	return r.ids
}

// Pretty renders the columns side by side
func (r Result) Pretty() string {
	cols := make([]string, 0, len(r.Columns))
	for _, c := range r.Columns {
		cols = append(cols, c.pretty())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (c ColumnResult) pretty() string {
	lines := []string{styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", c.Title, len(c.Projects)))}
	if len(c.Projects) == 0 {
		lines = append(lines, styles.SubtitleStyle.Render("No projects"))
	}
	for _, p := range c.Projects {
		people := models.Project{People: p.People}.PersonsLabel()
		card := strings.Join([]string{
			styles.TitleStyle.Render(p.Title),
			styles.SubtitleStyle.Render(people),
			styles.ValueStyle.Render(p.Description),
			styles.LabelStyle.Render("ref: ") + styles.ValueStyle.Render(p.Ref),
		}, "\n")
		lines = append(lines, styles.CardStyle.Render(card))
	}
	return styles.ColumnStyle.Render(strings.Join(lines, "\n"))
}
