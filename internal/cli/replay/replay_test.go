package replay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
	"github.com/thenoetrevino/dragboard/internal/validation"
)

const sampleScript = `
steps:
  - add: {ref: api, title: "Backend API", description: "REST API for the app", people: 3}
  - add: {ref: web, title: "Website", description: "Marketing site refresh", people: 1}
  - move: {ref: api, to: completed}
`

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner(app.New(app.WithLogger(quiet), app.WithIDGenerator(types.SequentialProjectIDs("p"))))
}

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return s
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestParse(t *testing.T) {
	s := mustParse(t, sampleScript)

	require.Len(t, s.Steps, 3)
	require.NotNil(t, s.Steps[0].Add)
	assert.Equal(t, "api", s.Steps[0].Add.Ref)
	assert.Equal(t, "3", s.Steps[0].Add.People)
	require.NotNil(t, s.Steps[2].Move)
	assert.Equal(t, "completed", s.Steps[2].Move.To)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty document", ""},
		{"no steps", "steps: []"},
		{"unknown key", "steps:\n  - remove: {ref: a}"},
		{"empty step", "steps:\n  - {}"},
		{"both kinds", "steps:\n  - add: {ref: a}\n    move: {ref: a, to: active}"},
		{"add without ref", "steps:\n  - add: {title: x}"},
		{"move without target", "steps:\n  - move: {ref: a}"},
		{"not yaml", "steps: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestRunner_AddAndMove(t *testing.T) {
	r := newTestRunner(t)
	require.NoError(t, r.Run(context.Background(), mustParse(t, sampleScript)))

	res := r.Result()
	require.Len(t, res.Columns, 2)

	active, completed := res.Columns[0], res.Columns[1]
	assert.Equal(t, models.StatusActive, active.Status)
	assert.Equal(t, "Active Projects", active.Title)
	require.Len(t, active.Projects, 1)
	assert.Equal(t, "web", active.Projects[0].Ref)

	require.Len(t, completed.Projects, 1)
	assert.Equal(t, "api", completed.Projects[0].Ref)
	assert.Equal(t, "Backend API", completed.Projects[0].Title)
	assert.Equal(t, 3, completed.Projects[0].People)

	assert.Equal(t, []string{"p1", "p2"}, res.IDs())
}

func TestRunner_RedrawsEveryColumnPerMutation(t *testing.T) {
	r := newTestRunner(t)
	require.NoError(t, r.Run(context.Background(), mustParse(t, sampleScript)))

	// two columns, three mutations
	assert.Equal(t, 6, r.Redraws())
}

func TestRunner_SameStatusMoveIsSilent(t *testing.T) {
	r := newTestRunner(t)
	script := mustParse(t, `
steps:
  - add: {ref: api, title: "Backend API", description: "REST API for the app", people: 3}
  - move: {ref: api, to: active}
`)
	require.NoError(t, r.Run(context.Background(), script))

	assert.Equal(t, 2, r.Redraws())
	assert.Len(t, r.Result().Columns[0].Projects, 1)
}

func TestRunner_TrimsInput(t *testing.T) {
	r := newTestRunner(t)
	script := mustParse(t, `
steps:
  - add: {ref: api, title: "  Backend API  ", description: "  REST API for the app ", people: " 2 "}
`)
	require.NoError(t, r.Run(context.Background(), script))

	p := r.Result().Columns[0].Projects[0]
	assert.Equal(t, "Backend API", p.Title)
	assert.Equal(t, "REST API for the app", p.Description)
	assert.Equal(t, 2, p.People)
}

func TestRunner_Errors(t *testing.T) {
	tests := []struct {
		name           string
		src            string
		wantCode       int
		wantKind       string
		wantSuggestion string
	}{
		{
			name:     "invalid input",
			src:      "steps:\n  - add: {ref: a, title: x, description: short, people: 3}",
			wantCode:       cli.ExitValidation,
			wantKind:       "VALIDATION_ERROR",
			wantSuggestion: `fix description of "a"`,
		},
		{
			name:     "duplicate ref",
			src:      "steps:\n  - add: {ref: a, title: x, description: long enough text, people: 3}\n  - add: {ref: a, title: y, description: long enough text, people: 3}",
			wantCode: cli.ExitDataErr,
			wantKind: "DUPLICATE_REF",
		},
		{
			name:           "unknown ref",
			src:            "steps:\n  - add: {ref: backend, title: x, description: long enough text, people: 3}\n  - move: {ref: backnd, to: completed}",
			wantCode:       cli.ExitNotFound,
			wantKind:       "NOT_FOUND",
			wantSuggestion: `did you mean "backend"?`,
		},
		{
			name:           "unknown status",
			src:            "steps:\n  - add: {ref: a, title: x, description: long enough text, people: 3}\n  - move: {ref: a, to: complete}",
			wantCode:       cli.ExitDataErr,
			wantKind:       "INVALID_STATUS",
			wantSuggestion: `did you mean "completed"?`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestRunner(t).Run(context.Background(), mustParse(t, tt.src))
			require.Error(t, err)

			var cmdErr *cli.CommandError
			require.ErrorAs(t, err, &cmdErr)
			assert.Equal(t, tt.wantCode, cmdErr.Code)
			assert.Equal(t, tt.wantKind, cmdErr.Kind)
			assert.Equal(t, tt.wantSuggestion, cmdErr.Suggestion)
			assert.Contains(t, err.Error(), "step ")
		})
	}
}

func TestRunner_ValidationErrorNamesFields(t *testing.T) {
	src := "steps:\n  - add: {ref: a, title: x, description: short, people: 30}"
	err := newTestRunner(t).Run(context.Background(), mustParse(t, src))

	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrTooShort)
	assert.ErrorIs(t, err, validation.ErrAboveMax)

	var cmdErr *cli.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, `fix description, people of "a"`, cmdErr.Suggestion)
}

func TestRunner_StopsAtFailingStep(t *testing.T) {
	r := newTestRunner(t)
	src := "steps:\n  - add: {ref: a, title: x, description: long enough text, people: 3}\n  - move: {ref: b, to: completed}\n  - add: {ref: c, title: y, description: long enough text, people: 3}"

	require.Error(t, r.Run(context.Background(), mustParse(t, src)))
	assert.Equal(t, []string{"p1"}, r.Result().IDs())
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestRunner(t).Run(ctx, mustParse(t, sampleScript))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_Pretty(t *testing.T) {
	r := newTestRunner(t)
	require.NoError(t, r.Run(context.Background(), mustParse(t, sampleScript)))

	out := r.Result().Pretty()
	assert.Contains(t, out, "Active Projects (1)")
	assert.Contains(t, out, "Completed Projects (1)")
	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "1 person assigned.")
	assert.Contains(t, out, "3 people assigned.")
}

func TestRun_MissingFile(t *testing.T) {
	_, err := Run(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}

func TestRun_InvalidScript(t *testing.T) {
	_, err := Run(context.Background(), writeScript(t, "steps: []"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DRAGBOARD_THEME_FILE", "")

	var out, errOut bytes.Buffer
	cmd := Cmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCmd_JSON(t *testing.T) {
	out, _, err := runCommand(t, writeScript(t, sampleScript), "--json")
	require.NoError(t, err)

	var payload struct {
		Success bool   `json:"success"`
		Data    Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.True(t, payload.Success)
	require.Len(t, payload.Data.Columns, 2)
	assert.Equal(t, "Completed Projects", payload.Data.Columns[1].Title)
	require.Len(t, payload.Data.Columns[1].Projects, 1)
	assert.Equal(t, "api", payload.Data.Columns[1].Projects[0].Ref)
}

func TestCmd_Quiet(t *testing.T) {
	out, _, err := runCommand(t, writeScript(t, sampleScript), "--quiet")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
}

func TestCmd_SequentialIDs(t *testing.T) {
	path := writeScript(t, sampleScript)

	first, _, err := runCommand(t, path, "--quiet", "--sequential-ids")
	require.NoError(t, err)
	second, _, err := runCommand(t, path, "--quiet", "--sequential-ids")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"p1", "p2"}, strings.Fields(first))
	assert.Equal(t, first, second)
}

func TestCmd_Human(t *testing.T) {
	out, _, err := runCommand(t, writeScript(t, sampleScript))
	require.NoError(t, err)
	assert.Contains(t, out, "Backend API")
}

func TestCmd_NotFoundExitCode(t *testing.T) {
	src := "steps:\n  - add: {ref: backend, title: x, description: long enough text, people: 3}\n  - move: {ref: backnd, to: completed}"
	out, errOut, err := runCommand(t, writeScript(t, src))

	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Empty(t, out)
	assert.Contains(t, errOut, `unknown project ref "backnd"`)
	assert.Contains(t, errOut, `did you mean "backend"?`)
}

func TestCmd_ValidationExitCodeJSON(t *testing.T) {
	src := "steps:\n  - add: {ref: a, title: x, description: short, people: 3}"
	out, _, err := runCommand(t, writeScript(t, src), "--json")

	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "VALIDATION_ERROR", payload["error"].(map[string]any)["code"])
}

func TestCmd_JSONAndQuietConflict(t *testing.T) {
	_, _, err := runCommand(t, writeScript(t, sampleScript), "--json", "--quiet")

	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestCmd_RequiresScript(t *testing.T) {
	_, _, err := runCommand(t)
	assert.Error(t, err)
}
