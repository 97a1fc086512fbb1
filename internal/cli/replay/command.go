package replay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/cli/styles"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Cmd returns the replay command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a script of board operations and print the board",
		Long: `Replay adds and moves against a fresh board, without the terminal UI.

Script format:
  steps:
    - add: {ref: api, title: "Backend API", description: "REST API for the app", people: 3}
    - move: {ref: api, to: completed}

Examples:
  # Human-readable board
  dragboard replay plan.yaml

  # JSON output for agents
  dragboard replay plan.yaml --json

  # Quiet mode: one project id per line
  dragboard replay plan.yaml --quiet

  # Reproducible ids (p1, p2, ...) for diffing runs
  dragboard replay plan.yaml --sequential-ids
`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runReplay,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd.Flags())
	cmd.Flags().Bool("sequential-ids", false, "Number projects p1, p2, ... instead of random ids")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	formatter, err := cli.FormatterFromFlags(cmd.Flags(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return reportError(&cli.OutputFormatter{Err: cmd.ErrOrStderr()}, err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load configuration, using defaults", "error", err)
		cfg = config.Default()
	}
	styles.Init(cfg.ColorScheme)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var opts []app.Option
	if sequential, _ := cmd.Flags().GetBool("sequential-ids"); sequential {
		opts = append(opts, app.WithIDGenerator(types.SequentialProjectIDs("p")))
	}

	result, err := Run(ctx, args[0], opts...)
	if err != nil {
		return reportError(formatter, err)
	}
	return formatter.Success(result)
}

// Run parses the script at path and replays it against a fresh application
// built with opts
func Run(ctx context.Context, path string, opts ...app.Option) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, &cli.CommandError{Code: cli.ExitError, Kind: "READ_ERROR", Err: fmt.Errorf("failed to open script: %w", err)}
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("error closing script", "error", err)
		}
	}()

	script, err := Parse(f)
	if err != nil {
		return Result{}, &cli.CommandError{Code: cli.ExitDataErr, Kind: "INVALID_SCRIPT", Err: err}
	}

	runner := NewRunner(app.New(opts...))
	if err := runner.Run(ctx, script); err != nil {
		return Result{}, err
	}
	return runner.Result(), nil
}

// reportError prints err through the formatter and hands it back for the exit code
func reportError(formatter *cli.OutputFormatter, err error) error {
	kind, suggestion := "ERROR", ""
	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		kind, suggestion = cmdErr.Kind, cmdErr.Suggestion
	}
	if fmtErr := formatter.ErrorWithSuggestion(kind, err.Error(), suggestion); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return err
}
