// Package cmd wires the command tree
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dragboard/internal/cli/replay"
	"github.com/thenoetrevino/dragboard/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "dragboard",
	Short: "Dragboard - drag projects between columns in your terminal",
	Long: `Dragboard is a terminal board of active and completed projects.
Add projects with a form and drag them between columns with the mouse or the keyboard.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(replay.Cmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
