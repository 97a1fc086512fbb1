package main

import (
	"os"

	"github.com/thenoetrevino/dragboard/cmd"
	"github.com/thenoetrevino/dragboard/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// commands have already reported the error
		os.Exit(cli.ExitCode(err))
	}
}
