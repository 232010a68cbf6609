// Package main is the entry point for the minigrep CLI.
package main

import (
	"os"

	"github.com/mohamedeliwa/minigrep/internal/cli"
	"github.com/mohamedeliwa/minigrep/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		cli.RenderError(os.Stderr, err, "auto")
		logging.Default().Debug("command failed", logging.FieldError, err)
		return cli.ExitCodeForError(err)
	}

	return 0
}
