// Package cli provides the Cobra command structure for minigrep.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohamedeliwa/minigrep/internal/configloader"
	"github.com/mohamedeliwa/minigrep/internal/logging"
	"github.com/mohamedeliwa/minigrep/pkg/search"
	"github.com/mohamedeliwa/minigrep/pkg/textfile"
)

// ErrConfig wraps configuration-loading failures so they map to the
// configuration exit code.
var ErrConfig = errors.New("configuration error")

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root minigrep command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var ignoreCase bool

	rootCmd := &cobra.Command{
		Use:   "minigrep <query> <file_path>",
		Short: "Print lines of a file containing a substring",
		Long: `minigrep prints every line of a text file that contains the given
substring, in file order, one per line.

Matching is a literal substring test, case-sensitive by default.
Case-insensitive matching is enabled by --ignore-case or by the
presence of the MINIGREP_IGNORE_CASE environment variable.`,
		Example: `  minigrep body poem.txt
  minigrep --ignore-case RUST poem.txt
  MINIGREP_IGNORE_CASE= minigrep rust poem.txt`,
		// Positional validation happens in RunE through the
		// configloader so a missing argument surfaces as a
		// configuration error, not a generic usage error.
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, configPath)
		},
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize diagnostics: auto, always, never")

	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false,
		"match lines ignoring case")

	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

func runSearch(cmd *cobra.Command, args []string, configPath string) error {
	logger := logging.Default()

	pos, err := configloader.FromArgs(args)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	}
	if cmd.Flags().Changed("ignore-case") {
		value, _ := cmd.Flags().GetBool("ignore-case")
		loadOpts.CLIIgnoreCase = &value
	}
	if cmd.Flags().Changed("color") {
		value, _ := cmd.Flags().GetString("color")
		loadOpts.CLIColor = &value
	}

	loadResult, err := configloader.Load(loadOpts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from",
			logging.FieldConfigFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldQuery, pos.Query,
		logging.FieldPath, pos.FilePath,
		logging.FieldIgnoreCase, cfg.IgnoreCase,
		logging.FieldColor, cfg.Color,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	content, info, err := textfile.ReadText(ctx, pos.FilePath)
	if err != nil {
		return err
	}

	var matches []string
	if cfg.IgnoreCase {
		matches = search.SearchCaseInsensitive(pos.Query, content)
	} else {
		matches = search.Search(pos.Query, content)
	}

	// Matched lines go to stdout raw; everything else stays on stderr.
	out := cmd.OutOrStdout()
	for _, line := range matches {
		fmt.Fprintln(out, line)
	}

	logger.Debug("search complete",
		logging.FieldFileSize, info.Size,
		logging.FieldLinesScanned, len(search.Lines(content)),
		logging.FieldMatches, len(matches),
	)

	return nil
}
