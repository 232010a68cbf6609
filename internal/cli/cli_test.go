package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mohamedeliwa/minigrep/internal/cli"
	"github.com/mohamedeliwa/minigrep/internal/configloader"
	"github.com/mohamedeliwa/minigrep/pkg/textfile"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Name() != "minigrep" {
		t.Errorf("expected command name 'minigrep', got %q", cmd.Name())
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasVersionSubcommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	subCmd, _, err := cmd.Find([]string{"version"})
	if err != nil {
		t.Fatalf("expected version subcommand to exist, got error: %v", err)
	}

	if subCmd.Name() != "version" {
		t.Errorf("expected subcommand name 'version', got %q", subCmd.Name())
	}
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	if flag := cmd.Flags().Lookup("ignore-case"); flag == nil {
		t.Error("expected flag 'ignore-case' to exist")
	}

	for _, flagName := range []string{"debug", "config", "color"} {
		if flag := cmd.PersistentFlags().Lookup(flagName); flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, cli.ExitSuccess},
		{"missing arguments", fmt.Errorf("wrapped: %w", configloader.ErrNotEnoughArguments), cli.ExitInvalidUsage},
		{"config failure", fmt.Errorf("%w: bad yaml", cli.ErrConfig), cli.ExitConfigError},
		{"file not found", fmt.Errorf("wrapped: %w", textfile.ErrNotFound), cli.ExitIOError},
		{"permission denied", textfile.ErrPermissionDenied, cli.ExitIOError},
		{"directory", textfile.ErrIsDirectory, cli.ExitIOError},
		{"binary file", textfile.ErrNotText, cli.ExitIOError},
		{"anything else", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cli.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
