package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mohamedeliwa/minigrep/internal/cli"
	"github.com/mohamedeliwa/minigrep/internal/configloader"
	"github.com/mohamedeliwa/minigrep/pkg/textfile"
)

// runRoot executes the root command with the given args from an empty
// working directory, so no stray project config leaks into the run.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCommand(testBuildInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func poemPath(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", "poem.txt"))
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	return path
}

func TestRunCaseSensitiveSearch(t *testing.T) {
	poem := poemPath(t)

	stdout, err := runRoot(t, "body", poem)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "I'm nobody! Who are you?\n" +
		"Are you nobody, too?\n" +
		"How dreary to be somebody!\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunNoMatchesPrintsNothing(t *testing.T) {
	poem := poemPath(t)

	stdout, err := runRoot(t, "monomorphization", poem)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestRunIgnoreCaseFlag(t *testing.T) {
	poem := poemPath(t)

	stdout, err := runRoot(t, "--ignore-case", "HOW", poem)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "How dreary to be somebody!\nHow public, like a frog\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunIgnoreCaseEnvPresence(t *testing.T) {
	poem := poemPath(t)

	// Any value enables the toggle, even a falsy-looking one.
	t.Setenv(configloader.EnvIgnoreCase, "0")

	stdout, err := runRoot(t, "HOW", poem)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout, "How public, like a frog") {
		t.Errorf("stdout = %q, want case-insensitive matches", stdout)
	}
}

func TestRunMissingArgumentsIsConfigurationError(t *testing.T) {
	_, err := runRoot(t, "only-a-query")

	if !errors.Is(err, configloader.ErrNotEnoughArguments) {
		t.Fatalf("error = %v, want ErrNotEnoughArguments", err)
	}
	if got := cli.ExitCodeForError(err); got != cli.ExitInvalidUsage {
		t.Errorf("exit code = %d, want %d", got, cli.ExitInvalidUsage)
	}
}

func TestRunMissingFileIsReadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-file.txt")

	stdout, err := runRoot(t, "query", missing)

	if !errors.Is(err, textfile.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want no partial output", stdout)
	}
	if got := cli.ExitCodeForError(err); got != cli.ExitIOError {
		t.Errorf("exit code = %d, want %d", got, cli.ExitIOError)
	}
}

func TestRunProjectConfigEnablesIgnoreCase(t *testing.T) {
	poem := poemPath(t)

	dir := t.TempDir()
	config := filepath.Join(dir, ".minigrep.yml")
	if err := os.WriteFile(config, []byte("ignore_case: true\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Chdir(dir)

	cmd := cli.NewRootCommand(testBuildInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"HOW", poem})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout.String(), "How dreary to be somebody!") {
		t.Errorf("stdout = %q, want matches from config-enabled ignore_case", stdout.String())
	}
}

func TestRenderErrorIncludesUsageHint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := configloader.FromArgs(nil)
	cli.RenderError(&buf, err, "never")

	out := buf.String()
	if !strings.Contains(out, "error:") {
		t.Errorf("output = %q, want error prefix", out)
	}
	if !strings.Contains(out, "usage: minigrep <query> <file_path>") {
		t.Errorf("output = %q, want usage hint", out)
	}
}
