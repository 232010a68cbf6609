package cli

import (
	"errors"

	"github.com/mohamedeliwa/minigrep/internal/configloader"
	"github.com/mohamedeliwa/minigrep/pkg/textfile"
)

// Exit codes for minigrep, following the sysexits convention.
const (
	// ExitSuccess indicates successful execution, with or without matches.
	ExitSuccess = 0

	// ExitInvalidUsage indicates missing or invalid command-line arguments.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file or value errors.
	ExitConfigError = 65

	// ExitInternalError indicates an unexpected internal error.
	ExitInternalError = 70

	// ExitIOError indicates the target file could not be read.
	ExitIOError = 74
)

// ExitCodeForError maps an error from a command run to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, configloader.ErrNotEnoughArguments):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, textfile.ErrNotFound),
		errors.Is(err, textfile.ErrPermissionDenied),
		errors.Is(err, textfile.ErrIsDirectory),
		errors.Is(err, textfile.ErrNotText):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
