package configloader

import (
	"errors"
	"fmt"
)

// ErrNotEnoughArguments is returned when the query or file path
// positional argument is missing. It is fatal: no file is read and no
// search runs.
var ErrNotEnoughArguments = errors.New("not enough arguments")

// Args holds the positional arguments of an invocation.
type Args struct {
	// Query is the substring being searched for. May be empty, in
	// which case every line matches.
	Query string

	// FilePath is the path of the file to search.
	FilePath string
}

// FromArgs extracts query and file path from the positional arguments,
// in that order. Arguments beyond the second are ignored, matching
// traditional grep tolerance.
func FromArgs(args []string) (Args, error) {
	if len(args) < 2 {
		return Args{}, fmt.Errorf("%w: expected <query> <file_path>, got %d argument(s)",
			ErrNotEnoughArguments, len(args))
	}
	return Args{Query: args[0], FilePath: args[1]}, nil
}
