// Package textfile reads whole text files into memory for searching.
// It classifies read failures with sentinel errors so callers can map
// them to exit codes via errors.Is.
package textfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNotText indicates the file content is binary or not valid UTF-8.
	ErrNotText = errors.New("not a text file")
)

// FileInfo captures the state of a file at read time.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64
}

// ReadText reads the file at path and returns its content as a string
// along with metadata. Binary content and invalid UTF-8 are rejected
// with ErrNotText; a search over mis-decoded bytes would produce
// garbage matches.
func ReadText(ctx context.Context, path string) (string, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return "", nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return "", nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return "", nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return "", nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return "", nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	if enry.IsBinary(content) {
		return "", nil, fmt.Errorf("%w: %s: binary content", ErrNotText, path)
	}
	if !utf8.Valid(content) {
		return "", nil, fmt.Errorf("%w: %s: invalid UTF-8", ErrNotText, path)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
	}

	return string(content), info, nil
}
