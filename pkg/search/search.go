// Package search implements the line-matching core of minigrep.
// All functions are pure: they perform no I/O, read no process state,
// and are safe to call from any number of goroutines.
package search

import "strings"

// Lines splits content into its lines. Lines are delimited by '\n';
// a trailing '\r' is stripped from each line, so CRLF content behaves
// like LF content. Content ending exactly at a newline produces no
// final empty line, and empty content produces no lines at all.
//
// The returned strings are views into content; they share its backing
// storage and must not outlive it conceptually, though Go's GC makes
// this safe either way.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Search returns the lines of content that contain query as an
// exact-case substring, preserving file order. The empty query matches
// every line.
func Search(query, content string) []string {
	var matches []string
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// SearchCaseInsensitive returns the lines of content that contain
// query ignoring case. Containment is tested on lowercase-folded
// copies; the returned lines keep their original casing.
func SearchCaseInsensitive(query, content string) []string {
	query = strings.ToLower(query)
	var matches []string
	for _, line := range Lines(content) {
		if strings.Contains(strings.ToLower(line), query) {
			matches = append(matches, line)
		}
	}
	return matches
}
