package pretty

import (
	"io"
	"strings"

	"golang.org/x/term"
)

// defaultTermWidth is used when the writer is not a terminal or its
// size cannot be determined.
const defaultTermWidth = 80

// TerminalWidth returns the column width of the terminal behind writer,
// or defaultTermWidth when the writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// Wrap greedily wraps text at word boundaries to the given width.
// Words longer than the width are emitted on their own line unbroken.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var builder strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		if i > 0 {
			if lineLen+1+len(word) > width {
				builder.WriteString("\n")
				lineLen = 0
			} else {
				builder.WriteString(" ")
				lineLen++
			}
		}
		builder.WriteString(word)
		lineLen += len(word)
	}
	return builder.String()
}
