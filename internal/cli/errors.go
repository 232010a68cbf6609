package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/mohamedeliwa/minigrep/internal/configloader"
	"github.com/mohamedeliwa/minigrep/internal/ui/pretty"
)

// RenderError writes a styled fatal error to w, wrapped to the
// terminal width. A usage hint follows argument errors.
func RenderError(w io.Writer, err error, colorMode string) {
	if err == nil {
		return
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, w))
	width := pretty.TerminalWidth(w)

	message := pretty.Wrap(err.Error(), width-len("error: "))
	fmt.Fprintf(w, "%s %s\n",
		styles.ErrorTitle.Render("error:"),
		styles.ErrorDetail.Render(message),
	)

	if errors.Is(err, configloader.ErrNotEnoughArguments) {
		fmt.Fprintln(w, styles.Hint.Render("usage: minigrep <query> <file_path>"))
	}
}
