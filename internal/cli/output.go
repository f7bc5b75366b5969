package cli

import (
	"io"

	"github.com/fatih/color"
)

const errorSymbol = "✗ "

// printProgress writes a status line for the user. It never goes to stdout,
// which carries only the generated document.
func printProgress(w io.Writer, msg string) {
	c := color.New(color.FgCyan)
	_, _ = c.Fprintln(w, msg)
}

// printError writes err in red with a leading symbol.
func printError(w io.Writer, err error) {
	c := color.New(color.FgRed)
	_, _ = c.Fprintf(w, errorSymbol+"%s\n", err)
}
