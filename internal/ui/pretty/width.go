package pretty

import (
	"io"

	"golang.org/x/term"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

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
