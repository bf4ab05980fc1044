package lexer

import (
	"fmt"
	"io"
	"strings"
)

// Dump classifies every line of text and writes one line per token to w,
// in source order, ending with the synthesized EOF token. Zero or empty
// fields are omitted. The output is stable and intended for debugging and
// golden tests.
func Dump(w io.Writer, text string) {
	var lx Lexer
	lx.SetInput(text)

	for {
		t := lx.Take()
		dumpToken(w, t)
		if t.Kind == TokEOF {
			return
		}
	}
}

// DumpString renders the token stream for text as a string. See Dump.
func DumpString(text string) string {
	var sb strings.Builder
	Dump(&sb, text)
	return sb.String()
}

func dumpToken(w io.Writer, t Token) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d: %s", t.LineNo, t.Kind)

	if t.Level != 0 {
		fmt.Fprintf(&sb, " level=%d", t.Level)
	}
	if t.Head != "" {
		fmt.Fprintf(&sb, " head=%q", t.Head)
	}
	if t.Rest != "" {
		fmt.Fprintf(&sb, " rest=%q", t.Rest)
	}
	sb.WriteByte('\n')

	io.WriteString(w, sb.String()) //nolint:errcheck // best-effort debug output
}
