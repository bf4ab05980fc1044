package typst

import (
	"strings"

	"github.com/yaklabco/leandoc/pkg/ldast"
)

// escText escapes plain text for a Typst markup context, where *, _,
// backtick, #, brackets and angle brackets would otherwise be read as
// markup. Carriage returns are dropped.
func escText(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)
	for _, r := range s {
		switch r {
		case '\\', '*', '_', '`', '#', '[', ']', '<', '>':
			b.WriteByte('\\')
		case '\r':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// escString escapes s for a Typst "..." string literal.
func escString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func headingMarks(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("=", level)
}

func labelSuffix(m *ldast.BlockMeta) string {
	if m == nil || m.AnchorID == "" {
		return ""
	}
	return " <" + m.AnchorID + ">"
}
