package pretty

import (
	"fmt"
	"strings"
)

// contextIndent aligns source context under the error header.
const contextIndent = "        "

// minContextWidth is the smallest usable width for source context.
const minContextWidth = 16

// SourceError describes a source-anchored failure for rendering.
type SourceError struct {
	// Path is the input file path.
	Path string

	// Line is 1-based; zero means no known location.
	Line int

	// Column is 1-based; zero suppresses the caret.
	Column int

	// Kind labels the failing phase (e.g. "parse error").
	Kind string

	// Message is the failure description.
	Message string

	// SourceLine is the offending line, empty when unavailable.
	SourceLine string
}

// FormatSourceError renders a failure with a path:line:column header,
// the offending source line, and a caret under the column.
func (s *Styles) FormatSourceError(serr SourceError, width int) string {
	var builder strings.Builder

	location := s.FilePath.Render(serr.Path)
	if serr.Line > 0 {
		location += s.Location.Render(fmt.Sprintf(":%d", serr.Line))
		if serr.Column > 0 {
			location += s.Location.Render(fmt.Sprintf(":%d", serr.Column))
		}
	}

	builder.WriteString(fmt.Sprintf("%s: %s: %s\n",
		location,
		s.Error.Render(serr.Kind),
		s.Message.Render(serr.Message),
	))

	if serr.SourceLine != "" {
		builder.WriteString(s.FormatSourceContext(serr.SourceLine, serr.Column, width))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker,
// truncating the line to the given terminal width.
func (s *Styles) FormatSourceContext(line string, column, width int) string {
	usable := width - len(contextIndent)
	if usable < minContextWidth {
		usable = minContextWidth
	}

	runes := []rune(line)
	if len(runes) > usable {
		runes = append(runes[:usable-3], []rune("...")...)
	}

	var builder strings.Builder
	builder.WriteString(contextIndent + s.SourceLine.Render(string(runes)) + "\n")

	// Caret marker, only when it lands inside the visible line
	if column > 0 && column <= len(runes) {
		padding := contextIndent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}
