// Package typst renders LeanDoc document trees as Typst markup.
//
// The generator walks a tree produced by parser.Parse and emits one Typst
// construct per block. It performs no semantic processing: include
// expansion, conditional directives and attribute substitution belong to
// earlier phases, and nodes that still require them stop generation with
// a positioned Error.
package typst

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yaklabco/leandoc/pkg/ldast"
)

// Error reports why generation stopped. Line is the source line of the
// offending node, or 0 when no node is involved.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func failAt(n *ldast.Node, msg string) error {
	e := &Error{Message: msg}
	if n != nil {
		e.Line = n.Pos.Line
	}
	return e
}

// Options control the emitted preamble and how raw content is handled.
type Options struct {
	// Template selects a built-in prelude, "plain" or "report".
	// Ignored when TemplateFile is set.
	Template string

	// TemplateFile imports an external Typst file instead of emitting
	// a built-in prelude. The file is expected to provide an
	// admon(kind, body) function.
	TemplateFile string

	// AllowRawPassthrough lets passthrough blocks and inlines and stem
	// content reach the output verbatim. When false those nodes fail
	// generation.
	AllowRawPassthrough bool

	// DetectListingLang enables content-based language detection for
	// listing blocks that carry no lang attribute.
	DetectListingLang bool

	// HeadingShift is added to every section level before clamping to
	// the 1..6 range Typst headings support.
	HeadingShift int
}

// DefaultOptions returns the plain template with raw passthrough enabled.
func DefaultOptions() Options {
	return Options{Template: "plain", AllowRawPassthrough: true}
}

// Generator writes Typst markup for LeanDoc trees.
type Generator struct {
	opt Options
}

// New creates a generator with the given options.
func New(opt Options) *Generator {
	return &Generator{opt: opt}
}

// Generate renders doc to w. doc must be a document node. Output is
// buffered; a write error surfaces after the tree walk unless generation
// already failed.
func (g *Generator) Generate(doc *ldast.Node, w io.Writer) (err error) {
	if doc == nil || doc.Kind != ldast.NodeDocument {
		return failAt(doc, "Root node is not a Document")
	}

	bw := bufio.NewWriter(w)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if err := g.emitPreamble(bw); err != nil {
		return err
	}

	if title := doc.Attr("title"); title != "" {
		fmt.Fprintf(bw, "= %s\n\n", escText(title))
	}

	for _, child := range doc.Children {
		if err := g.emitBlock(child, bw); err != nil {
			return err
		}
		bw.WriteString("\n")
	}
	return nil
}
