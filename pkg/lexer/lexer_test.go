package lexer_test

import (
	"testing"

	"github.com/yaklabco/leandoc/pkg/lexer"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		kind  lexer.TokenKind
		level int
		head  string
		rest  string
	}{
		{name: "empty", line: "", kind: lexer.TokBlank},
		{name: "whitespace only", line: "   \t ", kind: lexer.TokBlank},

		{name: "anchor", line: "[[intro]]", kind: lexer.TokBlockAnchor, rest: "[[intro]]"},
		{name: "anchor with text", line: "  [[id,Display Text]]  ", kind: lexer.TokBlockAnchor, rest: "[[id,Display Text]]"},
		{name: "unclosed anchor", line: "[[intro", kind: lexer.TokText, rest: "[[intro"},

		{name: "title", line: ".My Title", kind: lexer.TokBlockTitle, rest: "My Title"},
		{name: "title wins over ordered run", line: ".. x", kind: lexer.TokBlockTitle, rest: ". x"},
		{name: "title wins over literal fence", line: "....", kind: lexer.TokBlockTitle, rest: "..."},
		{name: "dot then space is not a title", line: ". item", kind: lexer.TokOrderedItem, level: 1, rest: "item"},
		{name: "lone dot", line: ".", kind: lexer.TokText, rest: "."},

		{name: "ifdef", line: "ifdef::backend[]", kind: lexer.TokDirective, head: "ifdef", rest: "backend[]"},
		{name: "ifndef", line: "ifndef::x[]", kind: lexer.TokDirective, head: "ifndef", rest: "x[]"},
		{name: "endif", line: "endif::[]", kind: lexer.TokDirective, head: "endif", rest: "[]"},

		{name: "include macro", line: "include::chapter.adoc[]", kind: lexer.TokBlockMacro, head: "include", rest: "chapter.adoc[]"},
		{name: "include without brackets", line: "include::chapter.adoc", kind: lexer.TokBlockMacro, head: "include", rest: "chapter.adoc"},
		{name: "custom macro", line: "image::logo.png[Logo]", kind: lexer.TokBlockMacro, head: "image", rest: "logo.png[Logo]"},
		{name: "term with trailing words is text", line: "CPU:: the processor", kind: lexer.TokText, rest: "CPU:: the processor"},
		{name: "bracket before colons is no macro", line: "[x] y::", kind: lexer.TokDescTerm, level: 2, rest: "[x] y"},

		{name: "comment", line: "// hello", kind: lexer.TokLineComment, rest: " hello"},
		{name: "comment keeps inner slashes", line: "////", kind: lexer.TokLineComment, rest: "//"},
		{name: "comment fence five slashes", line: "/////", kind: lexer.TokLineComment, rest: "///"},

		{name: "thematic quotes", line: "'''", kind: lexer.TokThematicBreak},
		{name: "thematic dashes", line: "---", kind: lexer.TokThematicBreak},
		{name: "thematic stars", line: "***", kind: lexer.TokThematicBreak},

		{name: "pagebreak", line: "<<<", kind: lexer.TokPageBreak, rest: ""},
		{name: "pagebreak with trailer", line: "<<< next", kind: lexer.TokPageBreak, rest: "next"},

		{name: "section level 1", line: "= Title", kind: lexer.TokSection, level: 1, rest: "Title"},
		{name: "section level 3", line: "=== Deep", kind: lexer.TokSection, level: 3, rest: "Deep"},
		{name: "section level 6", line: "====== Deepest", kind: lexer.TokSection, level: 6, rest: "Deepest"},
		{name: "seven equals is text", line: "======= Too deep", kind: lexer.TokText, rest: "======= Too deep"},
		{name: "equals without space", line: "=Title", kind: lexer.TokText, rest: "=Title"},

		{name: "unordered item", line: "* milk", kind: lexer.TokUnorderedItem, level: 1, rest: "milk"},
		{name: "unordered nested", line: "*** deep", kind: lexer.TokUnorderedItem, level: 3, rest: "deep"},
		{name: "list continuation", line: "+", kind: lexer.TokListContinuation},

		{name: "description term", line: "CPU::", kind: lexer.TokDescTerm, level: 2, rest: "CPU"},
		{name: "description term level 3", line: "RAM:::", kind: lexer.TokDescTerm, level: 3, rest: "RAM"},
		{name: "bare double colon", line: "::", kind: lexer.TokDescTerm, level: 2, rest: ""},
		{name: "inner colon kept", line: "a:b::", kind: lexer.TokDescTerm, level: 2, rest: "a:b"},

		{name: "table fence", line: "|===", kind: lexer.TokTableFence},
		{name: "table row keeps raw", line: "| a | b ", kind: lexer.TokTableRow, rest: "| a | b "},

		{name: "listing fence", line: "----", kind: lexer.TokDelimListing},
		{name: "quote fence", line: "____", kind: lexer.TokDelimQuote},
		{name: "example fence", line: "====", kind: lexer.TokDelimExample},
		{name: "sidebar fence", line: "****", kind: lexer.TokDelimSidebar},
		{name: "open fence", line: "--", kind: lexer.TokDelimOpen},
		{name: "passthrough fence", line: "++++", kind: lexer.TokDelimPassthrough},
		{name: "stem marker", line: "[stem]", kind: lexer.TokStemMarker},

		{name: "admonition note", line: "NOTE: Mind the gap.", kind: lexer.TokAdmonition, head: "NOTE", rest: "Mind the gap."},
		{name: "admonition warning", line: "WARNING: hot", kind: lexer.TokAdmonition, head: "WARNING", rest: "hot"},

		{name: "plain text", line: "Just a line.", kind: lexer.TokText, rest: "Just a line."},
		{name: "indented text keeps raw", line: "  indented", kind: lexer.TokText, rest: "  indented"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tok := lexer.Classify(tt.line, 7)

			if tok.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", tok.Kind, tt.kind)
			}
			if tok.LineNo != 7 {
				t.Errorf("lineNo = %d, want 7", tok.LineNo)
			}
			if tok.Raw != tt.line {
				t.Errorf("raw = %q, want %q", tok.Raw, tt.line)
			}
			if tok.Level != tt.level {
				t.Errorf("level = %d, want %d", tok.Level, tt.level)
			}
			if tok.Head != tt.head {
				t.Errorf("head = %q, want %q", tok.Head, tt.head)
			}
			if tok.Rest != tt.rest {
				t.Errorf("rest = %q, want %q", tok.Rest, tt.rest)
			}
		})
	}
}

func TestLexer_SetInput(t *testing.T) {
	t.Parallel()

	var lx lexer.Lexer
	lx.SetInput("= Title\n\ntext\n")

	// Three source lines plus the trailing empty line plus EOF.
	kinds := []lexer.TokenKind{
		lexer.TokSection,
		lexer.TokBlank,
		lexer.TokText,
		lexer.TokBlank,
		lexer.TokEOF,
	}

	for i, want := range kinds {
		tok := lx.Peek(i)
		if tok.Kind != want {
			t.Errorf("token %d: kind = %s, want %s", i, tok.Kind, want)
		}
		if tok.LineNo != i+1 {
			t.Errorf("token %d: lineNo = %d, want %d", i, tok.LineNo, i+1)
		}
	}
}

func TestLexer_SetInputEmpty(t *testing.T) {
	t.Parallel()

	var lx lexer.Lexer
	lx.SetInput("")

	if got := lx.Peek(0).Kind; got != lexer.TokBlank {
		t.Errorf("first token = %s, want Blank", got)
	}

	eof := lx.Peek(1)
	if eof.Kind != lexer.TokEOF || eof.LineNo != 2 {
		t.Errorf("eof token = %s at line %d, want EOF at line 2", eof.Kind, eof.LineNo)
	}
}

func TestLexer_SetInputNormalizesCRLF(t *testing.T) {
	t.Parallel()

	var lx lexer.Lexer
	lx.SetInput("= Title\r\ntext\r\n")

	if got := lx.Peek(0); got.Kind != lexer.TokSection || got.Rest != "Title" {
		t.Errorf("first token = %s rest %q, want Section with rest %q", got.Kind, got.Rest, "Title")
	}

	if got := lx.Peek(1); got.Raw != "text" {
		t.Errorf("second raw = %q, want %q", got.Raw, "text")
	}
}

func TestLexer_PeekClamps(t *testing.T) {
	t.Parallel()

	var lx lexer.Lexer
	lx.SetInput("one")

	if got := lx.Peek(-3).Kind; got != lexer.TokText {
		t.Errorf("negative peek = %s, want Text", got)
	}

	if got := lx.Peek(99).Kind; got != lexer.TokEOF {
		t.Errorf("far peek = %s, want EOF", got)
	}
}

func TestLexer_TakeAdvances(t *testing.T) {
	t.Parallel()

	var lx lexer.Lexer
	lx.SetInput("one\ntwo")

	if tok := lx.Take(); tok.Raw != "one" || tok.LineNo != 1 {
		t.Errorf("first take = %q at %d", tok.Raw, tok.LineNo)
	}

	if lx.AtEnd() {
		t.Error("not at end after one take")
	}

	if tok := lx.Take(); tok.Raw != "two" || tok.LineNo != 2 {
		t.Errorf("second take = %q at %d", tok.Raw, tok.LineNo)
	}

	if !lx.AtEnd() {
		t.Error("expected end after consuming both lines")
	}

	// Taking at the end keeps yielding EOF.
	for range 3 {
		if tok := lx.Take(); tok.Kind != lexer.TokEOF || tok.LineNo != 3 {
			t.Fatalf("take past end = %s at %d, want EOF at 3", tok.Kind, tok.LineNo)
		}
	}
}

func TestToken_IsDelimFence(t *testing.T) {
	t.Parallel()

	fences := []lexer.TokenKind{
		lexer.TokDelimListing,
		lexer.TokDelimLiteral,
		lexer.TokDelimQuote,
		lexer.TokDelimExample,
		lexer.TokDelimSidebar,
		lexer.TokDelimOpen,
		lexer.TokDelimPassthrough,
		lexer.TokDelimComment,
	}

	for _, kind := range fences {
		tok := lexer.Token{Kind: kind}
		if !tok.IsDelimFence() {
			t.Errorf("expected %s to be a fence", kind)
		}
	}

	others := []lexer.TokenKind{
		lexer.TokStemMarker,
		lexer.TokTableFence,
		lexer.TokText,
		lexer.TokEOF,
	}

	for _, kind := range others {
		tok := lexer.Token{Kind: kind}
		if tok.IsDelimFence() {
			t.Errorf("expected %s to not be a fence", kind)
		}
	}
}

func TestToken_IsMetadata(t *testing.T) {
	t.Parallel()

	meta := []lexer.TokenKind{
		lexer.TokBlockAnchor,
		lexer.TokBlockAttrs,
		lexer.TokBlockTitle,
	}

	for _, kind := range meta {
		tok := lexer.Token{Kind: kind}
		if !tok.IsMetadata() {
			t.Errorf("expected %s to be metadata", kind)
		}
	}

	if (lexer.Token{Kind: lexer.TokSection}).IsMetadata() {
		t.Error("expected Section to not be metadata")
	}
}
