// Package lexer tokenizes LeanDoc source line by line. Every input line is
// classified into exactly one token kind; classification is line-local, so
// no line's kind depends on its neighbours. The parser consumes the token
// sequence through bounded lookahead.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer holds a classified token sequence and a cursor over it.
// The zero value is empty; call SetInput before use.
type Lexer struct {
	toks []Token
	pos  int
}

// SetInput resets the lexer and classifies every line of text. CRLF line
// endings are normalized to LF first. Splitting keeps a trailing empty
// line when the text ends with a newline. One EOF token is appended after
// the last line, numbered one past it.
func (lx *Lexer) SetInput(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	lx.toks = lx.toks[:0]
	lx.pos = 0
	for i, line := range lines {
		lx.toks = append(lx.toks, Classify(line, i+1))
	}
	lx.toks = append(lx.toks, Token{Kind: TokEOF, LineNo: len(lines) + 1})
}

// Peek returns the token k positions ahead of the cursor without consuming
// it. The offset is clamped to the token sequence, so peeking past the end
// returns the EOF token.
func (lx *Lexer) Peek(k int) Token {
	idx := lx.pos + k
	if idx < 0 {
		idx = 0
	}
	if idx >= len(lx.toks) {
		idx = len(lx.toks) - 1
	}
	return lx.toks[idx]
}

// Take consumes and returns the current token. Taking at the end keeps
// returning the EOF token.
func (lx *Lexer) Take() Token {
	t := lx.Peek(0)
	if lx.pos < len(lx.toks) {
		lx.pos++
	}
	return t
}

// AtEnd reports whether the cursor has reached the EOF token.
func (lx *Lexer) AtEnd() bool {
	return lx.Peek(0).Kind == TokEOF
}

// Classify tags a single line with its structural kind. Rules are tried in
// a fixed order on the whitespace-trimmed line; the first match wins. The
// lineNo is recorded on the returned token unchanged.
func Classify(line string, lineNo int) Token {
	t := Token{Kind: TokText, LineNo: lineNo, Raw: line}

	s := strings.TrimSpace(line)
	if s == "" {
		t.Kind = TokBlank
		return t
	}

	// Metadata lines.
	if strings.HasPrefix(s, "[[") && strings.HasSuffix(s, "]]") {
		t.Kind = TokBlockAnchor
		t.Rest = s
		return t
	}
	if len(s) >= 2 && s[0] == '.' && !isSpaceAt(s, 1) { // .Title needs no space after the dot
		t.Kind = TokBlockTitle
		t.Rest = s[1:]
		return t
	}

	// Preprocessor directives.
	if hasAnyPrefix(s, "ifdef::", "ifndef::", "endif::") {
		p := strings.Index(s, "::")
		t.Kind = TokDirective
		t.Head = s[:p]
		t.Rest = s[p+2:]
		return t
	}

	// Block macros. include:: always; otherwise IDENT::target[...] needs a
	// bracket strictly after the double colon, so description terms and
	// plain text containing :: are not misread as macros.
	if strings.HasPrefix(s, "include::") {
		p := strings.Index(s, "::")
		t.Kind = TokBlockMacro
		t.Head = s[:p]
		t.Rest = s[p+2:]
		return t
	}
	if p := strings.Index(s, "::"); p > 0 && strings.IndexByte(s, '[') > p {
		t.Kind = TokBlockMacro
		t.Head = s[:p]
		t.Rest = s[p+2:]
		return t
	}

	// Comments and breaks.
	if strings.HasPrefix(s, "//") {
		t.Kind = TokLineComment
		t.Rest = s[2:]
		return t
	}
	if s == "'''" || s == "---" || s == "***" {
		t.Kind = TokThematicBreak
		return t
	}
	if strings.HasPrefix(s, "<<<") {
		t.Kind = TokPageBreak
		t.Rest = strings.TrimSpace(s[3:])
		return t
	}

	// Section heading: a run of 1-6 equals signs then whitespace.
	if n := markerRun(s, '='); n >= 1 && n < len(s) && isSpaceAt(s, n) {
		t.Kind = TokSection
		t.Level = n
		t.Rest = strings.TrimSpace(s[n:])
		return t
	}

	// List markers.
	if n := markerRun(s, '*'); n >= 1 && n < len(s) && isSpaceAt(s, n) {
		t.Kind = TokUnorderedItem
		t.Level = n
		t.Rest = strings.TrimSpace(s[n:])
		return t
	}
	if n := markerRun(s, '.'); n >= 1 && n < len(s) && isSpaceAt(s, n) {
		t.Kind = TokOrderedItem
		t.Level = n
		t.Rest = strings.TrimSpace(s[n:])
		return t
	}
	if s == "+" {
		t.Kind = TokListContinuation
		return t
	}

	// Description term: text ending in two or more colons.
	if p := strings.LastIndexByte(s, ':'); p >= 1 && strings.HasSuffix(s, "::") {
		c := 0
		for i := len(s) - 1; i >= 0 && s[i] == ':'; i-- {
			c++
		}
		t.Kind = TokDescTerm
		t.Level = c
		t.Rest = strings.TrimSpace(s[:len(s)-c])
		return t
	}

	// Tables.
	if s == "|===" {
		t.Kind = TokTableFence
		return t
	}
	if strings.HasPrefix(s, "|") {
		t.Kind = TokTableRow
		t.Rest = line
		return t
	}

	// Delimited block fences.
	switch s {
	case "----":
		t.Kind = TokDelimListing
		return t
	case "....":
		t.Kind = TokDelimLiteral
		return t
	case "____":
		t.Kind = TokDelimQuote
		return t
	case "====":
		t.Kind = TokDelimExample
		return t
	case "****":
		t.Kind = TokDelimSidebar
		return t
	case "--":
		t.Kind = TokDelimOpen
		return t
	case "++++":
		t.Kind = TokDelimPassthrough
		return t
	case "////":
		t.Kind = TokDelimComment
		return t
	case "[stem]":
		t.Kind = TokStemMarker
		return t
	}

	// Admonition paragraph label.
	if hasAnyPrefix(s, "NOTE:", "TIP:", "IMPORTANT:", "CAUTION:", "WARNING:") {
		c := strings.IndexByte(s, ':')
		t.Kind = TokAdmonition
		t.Head = s[:c]
		t.Rest = strings.TrimSpace(s[c+1:])
		return t
	}

	t.Rest = line
	return t
}

// markerRun counts the leading run of ch in s, capped at six.
func markerRun(s string, ch byte) int {
	n := 0
	for n < len(s) && n < 6 && s[n] == ch {
		n++
	}
	return n
}

func isSpaceAt(s string, i int) bool {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
