// Package parser builds LeanDoc document trees from source text.
//
// The parser is a recursive descent over the classified line stream
// produced by the lexer package. Block structure is decided one line
// token at a time; inline content inside paragraphs, headings, list
// items and table cells is handed to ScanInline. Parsing never consumes
// more than the input once: every path either advances the stream or
// reports a *ParseError.
package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/leandoc/pkg/ldast"
	"github.com/yaklabco/leandoc/pkg/lexer"
)

// Parser assembles document trees from LeanDoc source. The zero value
// is ready to use. A Parser may be reused for consecutive inputs but
// must not be shared between goroutines.
type Parser struct {
	lex lexer.Lexer
}

// New returns a ready Parser.
func New() *Parser { return &Parser{} }

// Parse builds the document tree for input. The returned error, if any,
// is a *ParseError locating the first structural problem.
func (p *Parser) Parse(input string) (*ldast.Node, error) {
	p.lex.SetInput(input)
	return p.parseDocument()
}

func (p *Parser) peek(k int) lexer.Token { return p.lex.Peek(k) }
func (p *Parser) take() lexer.Token      { return p.lex.Take() }
func (p *Parser) atEnd() bool            { return p.lex.AtEnd() }

func (p *Parser) expect(kind lexer.TokenKind, what string) (lexer.Token, error) {
	if p.peek(0).Kind != kind {
		return lexer.Token{}, errAt("Expected "+what, p.peek(0).LineNo)
	}
	return p.take(), nil
}

// skipBlankAndComments advances past blank lines and line comments,
// which may separate any two blocks.
func (p *Parser) skipBlankAndComments() {
	for {
		switch p.peek(0).Kind {
		case lexer.TokBlank, lexer.TokLineComment:
			p.take()
		default:
			return
		}
	}
}

func (p *Parser) parseDocument() (*ldast.Node, error) {
	doc := ldast.NewNodeAt(ldast.NodeDocument, 1)

	p.skipBlankAndComments()
	p.parseDocumentHeader(doc)

	for !p.atEnd() {
		p.skipBlankAndComments()
		if p.atEnd() {
			break
		}
		b, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if b == nil {
			break
		}
		doc.Add(b)
	}
	return doc, nil
}

// parseDocumentHeader consumes an optional document title, author line,
// revision line and attribute entries, recording each in the document's
// kv map under title, authorLine, revisionLine and attr:<name> keys.
func (p *Parser) parseDocumentHeader(doc *ldast.Node) {
	if t := p.peek(0); t.Kind == lexer.TokSection && t.Level == 1 {
		p.take()
		doc.SetAttr("title", t.Rest)
		doc.SetAttr("titleLine", strconv.Itoa(t.LineNo))
		p.skipBlankAndComments()
	}

	// An author line is any text carrying a <contact> in angle brackets.
	if t := p.peek(0); t.Kind == lexer.TokText {
		s := strings.TrimSpace(t.Raw)
		if strings.ContainsRune(s, '<') && strings.ContainsRune(s, '>') {
			doc.SetAttr("authorLine", s)
			doc.SetAttr("authorLineNo", strconv.Itoa(t.LineNo))
			p.take()
			p.skipBlankAndComments()
		}
	}

	// A revision line starts with a lowercase v, as in "v1.2, 2024-05-01".
	if t := p.peek(0); t.Kind == lexer.TokText {
		s := strings.TrimSpace(t.Raw)
		if strings.HasPrefix(s, "v") {
			doc.SetAttr("revisionLine", s)
			doc.SetAttr("revisionLineNo", strconv.Itoa(t.LineNo))
			p.take()
			p.skipBlankAndComments()
		}
	}

	// Attribute entries, ":name: value", up to the first line that is
	// not one.
	for p.peek(0).Kind == lexer.TokText {
		s := strings.TrimSpace(p.peek(0).Raw)
		if !strings.HasPrefix(s, ":") {
			break
		}
		second := strings.IndexByte(s[1:], ':')
		if second < 1 {
			break
		}
		name := strings.TrimSpace(s[1 : 1+second])
		val := strings.TrimSpace(s[second+2:])
		doc.SetAttr("attr:"+name, val)
		p.take()
	}
}

// parseBlockMetaOpt consumes a run of block metadata lines in anchor,
// attributes, title order. It returns nil when the current token is not
// metadata; otherwise the result is non-nil even when every field stays
// empty, since the presence of metadata binds it to the next block.
func (p *Parser) parseBlockMetaOpt() *ldast.BlockMeta {
	if !p.peek(0).IsMetadata() {
		return nil
	}
	m := &ldast.BlockMeta{}

	if p.peek(0).Kind == lexer.TokBlockAnchor {
		s := p.take().Rest
		inner := stripOuter(stripOuter(s, '[', ']'), '[', ']')
		if id, text, found := strings.Cut(inner, ","); found {
			m.AnchorID = strings.TrimSpace(id)
			m.AnchorText = strings.TrimSpace(text)
		} else {
			m.AnchorID = strings.TrimSpace(inner)
		}
	}

	if p.peek(0).Kind == lexer.TokBlockAttrs {
		m.SetAttrs(ParseAttrList(p.take().Rest))
	}

	if p.peek(0).Kind == lexer.TokBlockTitle {
		m.Title = strings.TrimSpace(p.take().Rest)
	}

	return m
}

func (p *Parser) parseBlock() (*ldast.Node, error) {
	// Special section markers like [bibliography] arrive as ordinary
	// block attributes here and apply to the following section.
	meta := p.parseBlockMetaOpt()

	switch t := p.peek(0); t.Kind {
	case lexer.TokSection:
		return p.parseSection(meta)
	case lexer.TokAdmonition:
		return p.parseAdmonitionParagraph(meta), nil
	case lexer.TokUnorderedItem, lexer.TokOrderedItem, lexer.TokDescTerm:
		return p.parseList(meta)
	case lexer.TokTableFence:
		return p.parseTable(meta)
	case lexer.TokTableRow:
		return nil, errAt("unexpected table line", t.LineNo)
	case lexer.TokDelimListing, lexer.TokDelimLiteral, lexer.TokDelimQuote,
		lexer.TokDelimExample, lexer.TokDelimSidebar, lexer.TokDelimOpen,
		lexer.TokDelimPassthrough, lexer.TokDelimComment, lexer.TokStemMarker:
		return p.parseDelimited(meta)
	case lexer.TokBlockMacro:
		return p.parseBlockMacro(meta), nil
	case lexer.TokDirective:
		return p.parseDirective(meta)
	case lexer.TokThematicBreak, lexer.TokPageBreak, lexer.TokLineComment:
		return p.parseBreakOrComment(meta), nil
	default:
		return p.parseParagraphOrLiteral(meta), nil
	}
}

func (p *Parser) parseSection(meta *ldast.BlockMeta) (*ldast.Node, error) {
	t := p.take()
	s := ldast.NewNodeAt(ldast.NodeSection, t.LineNo)
	s.Meta = meta
	s.SetAttr("level", strconv.Itoa(t.Level))
	s.Name = t.Rest

	// The body runs until a section of the same or a shallower level.
	for !p.atEnd() {
		p.skipBlankAndComments()
		if p.atEnd() {
			break
		}
		cur := p.peek(0)
		if cur.Kind == lexer.TokSection && cur.Level <= t.Level {
			break
		}
		if cur.Kind == lexer.TokTableRow {
			return nil, errAt("unexpected table line", cur.LineNo)
		}

		// Metadata binds to the block after it. When that block is a
		// sibling or parent section, the whole run must stay unread so
		// the enclosing level picks it up.
		if cur.IsMetadata() {
			j := 1
			for p.peek(j).IsMetadata() {
				j++
			}
			if nx := p.peek(j); nx.Kind == lexer.TokSection && nx.Level <= t.Level {
				break
			}
		}

		b, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if b == nil {
			break
		}
		s.Add(b)
	}
	return s, nil
}

func (p *Parser) parseAdmonitionParagraph(meta *ldast.BlockMeta) *ldast.Node {
	t := p.take()
	a := ldast.NewNodeAt(ldast.NodeAdmonitionParagraph, t.LineNo)
	a.Meta = meta
	a.Name = t.Head // NOTE, TIP, IMPORTANT, CAUTION or WARNING
	a.Children = ScanInline(t.Rest, t.LineNo)
	return a
}

// parseParagraphOrLiteral reads a run of adjacent text lines. A first
// line starting with whitespace opens a literal paragraph whose lines
// keep their spelling minus one leading space; otherwise the lines are
// trimmed, joined with single spaces and scanned for inline content.
func (p *Parser) parseParagraphOrLiteral(meta *ldast.BlockMeta) *ldast.Node {
	first := p.peek(0)
	literal := first.Kind == lexer.TokText && first.Raw != "" && startsWithSpace(first.Raw)

	kind := ldast.NodeParagraph
	if literal {
		kind = ldast.NodeLiteralParagraph
	}
	para := ldast.NewNodeAt(kind, first.LineNo)
	para.Meta = meta

	var lines []string
	for p.peek(0).Kind == lexer.TokText {
		raw := p.peek(0).Raw
		if literal {
			if raw == "" || !startsWithSpace(raw) {
				break
			}
			_, size := utf8.DecodeRuneInString(raw)
			lines = append(lines, raw[size:])
		} else {
			lines = append(lines, strings.TrimSpace(raw))
		}
		p.take()
	}

	// A stray continuation marker with nothing to attach to is kept as
	// plain text; it has to be consumed here or block parsing would
	// never advance past it.
	if len(lines) == 0 && p.peek(0).Kind == lexer.TokListContinuation {
		lines = append(lines, strings.TrimSpace(p.take().Raw))
	}

	if literal {
		para.Text = strings.Join(lines, "\n")
	} else {
		para.Children = ScanInline(strings.Join(lines, " "), para.Pos.Line)
	}
	return para
}

func (p *Parser) parseDelimited(meta *ldast.BlockMeta) (*ldast.Node, error) {
	isStem := false
	if p.peek(0).Kind == lexer.TokStemMarker {
		p.take()
		isStem = true
		// A stem marker must introduce a fenced block; anything else
		// demotes what follows to an ordinary paragraph.
		if !p.peek(0).IsDelimFence() {
			return p.parseParagraphOrLiteral(meta), nil
		}
	}

	k := p.peek(0).Kind
	open := p.take()

	b := ldast.NewNodeAt(ldast.NodeDelimitedBlock, open.LineNo)
	b.Meta = meta
	b.SetAttr("delim", delimName(k))
	if isStem {
		b.SetAttr("stem", "1")
	} else {
		b.SetAttr("stem", "0")
	}

	// Listing, literal, passthrough, comment and stem bodies are kept
	// raw; quote, example, sidebar and open bodies hold nested blocks.
	rawOnly := isStem ||
		k == lexer.TokDelimListing || k == lexer.TokDelimLiteral ||
		k == lexer.TokDelimPassthrough || k == lexer.TokDelimComment

	if rawOnly {
		var lines []string
		for !p.atEnd() && p.peek(0).Kind != k {
			lines = append(lines, p.take().Raw)
		}
		if _, err := p.expect(k, "closing delimiter"); err != nil {
			return nil, err
		}
		b.Text = strings.Join(lines, "\n")
		return b, nil
	}

	for !p.atEnd() && p.peek(0).Kind != k {
		p.skipBlankAndComments()
		if p.peek(0).Kind == k {
			break
		}
		inner, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if inner == nil {
			break
		}
		b.Add(inner)
	}
	if _, err := p.expect(k, "closing delimiter"); err != nil {
		return nil, err
	}
	return b, nil
}

func (p *Parser) parseList(meta *ldast.BlockMeta) (*ldast.Node, error) {
	lst := ldast.NewNodeAt(ldast.NodeList, p.peek(0).LineNo)
	lst.Meta = meta

	listType := "unordered"
	switch p.peek(0).Kind {
	case lexer.TokDescTerm:
		listType = "description"
	case lexer.TokOrderedItem:
		listType = "ordered"
	}
	lst.SetAttr("type", listType)

	for {
		if listType == "description" {
			if p.peek(0).Kind != lexer.TokDescTerm {
				break
			}
			term := p.take()
			item := ldast.NewNodeAt(ldast.NodeListItem, term.LineNo)
			item.SetAttr("kind", "definition")
			item.SetAttr("termLevel", strconv.Itoa(term.Level))
			item.Name = term.Rest

			// Optional definition on the following line.
			if t := p.peek(0); t.Kind == lexer.TokText && strings.TrimSpace(t.Raw) != "" {
				defLine := strings.TrimSpace(t.Raw)
				p.take()
				defPara := ldast.NewNodeAt(ldast.NodeParagraph, term.LineNo)
				defPara.Children = ScanInline(defLine, term.LineNo)
				item.Add(defPara)
			}

			p.skipBlankAndComments()
			if p.peek(0).Kind == lexer.TokListContinuation {
				p.take()
				p.skipBlankAndComments()
				var (
					cont *ldast.Node
					err  error
				)
				if t := p.peek(0); t.IsDelimFence() || t.Kind == lexer.TokStemMarker {
					cont, err = p.parseDelimited(nil)
				} else {
					cont = p.parseParagraphOrLiteral(nil)
				}
				if err != nil {
					return nil, err
				}
				if cont != nil {
					item.Add(cont)
				}
			}

			lst.Add(item)
			p.skipBlankAndComments()
			continue
		}

		wantKind := lexer.TokUnorderedItem
		if listType == "ordered" {
			wantKind = lexer.TokOrderedItem
		}
		if p.peek(0).Kind != wantKind {
			break
		}

		it := p.take()
		item := ldast.NewNodeAt(ldast.NodeListItem, it.LineNo)
		// Items of any depth are collected flat; markerLevel preserves
		// the marker count for later reconstruction.
		item.SetAttr("markerLevel", strconv.Itoa(it.Level))

		payload := it.Rest
		if strings.HasPrefix(payload, "[*]") || strings.HasPrefix(payload, "[x]") || strings.HasPrefix(payload, "[ ]") {
			item.SetAttr("check", payload[1:2])
			payload = strings.TrimSpace(payload[3:])
		}

		head := ldast.NewNodeAt(ldast.NodeParagraph, it.LineNo)
		head.Children = ScanInline(payload, it.LineNo)
		item.Add(head)

		p.skipBlankAndComments()
		for p.peek(0).Kind == lexer.TokListContinuation {
			p.take()
			p.skipBlankAndComments()
			cont, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			if cont != nil {
				item.Add(cont)
			}
			p.skipBlankAndComments()
		}

		lst.Add(item)
		p.skipBlankAndComments()
	}

	return lst, nil
}

func (p *Parser) parseBlockMacro(meta *ldast.BlockMeta) *ldast.Node {
	t := p.take()
	n := ldast.NewNodeAt(ldast.NodeBlockMacro, t.LineNo)
	n.Meta = meta
	n.Name = t.Head   // image, video, audio, include, or a custom name
	n.Target = t.Rest // still carries any trailing "[...]" portion
	return n
}

func (p *Parser) parseDirective(meta *ldast.BlockMeta) (*ldast.Node, error) {
	t := p.take()
	n := ldast.NewNodeAt(ldast.NodeDirective, t.LineNo)
	n.Meta = meta
	n.Name = t.Head
	n.Text = t.Rest // full tail, evaluated by a later semantic pass

	// Conditional directives enclose a body up to the matching endif.
	// A missing endif silently ends the body at end of input.
	if n.Name == "ifdef" || n.Name == "ifndef" || n.Name == "ifeval" {
		for !p.atEnd() {
			p.skipBlankAndComments()
			if cur := p.peek(0); cur.Kind == lexer.TokDirective && strings.HasPrefix(strings.TrimSpace(cur.Raw), "endif::") {
				end := p.take()
				endNode := ldast.NewNodeAt(ldast.NodeDirective, end.LineNo)
				endNode.Name = "endif"
				endNode.Text = end.Rest
				n.Add(endNode)
				break
			}
			if p.atEnd() {
				break
			}
			b, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			if b == nil {
				break
			}
			n.Add(b)
		}
	}
	return n, nil
}

func (p *Parser) parseBreakOrComment(meta *ldast.BlockMeta) *ldast.Node {
	switch p.peek(0).Kind {
	case lexer.TokLineComment:
		t := p.take()
		c := ldast.NewNodeAt(ldast.NodeLineComment, t.LineNo)
		c.Meta = meta
		c.Text = t.Rest
		return c
	case lexer.TokThematicBreak:
		t := p.take()
		b := ldast.NewNodeAt(ldast.NodeThematicBreak, t.LineNo)
		b.Meta = meta
		b.Text = strings.TrimSpace(t.Raw)
		return b
	case lexer.TokPageBreak:
		t := p.take()
		n := ldast.NewNodeAt(ldast.NodePageBreak, t.LineNo)
		n.Meta = meta
		n.Text = t.Rest
		return n
	default:
		return nil
	}
}

// delimName is the kv value recorded for each fence kind.
func delimName(k lexer.TokenKind) string {
	switch k {
	case lexer.TokDelimListing:
		return "listing"
	case lexer.TokDelimLiteral:
		return "literal"
	case lexer.TokDelimQuote:
		return "quote"
	case lexer.TokDelimExample:
		return "example"
	case lexer.TokDelimSidebar:
		return "sidebar"
	case lexer.TokDelimOpen:
		return "open"
	case lexer.TokDelimPassthrough:
		return "passthrough"
	case lexer.TokDelimComment:
		return "comment"
	default:
		return ""
	}
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}
