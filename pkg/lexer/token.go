package lexer

//go:generate stringer -type=TokenKind -trimprefix=Tok

// TokenKind classifies a single line of LeanDoc source.
type TokenKind uint16

// Token kinds. Classification is total: every line receives exactly one
// kind, and a single EOF token is synthesized after the last line.
const (
	TokEOF TokenKind = iota
	TokBlank
	TokText

	// Metadata lines.
	TokBlockAnchor // [[id,...]]
	TokBlockAttrs  // [....] reserved, not yet produced by Classify
	TokBlockTitle  // .Title

	// Blocks.
	TokSection     // = Title up to ====== Title
	TokAdmonition  // NOTE: ...
	TokLineComment // // ...

	// Breaks.
	TokThematicBreak // ''', ---, ***
	TokPageBreak     // <<<

	// Lists.
	TokUnorderedItem    // * item
	TokOrderedItem      // . item
	TokDescTerm         // term::
	TokListContinuation // +

	// Delimited block fences.
	TokDelimListing     // ----
	TokDelimLiteral     // ....
	TokDelimQuote       // ____
	TokDelimExample     // ====
	TokDelimSidebar     // ****
	TokDelimOpen        // --
	TokDelimPassthrough // ++++
	TokDelimComment     // ////
	TokStemMarker       // [stem]

	// Tables.
	TokTableFence // |===
	TokTableRow   // any other line starting with |

	// Block macros and directives.
	TokBlockMacro // include::, image::, ident::target[...]
	TokDirective  // ifdef::, ifndef::, endif::
)

// Token is one classified source line, or the synthesized end marker.
type Token struct {
	// Kind classifies what this line represents.
	Kind TokenKind

	// LineNo is the 1-based source line number.
	LineNo int

	// Raw is the original line text without its trailing newline.
	Raw string

	// Level carries the marker run length for section headings and list
	// markers (1-6) and the trailing colon count for description terms.
	Level int

	// Head is the recognized keyword prefix: a directive or macro name,
	// or an admonition label.
	Head string

	// Rest is the kind-specific payload after the recognized prefix.
	Rest string
}

// IsDelimFence returns true for the delimited-block fence kinds. The stem
// marker is not a fence itself; it prefixes one.
func (t Token) IsDelimFence() bool {
	switch t.Kind {
	case TokDelimListing, TokDelimLiteral, TokDelimQuote, TokDelimExample,
		TokDelimSidebar, TokDelimOpen, TokDelimPassthrough, TokDelimComment:
		return true
	default:
		return false
	}
}

// IsMetadata returns true for the block metadata line kinds that may
// precede a block: anchor, attribute list and title.
func (t Token) IsMetadata() bool {
	switch t.Kind {
	case TokBlockAnchor, TokBlockAttrs, TokBlockTitle:
		return true
	default:
		return false
	}
}
