// Package ldast defines the LeanDoc document tree: node kinds, the generic
// node payload the parser fills in, block metadata, traversal helpers, and
// a stable debug dump.
package ldast

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level LeanDoc elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeSection
	NodeParagraph
	NodeLiteralParagraph
	NodeAdmonitionParagraph
	NodeDelimitedBlock
	NodeList
	NodeListItem
	NodeTable
	NodeTableRow
	NodeTableCell
	NodeBlockMacro
	NodeDirective
	NodeThematicBreak
	NodePageBreak
	NodeLineComment

	// Inline-level nodes. NodeSpace, NodeLineBreak and NodeInlineImage are
	// part of the closed kind set for generators but are not produced by
	// the current parser.
	NodeText
	NodeSpace
	NodeLineBreak
	NodeEmphasis
	NodeSuperscript
	NodeSubscript
	NodeLink
	NodeInlineImage
	NodeInlineAnchor
	NodeCrossReference
	NodeAttributeReference
	NodeInlineMacro
	NodePassthrough
)

// Pos is a 1-based source position. The parser works line-wise, so Column
// is best-effort and usually 1.
type Pos struct {
	Line   int
	Column int
}

// Node represents a single node in the LeanDoc AST. Children are owned by
// their parent and ordered; the tree is acyclic.
//
// The payload fields are generic and reused per kind. Among others: a
// section keeps its heading text in Name and its depth in KV["level"]; an
// emphasis node keeps its variant (bold/italic/mono/highlight) in Name; a
// raw delimited block keeps its verbatim body in Text; a cross-reference
// keeps its id in Target. Consumers dispatch on Kind and read the fields
// that kind defines.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Pos is the source position the node starts at.
	Pos Pos

	// Meta holds the metadata lines attached to a block ([[anchor]],
	// [attrs], .Title); nil when none preceded it.
	Meta *BlockMeta

	// Generic payload; interpretation depends on Kind.
	Text   string
	Name   string
	Target string
	KV     map[string]string

	// Children are the node's ordered children (blocks or inline runs).
	Children []*Node
}

// NewNode creates a new node of the specified kind.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NewNodeAt creates a new node of the specified kind starting at the given
// source line.
func NewNodeAt(kind NodeKind, line int) *Node {
	return &Node{Kind: kind, Pos: Pos{Line: line, Column: 1}}
}

// Add appends children to the node, preserving order.
func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Attr returns the value stored under key in the node's KV payload, or the
// empty string when absent. Safe on nodes without a KV map.
func (n *Node) Attr(key string) string {
	return n.KV[key]
}

// LookupAttr returns the value stored under key and whether it is present.
func (n *Node) LookupAttr(key string) (string, bool) {
	v, ok := n.KV[key]
	return v, ok
}

// SetAttr stores a key/value pair in the node's KV payload, allocating the
// map on first use.
func (n *Node) SetAttr(key, value string) {
	if n.KV == nil {
		n.KV = make(map[string]string)
	}
	n.KV[key] = value
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeSection, NodeParagraph, NodeLiteralParagraph,
		NodeAdmonitionParagraph, NodeDelimitedBlock, NodeList, NodeListItem,
		NodeTable, NodeTableRow, NodeTableCell, NodeBlockMacro,
		NodeDirective, NodeThematicBreak, NodePageBreak, NodeLineComment:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case NodeText, NodeSpace, NodeLineBreak, NodeEmphasis, NodeSuperscript,
		NodeSubscript, NodeLink, NodeInlineImage, NodeInlineAnchor,
		NodeCrossReference, NodeAttributeReference, NodeInlineMacro,
		NodePassthrough:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}
