package ldast_test

import (
	"testing"

	"github.com/yaklabco/leandoc/pkg/ldast"
)

func TestNode_IsBlock(t *testing.T) {
	t.Parallel()

	blockKinds := []ldast.NodeKind{
		ldast.NodeDocument,
		ldast.NodeSection,
		ldast.NodeParagraph,
		ldast.NodeLiteralParagraph,
		ldast.NodeAdmonitionParagraph,
		ldast.NodeDelimitedBlock,
		ldast.NodeList,
		ldast.NodeListItem,
		ldast.NodeTable,
		ldast.NodeTableRow,
		ldast.NodeTableCell,
		ldast.NodeBlockMacro,
		ldast.NodeDirective,
		ldast.NodeThematicBreak,
		ldast.NodePageBreak,
		ldast.NodeLineComment,
	}

	for _, kind := range blockKinds {
		node := &ldast.Node{Kind: kind}
		if !node.IsBlock() {
			t.Errorf("expected %s to be block", kind)
		}
	}

	inlineKinds := []ldast.NodeKind{
		ldast.NodeText,
		ldast.NodeEmphasis,
		ldast.NodeLink,
		ldast.NodeCrossReference,
		ldast.NodeInlineMacro,
	}

	for _, kind := range inlineKinds {
		node := &ldast.Node{Kind: kind}
		if node.IsBlock() {
			t.Errorf("expected %s to not be block", kind)
		}
	}
}

func TestNode_IsInline(t *testing.T) {
	t.Parallel()

	inlineKinds := []ldast.NodeKind{
		ldast.NodeText,
		ldast.NodeSpace,
		ldast.NodeLineBreak,
		ldast.NodeEmphasis,
		ldast.NodeSuperscript,
		ldast.NodeSubscript,
		ldast.NodeLink,
		ldast.NodeInlineImage,
		ldast.NodeInlineAnchor,
		ldast.NodeCrossReference,
		ldast.NodeAttributeReference,
		ldast.NodeInlineMacro,
		ldast.NodePassthrough,
	}

	for _, kind := range inlineKinds {
		node := &ldast.Node{Kind: kind}
		if !node.IsInline() {
			t.Errorf("expected %s to be inline", kind)
		}
	}

	blockKinds := []ldast.NodeKind{
		ldast.NodeDocument,
		ldast.NodeSection,
		ldast.NodeParagraph,
	}

	for _, kind := range blockKinds {
		node := &ldast.Node{Kind: kind}
		if node.IsInline() {
			t.Errorf("expected %s to not be inline", kind)
		}
	}
}

func TestNode_HasChildren(t *testing.T) {
	t.Parallel()

	parent := ldast.NewNode(ldast.NodeDocument)
	child := ldast.NewNode(ldast.NodeParagraph)

	if parent.HasChildren() {
		t.Error("expected empty node to have no children")
	}

	parent.Add(child)

	if !parent.HasChildren() {
		t.Error("expected node with child to have children")
	}
}

func TestNode_AddPreservesOrder(t *testing.T) {
	t.Parallel()

	parent := ldast.NewNode(ldast.NodeDocument)
	child1 := ldast.NewNode(ldast.NodeParagraph)
	child2 := ldast.NewNode(ldast.NodeSection)
	child3 := ldast.NewNode(ldast.NodeTable)

	parent.Add(child1)
	parent.Add(child2, child3)

	if len(parent.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(parent.Children))
	}

	if parent.Children[0] != child1 || parent.Children[1] != child2 || parent.Children[2] != child3 {
		t.Error("children not in expected order")
	}
}

func TestNode_NewNodeAt(t *testing.T) {
	t.Parallel()

	node := ldast.NewNodeAt(ldast.NodeSection, 42)

	if node.Kind != ldast.NodeSection {
		t.Errorf("expected NodeSection, got %s", node.Kind)
	}

	if node.Pos.Line != 42 || node.Pos.Column != 1 {
		t.Errorf("expected position (42, 1), got (%d, %d)", node.Pos.Line, node.Pos.Column)
	}
}

func TestNode_Attrs(t *testing.T) {
	t.Parallel()

	node := ldast.NewNode(ldast.NodeSection)

	if got := node.Attr("level"); got != "" {
		t.Errorf("expected empty value on fresh node, got %q", got)
	}

	if _, ok := node.LookupAttr("level"); ok {
		t.Error("expected LookupAttr to miss on fresh node")
	}

	node.SetAttr("level", "2")

	if got := node.Attr("level"); got != "2" {
		t.Errorf("expected %q, got %q", "2", got)
	}

	v, ok := node.LookupAttr("level")
	if !ok || v != "2" {
		t.Errorf("expected (%q, true), got (%q, %v)", "2", v, ok)
	}
}

func TestNodeKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     ldast.NodeKind
		expected string
	}{
		{ldast.NodeDocument, "Document"},
		{ldast.NodeSection, "Section"},
		{ldast.NodeParagraph, "Paragraph"},
		{ldast.NodeLiteralParagraph, "LiteralParagraph"},
		{ldast.NodeAdmonitionParagraph, "AdmonitionParagraph"},
		{ldast.NodeDelimitedBlock, "DelimitedBlock"},
		{ldast.NodeList, "List"},
		{ldast.NodeListItem, "ListItem"},
		{ldast.NodeTable, "Table"},
		{ldast.NodeTableCell, "TableCell"},
		{ldast.NodeDirective, "Directive"},
		{ldast.NodeText, "Text"},
		{ldast.NodeEmphasis, "Emphasis"},
		{ldast.NodeCrossReference, "CrossReference"},
		{ldast.NodeAttributeReference, "AttributeReference"},
		{ldast.NodePassthrough, "Passthrough"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if tt.kind.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.kind.String())
			}
		})
	}
}

func TestBlockMeta_SetAttrs(t *testing.T) {
	t.Parallel()

	meta := &ldast.BlockMeta{}
	meta.SetAttrs(map[string]string{
		"1":       "quote",
		".lead":   "",
		".aside":  "",
		"subject": "history",
	})

	if len(meta.Attrs) != 4 {
		t.Fatalf("expected 4 attrs, got %d", len(meta.Attrs))
	}

	if len(meta.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(meta.Roles))
	}

	// Roles come out in key-sorted order.
	if meta.Roles[0] != "aside" || meta.Roles[1] != "lead" {
		t.Errorf("unexpected roles %v", meta.Roles)
	}
}

func TestBlockMeta_SetAttrsNoRoles(t *testing.T) {
	t.Parallel()

	meta := &ldast.BlockMeta{}
	meta.SetAttrs(map[string]string{"1": "source", "2": "go"})

	if len(meta.Roles) != 0 {
		t.Errorf("expected no roles, got %v", meta.Roles)
	}
}
