package ldast

import (
	"fmt"
	"io"
	"strings"
)

// maxDumpText is the longest text payload Dump prints before truncating.
const maxDumpText = 64

// Dump writes a human-readable rendering of the tree rooted at root to w,
// one node per line, indented two spaces per nesting level. The output is
// stable and intended for debugging and golden tests.
func Dump(w io.Writer, root *Node) {
	dumpNode(w, root, 0)
}

// DumpString renders the tree rooted at root as a string. See Dump.
func DumpString(root *Node) string {
	var sb strings.Builder
	dumpNode(&sb, root, 0)
	return sb.String()
}

func dumpNode(w io.Writer, n *Node, depth int) {
	if n == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind.String())
	fmt.Fprintf(&sb, " @%d", n.Pos.Line)

	if m := n.Meta; m != nil {
		if m.AnchorID != "" {
			fmt.Fprintf(&sb, " anchorId=%q", m.AnchorID)
		}
		if m.AnchorText != "" {
			fmt.Fprintf(&sb, " anchorText=%q", m.AnchorText)
		}
		if m.Title != "" {
			fmt.Fprintf(&sb, " title=%q", m.Title)
		}
		if len(m.Attrs) > 0 {
			fmt.Fprintf(&sb, " attrs=%d", len(m.Attrs))
		}
	}

	if n.Name != "" {
		fmt.Fprintf(&sb, " name=%q", n.Name)
	}
	if n.Target != "" {
		fmt.Fprintf(&sb, " target=%q", n.Target)
	}
	if n.Text != "" {
		text := []rune(n.Text)
		if len(text) > maxDumpText {
			simplified := []rune(strings.Join(strings.Fields(n.Text), " "))
			if len(simplified) > maxDumpText {
				simplified = simplified[:maxDumpText]
			}
			fmt.Fprintf(&sb, " %q...", string(simplified))
		} else {
			fmt.Fprintf(&sb, " %q", n.Text)
		}
	}
	if len(n.KV) > 0 {
		fmt.Fprintf(&sb, " kv=%d", len(n.KV))
	}
	sb.WriteByte('\n')

	io.WriteString(w, sb.String()) //nolint:errcheck // best-effort debug output

	for _, child := range n.Children {
		dumpNode(w, child, depth+1)
	}
}
