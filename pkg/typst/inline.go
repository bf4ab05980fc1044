package typst

import (
	"bufio"
	"fmt"

	"github.com/yaklabco/leandoc/pkg/ldast"
)

func (g *Generator) emitInlines(nodes []*ldast.Node, bw *bufio.Writer) error {
	for _, n := range nodes {
		if err := g.emitInline(n, bw); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) emitInline(n *ldast.Node, bw *bufio.Writer) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case ldast.NodeText:
		bw.WriteString(escText(n.Text))
		return nil

	case ldast.NodeEmphasis:
		return g.emitEmphasis(n, bw)

	case ldast.NodeSuperscript:
		fmt.Fprintf(bw, "#super[%s]", escText(n.Text))
		return nil

	case ldast.NodeSubscript:
		fmt.Fprintf(bw, "#sub[%s]", escText(n.Text))
		return nil

	case ldast.NodeLink:
		fmt.Fprintf(bw, "#link(\"%s\")[", escString(n.Target))
		if len(n.Children) == 0 {
			bw.WriteString(escText(n.Target))
		} else if err := g.emitInlines(n.Children, bw); err != nil {
			return err
		}
		bw.WriteString("]")
		return nil

	case ldast.NodeCrossReference:
		if len(n.Children) == 0 {
			bw.WriteString("@" + escText(n.Target))
			return nil
		}
		fmt.Fprintf(bw, "#link(<%s>)[", escText(n.Target))
		if err := g.emitInlines(n.Children, bw); err != nil {
			return err
		}
		bw.WriteString("]")
		return nil

	case ldast.NodeInlineAnchor:
		fmt.Fprintf(bw, "<%s>", escText(n.Name))
		return nil

	case ldast.NodeAttributeReference:
		// Substitution is a semantic phase; keep a visible placeholder.
		fmt.Fprintf(bw, "{%s}", escText(n.Name))
		return nil

	case ldast.NodeInlineMacro:
		return g.emitInlineMacro(n, bw)

	case ldast.NodePassthrough:
		if !g.opt.AllowRawPassthrough {
			return failAt(n, "Inline passthrough disabled")
		}
		return g.emitInlines(n.Children, bw)
	}

	return failAt(n, "Unsupported inline node kind in generator")
}

func (g *Generator) emitEmphasis(n *ldast.Node, bw *bufio.Writer) error {
	switch n.Name {
	case "bold":
		return g.wrapInlines(n, "*", "*", bw)
	case "italic":
		return g.wrapInlines(n, "_", "_", bw)
	case "mono":
		if n.Text != "" {
			fmt.Fprintf(bw, "`%s`", escText(n.Text))
			return nil
		}
		return g.wrapInlines(n, "`", "`", bw)
	case "highlight":
		return g.wrapInlines(n, "#highlight([", "])", bw)
	}
	return failAt(n, "Unknown inline emphasis kind: "+n.Name)
}

func (g *Generator) emitInlineMacro(n *ldast.Node, bw *bufio.Writer) error {
	switch n.Name {
	case "footnote":
		return g.wrapInlines(n, "#footnote[", "]", bw)

	case "kbd", "btn", "menu":
		return g.wrapInlines(n, "#smallcaps[", "]", bw)

	case "stem":
		if !g.opt.AllowRawPassthrough {
			return failAt(n, "stem: inline macro requires raw passthrough or math conversion phase")
		}
		if n.Target == "" {
			return g.wrapInlines(n, "$", "$", bw)
		}
		fmt.Fprintf(bw, "$%s$", escText(n.Target))
		return nil
	}

	return failAt(n, "Unsupported inline macro in Typst generator: "+n.Name)
}

func (g *Generator) wrapInlines(n *ldast.Node, opening, closing string, bw *bufio.Writer) error {
	bw.WriteString(opening)
	if err := g.emitInlines(n.Children, bw); err != nil {
		return err
	}
	bw.WriteString(closing)
	return nil
}
