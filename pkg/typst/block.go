package typst

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/leandoc/pkg/langdetect"
	"github.com/yaklabco/leandoc/pkg/ldast"
)

func (g *Generator) emitBlock(n *ldast.Node, bw *bufio.Writer) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case ldast.NodeSection:
		return g.emitSection(n, bw)
	case ldast.NodeParagraph:
		return g.emitParagraph(n, bw)
	case ldast.NodeLiteralParagraph:
		fmt.Fprintf(bw, "#raw(\"%s\", block: true)\n", escString(n.Text))
		return nil
	case ldast.NodeAdmonitionParagraph:
		return g.emitAdmonition(n, bw)
	case ldast.NodeDelimitedBlock:
		return g.emitDelimited(n, bw)
	case ldast.NodeList:
		return g.emitList(n, bw)
	case ldast.NodeTable:
		return g.emitTable(n, bw)
	case ldast.NodeBlockMacro:
		return g.emitBlockMacro(n, bw)
	case ldast.NodeDirective:
		return failAt(n, "Directives must be resolved before Typst generation ("+n.Name+")")
	case ldast.NodeThematicBreak:
		bw.WriteString("---\n")
		return nil
	case ldast.NodePageBreak:
		bw.WriteString("#pagebreak()\n")
		return nil
	case ldast.NodeLineComment:
		fmt.Fprintf(bw, "// %s\n", escText(n.Text))
		return nil
	default:
		return failAt(n, "Unsupported block node kind in generator")
	}
}

func (g *Generator) emitSection(n *ldast.Node, bw *bufio.Writer) error {
	level, _ := strconv.Atoi(n.Attr("level"))
	level += g.opt.HeadingShift
	if level < 1 {
		level = 1
	}

	fmt.Fprintf(bw, "%s %s%s\n\n", headingMarks(level), escText(n.Name), labelSuffix(n.Meta))
	for _, child := range n.Children {
		if err := g.emitBlock(child, bw); err != nil {
			return err
		}
		bw.WriteString("\n")
	}
	return nil
}

func (g *Generator) emitParagraph(n *ldast.Node, bw *bufio.Writer) error {
	if err := g.emitInlines(n.Children, bw); err != nil {
		return err
	}
	bw.WriteString("\n")
	return nil
}

func (g *Generator) emitAdmonition(n *ldast.Node, bw *bufio.Writer) error {
	fmt.Fprintf(bw, "#admon(\"%s\", [", escString(n.Name))
	if err := g.emitInlines(n.Children, bw); err != nil {
		return err
	}
	bw.WriteString("])\n")
	return nil
}

func (g *Generator) emitDelimited(n *ldast.Node, bw *bufio.Writer) error {
	// Container blocks hold parsed children; raw blocks hold verbatim text.
	if len(n.Children) > 0 {
		bw.WriteString("#block([")
		for _, child := range n.Children {
			if err := g.emitBlock(child, bw); err != nil {
				return err
			}
			bw.WriteString("\n")
		}
		bw.WriteString("])\n")
		return nil
	}

	// Math is left to a conversion phase; until then stem bodies pass
	// through verbatim.
	if n.Attr("stem") == "1" {
		if !g.opt.AllowRawPassthrough {
			return failAt(n, "Stem block requires raw passthrough or math conversion phase")
		}
		bw.WriteString(n.Text)
		bw.WriteString("\n")
		return nil
	}

	switch n.Attr("delim") {
	case "comment":
		return nil
	case "passthrough":
		if !g.opt.AllowRawPassthrough {
			return failAt(n, "Passthrough block disabled")
		}
		bw.WriteString(n.Text)
		bw.WriteString("\n")
		return nil
	}

	if lang := g.listingLang(n); lang != "" {
		fmt.Fprintf(bw, "#raw(\"%s\", lang: \"%s\", block: true)\n", escString(n.Text), escString(lang))
		return nil
	}
	fmt.Fprintf(bw, "#raw(\"%s\", block: true)\n", escString(n.Text))
	return nil
}

// listingLang resolves the language tag for a listing block: an explicit
// lang attribute wins, then content detection when enabled. The "text"
// fallback is treated as no detection.
func (g *Generator) listingLang(n *ldast.Node) string {
	if n.Attr("delim") != "listing" {
		return ""
	}
	if n.Meta != nil {
		if lang := n.Meta.Attrs["lang"]; lang != "" {
			return lang
		}
	}
	if g.opt.DetectListingLang {
		if lang := langdetect.Detect([]byte(n.Text)); lang != "text" {
			return lang
		}
	}
	return ""
}

func (g *Generator) emitList(n *ldast.Node, bw *bufio.Writer) error {
	if n.Attr("type") == "description" {
		// Term and definition as a two-column table.
		bw.WriteString("#table(columns: 2,\n")
		for _, item := range n.Children {
			if item == nil || item.Kind != ldast.NodeListItem {
				continue
			}
			fmt.Fprintf(bw, "  [%s], [", escText(item.Name))
			if len(item.Children) > 0 {
				if err := g.emitBlock(item.Children[0], bw); err != nil {
					return err
				}
			}
			bw.WriteString("],\n")
		}
		bw.WriteString(")\n")
		return nil
	}

	if n.Attr("type") == "ordered" {
		bw.WriteString("#enum(\n")
	} else {
		bw.WriteString("#list(\n")
	}
	for _, item := range n.Children {
		if item == nil || item.Kind != ldast.NodeListItem {
			continue
		}
		bw.WriteString("  [")
		for k, child := range item.Children {
			if err := g.emitBlock(child, bw); err != nil {
				return err
			}
			if k+1 < len(item.Children) {
				bw.WriteString("\n")
			}
		}
		bw.WriteString("],\n")
	}
	bw.WriteString(")\n")
	return nil
}

func (g *Generator) emitTable(n *ldast.Node, bw *bufio.Writer) error {
	cols := 0
	for _, row := range n.Children {
		if row == nil || row.Kind != ldast.NodeTableRow {
			continue
		}
		cols = len(row.Children)
		break
	}
	if cols <= 0 {
		return nil
	}

	fmt.Fprintf(bw, "#table(columns: %d,\n", cols)
	for _, row := range n.Children {
		if row == nil || row.Kind != ldast.NodeTableRow {
			continue
		}
		if len(row.Children) != cols {
			return failAt(row, "Table row has inconsistent number of cells")
		}

		for _, cell := range row.Children {
			bw.WriteString("  [")
			if cell != nil {
				if err := g.emitInlines(cell.Children, bw); err != nil {
					return err
				}
			}
			bw.WriteString("],\n")
		}
	}
	bw.WriteString(")\n")
	return nil
}

func (g *Generator) emitBlockMacro(n *ldast.Node, bw *bufio.Writer) error {
	switch n.Name {
	case "include":
		return failAt(n, "include:: requires semantic include expansion before Typst generation")

	case "image":
		// Target is "path[attrs]", unparsed; take the path part.
		target := strings.TrimSpace(n.Target)
		if lb := strings.IndexByte(target, '['); lb >= 0 {
			target = strings.TrimSpace(target[:lb])
		}
		fmt.Fprintf(bw, "#image(\"%s\")\n", escString(target))
		return nil

	case "video", "audio":
		// No embedded media in Typst output; emit a link placeholder.
		target := strings.TrimSpace(n.Target)
		fmt.Fprintf(bw, "#link(\"%s\")[%s]\n",
			escString(n.Name+"::"+target),
			escText(strings.ToUpper(n.Name)+": "+target))
		return nil
	}

	return failAt(n, "Unsupported block macro in Typst generator: "+n.Name)
}
