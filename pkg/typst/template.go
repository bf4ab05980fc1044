package typst

import (
	"bufio"
	"fmt"
)

// Built-in preludes. Both define the admon(kind, body) helper that
// admonition paragraphs compile to.
const plainPrelude = `// LeanDoc -> Typst (plain)
#set page(margin: 2cm)
#set text(font: "Linux Libertine", size: 11pt)

#let admon(kind, body) = block(
  inset: (x: 10pt, y: 8pt),
  radius: 4pt,
  fill: luma(240),
  stroke: luma(200),
  [*#kind:* ] + body,
)

`

const reportPrelude = `// LeanDoc -> Typst (report)
#set page(margin: (top: 2cm, bottom: 2.2cm, x: 2.2cm))
#set text(font: "Libertinus Serif", size: 11pt, leading: 1.25em)
#set heading(numbering: "1.")

#let admon(kind, body) = block(
  inset: (x: 12pt, y: 10pt),
  radius: 6pt,
  fill: rgb("f6f7fb"),
  stroke: rgb("cfd6e6"),
  [#text(weight: "bold")[#kind] ] + body,
)

`

func (g *Generator) emitPreamble(bw *bufio.Writer) error {
	if g.opt.TemplateFile != "" {
		fmt.Fprintf(bw, "#import \"%s\": *\n\n", escString(g.opt.TemplateFile))
		return nil
	}

	switch g.opt.Template {
	case "plain":
		bw.WriteString(plainPrelude)
	case "report":
		bw.WriteString(reportPrelude)
	default:
		return failAt(nil, "Unknown templateName: "+g.opt.Template)
	}
	return nil
}
