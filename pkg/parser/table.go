package parser

import (
	"strings"

	"github.com/yaklabco/leandoc/pkg/ldast"
	"github.com/yaklabco/leandoc/pkg/lexer"
)

// parseTable reads a |=== fenced table. The first row fixes the column
// count; every following cell is collected into a flat sequence and
// regrouped into rows of that width. A cell count that does not divide
// evenly is an error reported at the first row.
func (p *Parser) parseTable(meta *ldast.BlockMeta) (*ldast.Node, error) {
	open, err := p.expect(lexer.TokTableFence, "table delimiter |===")
	if err != nil {
		return nil, err
	}
	tbl := ldast.NewNodeAt(ldast.NodeTable, open.LineNo)
	tbl.Meta = meta

	var parts [][]*ldast.Node
scan:
	for !p.atEnd() {
		switch p.peek(0).Kind {
		case lexer.TokTableFence:
			p.take()
			break scan
		case lexer.TokBlank:
			p.take()
		case lexer.TokTableRow:
			parts = append(parts, p.readCells(p.take()))
		default:
			// Anything else between the fences is skipped.
			p.take()
		}
	}

	if len(parts) == 0 || len(parts[0]) == 0 {
		return tbl, nil
	}

	first := parts[0]
	row := ldast.NewNode(ldast.NodeTableRow)
	row.Pos = first[0].Pos
	row.Add(first...)
	tbl.Add(row)

	var cells []*ldast.Node
	for _, more := range parts[1:] {
		cells = append(cells, more...)
	}
	if len(cells)%len(first) != 0 {
		return nil, errAt("the number of cells is not compatible with the table size", first[0].Pos.Line)
	}
	for off := 0; off < len(cells); off += len(first) {
		row := ldast.NewNode(ldast.NodeTableRow)
		row.Pos = cells[off].Pos
		row.Add(cells[off : off+len(first)]...)
		tbl.Add(row)
	}
	return tbl, nil
}

// readCells splits one table line into cell nodes. The text before the
// first pipe is dropped, as is a single empty part produced by a
// row-terminating pipe. Escaped pipes stay inside their cell.
func (p *Parser) readCells(rowTok lexer.Token) []*ldast.Node {
	parts := splitUnescapedPipe(rowTok.Raw)
	parts = parts[1:]
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}

	cells := make([]*ldast.Node, 0, len(parts))
	for _, part := range parts {
		c := ldast.NewNodeAt(ldast.NodeTableCell, rowTok.LineNo)
		c.Children = ScanInline(strings.TrimSpace(part), rowTok.LineNo)
		cells = append(cells, c)
	}
	return cells
}

// splitUnescapedPipe splits on '|' except where the pipe is preceded by
// an odd number of backslashes; such a pipe loses one backslash and
// stays literal.
func splitUnescapedPipe(s string) []string {
	var parts []string
	cur := make([]byte, 0, len(s))
	run := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '|' {
			if run%2 == 1 {
				cur = cur[:len(cur)-1]
				cur = append(cur, '|')
			} else {
				parts = append(parts, string(cur))
				cur = cur[:0]
			}
			run = 0
			continue
		}
		cur = append(cur, c)
		if c == '\\' {
			run++
		} else {
			run = 0
		}
	}
	return append(parts, string(cur))
}
