package ldast

import "sort"

// BlockMeta carries the metadata lines that may precede a block: an
// [[anchor]] line, an [attribute] list and a .Title line. The parser
// attaches at most one BlockMeta per block.
type BlockMeta struct {
	// AnchorID and AnchorText come from a [[id,text]] line.
	AnchorID   string
	AnchorText string

	// Title comes from a .Title line, already trimmed.
	Title string

	// Attrs holds the parsed attribute list. Entries without an "="
	// keep their bare key and an empty value.
	Attrs map[string]string

	// Roles are derived from attribute keys starting with a dot, in
	// key-sorted order.
	Roles []string
}

// SetAttrs stores the attribute map and derives Roles from keys that start
// with a dot. A key ".admonition" yields the role "admonition".
func (m *BlockMeta) SetAttrs(attrs map[string]string) {
	m.Attrs = attrs
	m.Roles = m.Roles[:0]
	for _, k := range sortedKeys(attrs) {
		if len(k) > 0 && k[0] == '.' {
			m.Roles = append(m.Roles, k[1:])
		}
	}
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
