package parser

import "strings"

// ParseAttrList parses the small attribute list grammar used inside square
// brackets: comma-separated entries, each either a bare name (a boolean
// attribute, stored with an empty value) or name=value with the value
// optionally double-quoted. The input may be the full "[...]" line or just
// its inner text. Entries that trim to nothing are dropped.
func ParseAttrList(bracketed string) map[string]string {
	inner := stripOuter(strings.TrimSpace(bracketed), '[', ']')

	attrs := make(map[string]string)
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		eq := strings.IndexByte(part, '=')
		if eq < 0 {
			attrs[part] = ""
			continue
		}
		key := strings.TrimSpace(part[:eq])
		val := stripOuter(strings.TrimSpace(part[eq+1:]), '"', '"')
		attrs[key] = val
	}
	return attrs
}

// stripOuter removes one matching pair of surrounding characters from the
// trimmed string, if present.
func stripOuter(s string, a, b byte) string {
	t := strings.TrimSpace(s)
	if len(t) >= 2 && t[0] == a && t[len(t)-1] == b {
		return t[1 : len(t)-1]
	}
	return t
}
