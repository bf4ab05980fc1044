package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/leandoc/pkg/ldast"
)

// urlSchemes are the prefixes recognized by the autolink rule.
var urlSchemes = []string{"http:", "https:", "ftp:", "irc:", "mailto:"}

// emphMarkers lists the paired formatting markers in match order. Double
// markers precede their single forms so the longer pair wins. Entries
// with raw set keep the enclosed text verbatim instead of rescanning it.
var emphMarkers = []struct {
	marker string
	kind   ldast.NodeKind
	name   string
	raw    bool
}{
	{"**", ldast.NodeEmphasis, "bold", false},
	{"*", ldast.NodeEmphasis, "bold", false},
	{"__", ldast.NodeEmphasis, "italic", false},
	{"_", ldast.NodeEmphasis, "italic", false},
	{"``", ldast.NodeEmphasis, "mono", false},
	{"`", ldast.NodeEmphasis, "mono", true},
	{"#", ldast.NodeEmphasis, "highlight", false},
	{"^", ldast.NodeSuperscript, "", true},
	{"~", ldast.NodeSubscript, "", true},
}

// ScanInline splits one logical line of text into inline nodes: attribute
// references, cross references, inline anchors, autolinks, inline macros,
// formatting pairs, and passthroughs. Anything that does not complete a
// recognized form stays in the output as literal text, so the scan never
// fails. Every node is positioned at column 1 of lineNo.
func ScanInline(s string, lineNo int) []*ldast.Node {
	var (
		out []*ldast.Node
		acc strings.Builder
	)
	flush := func() {
		if acc.Len() == 0 {
			return
		}
		t := ldast.NewNodeAt(ldast.NodeText, lineNo)
		t.Text = acc.String()
		out = append(out, t)
		acc.Reset()
	}

	i := 0
	for i < len(s) {
		// Attribute reference: {name}
		if s[i] == '{' {
			if inner, next, ok := pairSpan(s, i, "{", "}"); ok {
				flush()
				n := ldast.NewNodeAt(ldast.NodeAttributeReference, lineNo)
				n.Name = strings.TrimSpace(inner)
				out = append(out, n)
				i = next
				continue
			}
		}

		// Cross reference: <<target>> or <<target,label>>
		if strings.HasPrefix(s[i:], "<<") {
			if inner, next, ok := pairSpan(s, i, "<<", ">>"); ok {
				flush()
				x := ldast.NewNodeAt(ldast.NodeCrossReference, lineNo)
				if target, label, found := strings.Cut(inner, ","); found {
					x.Target = strings.TrimSpace(target)
					x.Children = ScanInline(strings.TrimSpace(label), lineNo)
				} else {
					x.Target = strings.TrimSpace(inner)
				}
				out = append(out, x)
				i = next
				continue
			}
		}

		// Inline anchor: [[id]] or [[id,label]]
		if strings.HasPrefix(s[i:], "[[") {
			if inner, next, ok := pairSpan(s, i, "[[", "]]"); ok {
				flush()
				a := ldast.NewNodeAt(ldast.NodeInlineAnchor, lineNo)
				if id, label, found := strings.Cut(inner, ","); found {
					a.Name = strings.TrimSpace(id)
					a.Children = ScanInline(strings.TrimSpace(label), lineNo)
				} else {
					a.Name = strings.TrimSpace(inner)
				}
				out = append(out, a)
				i = next
				continue
			}
		}

		// Autolink: scheme plus enough of a path to be worth linking.
		if hasURLScheme(s[i:]) {
			j := i
			for j < len(s) {
				r, size := utf8.DecodeRuneInString(s[j:])
				if unicode.IsSpace(r) || r == '[' || r == ']' {
					break
				}
				j += size
			}
			if utf8.RuneCountInString(s[i:j]) > 5 {
				flush()
				l := ldast.NewNodeAt(ldast.NodeLink, lineNo)
				l.Target = s[i:j]
				out = append(out, l)
				i = j
				continue
			}
		}

		// Inline macro: name:target[content]. The target may be empty,
		// as in kbd:[Ctrl+C], and may contain spaces.
		if rel := strings.IndexByte(s[i:], ':'); rel > 0 {
			colonAt := i + rel
			if isMacroName(s[i:colonAt]) {
				if lb := strings.IndexByte(s[colonAt+1:], '['); lb >= 0 {
					lbAt := colonAt + 1 + lb
					if rb := strings.IndexByte(s[lbAt+1:], ']'); rb >= 0 {
						rbAt := lbAt + 1 + rb
						flush()
						m := ldast.NewNodeAt(ldast.NodeInlineMacro, lineNo)
						m.Name = s[i:colonAt]
						m.Target = s[colonAt+1 : lbAt]
						m.Children = ScanInline(s[lbAt+1:rbAt], lineNo)
						out = append(out, m)
						i = rbAt + 1
						continue
					}
				}
			}
		}

		// Formatting pairs: bold, italic, mono, highlight, sup, sub.
		if n, next, ok := scanFormatting(s, i, lineNo); ok {
			flush()
			out = append(out, n)
			i = next
			continue
		}

		// Passthrough: +text+, ++text++ or +++text+++.
		if s[i] == '+' {
			plusN := 1
			for i+plusN < len(s) && s[i+plusN] == '+' {
				plusN++
			}
			if plusN <= 3 {
				fence := s[i : i+plusN]
				if inner, next, ok := pairSpan(s, i, fence, fence); ok {
					flush()
					p := ldast.NewNodeAt(ldast.NodePassthrough, lineNo)
					p.SetAttr("plusN", strconv.Itoa(plusN))
					p.Children = ScanInline(inner, lineNo)
					out = append(out, p)
					i = next
					continue
				}
			}
		}

		_, size := utf8.DecodeRuneInString(s[i:])
		acc.WriteString(s[i : i+size])
		i += size
	}

	flush()
	return out
}

// scanFormatting tries the paired formatting markers at byte offset i.
// A pair whose closing marker is missing does not match; a shorter form
// of the same marker may still match behind it.
func scanFormatting(s string, i, lineNo int) (*ldast.Node, int, bool) {
	for _, em := range emphMarkers {
		if !strings.HasPrefix(s[i:], em.marker) {
			continue
		}
		inner, next, ok := pairSpan(s, i, em.marker, em.marker)
		if !ok {
			continue
		}
		n := ldast.NewNodeAt(em.kind, lineNo)
		n.Name = em.name
		if em.raw {
			n.Text = inner
		} else {
			n.Children = ScanInline(inner, lineNo)
		}
		return n, next, true
	}
	return nil, 0, false
}

// pairSpan locates the nearest closing marker for an opening marker at
// byte offset i. It reports the enclosed text and the offset just past
// the closing marker. ok is false when the closing marker is missing or
// the enclosed text would be empty.
func pairSpan(s string, i int, opening, closing string) (inner string, next int, ok bool) {
	start := i + len(opening)
	if start >= len(s) {
		return "", 0, false
	}
	j := strings.Index(s[start:], closing)
	if j <= 0 {
		return "", 0, false
	}
	return s[start : start+j], start + j + len(closing), true
}

func hasURLScheme(s string) bool {
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}

// isMacroName reports whether s can name an inline macro: letters,
// digits, '_' and '-' only.
func isMacroName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}
