package topology

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Marshal renders t back into SZN text. Node and port declarations are
// emitted in identifier order with sorted attribute bags; links keep their
// declaration order. Parsing the result yields a topology equivalent to t.
func (t *T) Marshal() []byte {
	var buf bytes.Buffer
	for _, n := range t.Nodes() {
		if len(n.attrs) > 0 {
			fmt.Fprintf(&buf, "%s ", formatAttrs(n.attrs))
		}
		fmt.Fprintf(&buf, "%s\n", n.ID)
	}
	for _, n := range t.Nodes() {
		for _, p := range n.Ports() {
			if len(p.attrs) == 0 {
				continue
			}
			fmt.Fprintf(&buf, "%s %s\n", formatAttrs(p.attrs), p.ID())
		}
	}
	for _, l := range t.Links() {
		fmt.Fprintf(&buf, "%s\n", l)
	}
	return buf.Bytes()
}

func formatAttrs(m attrs) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(formatValue(m[k]))
	}
	b.WriteByte(']')
	return b.String()
}

// formatValue renders v such that scanning it again yields the same Value.
// String values that would re-tokenize as booleans or numbers, or that
// would not survive as a bare token, get quoted.
func formatValue(v Value) string {
	if v.Kind() != ValueString {
		return v.String()
	}
	s := v.String()
	if isBareToken(s) && parseValue(s).Kind() == ValueString {
		return s
	}
	return `"` + s + `"`
}

func isBareToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '"', '[', ']':
			return false
		}
	}
	return true
}
