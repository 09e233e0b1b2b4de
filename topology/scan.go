package topology

import (
	"fmt"
	"strings"
)

type lineKind int

const (
	lineNode lineKind = iota
	linePort
	lineLink
)

// A rawLine is a single tokenized declaration, before cross-line
// resolution.
type rawLine struct {
	num  int
	text string
	kind lineKind

	attrs attrs  // node and port declarations
	id    string // node declarations
	port  PortID // port declarations
	a, b  PortID // link declarations
}

// scan tokenizes a topology description into declarations, dropping
// comment and blank lines. It stops at the first malformed line.
func scan(text string) ([]*rawLine, error) {
	var ls []*rawLine
	for i, s := range strings.Split(text, "\n") {
		l, err := scanLine(i+1, s)
		if err != nil {
			return nil, err
		}
		if l != nil {
			ls = append(ls, l)
		}
	}
	return ls, nil
}

// scanLine classifies one input line as a node, port or link declaration.
// The three shapes are distinguished by the tokens following the optional
// attribute bag: a link contains "--", a port reference contains ':' and a
// node declaration is a single identifier. Comment and blank lines yield a
// nil rawLine.
func scanLine(num int, text string) (*rawLine, error) {
	s := strings.TrimSpace(text)
	if s == "" || strings.HasPrefix(s, "#") {
		return nil, nil
	}
	l := &rawLine{num: num, text: text}

	rest := s
	if strings.HasPrefix(rest, "[") {
		// A quoted value may not contain ']', so the first one
		// terminates the bag.
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, errAt(l, fmt.Errorf("%w: unterminated attribute bag", ErrSyntax))
		}
		m, err := scanAttrs(rest[1:end])
		if err != nil {
			return nil, errAt(l, err)
		}
		l.attrs = m
		rest = strings.TrimSpace(rest[end+1:])
	}

	if parts := strings.SplitN(rest, "--", 2); len(parts) == 2 {
		if l.attrs != nil {
			return nil, errAt(l, fmt.Errorf("%w: link declarations take no attributes", ErrSyntax))
		}
		a, err := parsePortID(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errAt(l, err)
		}
		b, err := parsePortID(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errAt(l, err)
		}
		l.kind, l.a, l.b = lineLink, a, b
		return l, nil
	}
	if strings.ContainsRune(rest, ':') {
		p, err := parsePortID(rest)
		if err != nil {
			return nil, errAt(l, err)
		}
		l.kind, l.port = linePort, p
		return l, nil
	}
	if !isValidIdent(rest) {
		return nil, errAt(l, fmt.Errorf("%w: invalid node identifier %q", ErrSyntax, rest))
	}
	l.kind, l.id = lineNode, rest
	return l, nil
}

// scanAttrs parses the interior of a [key=value ...] bag. Values are bare
// tokens, double-quoted strings without embedded quotes, or booleans.
func scanAttrs(s string) (attrs, error) {
	m := make(attrs)
	i := 0
	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		for i < len(s) && s[i] != '=' && !isSpace(s[i]) {
			i++
		}
		if i >= len(s) || s[i] != '=' {
			return nil, fmt.Errorf("%w: expected key=value in attribute bag", ErrSyntax)
		}
		key := s[start:i]
		if !isValidIdent(key) {
			return nil, fmt.Errorf("%w: invalid attribute key %q", ErrSyntax, key)
		}
		i++ // consume '='
		if i >= len(s) || isSpace(s[i]) {
			return nil, fmt.Errorf("%w: missing value for attribute %q", ErrSyntax, key)
		}
		var v Value
		if s[i] == '"' {
			i++
			start = i
			for i < len(s) && s[i] != '"' {
				i++
			}
			if i >= len(s) {
				return nil, fmt.Errorf("%w: unterminated quoted value for %q", ErrSyntax, key)
			}
			v = StringValue(s[start:i])
			i++
		} else {
			start = i
			for i < len(s) && !isSpace(s[i]) {
				i++
			}
			v = parseValue(s[start:i])
		}
		if _, ok := m[key]; ok {
			return nil, fmt.Errorf("%w: attribute %q given twice", ErrSyntax, key)
		}
		m[key] = v
	}
	return m, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
