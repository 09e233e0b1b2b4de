package topology

import (
	"errors"
	"testing"
)

func TestScanAttrs(t *testing.T) {
	m, err := scanAttrs(`type=host name="Host 1" up=True mtu=1500`)
	if err != nil {
		t.Fatal(err)
	}
	if v := m["type"]; v.Kind() != ValueString || v.String() != "host" {
		t.Errorf("type: got %v (%d), want string host", v, v.Kind())
	}
	if v := m["name"]; v.Kind() != ValueString || v.String() != "Host 1" {
		t.Errorf("name: got %v (%d), want string \"Host 1\"", v, v.Kind())
	}
	if b, ok := m["up"].Bool(); !ok || !b {
		t.Errorf("up: got %v, want boolean True", m["up"])
	}
	if n, ok := m["mtu"].Int(); !ok || n != 1500 {
		t.Errorf("mtu: got %v, want number 1500", m["mtu"])
	}
}

// Booleans are case-sensitive: anything but True and False stays a string.
func TestScanAttrsBoolCase(t *testing.T) {
	m, err := scanAttrs(`up=true`)
	if err != nil {
		t.Fatal(err)
	}
	if v := m["up"]; v.Kind() != ValueString || v.String() != "true" {
		t.Errorf("got %v (%d), want string true", v, v.Kind())
	}
}

func TestScanAttrsErrors(t *testing.T) {
	for _, bag := range []string{
		`type`,                // missing =value
		`type= name="x"`,      // missing value
		`name="unterminated`,  // unterminated quote
		`2type=host`,          // invalid key
		`type=host type=host`, // key given twice
	} {
		if _, err := scanAttrs(bag); !errors.Is(err, ErrSyntax) {
			t.Errorf("bag %q: got err=%v, want ErrSyntax", bag, err)
		}
	}
}

func TestScanLineShapes(t *testing.T) {
	for _, tt := range []struct {
		line string
		kind lineKind
	}{
		{`[type=host] a`, lineNode},
		{`a`, lineNode},
		{`[up=True] a:1`, linePort},
		{`a:1`, linePort},
		{`a:1 -- b:2`, lineLink},
		{`a:1--b:2`, lineLink},
	} {
		l, err := scanLine(1, tt.line)
		if err != nil {
			t.Errorf("line %q: %v", tt.line, err)
			continue
		}
		if l.kind != tt.kind {
			t.Errorf("line %q: got kind %d, want %d", tt.line, l.kind, tt.kind)
		}
	}
}

func TestScanSkipsCommentsAndBlanks(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"# a comment",
		"   # indented comment",
		"# [type=p4switch name=\"Switch 2\"] sw2",
	} {
		l, err := scanLine(1, line)
		if err != nil {
			t.Errorf("line %q: %v", line, err)
		}
		if l != nil {
			t.Errorf("line %q: got declaration %v, want none", line, l)
		}
	}
}

func TestScanSyntaxErrors(t *testing.T) {
	for _, line := range []string{
		`[type=host a`,        // unterminated bag
		`[] a b`,              // trailing garbage after identifier
		`_a`,                  // invalid identifier
		`a:`,                  // missing port number
		`a:x`,                 // non-numeric port
		`a:-1`,                // negative port
		`a:1 --`,              // missing link endpoint
		`[up=True] a:1 -- b:1`, // attribute bag on a link
	} {
		_, err := scanLine(7, line)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("line %q: got err=%v, want ErrSyntax", line, err)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Line != 7 {
			t.Errorf("line %q: error does not carry line number 7: %v", line, err)
		}
	}
}

func TestParseReportsFirstOffendingLine(t *testing.T) {
	const doc = `
[type=host] a
this is no declaration
also not one
`
	_, err := Parse([]byte(doc))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got error of type %T, want *ParseError", err)
	}
	if perr.Line != 3 {
		t.Errorf("got line %d, want 3", perr.Line)
	}
}
