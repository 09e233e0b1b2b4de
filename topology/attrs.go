package topology

import "strconv"

// A Value is an attribute value taken from a declaration's [key=value ...]
// bag. Values are tagged: quoted tokens stay strings, True and False
// (case-sensitive) become booleans and bare decimal integers become
// numbers. Everything else is kept as a string.
type Value struct {
	kind ValueKind
	s    string
	b    bool
	n    int64
}

// ValueKind discriminates the variants of a Value.
type ValueKind int

const (
	ValueNone ValueKind = iota // zero Value, attribute not present
	ValueString
	ValueBool
	ValueNumber
)

// StringValue returns a Value holding s.
func StringValue(s string) Value { return Value{kind: ValueString, s: s} }

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// NumberValue returns a Value holding n.
func NumberValue(n int64) Value { return Value{kind: ValueNumber, n: n} }

// Kind returns the variant stored in v.
func (v Value) Kind() ValueKind { return v.kind }

// IsZero reports whether v is the zero Value, i.e. no attribute present.
func (v Value) IsZero() bool { return v.kind == ValueNone }

// String returns the textual form of v, matching the input syntax: True or
// False for booleans, decimal digits for numbers and the raw text for
// strings.
func (v Value) String() string {
	switch v.kind {
	case ValueBool:
		if v.b {
			return "True"
		}
		return "False"
	case ValueNumber:
		return strconv.FormatInt(v.n, 10)
	}
	return v.s
}

// Bool returns the boolean stored in v. The second return value is false
// unless v holds a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == ValueBool }

// Int returns the number stored in v. The second return value is false
// unless v holds a number.
func (v Value) Int() (int64, bool) { return v.n, v.kind == ValueNumber }

// parseValue classifies a bare (unquoted) token.
func parseValue(tok string) Value {
	switch tok {
	case "True":
		return BoolValue(true)
	case "False":
		return BoolValue(false)
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return NumberValue(n)
	}
	return StringValue(tok)
}

type attrs map[string]Value

func (m attrs) str(key string) string {
	if v, ok := m[key]; ok {
		return v.String()
	}
	return ""
}
