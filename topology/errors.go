package topology

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal parse failures wrap one of these sentinel errors. Use errors.Is to
// test for a particular failure class.
var (
	ErrSyntax        = errors.New("syntax error")
	ErrDuplicateNode = errors.New("duplicate node")
	ErrUnknownNode   = errors.New("unknown node")
	ErrDuplicatePort = errors.New("conflicting port declaration")
	ErrDuplicateLink = errors.New("duplicate link")
	ErrSelfLink      = errors.New("self-link")
)

// A ParseError reports a fatal problem with a topology description.
// Parsing stops at the first offending line.
type ParseError struct {
	Line int    // 1-indexed
	Text string // offending line, leading/trailing space stripped
	Err  error  // wraps one of the sentinel errors above
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

func errAt(l *rawLine, err error) error {
	return &ParseError{
		Line: l.num,
		Text: strings.TrimSpace(l.text),
		Err:  err,
	}
}
