package entryio

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("entry syntax error")

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Msg  string
	err  error
}

func (e *ParseError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() []error {
	if e.err != nil {
		return []error{ErrSyntax, e.err}
	}
	return []error{ErrSyntax}
}
