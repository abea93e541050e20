package parser

import (
	"fmt"

	"github.com/bbkit/bbcode/syntax"
)

// ErrorKind describes the type of error.
type ErrorKind int

const (
	// ErrSyntax means the tokenizer could not match the grammar at
	// all, e.g. an unmatched '[' with no valid continuation.
	ErrSyntax ErrorKind = iota
	// ErrInputSizeExceeded means the input was rejected before
	// tokenization because it is larger than MaxInputSize.
	ErrInputSizeExceeded
	// ErrTagCountExceeded means more than MaxTags tag constructs were
	// encountered during tree construction.
	ErrTagCountExceeded
	// ErrNestDepthExceeded means a tag block would nest deeper than
	// MaxDepth.
	ErrNestDepthExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrInputSizeExceeded:
		return "input size exceeded"
	case ErrTagCountExceeded:
		return "tag count exceeded"
	case ErrNestDepthExceeded:
		return "nest depth exceeded"
	default:
		return "error"
	}
}

// Error is the error type returned by Parse. Which fields are populated
// depends on Kind: Limit and Actual for ErrInputSizeExceeded, Limit for
// ErrTagCountExceeded, Limit, Near, Span, Line and Column for
// ErrNestDepthExceeded, and Span, Line and Column for ErrSyntax.
type Error struct {
	Kind    ErrorKind
	Message string
	Span    *syntax.Span
	Line    int    // 1-based
	Column  int    // 1-based, counted in Unicode scalar values
	Limit   int    // the configured limit that was exceeded
	Actual  int    // observed input size for ErrInputSizeExceeded
	Near    string // offending source text for ErrNestDepthExceeded
}

func (e *Error) Error() string {
	if e.Span != nil {
		return fmt.Sprintf("%s: %s (at line %d, column %d)", e.Kind, e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newSizeError(limit, actual int) *Error {
	return &Error{
		Kind:    ErrInputSizeExceeded,
		Message: fmt.Sprintf("input is %d bytes, limit is %d", actual, limit),
		Limit:   limit,
		Actual:  actual,
	}
}

func newTagCountError(limit int) *Error {
	return &Error{
		Kind:    ErrTagCountExceeded,
		Message: fmt.Sprintf("more than %d tags", limit),
		Limit:   limit,
	}
}

func newDepthError(limit int, near string, span syntax.Span, source string) *Error {
	line, col := syntax.LineCol(source, span.Start)
	return &Error{
		Kind:    ErrNestDepthExceeded,
		Message: fmt.Sprintf("nesting deeper than %d near %q", limit, near),
		Span:    &span,
		Line:    line,
		Column:  col,
		Limit:   limit,
		Near:    near,
	}
}

func newSyntaxError(msg string, span syntax.Span, source string) *Error {
	line, col := syntax.LineCol(source, span.Start)
	return &Error{
		Kind:    ErrSyntax,
		Message: msg,
		Span:    &span,
		Line:    line,
		Column:  col,
	}
}
