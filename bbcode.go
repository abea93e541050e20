// Package bbcode converts a restricted BBCode markup ([b], [i],
// [color=...]) submitted by untrusted users into safe HTML.
//
// The converter enforces caller-chosen resource limits so that
// adversarial input cannot exhaust the stack or memory: input size is
// checked before tokenization, tag nesting is bounded by MaxDepth, and
// the total number of tag constructs is bounded by MaxTags.
//
// Basic usage:
//
//	htmlOut, err := bbcode.Convert("[b]Bold[/b]", bbcode.DefaultOptions())
//	// htmlOut == "<b>Bold</b>"
//
// Malformed markup never fails the whole document: mismatched closes,
// unknown tags and rejected attribute values all degrade to literal
// text preserving the original bytes. Only the resource limits and a
// '[' that matches no grammar rule abort a parse, and every such
// failure is reported as an *Error carrying the offending location.
//
// Parse, Render and Convert are pure functions of their inputs; the
// only process-wide state is the immutable tag registry, so concurrent
// calls need no locking.
package bbcode

import (
	"github.com/bbkit/bbcode/parser"
	"github.com/bbkit/bbcode/render"
	"github.com/bbkit/bbcode/syntax"
)

// Version is the library version.
const Version = "0.1.0"

// Re-export the core types so callers only need this package.
type (
	// Node is one node of the parsed AST: either *Text or *Element.
	Node = parser.Node
	// Text is a literal text node.
	Text = parser.Text
	// Element is a structural tag node.
	Element = parser.Element
	// Attr is a key/value attribute pair on an Element.
	Attr = parser.Attr
	// Options bounds the cost of a single parse.
	Options = parser.Options
	// Error is the error type returned by Parse and Convert.
	Error = parser.Error
	// ErrorKind describes the type of an Error.
	ErrorKind = parser.ErrorKind
	// Span is a half-open byte range into the original input.
	Span = syntax.Span
)

const (
	ErrSyntax            = parser.ErrSyntax
	ErrInputSizeExceeded = parser.ErrInputSizeExceeded
	ErrTagCountExceeded  = parser.ErrTagCountExceeded
	ErrNestDepthExceeded = parser.ErrNestDepthExceeded
)

// DefaultOptions returns the default limits: depth 3, 500 tags, 50 KiB.
func DefaultOptions() Options {
	return parser.DefaultOptions()
}

// Parse builds the normalized AST for input. On error no partial AST is
// returned.
func Parse(input string, opts Options) ([]Node, error) {
	return parser.Parse(input, opts)
}

// Render produces HTML for a parsed AST. It is total: it never fails,
// and it re-validates tags and attribute values defensively.
func Render(nodes []Node) string {
	return render.HTML(nodes)
}

// Convert parses input and renders it to HTML in one step.
func Convert(input string, opts Options) (string, error) {
	nodes, err := parser.Parse(input, opts)
	if err != nil {
		return "", err
	}
	return render.HTML(nodes), nil
}
