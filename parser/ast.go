// Package parser builds a normalized BBCode AST from tokenized input,
// enforcing the configured depth, tag-count and input-size limits.
package parser

import "github.com/bbkit/bbcode/syntax"

// Node is the interface implemented by all AST nodes.
type Node interface {
	node()
	Span() syntax.Span
}

// Text is literal content: either genuine prose or the reconstructed
// fallback of originally-malformed markup. In the fallback case Text is
// byte-identical to the source slice the span covers.
type Text struct {
	Text string
	span syntax.Span
}

func (t *Text) node()             {}
func (t *Text) Span() syntax.Span { return t.span }

// NewText creates a text node.
func NewText(text string, span syntax.Span) *Text {
	return &Text{Text: text, span: span}
}

// Attr is a single key/value attribute pair. The parser only ever
// populates the "value" key, for tags like [color=red].
type Attr struct {
	Key   string
	Value string
}

// Element is a structural tag with its children. Name is always stored
// lowercase; the span covers the entire construct including the open
// and close tags.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
	span     syntax.Span
}

func (e *Element) node()             {}
func (e *Element) Span() syntax.Span { return e.span }

// NewElement creates an element node with no attributes or children.
func NewElement(name string, span syntax.Span) *Element {
	return &Element{Name: name, span: span}
}

// WithAttr appends an attribute and returns the element.
func (e *Element) WithAttr(key, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

// WithChildren sets the element's children and returns the element.
func (e *Element) WithChildren(children ...Node) *Element {
	e.Children = children
	return e
}

// Attr returns the value of the named attribute, if present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
