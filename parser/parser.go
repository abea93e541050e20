package parser

import (
	"errors"
	"strings"

	"github.com/bbkit/bbcode/lexer"
	"github.com/bbkit/bbcode/syntax"
	"github.com/bbkit/bbcode/tags"
)

// Parse tokenizes input and builds the normalized AST, enforcing the
// limits in opts. On error no partial AST is returned.
func Parse(input string, opts Options) ([]Node, error) {
	if len(input) > opts.MaxInputSize {
		return nil, newSizeError(opts.MaxInputSize, len(input))
	}

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		var se *lexer.SyntaxError
		if errors.As(err, &se) {
			end := se.Offset + 1
			if end > len(input) {
				end = len(input)
			}
			span := syntax.Span{Start: se.Offset, End: end}
			return nil, newSyntaxError(se.Message, span, input)
		}
		return nil, err
	}

	blocks, rest := matchBlocks(tokens, 0)
	if rest < len(tokens) {
		// A close tag no open block claims cannot be matched by any
		// grammar rule.
		return nil, newSyntaxError("unexpected closing tag", tokens[rest].Span, input)
	}

	b := &builder{input: input, opts: opts}
	nodes, err := b.buildNodes(blocks, 0)
	if err != nil {
		return nil, err
	}
	return normalize(nodes), nil
}

// blockKind discriminates the concrete parse-tree nodes produced by
// matchBlocks, mirroring the grammar's content alternatives.
type blockKind int

const (
	blockTag      blockKind = iota // balanced open/close construct
	blockUnclosed                  // open tag with no reachable close
	blockEscaped                   // "\[" escape
	blockText                      // literal run
)

// block is one node of the concrete parse tree. For blockTag the span
// covers the whole construct including both tags.
type block struct {
	kind      blockKind
	open      lexer.Token // open tag for blockTag and blockUnclosed
	closeName string      // close tag name for blockTag, as written
	children  []block
	span      syntax.Span
}

// matchBlocks resolves open/close pairing over the token stream,
// starting at token index i. It stops at a close tag (returning its
// index so the caller can claim it) or at end of input.
//
// The pairing follows the grammar's ordered-choice semantics: the first
// close tag encountered terminates the innermost open block whatever
// its name says (name agreement is checked later, at AST level), and an
// open tag whose block never finds a close degrades in place to an
// unclosed tag, with the speculatively parsed children spliced into the
// parent sequence. The splice is exactly what re-parsing after
// backtracking would produce, without the rescan.
func matchBlocks(tokens []lexer.Token, i int) ([]block, int) {
	var nodes []block
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Type {
		case lexer.TokenCloseTag:
			return nodes, i
		case lexer.TokenOpenTag:
			children, j := matchBlocks(tokens, i+1)
			if j < len(tokens) {
				closeTok := tokens[j]
				nodes = append(nodes, block{
					kind:      blockTag,
					open:      tok,
					closeName: closeTok.Name,
					children:  children,
					span:      syntax.Span{Start: tok.Span.Start, End: closeTok.Span.End},
				})
				i = j + 1
			} else {
				nodes = append(nodes, block{kind: blockUnclosed, open: tok, span: tok.Span})
				nodes = append(nodes, children...)
				i = j
			}
		case lexer.TokenEscapedBracket:
			nodes = append(nodes, block{kind: blockEscaped, span: tok.Span})
			i++
		default:
			nodes = append(nodes, block{kind: blockText, span: tok.Span})
			i++
		}
	}
	return nodes, i
}

// builder walks the concrete parse tree and produces AST nodes,
// accounting for the depth and tag-count budgets.
type builder struct {
	input    string
	opts     Options
	tagCount int
}

func (b *builder) buildNodes(blocks []block, depth int) ([]Node, error) {
	var out []Node
	for _, blk := range blocks {
		nodes, err := b.buildNode(blk, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func (b *builder) buildNode(blk block, depth int) ([]Node, error) {
	switch blk.kind {
	case blockTag:
		return b.buildTag(blk, depth)
	case blockUnclosed:
		// An unterminated tag degrades locally to its own literal
		// text, but still consumes a unit of the tag budget.
		if err := b.onTag(); err != nil {
			return nil, err
		}
		return b.literal(blk.span), nil
	case blockEscaped:
		return []Node{NewText("[", blk.span)}, nil
	default:
		return b.literal(blk.span), nil
	}
}

func (b *builder) buildTag(blk block, depth int) ([]Node, error) {
	if depth+1 > b.opts.MaxDepth {
		return nil, newDepthError(b.opts.MaxDepth, blk.span.Slice(b.input), blk.span, b.input)
	}
	if err := b.onTag(); err != nil {
		return nil, err
	}

	openName := strings.ToLower(blk.open.Name)

	// Open/close name disagreement abandons the structural reading:
	// the whole block, close tag included, becomes literal text, and
	// its contents are never recursed into.
	if openName != strings.ToLower(blk.closeName) {
		return b.literal(blk.span), nil
	}

	// Unknown tags are never partially structured either.
	spec, ok := tags.Lookup(openName)
	if !ok {
		return b.literal(blk.span), nil
	}

	// Children are built before the block's own attribute is
	// validated, so a limit violation inside a block that ends up
	// rejected still aborts the parse. Conservative on purpose.
	children, err := b.buildNodes(blk.children, depth+1)
	if err != nil {
		return nil, err
	}

	if blk.open.HasValue && !spec.AllowValueAttr {
		return b.literal(blk.span), nil
	}
	if blk.open.HasValue && !spec.ValidValue(blk.open.Value) {
		return b.literal(blk.span), nil
	}

	el := NewElement(openName, blk.span).WithChildren(children...)
	if blk.open.HasValue {
		el.WithAttr("value", strings.TrimSpace(blk.open.Value))
	}
	return []Node{el}, nil
}

// onTag consumes one unit of the tag budget.
func (b *builder) onTag() error {
	b.tagCount++
	if b.tagCount > b.opts.MaxTags {
		return newTagCountError(b.opts.MaxTags)
	}
	return nil
}

// literal returns a text node byte-identical to the covered source.
func (b *builder) literal(span syntax.Span) []Node {
	return []Node{NewText(span.Slice(b.input), span)}
}

// normalize merges consecutive sibling text nodes recursively at every
// level. The merged span takes the first node's start and the last
// node's end.
func normalize(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nodes
	}
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if el, ok := n.(*Element); ok {
			el.Children = normalize(el.Children)
			out = append(out, el)
			continue
		}
		t := n.(*Text)
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(*Text); ok {
				prev.Text += t.Text
				prev.span.End = t.span.End
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
