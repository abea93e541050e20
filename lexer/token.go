// Package lexer tokenizes BBCode markup.
//
// The lexer performs a single linear scan and produces spanned tokens;
// matching open and close tags into blocks is the parser's job. A '['
// that cannot begin any recognized construct is a hard error, the only
// malformation the grammar refuses outright.
package lexer

import "github.com/bbkit/bbcode/syntax"

// TokenType represents the type of a token.
type TokenType int

const (
	// TokenText is a run of literal characters.
	TokenText TokenType = iota
	// TokenOpenTag is "[name]" or "[name=value]".
	TokenOpenTag
	// TokenCloseTag is "[/name]".
	TokenCloseTag
	// TokenEscapedBracket is "\[", standing for a literal "[".
	TokenEscapedBracket
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenOpenTag:
		return "open tag"
	case TokenCloseTag:
		return "close tag"
	case TokenEscapedBracket:
		return "escaped bracket"
	default:
		return "token"
	}
}

// Token is a single lexeme with its source location.
type Token struct {
	Type TokenType
	Name string // tag name as written, for open and close tags
	// Value is the raw attribute value after "=" for open tags, valid
	// only when HasValue is set. The value may be empty: "[color=]"
	// lexes fine and is rejected later by the tag's policy.
	Value    string
	HasValue bool
	Span     syntax.Span
}
