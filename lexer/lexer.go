package lexer

import (
	"fmt"

	"github.com/bbkit/bbcode/syntax"
)

// SyntaxError reports a '[' (or what follows it) that cannot be matched
// by any grammar rule.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at byte %d", e.Message, e.Offset)
}

// Lexer scans BBCode source into tokens.
type Lexer struct {
	source string
	pos    int
	start  int // start of the token being scanned
}

// New creates a Lexer for the given input.
func New(source string) *Lexer {
	return &Lexer{source: source}
}

// Tokenize scans the whole input and returns its tokens.
func Tokenize(source string) ([]Token, error) {
	l := New(source)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			break
		}
		tokens = append(tokens, *tok)
	}
	return tokens, nil
}

// Next returns the next token, or nil at end of input.
func (l *Lexer) Next() (*Token, error) {
	if l.pos >= len(l.source) {
		return nil, nil
	}
	l.start = l.pos

	switch {
	case l.hasPrefix(`\[`):
		l.pos += 2
		tok := l.makeToken(TokenEscapedBracket)
		tok.Value = "["
		return tok, nil
	case l.source[l.pos] == '[':
		return l.scanTag()
	default:
		return l.scanText(), nil
	}
}

// scanTag scans "[name]", "[name=value]" or "[/name]". The opening
// bracket has already been seen at l.start.
func (l *Lexer) scanTag() (*Token, error) {
	l.pos++ // consume '['

	closing := false
	if l.pos < len(l.source) && l.source[l.pos] == '/' {
		closing = true
		l.pos++
	}

	name := l.scanName()
	if name == "" {
		return nil, l.errorf("unmatched '[' with no valid tag")
	}

	tok := &Token{Name: name}
	if closing {
		tok.Type = TokenCloseTag
	} else {
		tok.Type = TokenOpenTag
		if l.pos < len(l.source) && l.source[l.pos] == '=' {
			l.pos++
			tok.Value = l.scanValue()
			tok.HasValue = true
		}
	}

	if l.pos >= len(l.source) || l.source[l.pos] != ']' {
		return nil, l.errorf("unterminated tag")
	}
	l.pos++ // consume ']'
	tok.Span = l.span()
	return tok, nil
}

// scanName consumes one or more ASCII letters.
func (l *Lexer) scanName() string {
	start := l.pos
	for l.pos < len(l.source) && isAlpha(l.source[l.pos]) {
		l.pos++
	}
	return l.source[start:l.pos]
}

// scanValue consumes attribute value characters: anything except ']'
// and newlines. A newline before the closing bracket leaves the tag
// unterminated.
func (l *Lexer) scanValue() string {
	start := l.pos
	for l.pos < len(l.source) {
		c := l.source[l.pos]
		if c == ']' || c == '\n' || c == '\r' {
			break
		}
		l.pos++
	}
	return l.source[start:l.pos]
}

// scanText consumes characters up to the next construct that could be a
// tag or an escaped bracket. A lone backslash is plain text.
func (l *Lexer) scanText() *Token {
	for l.pos < len(l.source) {
		if l.source[l.pos] == '[' {
			break
		}
		if l.source[l.pos] == '\\' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '[' {
			break
		}
		l.pos++
	}
	tok := l.makeToken(TokenText)
	tok.Value = l.source[l.start:l.pos]
	return tok
}

func (l *Lexer) makeToken(t TokenType) *Token {
	return &Token{Type: t, Span: l.span()}
}

func (l *Lexer) span() syntax.Span {
	return syntax.Span{Start: l.start, End: l.pos}
}

func (l *Lexer) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: l.start, Message: fmt.Sprintf(format, args...)}
}

func (l *Lexer) hasPrefix(p string) bool {
	return l.pos+len(p) <= len(l.source) && l.source[l.pos:l.pos+len(p)] == p
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
