package lexer

import (
	"errors"
	"testing"

	"github.com/bbkit/bbcode/syntax"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tokens []Token
	}{
		{
			name:   "empty input",
			input:  "",
			tokens: nil,
		},
		{
			name:  "plain text",
			input: "hello world",
			tokens: []Token{
				{Type: TokenText, Value: "hello world", Span: syntax.Span{Start: 0, End: 11}},
			},
		},
		{
			name:  "simple block",
			input: "[b]Bold[/b]",
			tokens: []Token{
				{Type: TokenOpenTag, Name: "b", Span: syntax.Span{Start: 0, End: 3}},
				{Type: TokenText, Value: "Bold", Span: syntax.Span{Start: 3, End: 7}},
				{Type: TokenCloseTag, Name: "b", Span: syntax.Span{Start: 7, End: 11}},
			},
		},
		{
			name:  "open tag with value",
			input: "[color=red]",
			tokens: []Token{
				{Type: TokenOpenTag, Name: "color", Value: "red", HasValue: true, Span: syntax.Span{Start: 0, End: 11}},
			},
		},
		{
			name:  "empty value is grammatical",
			input: "[color=]",
			tokens: []Token{
				{Type: TokenOpenTag, Name: "color", Value: "", HasValue: true, Span: syntax.Span{Start: 0, End: 8}},
			},
		},
		{
			name:  "value keeps punctuation",
			input: "[color=javascript:alert(1)]",
			tokens: []Token{
				{Type: TokenOpenTag, Name: "color", Value: "javascript:alert(1)", HasValue: true, Span: syntax.Span{Start: 0, End: 27}},
			},
		},
		{
			name:  "casing is preserved",
			input: "[B][/B]",
			tokens: []Token{
				{Type: TokenOpenTag, Name: "B", Span: syntax.Span{Start: 0, End: 3}},
				{Type: TokenCloseTag, Name: "B", Span: syntax.Span{Start: 3, End: 7}},
			},
		},
		{
			name:  "escaped bracket",
			input: `a\[b`,
			tokens: []Token{
				{Type: TokenText, Value: "a", Span: syntax.Span{Start: 0, End: 1}},
				{Type: TokenEscapedBracket, Value: "[", Span: syntax.Span{Start: 1, End: 3}},
				{Type: TokenText, Value: "b", Span: syntax.Span{Start: 3, End: 4}},
			},
		},
		{
			name:  "lone backslash is text",
			input: `a\b`,
			tokens: []Token{
				{Type: TokenText, Value: `a\b`, Span: syntax.Span{Start: 0, End: 3}},
			},
		},
		{
			name:  "trailing backslash is text",
			input: `a\`,
			tokens: []Token{
				{Type: TokenText, Value: `a\`, Span: syntax.Span{Start: 0, End: 2}},
			},
		},
		{
			name:  "multibyte text before tag",
			input: "あ[b]",
			tokens: []Token{
				{Type: TokenText, Value: "あ", Span: syntax.Span{Start: 0, End: 3}},
				{Type: TokenOpenTag, Name: "b", Span: syntax.Span{Start: 3, End: 6}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			if len(tokens) != len(tt.tokens) {
				t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(tt.tokens), tokens)
			}
			for i, want := range tt.tokens {
				if tokens[i] != want {
					t.Errorf("token %d = %+v, want %+v", i, tokens[i], want)
				}
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"bare bracket at end", "[", 0},
		{"bracket then non-letter", "[!abc", 0},
		{"unterminated open tag", "[b", 0},
		{"unterminated close tag", "[/b", 0},
		{"close tag without name", "[/]", 0},
		{"digit in tag name", "[b2]", 0},
		{"newline inside value", "[color=re\nd]", 0},
		{"error after text", "abc[", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Tokenize(%q) succeeded, want syntax error", tt.input)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error type = %T, want *SyntaxError", err)
			}
			if se.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", se.Offset, tt.offset)
			}
		})
	}
}
