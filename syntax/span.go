// Package syntax provides source location types shared by the lexer,
// parser and error reporting.
package syntax

import "unicode/utf8"

// Span is a half-open byte range [Start, End) into the original input.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Slice returns the substring of source covered by the span.
func (s Span) Slice(source string) string { return source[s.Start:s.End] }

// LineCol converts a byte offset into a 1-based line and column. Lines
// are delimited by '\n'; the column counts Unicode scalar values, not
// bytes, so a multi-byte character before the offset advances it by one.
func LineCol(source string, offset int) (line, col int) {
	if offset > len(source) {
		offset = len(source)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col = utf8.RuneCountInString(source[lineStart:offset]) + 1
	return line, col
}
