package parser

// Options bounds the cost of a single parse. Each call gets its own
// Options value; there is no shared mutable state between calls.
type Options struct {
	// MaxDepth is the deepest allowed tag nesting. The root is depth
	// zero, so MaxDepth of 1 permits top-level tags only.
	MaxDepth int
	// MaxTags bounds how many tag constructs (including unclosed
	// tags) one parse may contain.
	MaxTags int
	// MaxInputSize bounds the input length in bytes, checked before
	// tokenization.
	MaxInputSize int
}

// DefaultOptions returns the default limits.
func DefaultOptions() Options {
	return Options{
		MaxDepth:     3,
		MaxTags:      500,
		MaxInputSize: 50 * 1024,
	}
}
