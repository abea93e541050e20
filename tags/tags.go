// Package tags defines the registry of structural BBCode tags and the
// validation policies for their value attributes.
//
// The registry is an immutable table: it is safe to consult from any
// number of goroutines concurrently. Adding a tag means adding one case
// to Lookup with its own allow/validate policy.
package tags

import (
	"regexp"
	"strings"
)

// Policy identifies how a tag's value attribute is validated. It is a
// closed set dispatched by switch rather than a stored function so the
// registry stays plain data.
type Policy int

const (
	// PolicyNone accepts any value.
	PolicyNone Policy = iota
	// PolicyColor accepts an alphabetic color keyword or a #RGB /
	// #RRGGBB hex triplet.
	PolicyColor
)

// Spec describes whether and how a tag accepts a value attribute, as in
// [color=red].
type Spec struct {
	AllowValueAttr bool
	Policy         Policy
}

// colorPattern matches an alphabetic keyword or # followed by exactly 3
// or exactly 6 hex digits. Scheme-like values such as "javascript:..."
// do not match.
var colorPattern = regexp.MustCompile(`^([A-Za-z]+|#[0-9A-Fa-f]{3}([0-9A-Fa-f]{3})?)$`)

// Lookup returns the spec for a tag name. The name is lowercased before
// the lookup, so "B" and "b" resolve to the same spec. The second result
// is false for tags the registry does not know.
func Lookup(name string) (Spec, bool) {
	switch strings.ToLower(name) {
	case "b", "i":
		return Spec{}, true
	case "color":
		return Spec{AllowValueAttr: true, Policy: PolicyColor}, true
	}
	return Spec{}, false
}

// ValidValue reports whether value passes the spec's policy. The value
// is trimmed of surrounding whitespace before matching.
func (s Spec) ValidValue(value string) bool {
	switch s.Policy {
	case PolicyColor:
		return colorPattern.MatchString(strings.TrimSpace(value))
	default:
		return true
	}
}
