// Package render turns a BBCode AST into HTML.
//
// Rendering is total: it never fails, and it re-validates tag names and
// attribute values against the registry so that even a hand-built or
// corrupted AST cannot produce unsafe output.
package render

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/bbkit/bbcode/parser"
	"github.com/bbkit/bbcode/tags"
)

// newlineToBr normalizes line endings and turns them into <br>.
// Argument order matters: "\r\n" must win over "\r".
var newlineToBr = strings.NewReplacer("\r\n", "<br>", "\r", "<br>", "\n", "<br>")

// HTML renders the nodes to an HTML string.
func HTML(nodes []parser.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		writeNode(&sb, n)
	}
	return sb.String()
}

// WriteHTML renders the nodes to w. The only possible error is from the
// writer itself.
func WriteHTML(w io.Writer, nodes []parser.Node) error {
	_, err := io.WriteString(w, HTML(nodes))
	return err
}

func writeNode(sb *strings.Builder, n parser.Node) {
	switch n := n.(type) {
	case *parser.Text:
		sb.WriteString(newlineToBr.Replace(html.EscapeString(n.Text)))
	case *parser.Element:
		writeElement(sb, n)
	}
}

func writeElement(sb *strings.Builder, el *parser.Element) {
	spec, known := tags.Lookup(el.Name)
	if !known {
		// The parser never emits unknown elements; if one shows up
		// anyway, drop the tag and keep the content.
		writeChildren(sb, el)
		return
	}

	switch strings.ToLower(el.Name) {
	case "b":
		sb.WriteString("<b>")
		writeChildren(sb, el)
		sb.WriteString("</b>")
	case "i":
		sb.WriteString("<i>")
		writeChildren(sb, el)
		sb.WriteString("</i>")
	case "color":
		value, ok := el.Attr("value")
		if !ok || !spec.ValidValue(value) {
			// Missing or no-longer-valid value: drop the styling,
			// keep the content.
			writeChildren(sb, el)
			return
		}
		sb.WriteString(`<span style="color:`)
		sb.WriteString(html.EscapeString(value))
		sb.WriteString(`">`)
		writeChildren(sb, el)
		sb.WriteString("</span>")
	default:
		writeChildren(sb, el)
	}
}

func writeChildren(sb *strings.Builder, el *parser.Element) {
	for _, c := range el.Children {
		writeNode(sb, c)
	}
}
