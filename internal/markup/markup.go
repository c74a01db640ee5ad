// Package markup flattens a rendered markup tree into plain text while
// indexing headings by their position in that text.
package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Headline is one heading encountered during flattening.
type Headline struct {
	Headline string `json:"headline"`
	StartIdx int    `json:"start_idx"`
	Level    int    `json:"level"`
}

// Flatten walks the tree under n in document order and returns the
// concatenated text of all text nodes plus one Headline per h1..h6 element,
// at any nesting depth. A heading is recorded before its descendant text
// nodes are visited, so StartIdx is the byte offset in the returned text at
// which the heading's own text begins. StartIdx values are non-decreasing.
func Flatten(n *html.Node) (string, []Headline) {
	var text strings.Builder
	headlines := []Headline{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if level, ok := headingLevel(n.Data); ok {
				headlines = append(headlines, Headline{
					Headline: Text(n),
					StartIdx: text.Len(),
					Level:    level,
				})
			}
		case html.TextNode:
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return text.String(), headlines
}

// Text returns the concatenated text of all text nodes under n.
func Text(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// headingLevel maps h1..h6 to 0-based levels.
func headingLevel(tag string) (int, bool) {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '1'), true
	}
	return 0, false
}
