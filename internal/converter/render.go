package converter

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// render turns Markdown source into HTML using goldmark. Fenced code blocks
// are part of goldmark's CommonMark core, so code regions always arrive as
// <pre><code> spans for the stripper.
func render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
