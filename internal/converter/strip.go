package converter

import "regexp"

// Dot-all so a region may span newlines; non-greedy so prose between two
// code regions survives.
var (
	preRegion  = regexp.MustCompile(`(?s)<pre>(.*?)</pre>`)
	codeRegion = regexp.MustCompile(`(?s)<code>(.*?)</code>`)
)

// stripCodeRegions removes every <pre> and <code> region from rendered HTML,
// replacing each with a single space. No matches is a no-op.
func stripCodeRegions(html []byte) []byte {
	html = preRegion.ReplaceAll(html, []byte(" "))
	html = codeRegion.ReplaceAll(html, []byte(" "))
	return html
}
