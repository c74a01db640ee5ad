package converter

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// splitFrontmatter separates a leading front-matter block (YAML or TOML)
// from the Markdown body. Sources without front-matter come back with empty
// metadata and the body untouched.
func splitFrontmatter(src string) (map[string]any, []byte, error) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(strings.NewReader(src), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("parse front-matter: %w", err)
	}
	return meta, body, nil
}
