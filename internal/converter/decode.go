package converter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// decode converts raw file bytes to a UTF-8 string using the named encoding
// (IANA registry name, default utf-8). Undecodable input is dropped rather
// than reported; an unknown encoding name is a caller error and propagates.
func decode(raw []byte, name string) (string, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return strings.ToValidUTF8(string(raw), ""), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", fmt.Errorf("unknown encoding %q", name)
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}

	// The decoder substitutes U+FFFD for undecodable input; drop those to
	// keep the lossy policy consistent with the utf-8 path.
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError {
			return -1
		}
		return r
	}, string(out)), nil
}
