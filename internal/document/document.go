// Package document defines the output unit of a conversion and its stable
// identity.
package document

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Hashable field names accepted in IDHashKeys.
const (
	HashKeyContent = "content"
	HashKeyMeta    = "meta"
)

// Document is one converted source file: flattened text plus metadata.
type Document struct {
	Content    string         `json:"content"`
	Meta       map[string]any `json:"meta"`
	IDHashKeys []string       `json:"id_hash_keys,omitempty"`
}

// ID returns a stable hex identifier derived from the fields named by
// IDHashKeys. With no keys set, the content alone determines the ID, so two
// documents with identical text collide; callers that need them distinct
// include "meta" in the keys.
func (d Document) ID() string {
	keys := d.IDHashKeys
	if len(keys) == 0 {
		keys = []string{HashKeyContent}
	}

	h := xxhash.New()
	for _, key := range keys {
		switch key {
		case HashKeyContent:
			_, _ = h.WriteString(d.Content)
		case HashKeyMeta:
			_, _ = h.WriteString(metaFingerprint(d.Meta))
		}
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// metaFingerprint renders meta in deterministic key order so the hash does
// not depend on map iteration.
func metaFingerprint(meta map[string]any) string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for _, k := range keys {
		out += fmt.Sprintf("%s=%v;", k, meta[k])
	}
	return out
}
