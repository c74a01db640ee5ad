package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docfold/mdconvert/internal/document"
)

func TestDocumentID(t *testing.T) {
	t.Parallel()

	t.Run("same content yields same ID", func(t *testing.T) {
		t.Parallel()

		a := document.Document{Content: "hello"}
		b := document.Document{Content: "hello", Meta: map[string]any{"filename": "x.md"}}

		assert.Equal(t, a.ID(), b.ID())
	})

	t.Run("meta participates when requested", func(t *testing.T) {
		t.Parallel()

		a := document.Document{
			Content:    "hello",
			Meta:       map[string]any{"filename": "a.md"},
			IDHashKeys: []string{document.HashKeyContent, document.HashKeyMeta},
		}
		b := document.Document{
			Content:    "hello",
			Meta:       map[string]any{"filename": "b.md"},
			IDHashKeys: []string{document.HashKeyContent, document.HashKeyMeta},
		}

		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("meta hash is order independent", func(t *testing.T) {
		t.Parallel()

		a := document.Document{
			Meta:       map[string]any{"x": 1, "y": 2, "z": 3},
			IDHashKeys: []string{document.HashKeyMeta},
		}
		b := document.Document{
			Meta:       map[string]any{"z": 3, "y": 2, "x": 1},
			IDHashKeys: []string{document.HashKeyMeta},
		}

		assert.Equal(t, a.ID(), b.ID())
	})

	t.Run("different content yields different ID", func(t *testing.T) {
		t.Parallel()

		a := document.Document{Content: "hello"}
		b := document.Document{Content: "goodbye"}

		assert.NotEqual(t, a.ID(), b.ID())
	})
}
