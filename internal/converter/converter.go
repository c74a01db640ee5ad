// Package converter turns Markdown files into flat plain-text documents
// suitable for indexing: front-matter split, Markdown rendered to markup,
// optional code-region removal, then a single tree walk producing the text
// and an optional heading index aligned to offsets in it.
package converter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"github.com/docfold/mdconvert/internal/document"
	"github.com/docfold/mdconvert/internal/markup"
)

// Options are the converter-level defaults applied to every call.
type Options struct {
	RemoveCodeSnippets   bool     // drop <pre>/<code> regions from the text
	ExtractHeadlines     bool     // record headings with offsets under meta "headlines"
	AddFrontmatterToMeta bool     // merge front-matter fields into meta
	IDHashKeys           []string // fields hashed into the document ID
	Encoding             string   // IANA encoding name of source files
}

// DefaultOptions matches the documented defaults of the convert entry point.
func DefaultOptions() Options {
	return Options{
		RemoveCodeSnippets: true,
		Encoding:           "utf-8",
	}
}

// CallOptions override the converter's defaults for a single call. Nil
// fields leave the corresponding default in place.
type CallOptions struct {
	Meta                 map[string]any
	Encoding             *string
	IDHashKeys           []string
	RemoveCodeSnippets   *bool
	ExtractHeadlines     *bool
	AddFrontmatterToMeta *bool
}

// Converter converts Markdown documents. Zero state is shared between
// calls, so a single Converter is safe for concurrent use.
type Converter struct {
	opts Options
}

func New(opts Options) *Converter {
	if opts.Encoding == "" {
		opts.Encoding = "utf-8"
	}
	return &Converter{opts: opts}
}

// Convert reads the file at path and produces exactly one document. The
// result is a slice for uniformity with batch-style converters. File access
// errors propagate; undecodable bytes are dropped, never reported.
func (c *Converter) Convert(path string, call CallOptions) ([]document.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.ConvertBytes(raw, filepath.Base(path), call)
}

// ConvertBytes converts in-memory Markdown source; filename only feeds the
// "filename" meta key and the returned document's identity.
func (c *Converter) ConvertBytes(raw []byte, filename string, call CallOptions) ([]document.Document, error) {
	opts := c.opts.merge(call)

	src, err := decode(raw, opts.Encoding)
	if err != nil {
		return nil, err
	}

	fmMeta, body, err := splitFrontmatter(src)
	if err != nil {
		return nil, err
	}

	rendered, err := render(body)
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	if opts.RemoveCodeSnippets {
		rendered = stripCodeRegions(rendered)
	}

	root, err := html.Parse(bytes.NewReader(rendered))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	// Meta assembly order matters: front-matter overwrites caller keys,
	// headlines get their own key, filename is set last and always wins.
	var meta map[string]any
	if call.Meta != nil {
		meta = make(map[string]any, len(call.Meta)+2)
		for k, v := range call.Meta {
			meta[k] = v
		}
	}
	if opts.AddFrontmatterToMeta {
		if meta == nil {
			meta = fmMeta
		} else {
			for k, v := range fmMeta {
				meta[k] = v
			}
		}
	}

	var text string
	if opts.ExtractHeadlines {
		var headlines []markup.Headline
		text, headlines = markup.Flatten(root)
		if meta == nil {
			meta = map[string]any{}
		}
		meta["headlines"] = headlines
	} else {
		text = markup.Text(root)
	}

	if meta == nil {
		meta = map[string]any{}
	}
	meta["filename"] = filepath.Base(filename)

	doc := document.Document{
		Content:    text,
		Meta:       meta,
		IDHashKeys: opts.IDHashKeys,
	}
	return []document.Document{doc}, nil
}

func (o Options) merge(call CallOptions) Options {
	if call.RemoveCodeSnippets != nil {
		o.RemoveCodeSnippets = *call.RemoveCodeSnippets
	}
	if call.ExtractHeadlines != nil {
		o.ExtractHeadlines = *call.ExtractHeadlines
	}
	if call.AddFrontmatterToMeta != nil {
		o.AddFrontmatterToMeta = *call.AddFrontmatterToMeta
	}
	if call.IDHashKeys != nil {
		o.IDHashKeys = call.IDHashKeys
	}
	if call.Encoding != nil {
		o.Encoding = *call.Encoding
	}
	return o
}
