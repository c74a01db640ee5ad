// Command mdconvert converts Markdown files to flat indexable text, printed
// as one JSON document per input file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/docfold/mdconvert/internal/converter"
	"github.com/docfold/mdconvert/internal/document"
)

var cli struct {
	Paths []string `arg:"" name:"path" help:"Markdown files to convert." type:"existingfile"`

	Headlines   bool              `help:"Extract headings with offsets into meta."`
	KeepCode    bool              `help:"Keep code region contents in the output text."`
	Frontmatter bool              `help:"Merge front-matter fields into meta."`
	Encoding    string            `default:"utf-8" help:"Source encoding (IANA name)."`
	Meta        map[string]string `help:"Extra meta key=value pairs."`
	IDHashKeys  []string          `name:"id-hash-keys" help:"Fields hashed into the document ID (content, meta)."`
	Concurrency int               `short:"c" default:"4" help:"Number of parallel conversions."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("mdconvert"),
		kong.Description("Convert Markdown files to flat indexable text."),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	conv := converter.New(converter.Options{
		RemoveCodeSnippets:   !cli.KeepCode,
		ExtractHeadlines:     cli.Headlines,
		AddFrontmatterToMeta: cli.Frontmatter,
		IDHashKeys:           cli.IDHashKeys,
		Encoding:             cli.Encoding,
	})

	var call converter.CallOptions
	if len(cli.Meta) > 0 {
		meta := make(map[string]any, len(cli.Meta))
		for k, v := range cli.Meta {
			meta[k] = v
		}
		call.Meta = meta
	}

	// Each conversion is independent, so files fan out to a bounded group
	// while output stays in input order.
	results := make([][]document.Document, len(cli.Paths))
	g := new(errgroup.Group)
	g.SetLimit(cli.Concurrency)
	for i, path := range cli.Paths {
		i, path := i, path
		g.Go(func() error {
			docs, err := conv.Convert(path, call)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	for _, docs := range results {
		for _, d := range docs {
			out := map[string]any{
				"id":      d.ID(),
				"content": d.Content,
				"meta":    d.Meta,
			}
			if err := enc.Encode(out); err != nil {
				return err
			}
		}
	}
	return nil
}
