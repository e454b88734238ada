package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/necroplankton/sitecfg/internal/content"
	ferrors "github.com/necroplankton/sitecfg/internal/foundation/errors"
	"github.com/necroplankton/sitecfg/internal/logfields"
)

// DocsCmd implements the 'docs' command.
type DocsCmd struct {
	Docs     string `default:"docs" help:"Docs directory" type:"path"`
	Sidebars string `help:"sidebars.json to cross-check" type:"path"`

	IDs []string `arg:"" optional:"" name:"id" help:"Only list these document ids"`
}

func (d *DocsCmd) Run(g *Global, _ *CLI) error {
	cat, err := ContentFlags{Docs: d.Docs, Sidebars: d.Sidebars}.catalog()
	if err != nil {
		return err
	}
	if cat.Len() == 0 {
		return ferrors.ContentError("no documents found").WithContext(logfields.KeyPath, d.Docs).Build()
	}

	docs := cat.Documents()
	if len(d.IDs) > 0 {
		docs = make([]content.Document, 0, len(d.IDs))
		for _, id := range d.IDs {
			doc, ok := cat.Lookup(id)
			if !ok {
				return ferrors.WrapError(fmt.Errorf("%w: %q", content.ErrUnknownDocument, id), ferrors.CategoryContent, "list documents").
					WithContext(logfields.KeyPath, d.Docs).Build()
			}
			docs = append(docs, doc)
		}
	}

	tw := tabwriter.NewWriter(g.out(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tFILE")
	for _, doc := range docs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", doc.ID, doc.Title, doc.RelativePath)
	}
	return tw.Flush()
}
