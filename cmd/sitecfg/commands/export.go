package commands

import (
	"fmt"

	ferrors "github.com/necroplankton/sitecfg/internal/foundation/errors"
	"github.com/necroplankton/sitecfg/internal/generator"
	"github.com/necroplankton/sitecfg/internal/logfields"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	ContentFlags `embed:""`

	Output string `short:"o" required:"" help:"Directory to write siteConfig.js / siteConfig.json into" type:"path"`
	Format string `short:"f" default:"all" enum:"js,json,all" help:"Output format (js, json or all)"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	formats, err := generator.ParseFormats(e.Format)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid --format").Build()
	}

	cfg, _, err := loadSite(g, root, e.ContentFlags, nil)
	if err != nil {
		return err
	}

	paths, err := generator.Write(cfg, e.Output, formats...)
	if err != nil {
		return ferrors.ExportError(err, "export site configuration").
			WithContext(logfields.KeyPath, e.Output).Build()
	}
	for _, p := range paths {
		_, _ = fmt.Fprintf(g.out(), "wrote %s\n", p)
	}
	return nil
}
