package commands

import (
	"errors"
	"fmt"

	ferrors "github.com/necroplankton/sitecfg/internal/foundation/errors"
	"github.com/necroplankton/sitecfg/internal/logfields"
	"github.com/necroplankton/sitecfg/internal/siteconfig"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	_, _ = fmt.Fprintf(g.out(), "Writing example configuration to %s\n", root.Config)
	if err := siteconfig.Init(root.Config, i.Force); err != nil {
		b := ferrors.FileSystemError(err, "initialize configuration")
		if errors.Is(err, siteconfig.ErrConfigExists) {
			b = ferrors.WrapError(err, ferrors.CategoryValidation, "initialize configuration")
		}
		return b.WithContext(logfields.KeyPath, root.Config).Build()
	}
	return nil
}
