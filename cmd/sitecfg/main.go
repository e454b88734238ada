package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/necroplankton/sitecfg/cmd/sitecfg/commands"
	ferrors "github.com/necroplankton/sitecfg/internal/foundation/errors"
	"github.com/necroplankton/sitecfg/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("sitecfg"),
		kong.Description("Load, validate and export the documentation site configuration."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	err := parser.Run(&commands.Global{Logger: slog.Default(), Stdout: os.Stdout}, &cli)
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
