package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "github.com/necroplankton/sitecfg/internal/foundation/errors"
	"github.com/necroplankton/sitecfg/internal/logfields"
	"github.com/necroplankton/sitecfg/internal/metrics"
	"github.com/necroplankton/sitecfg/internal/watch"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	ContentFlags `embed:""`

	Watch       bool   `short:"w" help:"Re-validate whenever the configuration, docs or assets change"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile-collector format after each run" type:"path"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	var (
		rec metrics.Recorder = metrics.NoopRecorder{}
		reg *prom.Registry
	)
	if v.MetricsFile != "" {
		reg = prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
	}

	runOnce := func(context.Context) error {
		err := v.validate(g, root, rec)
		if reg != nil {
			if werr := metrics.WriteTextfile(v.MetricsFile, reg); werr != nil {
				g.logger().Warn("Failed to write metrics file", logfields.Path(v.MetricsFile), logfields.Error(werr))
			}
		}
		return err
	}

	if !v.Watch {
		return runOnce(context.Background())
	}

	if err := runOnce(context.Background()); err != nil {
		_, _ = fmt.Fprintln(g.out(), ferrors.NewCLIErrorAdapter(root.Verbose, g.logger()).FormatError(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w, err := watch.New(v.watchPaths(root.Config), watch.DefaultDebounce, runOnce)
	if err != nil {
		return ferrors.FileSystemError(err, "start watcher").Build()
	}
	g.logger().Info("Watching for changes", logfields.Path(root.Config))
	return w.Run(ctx)
}

func (v *ValidateCmd) validate(g *Global, root *CLI, rec metrics.Recorder) error {
	cfg, cat, err := loadSite(g, root, v.ContentFlags, rec)
	if err != nil {
		return err
	}
	docs := "not checked"
	if cat != nil {
		docs = fmt.Sprintf("%d documents", cat.Len())
	}
	_, _ = fmt.Fprintf(g.out(), "%s: valid (%s, %d header links, docs %s)\n",
		root.Config, cfg.Title, len(cfg.HeaderLinks), docs)
	return nil
}
