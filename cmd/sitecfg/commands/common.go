package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/necroplankton/sitecfg/internal/content"
	ferrors "github.com/necroplankton/sitecfg/internal/foundation/errors"
	"github.com/necroplankton/sitecfg/internal/logfields"
	"github.com/necroplankton/sitecfg/internal/metrics"
	"github.com/necroplankton/sitecfg/internal/siteconfig"
)

// Global is shared state handed to every command's Run.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site configuration file" default:"siteConfig.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" default:"1" help:"Load and validate the site configuration"`
	Export   ExportCmd   `cmd:"" help:"Write siteConfig.js / siteConfig.json for the site generator"`
	Init     InitCmd     `cmd:"" help:"Write an example site configuration"`
	Docs     DocsCmd     `cmd:"" help:"List the document ids header links may reference"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ContentFlags locate the docs, sidebars and static assets the configuration
// refers to. Each check is skipped when its flag is empty.
type ContentFlags struct {
	Docs     string `help:"Docs directory; header link docs must exist here" type:"path"`
	Sidebars string `help:"sidebars.json; its ids must exist in the docs directory" type:"path"`
	Assets   string `help:"Static assets directory icons and images resolve against" type:"path"`
}

// catalog discovers the docs directory and cross-checks the sidebars. It
// returns nil when no docs directory was given.
func (f ContentFlags) catalog() (*content.Catalog, error) {
	if f.Docs == "" {
		if f.Sidebars != "" {
			return nil, ferrors.ValidationError("--sidebars requires --docs").Build()
		}
		return nil, nil
	}
	cat, err := content.Discover(f.Docs)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryContent, "discover documents").
			WithContext(logfields.KeyPath, f.Docs).Build()
	}
	if f.Sidebars == "" {
		return cat, nil
	}
	sb, err := content.ReadSidebars(f.Sidebars)
	if err == nil {
		err = cat.CheckSidebars(sb)
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryContent, "check sidebars").
			WithContext(logfields.KeyPath, f.Sidebars).Build()
	}
	return cat, nil
}

// watchPaths lists the inputs a reload depends on.
func (f ContentFlags) watchPaths(configPath string) []string {
	paths := []string{configPath}
	for _, p := range []string{f.Docs, f.Sidebars, f.Assets} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// loadSite builds the catalog and the site configuration, classifying
// failures for the CLI error adapter.
func loadSite(g *Global, root *CLI, f ContentFlags, rec metrics.Recorder) (*siteconfig.Config, *content.Catalog, error) {
	cat, err := f.catalog()
	if err != nil {
		if rec != nil {
			rec.IncLoadOutcome(metrics.OutcomeError)
		}
		return nil, nil, err
	}

	opts := []siteconfig.Option{siteconfig.WithLogger(g.logger()), siteconfig.WithRecorder(rec)}
	if cat != nil {
		opts = append(opts, siteconfig.WithDocuments(cat))
		if rec != nil {
			rec.SetCatalogDocuments(cat.Len())
		}
	}
	if f.Assets != "" {
		opts = append(opts, siteconfig.WithAssetsDir(f.Assets))
	}

	cfg, err := siteconfig.Load(root.Config, opts...)
	if err != nil {
		return nil, nil, classifyLoadError(err, root.Config)
	}
	if (cfg.EnableUpdateBy || cfg.EnableUpdateTime) && f.Docs != "" {
		warnUntracked(g, f.Docs)
	}
	return cfg, cat, nil
}

// warnUntracked flags update metadata the generator cannot compute because
// the docs are not under git.
func warnUntracked(g *Global, docs string) {
	tracked, err := content.TrackedByGit(docs)
	switch {
	case err != nil:
		g.logger().Warn("Cannot inspect docs repository", logfields.Path(docs), logfields.Error(err))
	case !tracked:
		g.logger().Warn("enableUpdateBy/enableUpdateTime set but docs are not in a git repository", logfields.Path(docs))
	}
}

func classifyLoadError(err error, configPath string) error {
	b := ferrors.ConfigError(err, "load site configuration").
		WithContext(logfields.KeyPath, configPath)
	if ce, ok := siteconfig.AsConfigurationError(err); ok {
		b = b.WithContext(logfields.KeyField, ce.Field)
	}
	return b.Build()
}
