package commands

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/necroplankton/sitecfg/internal/content"
	ferrors "github.com/necroplankton/sitecfg/internal/foundation/errors"
	"github.com/necroplankton/sitecfg/internal/siteconfig"
	sitetest "github.com/necroplankton/sitecfg/internal/testing"
)

func bookSite(t *testing.T) *sitetest.Site {
	t.Helper()
	return sitetest.NewSiteBuilder(t).WithBookFixture().Build()
}

func flagsFor(s *sitetest.Site) ContentFlags {
	return ContentFlags{Docs: s.DocsDir, Sidebars: s.SidebarsPath, Assets: s.AssetsDir}
}

func testGlobal() (*Global, *bytes.Buffer) {
	var out bytes.Buffer
	return &Global{Logger: slog.New(slog.NewTextHandler(io.Discard, nil)), Stdout: &out}, &out
}

// report renders err the way main does and returns the exit code and message.
func report(err error) (int, string) {
	var msg bytes.Buffer
	adapter := ferrors.NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil))).WithOutput(&msg)
	return adapter.Report(err), msg.String()
}

func TestValidate_Success(t *testing.T) {
	s := bookSite(t)
	g, out := testGlobal()

	cmd := &ValidateCmd{ContentFlags: flagsFor(s)}
	require.NoError(t, cmd.Run(g, &CLI{Config: s.ConfigPath}))
	require.Contains(t, out.String(), "valid (Practical Common Lisp, 1 header links, docs 2 documents)")
}

func TestValidate_InvalidBaseURL(t *testing.T) {
	s := bookSite(t)
	sitetest.NewFileAssertions(t, s.Dir).ReplaceInFile("website/siteConfig.yaml", "baseUrl: /\n", "baseUrl: docs\n")

	g, _ := testGlobal()
	err := (&ValidateCmd{ContentFlags: flagsFor(s)}).Run(g, &CLI{Config: s.ConfigPath})
	require.ErrorIs(t, err, siteconfig.ErrInvalidConfiguration)

	code, msg := report(err)
	require.Equal(t, 7, code)
	require.Equal(t, "Error: load site configuration: invalid baseUrl \"docs\": baseUrl must start and end with '/'\n", msg)
}

func TestValidate_UnknownHeaderLinkDoc(t *testing.T) {
	s := bookSite(t)
	require.NoError(t, os.Remove(filepath.Join(s.DocsDir, "Introduction Why Lisp.md")))

	g, _ := testGlobal()
	flags := flagsFor(s)
	flags.Sidebars = ""
	err := (&ValidateCmd{ContentFlags: flags}).Run(g, &CLI{Config: s.ConfigPath})

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	field, _ := classified.Context().GetString("field")
	require.Equal(t, "headerLinks[0].doc", field)
}

func TestValidate_SidebarReferencesMissingDoc(t *testing.T) {
	s := bookSite(t)
	require.NoError(t, os.Remove(filepath.Join(s.DocsDir, "Functions.md")))

	g, _ := testGlobal()
	err := (&ValidateCmd{ContentFlags: flagsFor(s)}).Run(g, &CLI{Config: s.ConfigPath})
	code, msg := report(err)
	require.Equal(t, 9, code)
	require.Contains(t, msg, `"functions"`)
}

func TestValidate_SidebarsRequireDocs(t *testing.T) {
	s := bookSite(t)
	g, _ := testGlobal()
	err := (&ValidateCmd{ContentFlags: ContentFlags{Sidebars: flagsFor(s).Sidebars}}).Run(g, &CLI{Config: s.ConfigPath})
	code, _ := report(err)
	require.Equal(t, 2, code)
}

func TestValidate_MissingAsset(t *testing.T) {
	s := bookSite(t)
	require.NoError(t, os.Remove(filepath.Join(s.AssetsDir, "img", "book.gif")))

	g, _ := testGlobal()
	err := (&ValidateCmd{ContentFlags: flagsFor(s)}).Run(g, &CLI{Config: s.ConfigPath})
	ce, ok := siteconfig.AsConfigurationError(err)
	require.True(t, ok)
	require.Equal(t, "ogImage", ce.Field)
}

func TestValidate_MetricsFile(t *testing.T) {
	s := bookSite(t)
	metricsPath := filepath.Join(s.Dir, "sitecfg.prom")

	g, _ := testGlobal()
	cmd := &ValidateCmd{ContentFlags: flagsFor(s), MetricsFile: metricsPath}
	require.NoError(t, cmd.Run(g, &CLI{Config: s.ConfigPath}))

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `sitecfg_load_outcomes_total{outcome="success"} 1`)
	require.Contains(t, string(data), "sitecfg_catalog_documents 2")
}

func TestValidate_MissingConfig(t *testing.T) {
	g, _ := testGlobal()
	err := (&ValidateCmd{}).Run(g, &CLI{Config: filepath.Join(t.TempDir(), "siteConfig.yaml")})
	require.ErrorIs(t, err, siteconfig.ErrConfigNotFound)
	code, _ := report(err)
	require.Equal(t, 7, code)
}

func TestExport(t *testing.T) {
	s := bookSite(t)
	outDir := filepath.Join(s.Dir, "build")
	g, out := testGlobal()

	cmd := &ExportCmd{ContentFlags: flagsFor(s), Output: outDir, Format: "all"}
	require.NoError(t, cmd.Run(g, &CLI{Config: s.ConfigPath}))
	require.Contains(t, out.String(), filepath.Join(outDir, "siteConfig.js"))

	sitetest.NewFileAssertions(t, outDir).
		AssertFileContains("siteConfig.js", "module.exports = siteConfig;").
		AssertFileContains("siteConfig.json", `"title": "Practical Common Lisp"`)
}

func TestExport_InvalidConfigWritesNothing(t *testing.T) {
	s := bookSite(t)
	sitetest.NewFileAssertions(t, s.Dir).ReplaceInFile("website/siteConfig.yaml", "url: https://", "url: ")

	outDir := filepath.Join(s.Dir, "build")
	g, _ := testGlobal()
	err := (&ExportCmd{ContentFlags: flagsFor(s), Output: outDir, Format: "json"}).Run(g, &CLI{Config: s.ConfigPath})
	require.Error(t, err)
	require.NoFileExists(t, filepath.Join(outDir, "siteConfig.json"))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siteConfig.yaml")
	g, out := testGlobal()

	require.NoError(t, (&InitCmd{}).Run(g, &CLI{Config: path}))
	require.Contains(t, out.String(), path)

	code, _ := report((&InitCmd{}).Run(g, &CLI{Config: path}))
	require.Equal(t, 2, code)

	require.NoError(t, (&InitCmd{Force: true}).Run(g, &CLI{Config: path}))
}

func TestDocs(t *testing.T) {
	s := bookSite(t)
	g, out := testGlobal()

	require.NoError(t, (&DocsCmd{Docs: s.DocsDir}).Run(g, &CLI{}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "ID"))
	require.True(t, strings.HasPrefix(lines[1], "functions "))
	require.Contains(t, lines[2], "Introduction: Why Lisp?")
}

func TestDocs_SelectedIDs(t *testing.T) {
	s := bookSite(t)
	g, out := testGlobal()

	require.NoError(t, (&DocsCmd{Docs: s.DocsDir, IDs: []string{"functions"}}).Run(g, &CLI{}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "functions "))

	err := (&DocsCmd{Docs: s.DocsDir, IDs: []string{"macros"}}).Run(g, &CLI{})
	require.ErrorIs(t, err, content.ErrUnknownDocument)
	code, msg := report(err)
	require.Equal(t, 9, code)
	require.Contains(t, msg, `"macros"`)
}

func TestCLIParsing(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"-c", "site.yaml", "export", "-o", "out", "--format", "json", "--docs", "docs"})
	require.NoError(t, err)
	require.Equal(t, "export", ctx.Command())
	require.Equal(t, "json", cli.Export.Format)
	require.Equal(t, "docs", filepath.Base(cli.Export.Docs))
	require.Equal(t, "site.yaml", filepath.Base(cli.Config))

	_, err = parser.Parse([]string{"docs", "functions", "variables"})
	require.NoError(t, err)
	require.Equal(t, []string{"functions", "variables"}, cli.Docs.IDs)

	_, err = parser.Parse([]string{"export", "-o", "out", "--format", "toml"})
	require.Error(t, err)
}

func TestValidate_UpdateMetadataWithoutGitWarns(t *testing.T) {
	s := sitetest.NewSiteBuilder(t).
		WithBookFixture().
		WithConfig(func(c *siteconfig.Config) { c.EnableUpdateTime = true }).
		Build()

	var logs bytes.Buffer
	g, _ := testGlobal()
	g.Logger = slog.New(slog.NewTextHandler(&logs, nil))

	require.NoError(t, (&ValidateCmd{ContentFlags: flagsFor(s)}).Run(g, &CLI{Config: s.ConfigPath}))
	require.Contains(t, logs.String(), "docs are not in a git repository")
}
