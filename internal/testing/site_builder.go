package testing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/necroplankton/sitecfg/internal/siteconfig"
)

// Site is a website fixture on disk, laid out like a generator project:
//
//	<dir>/docs/*.md
//	<dir>/website/siteConfig.yaml
//	<dir>/website/sidebars.json
//	<dir>/website/static/...
type Site struct {
	Dir          string
	ConfigPath   string
	DocsDir      string
	SidebarsPath string
	AssetsDir    string
}

type fixtureDoc struct {
	file, id, title string
}

// SiteBuilder provides a fluent interface for creating site fixtures.
type SiteBuilder struct {
	t       *testing.T
	config  siteconfig.Config
	docs    []fixtureDoc
	sidebar []string
	assets  []string
}

// NewSiteBuilder starts from the example configuration with no documents
// and no assets.
func NewSiteBuilder(t *testing.T) *SiteBuilder {
	return &SiteBuilder{t: t, config: siteconfig.Example()}
}

// WithConfig edits the configuration written to siteConfig.yaml.
func (sb *SiteBuilder) WithConfig(mutate func(*siteconfig.Config)) *SiteBuilder {
	mutate(&sb.config)
	return sb
}

// WithDoc adds a document with front matter id and title, stored under file
// (relative to the docs directory).
func (sb *SiteBuilder) WithDoc(file, id, title string) *SiteBuilder {
	sb.docs = append(sb.docs, fixtureDoc{file: file, id: id, title: title})
	return sb
}

// WithSidebar lists ids in the "Chapters" category of the docs sidebar.
func (sb *SiteBuilder) WithSidebar(ids ...string) *SiteBuilder {
	sb.sidebar = append(sb.sidebar, ids...)
	return sb
}

// WithAsset adds a file under the static assets directory.
func (sb *SiteBuilder) WithAsset(rel string) *SiteBuilder {
	sb.assets = append(sb.assets, rel)
	return sb
}

// WithBookFixture adds the chapters and assets the example configuration
// refers to.
func (sb *SiteBuilder) WithBookFixture() *SiteBuilder {
	return sb.
		WithDoc("Introduction Why Lisp.md", "introduction-why-lisp", "Introduction: Why Lisp?").
		WithDoc("Functions.md", "functions", "Functions").
		WithSidebar("introduction-why-lisp", "functions").
		WithAsset("img/common-lisp.svg").
		WithAsset("img/book.gif")
}

// Build writes the fixture into a fresh temporary directory.
func (sb *SiteBuilder) Build() *Site {
	sb.t.Helper()
	dir := sb.t.TempDir()
	s := &Site{
		Dir:          dir,
		ConfigPath:   filepath.Join(dir, "website", "siteConfig.yaml"),
		DocsDir:      filepath.Join(dir, "docs"),
		SidebarsPath: filepath.Join(dir, "website", "sidebars.json"),
		AssetsDir:    filepath.Join(dir, "website", "static"),
	}

	data, err := yaml.Marshal(&sb.config)
	if err != nil {
		sb.t.Fatalf("Failed to marshal config: %v", err)
	}
	sb.write(s.ConfigPath, data)

	if err := os.MkdirAll(s.DocsDir, testDirPermissions); err != nil {
		sb.t.Fatalf("Failed to create docs dir: %v", err)
	}
	for _, d := range sb.docs {
		body := "---\nid: " + d.id + "\ntitle: " + quote(d.title) + "\n---\n\nText.\n"
		sb.write(filepath.Join(s.DocsDir, filepath.FromSlash(d.file)), []byte(body))
	}

	if len(sb.sidebar) > 0 {
		sidebars, err := json.Marshal(map[string]map[string][]string{"docs": {"Chapters": sb.sidebar}})
		if err != nil {
			sb.t.Fatalf("Failed to marshal sidebars: %v", err)
		}
		sb.write(s.SidebarsPath, sidebars)
	}

	for _, a := range sb.assets {
		sb.write(filepath.Join(s.AssetsDir, filepath.FromSlash(a)), []byte("asset"))
	}
	return s
}

func (sb *SiteBuilder) write(path string, data []byte) {
	sb.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), testDirPermissions); err != nil {
		sb.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, testFilePermissions); err != nil {
		sb.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
