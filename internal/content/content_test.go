package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func bookDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeDoc(t, dir, "Introduction Why Lisp.md", "---\nid: introduction-why-lisp\ntitle: \"Introduction: Why Lisp?\"\n---\n\nIf you think the greatest pleasure...\n")
	writeDoc(t, dir, "functions.md", "# Functions\n\nAfter the rules of syntax...\n")
	writeDoc(t, dir, "loop-for-black-belts.markdown", "No heading here.\n")
	writeDoc(t, dir, "appendix/reader.md", "---\nid: reader\nsidebar_label: Reader\n---\n## The Reader\n")
	writeDoc(t, dir, ".drafts/unfinished.md", "---\nid: unfinished\n---\n")
	writeDoc(t, dir, ".hidden.md", "---\nid: hidden\n---\n")
	writeDoc(t, dir, "img/cover.png", "PNG")
	return dir
}

func TestDiscover(t *testing.T) {
	c, err := Discover(bookDir(t))
	require.NoError(t, err)

	require.Equal(t, []string{
		"appendix/reader",
		"functions",
		"introduction-why-lisp",
		"loop-for-black-belts",
	}, c.IDs())
	require.Equal(t, 4, c.Len())

	require.True(t, c.HasDocument("introduction-why-lisp"))
	require.False(t, c.HasDocument("Introduction Why Lisp"))
	require.False(t, c.HasDocument("unfinished"))
	require.False(t, c.HasDocument("hidden"))

	tests := []struct {
		id, title string
	}{
		{"introduction-why-lisp", "Introduction: Why Lisp?"},
		{"functions", "Functions"},
		{"loop-for-black-belts", "Loop For Black Belts"},
		{"appendix/reader", "The Reader"},
	}
	for _, tt := range tests {
		doc, ok := c.Lookup(tt.id)
		require.True(t, ok, tt.id)
		require.Equal(t, tt.title, doc.Title, tt.id)
	}

	reader, _ := c.Lookup("appendix/reader")
	require.Equal(t, "Reader", reader.SidebarLabel)
	require.Equal(t, "appendix/reader.md", reader.RelativePath)
}

func TestDiscover_DuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.md", "---\nid: functions\n---\n")
	writeDoc(t, dir, "functions.md", "# Functions\n")

	_, err := Discover(dir)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, ErrDocsDirNotFound)
}

func TestDiscover_BrokenFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "broken.md", "---\nid: broken\n")
	_, err := Discover(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.md")
}

func TestSidebars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sidebars.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"docs":{"Chapters":["introduction-why-lisp","functions"]}}`), 0o644))

	sb, err := ReadSidebars(path)
	require.NoError(t, err)
	require.Equal(t, []string{"introduction-why-lisp", "functions"}, sb["docs"]["Chapters"])

	require.NoError(t, NewStaticCatalog("introduction-why-lisp", "functions").CheckSidebars(sb))

	err = NewStaticCatalog("functions").CheckSidebars(sb)
	require.ErrorIs(t, err, ErrUnknownDocument)
	require.Contains(t, err.Error(), "introduction-why-lisp")
}

func TestReadSidebars_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sidebars.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"docs":["flat"]}`), 0o644))

	_, err := ReadSidebars(path)
	require.ErrorIs(t, err, ErrInvalidSidebars)

	_, err = ReadSidebars(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, ErrInvalidSidebars)
}

func TestStaticCatalog(t *testing.T) {
	c := NewStaticCatalog("variables", "macros-defining-your-own")
	require.Equal(t, []string{"macros-defining-your-own", "variables"}, c.IDs())
	doc, ok := c.Lookup("macros-defining-your-own")
	require.True(t, ok)
	require.Equal(t, "Macros Defining Your Own", doc.Title)

	var nilCatalog *Catalog
	require.False(t, nilCatalog.HasDocument("variables"))
	require.Empty(t, nilCatalog.Documents())
}
