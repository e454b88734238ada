package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/necroplankton/sitecfg/internal/frontmatter"
	"github.com/necroplankton/sitecfg/internal/logfields"
	"github.com/necroplankton/sitecfg/internal/markdown"
)

// Discover walks dir for Markdown documents and builds the catalog.
func Discover(dir string) (*Catalog, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve docs directory %s: %w", dir, err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDocsDirNotFound, dir)
	}

	c := &Catalog{docs: make(map[string]Document)}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdownFile(d.Name()) {
			return nil
		}

		doc, err := readDocument(root, path)
		if err != nil {
			return err
		}
		if prev, dup := c.docs[doc.ID]; dup {
			return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateID, doc.ID, prev.RelativePath, doc.RelativePath)
		}
		c.docs[doc.ID] = doc
		slog.Debug("Discovered document", logfields.DocID(doc.ID), logfields.File(doc.RelativePath))
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Content catalog built", logfields.Path(root), logfields.Documents(len(c.docs)))
	return c, nil
}

func readDocument(root, path string) (Document, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Document{}, fmt.Errorf("relative path for %s: %w", path, err)
	}
	rel = filepath.ToSlash(rel)

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", rel, err)
	}
	header, body, err := frontmatter.Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("front matter of %s: %w", rel, err)
	}

	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	id := stem
	if header.ID != "" {
		id = header.ID
		if dir := filepath.ToSlash(filepath.Dir(rel)); dir != "." {
			id = dir + "/" + header.ID
		}
	}

	title := header.Title
	if title == "" {
		title = markdown.FirstHeading(body)
	}
	if title == "" {
		title = fallbackTitle(filepath.Base(stem))
	}

	return Document{
		ID:           id,
		Title:        title,
		SidebarLabel: header.SidebarLabel,
		Path:         path,
		RelativePath: rel,
	}, nil
}

func isMarkdownFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

// fallbackTitle turns "functions-and-macros" into "Functions And Macros".
func fallbackTitle(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}
