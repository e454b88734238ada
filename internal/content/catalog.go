// Package content lists the documents of the docs directory so the site
// configuration can check that its header links point somewhere.
//
// The catalog is read-only. It never edits, converts or fetches documents.
package content

import (
	"slices"
)

// Document is one Markdown file of the docs directory.
type Document struct {
	ID           string // front matter id, else path stem relative to the docs dir
	Title        string
	SidebarLabel string
	Path         string // absolute path; empty for static catalogs
	RelativePath string
}

// Catalog is the set of known document ids.
type Catalog struct {
	docs map[string]Document
}

// NewStaticCatalog returns a catalog of bare ids, for callers that already
// know the document set.
func NewStaticCatalog(ids ...string) *Catalog {
	c := &Catalog{docs: make(map[string]Document, len(ids))}
	for _, id := range ids {
		c.docs[id] = Document{ID: id, Title: fallbackTitle(id)}
	}
	return c
}

// HasDocument reports whether id names a known document.
func (c *Catalog) HasDocument(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.docs[id]
	return ok
}

// Lookup returns the document with the given id.
func (c *Catalog) Lookup(id string) (Document, bool) {
	if c == nil {
		return Document{}, false
	}
	d, ok := c.docs[id]
	return d, ok
}

// IDs returns the known ids in sorted order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.docs))
	for id := range c.docs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Documents returns all documents ordered by id.
func (c *Catalog) Documents() []Document {
	ids := c.IDs()
	out := make([]Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.docs[id])
	}
	return out
}

// Len returns the number of documents.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.docs)
}
