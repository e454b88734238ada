package content

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
)

// Sidebars maps sidebar name to category name to ordered document ids, the
// shape of the generator's sidebars.json:
//
//	{"docs": {"Chapters": ["introduction-why-lisp", "functions"]}}
type Sidebars map[string]map[string][]string

// ReadSidebars decodes the sidebars file at path.
func ReadSidebars(path string) (Sidebars, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSidebars, err)
	}
	var sb Sidebars
	if err := json.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSidebars, path, err)
	}
	return sb, nil
}

// CheckSidebars verifies every id referenced by sb exists in the catalog.
func (c *Catalog) CheckSidebars(sb Sidebars) error {
	for _, name := range slices.Sorted(maps.Keys(sb)) {
		cats := sb[name]
		for _, cat := range slices.Sorted(maps.Keys(cats)) {
			for _, id := range cats[cat] {
				if !c.HasDocument(id) {
					return fmt.Errorf("%w: %q in sidebar %s/%s", ErrUnknownDocument, id, name, cat)
				}
			}
		}
	}
	return nil
}
