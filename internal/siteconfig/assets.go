package siteconfig

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// assetField pairs a configuration key with its path value.
type assetField struct {
	name  string
	value string
}

func (c *Config) assetFields() []assetField {
	return []assetField{
		{"headerIcon", c.HeaderIcon},
		{"footerIcon", c.FooterIcon},
		{"favicon", c.Favicon},
		{"ogImage", c.OGImage},
		{"twitterImage", c.TwitterImage},
	}
}

// resolveAsset checks that p names a regular file inside fsys. Leading
// slashes are ignored since the generator serves assets from the site root.
func resolveAsset(fsys fs.FS, field, p string) *ConfigurationError {
	name := path.Clean(strings.TrimLeft(p, "/"))
	if !fs.ValidPath(name) || name == "." {
		return fieldError(field, p, "path must stay inside the assets directory")
	}
	info, err := fs.Stat(fsys, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fieldError(field, p, "asset not found in the assets directory")
	case err != nil:
		return fieldError(field, p, "cannot stat asset: %v", err)
	case info.IsDir():
		return fieldError(field, p, "must name a file, not a directory")
	}
	return nil
}
