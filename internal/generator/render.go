// Package generator writes a validated site configuration in the formats the
// static-site generator reads: a CommonJS siteConfig.js and a plain
// siteConfig.json.
package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/necroplankton/sitecfg/internal/siteconfig"
)

// Format selects an output file.
type Format string

const (
	FormatJS   Format = "js"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for formats other than js, json and all.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormats turns a --format value into formats; "all" selects both.
func ParseFormats(s string) ([]Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "all", "":
		return []Format{FormatJS, FormatJSON}, nil
	case FormatJS:
		return []Format{FormatJS}, nil
	case FormatJSON:
		return []Format{FormatJSON}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want js, json or all)", ErrUnknownFormat, s)
	}
}

// FileName returns the file the generator expects for f.
func (f Format) FileName() string {
	return "siteConfig." + string(f)
}

// Render serializes cfg in the given format.
func Render(cfg *siteconfig.Config, f Format) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("nil site configuration")
	}
	body, err := marshal(Values(cfg))
	if err != nil {
		return nil, err
	}

	switch f {
	case FormatJSON:
		return body, nil
	case FormatJS:
		var b bytes.Buffer
		b.WriteString("// Generated by sitecfg from the site configuration. Do not edit.\n\n")
		b.WriteString("const siteConfig = ")
		b.Write(bytes.TrimRight(body, "\n"))
		b.WriteString(";\n\nmodule.exports = siteConfig;\n")
		return b.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func marshal(v map[string]any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode site configuration: %w", err)
	}
	return b.Bytes(), nil
}

// Values flattens cfg into the generator's key space. Optional fields that
// are unset are left out; custom keys are merged at the top level.
func Values(cfg *siteconfig.Config) map[string]any {
	v := map[string]any{
		"title":            cfg.Title,
		"url":              cfg.URL,
		"baseUrl":          cfg.BaseURL,
		"projectName":      cfg.ProjectName,
		"organizationName": cfg.OrganizationName,
		"headerLinks":      headerLinks(cfg.HeaderLinks),
		"colors":           colors(cfg.Colors),
		"copyright":        cfg.Copyright,
		"highlight":        highlight(cfg.Highlight),
		"onPageNav":        string(cfg.OnPageNav),
		"cleanUrl":         cfg.CleanURL,
	}

	setString(v, "tagline", cfg.Tagline)
	setString(v, "headerIcon", cfg.HeaderIcon)
	setString(v, "footerIcon", cfg.FooterIcon)
	setString(v, "favicon", cfg.Favicon)
	setString(v, "ogImage", cfg.OGImage)
	setString(v, "twitterImage", cfg.TwitterImage)

	if len(cfg.Fonts) > 0 {
		v["fonts"] = maps.Clone(cfg.Fonts)
	}
	if len(cfg.Scripts) > 0 {
		v["scripts"] = cfg.Scripts
	}
	if len(cfg.Stylesheets) > 0 {
		v["stylesheets"] = cfg.Stylesheets
	}
	if cfg.EnableUpdateBy {
		v["enableUpdateBy"] = true
	}
	if cfg.EnableUpdateTime {
		v["enableUpdateTime"] = true
	}

	for k, cv := range cfg.Custom {
		if _, taken := v[k]; !taken {
			v[k] = cv
		}
	}
	return v
}

func setString(v map[string]any, key, s string) {
	if s != "" {
		v[key] = s
	}
}

func headerLinks(links []siteconfig.HeaderLink) []map[string]string {
	out := make([]map[string]string, 0, len(links))
	for _, l := range links {
		m := map[string]string{"label": l.Label}
		if l.Doc != "" {
			m["doc"] = l.Doc
		} else {
			m["href"] = l.Href
		}
		out = append(out, m)
	}
	return out
}

func colors(c siteconfig.Colors) map[string]string {
	out := make(map[string]string, len(c.Extra)+2)
	maps.Copy(out, c.Extra)
	out["primaryColor"] = c.PrimaryColor
	out["secondaryColor"] = c.SecondaryColor
	return out
}

func highlight(h siteconfig.Highlight) map[string]string {
	out := map[string]string{"theme": h.Theme}
	if h.DefaultLang != "" {
		out["defaultLang"] = h.DefaultLang
	}
	return out
}
