// Package siteconfig loads and validates the site configuration handed to the
// documentation site generator.
//
// A Config is built once per invocation by Load or New and is read-only
// afterwards; it may be shared freely between goroutines.
package siteconfig

import (
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// Config is the generator-facing site configuration record.
//
// Keys follow the generator's camelCase names. Keys the schema does not know
// are kept in Custom and passed through on export.
type Config struct {
	Title            string       `yaml:"title"`
	Tagline          string       `yaml:"tagline,omitempty"`
	URL              string       `yaml:"url"`
	BaseURL          string       `yaml:"baseUrl"`
	ProjectName      string       `yaml:"projectName"`
	OrganizationName string       `yaml:"organizationName"`
	HeaderLinks      []HeaderLink `yaml:"headerLinks"`

	HeaderIcon string `yaml:"headerIcon,omitempty"`
	FooterIcon string `yaml:"footerIcon,omitempty"`
	Favicon    string `yaml:"favicon,omitempty"`

	Colors Colors              `yaml:"colors"`
	Fonts  map[string][]string `yaml:"fonts,omitempty"`

	// Copyright is a template containing {year} when decoded and the
	// rendered notice once the record is built.
	Copyright string    `yaml:"copyright,omitempty"`
	Highlight Highlight `yaml:"highlight"`

	Scripts     []string `yaml:"scripts,omitempty"`
	Stylesheets []string `yaml:"stylesheets,omitempty"`

	OnPageNav OnPageNav `yaml:"onPageNav,omitempty"`
	CleanURL  bool      `yaml:"cleanUrl"`

	OGImage      string `yaml:"ogImage,omitempty"`
	TwitterImage string `yaml:"twitterImage,omitempty"`

	EnableUpdateBy   bool `yaml:"enableUpdateBy,omitempty"`
	EnableUpdateTime bool `yaml:"enableUpdateTime,omitempty"`

	Custom map[string]any `yaml:",inline"`
}

// HeaderLink is a top navigation entry. Exactly one of Doc or Href is set.
type HeaderLink struct {
	Doc   string `yaml:"doc,omitempty"`
	Href  string `yaml:"href,omitempty"`
	Label string `yaml:"label"`
}

// UnmarshalYAML rejects keys other than doc, href and label, such as the
// page, blog and search entries older generators accepted.
func (l *HeaderLink) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			switch key := n.Content[i]; key.Value {
			case "doc", "href", "label":
			default:
				return &yaml.TypeError{Errors: []string{fmt.Sprintf(
					"line %d: unsupported header link key %q; only doc, href and label are supported", key.Line, key.Value)}}
			}
		}
	}
	type plain HeaderLink
	return n.Decode((*plain)(l))
}

// Colors holds the theme colors. Extra carries additional named colors.
type Colors struct {
	PrimaryColor   string            `yaml:"primaryColor"`
	SecondaryColor string            `yaml:"secondaryColor"`
	Extra          map[string]string `yaml:",inline"`
}

// Highlight configures code block syntax highlighting.
type Highlight struct {
	Theme       string `yaml:"theme"`
	DefaultLang string `yaml:"defaultLang,omitempty"`
}

// OnPageNav selects how in-page navigation is rendered.
type OnPageNav string

const (
	OnPageNavSeparate OnPageNav = "separate"
	OnPageNavNone     OnPageNav = "none"
)

// knownKeys lists the top-level keys of Config; used to catch near-miss
// custom keys such as "baseURL".
var knownKeys = []string{
	"title", "tagline", "url", "baseUrl", "projectName", "organizationName",
	"headerLinks", "headerIcon", "footerIcon", "favicon", "colors", "fonts",
	"copyright", "highlight", "scripts", "stylesheets", "onPageNav", "cleanUrl",
	"ogImage", "twitterImage", "enableUpdateBy", "enableUpdateTime",
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.HeaderLinks = append([]HeaderLink(nil), c.HeaderLinks...)
	out.Scripts = append([]string(nil), c.Scripts...)
	out.Stylesheets = append([]string(nil), c.Stylesheets...)
	if c.Fonts != nil {
		out.Fonts = make(map[string][]string, len(c.Fonts))
		for k, v := range c.Fonts {
			out.Fonts[k] = append([]string(nil), v...)
		}
	}
	if c.Colors.Extra != nil {
		out.Colors.Extra = maps.Clone(c.Colors.Extra)
	}
	if c.Custom != nil {
		out.Custom = cloneValue(c.Custom).(map[string]any)
	}
	return &out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}
