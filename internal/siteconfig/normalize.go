package siteconfig

import (
	"fmt"
	"strings"

	"github.com/necroplankton/sitecfg/internal/foundation"
)

// NormalizationResult captures adjustments & warnings from the normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig trims scalar fields, case-folds enumerations and drops empty
// list entries. It mutates c in place. Unknown enumeration values are left
// untouched so validation can report them.
func NormalizeConfig(c *Config) *NormalizationResult {
	res := &NormalizationResult{}
	if c == nil {
		return res
	}
	for _, f := range []*string{
		&c.Title, &c.Tagline, &c.URL, &c.BaseURL, &c.ProjectName, &c.OrganizationName,
		&c.HeaderIcon, &c.FooterIcon, &c.Favicon, &c.OGImage, &c.TwitterImage,
		&c.Highlight.Theme, &c.Highlight.DefaultLang,
		&c.Colors.PrimaryColor, &c.Colors.SecondaryColor,
	} {
		*f = strings.TrimSpace(*f)
	}
	for i := range c.HeaderLinks {
		l := &c.HeaderLinks[i]
		l.Doc = strings.TrimSpace(l.Doc)
		l.Href = strings.TrimSpace(l.Href)
		l.Label = strings.TrimSpace(l.Label)
	}
	for k, v := range c.Colors.Extra {
		c.Colors.Extra[k] = strings.TrimSpace(v)
	}

	if raw := string(c.OnPageNav); raw != "" {
		if nav := NormalizeOnPageNav(raw); nav != "" && nav != c.OnPageNav {
			res.Warnings = append(res.Warnings, warnChanged("onPageNav", c.OnPageNav, nav))
			c.OnPageNav = nav
		}
	}
	if theme := strings.ToLower(c.Highlight.Theme); theme != c.Highlight.Theme {
		res.Warnings = append(res.Warnings, warnChanged("highlight.theme", c.Highlight.Theme, theme))
		c.Highlight.Theme = theme
	}

	for k, v := range c.Custom {
		c.Custom[k] = stringKeyed(v)
	}

	c.Scripts = trimStringSlice("scripts", c.Scripts, res)
	c.Stylesheets = trimStringSlice("stylesheets", c.Stylesheets, res)
	return res
}

var onPageNavNormalizer = foundation.NewNormalizer(map[string]OnPageNav{
	string(OnPageNavSeparate): OnPageNavSeparate,
	string(OnPageNavNone):     OnPageNavNone,
}, "")

// NormalizeOnPageNav case-folds raw and returns "" for unknown values.
func NormalizeOnPageNav(raw string) OnPageNav {
	return onPageNavNormalizer.Normalize(raw)
}

// stringKeyed rewrites map[any]any values whose keys are all strings as
// map[string]any. Maps with other keys are kept for validation to report.
func stringKeyed(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = stringKeyed(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = stringKeyed(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return t
			}
			out[ks] = stringKeyed(e)
		}
		return out
	default:
		return v
	}
}

// trimStringSlice removes empty entries (after trimming whitespace). Order is
// preserved since scripts are injected in sequence.
func trimStringSlice(label string, in []string, res *NormalizationResult) []string {
	if len(in) == 0 {
		return in
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	if len(out) != len(in) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("normalized %s list (%d -> %d entries)", label, len(in), len(out)))
	}
	return out
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}
