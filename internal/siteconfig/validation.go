package siteconfig

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// configurationValidator checks a normalized, defaulted record field by field
// and stops at the first problem.
type configurationValidator struct {
	config *Config
	s      *settings
}

func newConfigurationValidator(cfg *Config, s *settings) *configurationValidator {
	return &configurationValidator{config: cfg, s: s}
}

func (cv *configurationValidator) validate() *ConfigurationError {
	checks := []func() *ConfigurationError{
		cv.validateIdentity,
		cv.validateHeaderLinks,
		cv.validateAssets,
		cv.validateColors,
		cv.validateFonts,
		cv.validateCopyright,
		cv.validateHighlight,
		cv.validateExternalURLs,
		cv.validateOnPageNav,
		cv.validateCustomKeys,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateIdentity() *ConfigurationError {
	c := cv.config
	if c.Title == "" {
		return fieldError("title", "", "title is required")
	}
	if c.URL == "" {
		return fieldError("url", "", "url is required")
	}
	if !isAbsoluteURL(c.URL) {
		return fieldError("url", c.URL, "url must be an absolute URI such as https://example.com")
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		return fieldError("baseUrl", c.BaseURL, "baseUrl must start and end with '/'")
	}
	if strings.ContainsAny(c.BaseURL, "?# \t") {
		return fieldError("baseUrl", c.BaseURL, "baseUrl must be a plain path without query, fragment or spaces")
	}
	if err := identifier("projectName", c.ProjectName); err != nil {
		return err
	}
	return identifier("organizationName", c.OrganizationName)
}

func identifier(field, v string) *ConfigurationError {
	if v == "" {
		return fieldError(field, "", "%s is required", field)
	}
	if strings.ContainsFunc(v, unicode.IsSpace) {
		return fieldError(field, v, "%s must not contain whitespace", field)
	}
	return nil
}

func (cv *configurationValidator) validateHeaderLinks() *ConfigurationError {
	if cv.s.documents == nil && cv.hasDocLinks() {
		cv.s.logger.Warn("No content catalog supplied; header link documents not checked")
	}
	for i, l := range cv.config.HeaderLinks {
		field := fmt.Sprintf("headerLinks[%d]", i)
		if l.Label == "" {
			return fieldError(field+".label", "", "label is required")
		}
		switch {
		case l.Doc != "" && l.Href != "":
			return fieldError(field, l.Label, "set either doc or href, not both")
		case l.Doc == "" && l.Href == "":
			return fieldError(field+".doc", "", "set doc or href; other header link kinds are not supported")
		case l.Href != "":
			if !isHTTPURL(l.Href) {
				return fieldError(field+".href", l.Href, "href must be an absolute http(s) URL")
			}
		case cv.s.documents != nil && !cv.s.documents.HasDocument(l.Doc):
			return fieldError(field+".doc", l.Doc, "no document with this id exists in the docs directory")
		}
	}
	return nil
}

func (cv *configurationValidator) hasDocLinks() bool {
	for _, l := range cv.config.HeaderLinks {
		if l.Doc != "" {
			return true
		}
	}
	return false
}

func (cv *configurationValidator) validateAssets() *ConfigurationError {
	fields := cv.config.assetFields()
	if cv.s.assets == nil {
		for _, f := range fields {
			if f.value != "" {
				cv.s.logger.Warn("No assets directory supplied; asset paths not checked")
				break
			}
		}
		return nil
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := resolveAsset(cv.s.assets, f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateColors() *ConfigurationError {
	c := cv.config.Colors
	for _, f := range []struct{ name, value string }{
		{"colors.primaryColor", c.PrimaryColor},
		{"colors.secondaryColor", c.SecondaryColor},
	} {
		if f.value == "" {
			return fieldError(f.name, "", "%s is required", f.name)
		}
		if !validColor(f.value) {
			return fieldError(f.name, f.value, "must be a CSS hex color (#rgb, #rrggbb) or color name")
		}
	}
	for _, name := range sortedKeys(c.Extra) {
		if v := c.Extra[name]; !validColor(v) {
			return fieldError("colors."+name, v, "must be a CSS hex color (#rgb, #rrggbb) or color name")
		}
	}
	return nil
}

func (cv *configurationValidator) validateFonts() *ConfigurationError {
	for _, name := range sortedKeys(cv.config.Fonts) {
		families := cv.config.Fonts[name]
		if len(families) == 0 {
			return fieldError("fonts."+name, "", "font stack must list at least one family")
		}
		for i, f := range families {
			if strings.TrimSpace(f) == "" {
				return fieldError(fmt.Sprintf("fonts.%s[%d]", name, i), "", "font family must not be empty")
			}
		}
	}
	return nil
}

func (cv *configurationValidator) validateCopyright() *ConfigurationError {
	c := cv.config.Copyright
	if strings.Contains(c, yearPlaceholder) {
		return nil
	}
	if loc := literalYear.FindStringIndex(c); loc != nil {
		return fieldError("copyright", c, "copyright must contain the %s placeholder; replace the year with it: %q",
			yearPlaceholder, c[:loc[0]]+yearPlaceholder+c[loc[1]:])
	}
	return fieldError("copyright", c, "copyright must contain the %s placeholder", yearPlaceholder)
}

func (cv *configurationValidator) validateHighlight() *ConfigurationError {
	theme := cv.config.Highlight.Theme
	if _, ok := cv.s.themes[theme]; !ok {
		return fieldError("highlight.theme", theme, "not a theme known to the syntax highlighter")
	}
	return nil
}

func (cv *configurationValidator) validateExternalURLs() *ConfigurationError {
	for i, s := range cv.config.Scripts {
		if !isHTTPURL(s) {
			return fieldError(fmt.Sprintf("scripts[%d]", i), s, "script must be an absolute http(s) URL")
		}
	}
	for i, s := range cv.config.Stylesheets {
		if !isHTTPURL(s) {
			return fieldError(fmt.Sprintf("stylesheets[%d]", i), s, "stylesheet must be an absolute http(s) URL")
		}
	}
	return nil
}

func (cv *configurationValidator) validateOnPageNav() *ConfigurationError {
	raw := string(cv.config.OnPageNav)
	if _, err := onPageNavNormalizer.NormalizeWithError(raw); err != nil {
		return fieldError("onPageNav", raw, "%v", err)
	}
	return nil
}

// validateCustomKeys rejects empty keys, keys that differ from a schema key
// only by case and values the exporter cannot encode.
func (cv *configurationValidator) validateCustomKeys() *ConfigurationError {
	for _, k := range sortedKeys(cv.config.Custom) {
		if strings.TrimSpace(k) == "" {
			return fieldError("custom", "", "custom keys must not be empty")
		}
		for _, known := range knownKeys {
			if strings.EqualFold(k, known) {
				return fieldError(k, "", "unknown key; did you mean %q?", known)
			}
		}
		if err := exportableValue(k, cv.config.Custom[k]); err != nil {
			return err
		}
		cv.s.logger.Debug("Custom configuration key", slog.String("key", k))
	}
	return nil
}

// exportableValue walks a custom value and reports the first part that has
// no JSON form, such as a mapping with non-string keys.
func exportableValue(path string, v any) *ConfigurationError {
	switch t := v.(type) {
	case nil, string, bool, int, int64, uint64, float64:
		return nil
	case map[string]any:
		for _, k := range sortedKeys(t) {
			if err := exportableValue(path+"."+k, t[k]); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for i, e := range t {
			if err := exportableValue(fmt.Sprintf("%s[%d]", path, i), e); err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return fieldError(path, fmt.Sprint(k), "mapping keys must be strings")
			}
			if err := exportableValue(path+"."+ks, e); err != nil {
				return err
			}
		}
		return nil
	default:
		if _, err := json.Marshal(t); err != nil {
			return fieldError(path, "", "value of type %T cannot be exported", t)
		}
		return nil
	}
}

var literalYear = regexp.MustCompile(`\b(19|20)\d{2}\b`)

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
