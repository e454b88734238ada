package siteconfig

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config)
	Domain() string
}

// DefaultBaseURL serves the site from the host root.
const DefaultBaseURL = "/"

// DefaultHighlightTheme is the highlighter's own default stylesheet.
const DefaultHighlightTheme = "default"

// defaultCopyrightTemplate is completed with the organization name.
const defaultCopyrightTemplate = "Copyright © " + yearPlaceholder + " "

type siteDefaultApplier struct{}

func (siteDefaultApplier) Domain() string { return "site" }

func (siteDefaultApplier) ApplyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.OnPageNav == "" {
		cfg.OnPageNav = OnPageNavNone
	}
}

type highlightDefaultApplier struct{}

func (highlightDefaultApplier) Domain() string { return "highlight" }

func (highlightDefaultApplier) ApplyDefaults(cfg *Config) {
	if cfg.Highlight.Theme == "" {
		cfg.Highlight.Theme = DefaultHighlightTheme
	}
}

type copyrightDefaultApplier struct{}

func (copyrightDefaultApplier) Domain() string { return "copyright" }

func (copyrightDefaultApplier) ApplyDefaults(cfg *Config) {
	if cfg.Copyright == "" && cfg.OrganizationName != "" {
		cfg.Copyright = defaultCopyrightTemplate + cfg.OrganizationName
	}
}

// defaultAppliers run in order after normalization.
func defaultAppliers() []DefaultApplier {
	return []DefaultApplier{
		siteDefaultApplier{},
		highlightDefaultApplier{},
		copyrightDefaultApplier{},
	}
}

func applyDefaults(cfg *Config) {
	for _, a := range defaultAppliers() {
		a.ApplyDefaults(cfg)
	}
}
