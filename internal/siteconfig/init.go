package siteconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by Init when the file exists and force is off.
var ErrConfigExists = errors.New("configuration file already exists")

// Example returns the configuration written by Init: the Practical Common
// Lisp book site.
func Example() Config {
	return Config{
		Title:            "Practical Common Lisp",
		Tagline:          "A copy of Practical Common Lisp by Peter Seibel",
		URL:              "https://practical-common-lisp.plankton.technology",
		BaseURL:          "/",
		ProjectName:      "plankton.technology",
		OrganizationName: "necroplankton",
		HeaderLinks: []HeaderLink{
			{Doc: "introduction-why-lisp", Label: "Docs"},
		},
		HeaderIcon: "img/common-lisp.svg",
		FooterIcon: "img/common-lisp.svg",
		Favicon:    "img/common-lisp.svg",
		Colors: Colors{
			PrimaryColor:   "#00bcd4",
			SecondaryColor: "#607d8b",
		},
		Copyright:    "Copyright © " + yearPlaceholder + " Peter Seibel",
		Highlight:    Highlight{Theme: "atelier-estuary-dark"},
		Scripts:      []string{"https://buttons.github.io/buttons.js"},
		OnPageNav:    OnPageNavSeparate,
		CleanURL:     true,
		OGImage:      "img/book.gif",
		TwitterImage: "img/book.gif",
	}
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, configPath)
	}

	example := Example()
	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
