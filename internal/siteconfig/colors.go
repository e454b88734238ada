package siteconfig

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// validColor accepts #rgb, #rgba, #rrggbb and #rrggbbaa hex colors and CSS
// named colors (case-insensitive).
func validColor(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") {
		hex := strings.ToLower(s)
		if strings.ContainsFunc(hex[1:], func(r rune) bool {
			return !strings.ContainsRune("0123456789abcdef", r)
		}) {
			return false
		}
		switch len(hex) {
		case 5: // #rgba
			hex = hex[:4]
		case 9: // #rrggbbaa
			hex = hex[:7]
		case 4, 7:
		default:
			return false
		}
		_, err := colorful.Hex(hex)
		return err == nil
	}
	name := strings.ToLower(s)
	if name == "transparent" || name == "currentcolor" {
		return true
	}
	_, ok := colornames.Map[name]
	return ok
}
