package siteconfig

import (
	"strconv"
	"strings"
)

const yearPlaceholder = "{year}"

// renderCopyright substitutes every {year} in tmpl.
func renderCopyright(tmpl string, year int) string {
	return strings.ReplaceAll(tmpl, yearPlaceholder, strconv.Itoa(year))
}
