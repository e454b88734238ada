// Package frontmatter reads the YAML header of Markdown documents.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Header holds the document fields the site generator cares about.
// Fields keeps every decoded key, including the ones mapped onto the struct.
type Header struct {
	ID           string
	Title        string
	SidebarLabel string
	Fields       map[string]any
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a delimiter line, had is false and body
// is the full input. CRLF line endings are accepted.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	nl := "\n"
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = "\r\n"
	}
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---")
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	end := start + idx + len(nl)
	rest := content[start+idx+len(closeSeq):]
	// The closing delimiter must be a whole line.
	switch {
	case len(rest) == 0:
	case bytes.HasPrefix(rest, []byte(nl)):
		rest = rest[len(nl):]
	default:
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return content[start:end], rest, true, nil
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(frontmatter)) == 0 {
		return map[string]any{}, nil
	}
	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Parse splits content and decodes its header. Documents without frontmatter
// yield a zero Header with an empty Fields map.
func Parse(content []byte) (Header, []byte, error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return Header{}, nil, err
	}
	h := Header{Fields: map[string]any{}}
	if !had {
		return h, body, nil
	}
	fields, err := ParseYAML(raw)
	if err != nil {
		return Header{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	h.Fields = fields
	h.ID = stringField(fields, "id")
	h.Title = stringField(fields, "title")
	h.SidebarLabel = stringField(fields, "sidebar_label")
	return h, body, nil
}

// stringField returns a scalar field as a trimmed string. Numbers are
// accepted since ids like `01` decode as ints.
func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case int, int64, float64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
