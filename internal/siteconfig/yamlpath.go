package siteconfig

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// typeFieldError turns the first yaml.v3 type mismatch into a
// ConfigurationError naming the key at the reported line.
func typeFieldError(root *yaml.Node, terr *yaml.TypeError) *ConfigurationError {
	if len(terr.Errors) == 0 {
		return fieldError("config", "", "%v", terr)
	}
	line, reason := splitTypeError(terr.Errors[0])
	field, value := "config", ""
	n, path := nodeAtLine(root, line, reportedTag(reason), "")
	if n == nil {
		n, path = nodeAtLine(root, line, "", "")
	}
	if n != nil && path != "" {
		field = path
		if n.Kind == yaml.ScalarNode {
			value = n.Value
		}
	}
	return fieldError(field, value, "%s (line %d)", reason, line)
}

// splitTypeError parses "line 3: cannot unmarshal !!seq into string".
func splitTypeError(msg string) (int, string) {
	prefix, rest, ok := strings.Cut(msg, ": ")
	if !ok {
		return 0, msg
	}
	line, err := strconv.Atoi(strings.TrimPrefix(prefix, "line "))
	if err != nil {
		return 0, msg
	}
	return line, rest
}

func reportedTag(reason string) string {
	_, after, ok := strings.Cut(reason, "cannot unmarshal ")
	if !ok {
		return ""
	}
	tag, _, _ := strings.Cut(after, " ")
	return tag
}

// nodeAtLine finds the deepest value node starting at line whose tag is tag
// and returns it with its dotted path. An empty tag matches any node.
func nodeAtLine(n *yaml.Node, line int, tag, path string) (*yaml.Node, string) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			if found, p := nodeAtLine(c, line, tag, path); found != nil {
				return found, p
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			p := joinPath(path, key.Value)
			if found, fp := nodeAtLine(val, line, tag, p); found != nil {
				return found, fp
			}
			if (val.Line == line || key.Line == line) && tagMatches(val, tag) {
				return val, p
			}
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			p := fmt.Sprintf("%s[%d]", path, i)
			if found, fp := nodeAtLine(c, line, tag, p); found != nil {
				return found, fp
			}
			if c.Line == line && tagMatches(c, tag) {
				return c, p
			}
		}
	}
	return nil, ""
}

func tagMatches(n *yaml.Node, tag string) bool {
	return tag == "" || n.ShortTag() == tag
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
