// Package foundation holds small generic helpers shared across packages.
package foundation

import (
	"fmt"
	"slices"
	"strings"
)

func defaultNormalizer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps loosely written strings (any case, surrounding space) onto
// enum values.
type Normalizer[T comparable] struct {
	validValues  map[string]T
	defaultValue T
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[defaultNormalizer(k)] = v
	}
	return &Normalizer[T]{
		validValues:  normalized,
		defaultValue: defaultValue,
	}
}

// Normalize returns the value for raw, or the default if it is not recognized.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, exists := n.validValues[defaultNormalizer(raw)]; exists {
		return value
	}
	return n.defaultValue
}

// NormalizeWithError returns the value for raw or an error listing the
// accepted spellings.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if value, exists := n.validValues[defaultNormalizer(raw)]; exists {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q (want one of %s)", raw, strings.Join(n.Names(), ", "))
}

// Names returns the accepted spellings in sorted order.
func (n *Normalizer[T]) Names() []string {
	names := make([]string, 0, len(n.validValues))
	for k := range n.validValues {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
