package foundation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type navMode string

func TestNormalizer(t *testing.T) {
	normalizer := NewNormalizer(map[string]navMode{
		"Separate": "separate",
		"none":     "none",
	}, "")

	require.Equal(t, navMode("separate"), normalizer.Normalize(" SEPARATE "))
	require.Equal(t, navMode("none"), normalizer.Normalize("None"))
	require.Equal(t, navMode(""), normalizer.Normalize("inline"))
	require.Equal(t, []string{"none", "separate"}, normalizer.Names())

	_, err := normalizer.NormalizeWithError("inline")
	require.EqualError(t, err, `invalid value "inline" (want one of none, separate)`)
}
