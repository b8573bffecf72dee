package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

const (
	red   color = "red"
	green color = "green"
	none  color = ""
)

func newColors() *Normalizer[color] {
	return NewNormalizer("color", map[string]color{"Red": red, "GREEN": green}, none)
}

func TestNormalize(t *testing.T) {
	n := newColors()

	assert.Equal(t, red, n.Normalize("red"))
	assert.Equal(t, red, n.Normalize("  RED "))
	assert.Equal(t, green, n.Normalize("Green"))
	assert.Equal(t, none, n.Normalize("blue"))
}

func TestLookup(t *testing.T) {
	n := newColors()

	v, ok := n.Lookup("gReEn")
	assert.True(t, ok)
	assert.Equal(t, green, v)

	_, ok = n.Lookup("")
	assert.False(t, ok)
}

func TestNormalizeWithError(t *testing.T) {
	n := newColors()

	_, err := n.NormalizeWithError("sprint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid color "sprint"`)
	assert.Contains(t, err.Error(), "green, red")
}

func TestValidKeysIsCopy(t *testing.T) {
	n := newColors()
	keys := n.ValidKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"green", "red"}, n.ValidKeys())
}

func TestFold(t *testing.T) {
	assert.Equal(t, "patch", Fold(" PATCH\t"))
	assert.Equal(t, "strasse", Fold("STRASSE"))
}
