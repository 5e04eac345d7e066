package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

const (
	red  color = "red"
	blue color = "blue"
)

func newColors() *Normalizer[color] {
	return NewNormalizer(map[string]color{"red": red, "r": red, "blue": blue}, red)
}

func TestNormalize(t *testing.T) {
	n := newColors()
	assert.Equal(t, blue, n.Normalize("  BLUE "))
	assert.Equal(t, red, n.Normalize("R"))
	assert.Equal(t, red, n.Normalize("green"), "unknown falls back to default")
}

func TestParse(t *testing.T) {
	n := newColors()

	v, err := n.Parse("Blue")
	require.NoError(t, err)
	assert.Equal(t, blue, v)

	v, err = n.Parse("")
	require.NoError(t, err)
	assert.Equal(t, red, v)

	_, err = n.Parse("green")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[blue r red]")
}

func TestValidKeys_ReturnsCopy(t *testing.T) {
	n := newColors()
	keys := n.ValidKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"blue", "r", "red"}, n.ValidKeys())
}
