package markdown

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyEdits_SingleReplacement(t *testing.T) {
	src := []byte("See [API](./api-guide.md) for details.\n")
	old := []byte("./api-guide.md")
	idx := bytes.Index(src, old)
	require.NotEqual(t, -1, idx)

	out, err := ApplyEdits(src, []Edit{{Start: idx, End: idx + len(old), Replacement: []byte("./api_guide.md")}})
	require.NoError(t, err)
	require.Equal(t, "See [API](./api_guide.md) for details.\n", string(out))
}

func TestApplyEdits_UnorderedInsertionsAndReplacements(t *testing.T) {
	src := []byte("# A\n## B\n")

	out, err := ApplyEdits(src, []Edit{
		{Start: 4, End: 4, Replacement: []byte("#")},
		{Start: 0, End: 0, Replacement: []byte("#")},
	})
	require.NoError(t, err)
	require.Equal(t, "## A\n### B\n", string(out))
}

func TestApplyEdits_Deletion(t *testing.T) {
	out, err := ApplyEdits([]byte("Title\n===\nbody"), []Edit{{Start: 5, End: 9}})
	require.NoError(t, err)
	require.Equal(t, "Title\nbody", string(out))
}

func TestApplyEdits_NoEditsReturnsSource(t *testing.T) {
	src := []byte("unchanged")
	out, err := ApplyEdits(src, nil)
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestApplyEdits_RejectsOverlappingEdits(t *testing.T) {
	_, err := ApplyEdits([]byte("abcdef"), []Edit{
		{Start: 1, End: 4, Replacement: []byte("X")},
		{Start: 3, End: 5, Replacement: []byte("Y")},
	})
	require.ErrorIs(t, err, ErrOverlappingEdits)
}

func TestApplyEdits_RejectsOutOfBounds(t *testing.T) {
	_, err := ApplyEdits([]byte("abc"), []Edit{{Start: 1, End: 10}})
	require.Error(t, err)

	_, err = ApplyEdits([]byte("abc"), []Edit{{Start: 2, End: 1}})
	require.Error(t, err)
}
