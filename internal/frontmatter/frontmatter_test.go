package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate_Zola(t *testing.T) {
	got := Generate("example", "2022-01-07", []string{"tag 1 lol"}, []string{"sky"}, Zola)
	want := "+++\ntitle=\"example\"\ndate = 2022-01-07\n\n[taxonomies]\ntags = [\"tag 1 lol\"]\n+++\n\n\n"
	require.Equal(t, want, got)
}

func TestGenerate_Hugo(t *testing.T) {
	got := Generate("Test", "2022-01-07", []string{"ctf-writeups"}, []string{"sky", "ocean"}, Hugo)
	want := "+++\ntitle=\"Test\"\ndate = 2022-01-07\ntags = [\"ctf-writeups\"]\nauthors = [\"sky\",\"ocean\"]\nlayout = \"post\"\n+++\n\n\n"
	require.Equal(t, want, got)
}

func TestGenerate_EmptyListsRenderAsEmptyLiterals(t *testing.T) {
	zola := Generate("t", "d", nil, nil, Zola)
	require.Contains(t, zola, "tags = []\n")

	hugo := Generate("t", "d", []string{}, nil, Hugo)
	require.Contains(t, hugo, "tags = []\n")
	require.Contains(t, hugo, "authors = []\n")
}

func TestGenerate_PreservesOrder(t *testing.T) {
	got := Generate("t", "d", []string{"z", "a", "m"}, []string{"bob", "alice"}, Hugo)
	require.Contains(t, got, `tags = ["z","a","m"]`)
	require.Contains(t, got, `authors = ["bob","alice"]`)
}

func TestGenerate_ZolaIgnoresAuthors(t *testing.T) {
	got := Generate("t", "d", nil, []string{"sky"}, Zola)
	require.NotContains(t, got, "authors")
	require.NotContains(t, got, "sky")
}

func TestGenerate_DoesNotEscapeQuotes(t *testing.T) {
	got := Generate(`say "hi"`, "d", []string{`a"b`}, nil, Zola)
	require.Contains(t, got, `title="say "hi""`)
	require.Contains(t, got, `tags = ["a"b"]`)
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate("t", "2022-01-07", []string{"a", "b"}, []string{"x"}, Hugo)
	for range 5 {
		require.Equal(t, first, Generate("t", "2022-01-07", []string{"a", "b"}, []string{"x"}, Hugo))
	}
}

func TestGenerate_OutputIsValidTOML(t *testing.T) {
	for _, d := range []Dialect{Zola, Hugo} {
		page := Generate("example", "2022-01-07", []string{"tag1"}, []string{"sky"}, d) + "hi"
		fm, body, had, err := Split([]byte(page))
		require.NoError(t, err)
		require.True(t, had)
		require.Equal(t, "hi", string(body))

		fields, err := ParseTOML(fm)
		require.NoError(t, err, "dialect %s", d)
		require.Equal(t, "example", fields["title"])
	}
}

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")
	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, err := Split([]byte("+++\ntitle=\"x\"\n# Title\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestParseTOML_Empty_ReturnsEmptyMap(t *testing.T) {
	fields, err := ParseTOML(nil)
	require.NoError(t, err)
	require.Empty(t, fields)
}

func TestParseDialect(t *testing.T) {
	cases := map[string]Dialect{"zola": Zola, "A": Zola, "": Zola, " Hugo ": Hugo, "b": Hugo}
	for raw, want := range cases {
		got, err := ParseDialect(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	_, err := ParseDialect("jekyll")
	require.Error(t, err)
	require.Equal(t, []string{"a", "b", "hugo", "zola"}, DialectNames())
}
