package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
)

const sampleDescriptor = `name = "test lol"
date = "2022-01-07"
description = "A fun weekend."

[challenges]
[challenges.zeta]
name = "Zeta"
tags = ["pwn", "heap"]

[challenges.alpha]
name = "Alpha"
`

func TestParse_FullDescriptor(t *testing.T) {
	ev, err := Parse([]byte(sampleDescriptor))
	require.NoError(t, err)

	assert.Equal(t, "test lol", ev.Name)
	assert.Equal(t, "2022-01-07", ev.Date)
	require.True(t, ev.HasDescription())
	assert.Equal(t, "A fun weekend.", *ev.Description)
	require.Len(t, ev.Challenges, 2)
	assert.Equal(t, []string{"pwn", "heap"}, ev.Challenges["zeta"].Tags)
	assert.Nil(t, ev.Challenges["alpha"].Tags, "absent tags stay empty")
}

func TestParse_PreservesDeclarationOrder(t *testing.T) {
	ev, err := Parse([]byte(sampleDescriptor))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha"}, ev.ChallengeKeys())
}

func TestParse_InlineChallengeTable(t *testing.T) {
	src := `name = "x"
date = "2023-05-01"
challenges = { b = { name = "B" }, a = { name = "A", tags = ["t"] } }
`
	ev, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ev.ChallengeKeys())
	assert.Equal(t, "A", ev.Challenges["a"].Name)
}

func TestParse_NoChallenges(t *testing.T) {
	ev, err := Parse([]byte("name = \"x\"\ndate = \"2023\"\n"))
	require.NoError(t, err)
	assert.Empty(t, ev.ChallengeKeys())
	assert.False(t, ev.HasDescription())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing name", "date = \"2022-01-07\"\n"},
		{"missing date", "name = \"x\"\n"},
		{"mistyped name", "name = 42\ndate = \"2022-01-07\"\n"},
		{"mistyped tags", "name = \"x\"\ndate = \"d\"\n[challenges.a]\nname = \"A\"\ntags = \"pwn\"\n"},
		{"challenge without name", "name = \"x\"\ndate = \"d\"\n[challenges.a]\ntags = []\n"},
		{"malformed", "name = \"x\ndate = \n"},
		{"key escapes folder", "name = \"x\"\ndate = \"d\"\n[challenges.\"../x\"]\nname = \"X\"\n"},
		{"key with separator", "name = \"x\"\ndate = \"d\"\n[challenges.\"sub/x\"]\nname = \"X\"\n"},
		{"key with backslash", "name = \"x\"\ndate = \"d\"\n[challenges.'a\\b']\nname = \"X\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			require.Error(t, err)
			assert.True(t, ferrors.IsMetadataParse(err), "expected metadata category, got %v", err)
		})
	}
}

func TestParse_RecordsUndecodedKeys(t *testing.T) {
	ev, err := Parse([]byte("name = \"x\"\ndate = \"d\"\nflag_format = \"CTF{}\"\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"flag_format"}, ev.Undecoded())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DescriptorFile)
	require.NoError(t, os.WriteFile(path, []byte(sampleDescriptor), 0o644))

	ev, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test lol", ev.Name)

	_, err = Load(filepath.Join(dir, "missing", DescriptorFile))
	require.Error(t, err)
	assert.True(t, ferrors.IsMetadataParse(err))
	c, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	p, _ := c.Context().GetString("path")
	assert.Contains(t, p, "missing")
}
