package frontmatter

import (
	"git.home.luguber.info/inful/ctfpress/internal/foundation/normalization"
)

// Dialect selects the front matter field set emitted for every page of a run.
// The set is closed: Zola (dialect A) and Hugo (dialect B).
type Dialect string

const (
	// Zola emits title, date and a [taxonomies] block with tags.
	Zola Dialect = "zola"
	// Hugo emits title, date, flat tags and authors lists and a fixed layout.
	Hugo Dialect = "hugo"
)

var dialectNormalizer = normalization.NewNormalizer(map[string]Dialect{
	"zola": Zola,
	"a":    Zola,
	"hugo": Hugo,
	"b":    Hugo,
}, Zola)

// ParseDialect accepts "zola"/"a" and "hugo"/"b" (case-insensitive).
// The empty string selects Zola.
func ParseDialect(raw string) (Dialect, error) {
	return dialectNormalizer.Parse(raw)
}

// DialectNames lists every accepted dialect spelling.
func DialectNames() []string {
	return dialectNormalizer.ValidKeys()
}

func (d Dialect) String() string { return string(d) }
