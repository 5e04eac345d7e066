package event

import (
	"strings"

	"github.com/goliatone/go-slug"

	"git.home.luguber.info/inful/ctfpress/internal/frontmatter"
	"git.home.luguber.info/inful/ctfpress/internal/markdown"
	"git.home.luguber.info/inful/ctfpress/internal/meta"
)

// ComposeIndex builds <folder>/index.md: event front matter, the optional
// description with a more marker, then one section per document. Each
// section is a top-level heading linking to the challenge page followed by
// the body with headings demoted one level.
func ComposeIndex(folder string, ev *meta.Event, docs []Document, opts Options) Page {
	var b strings.Builder
	b.WriteString(frontmatter.Generate(ev.Name, ev.Date, []string{CollectionTag}, opts.Authors, opts.Dialect))
	if ev.HasDescription() {
		b.WriteString(*ev.Description)
		b.WriteString("\n" + MoreMarker + "\n")
	}

	sections := make([]string, len(docs))
	for i, doc := range docs {
		sections[i] = "# [" + doc.Meta.Name + "](/" + folder + "/" + challengeSlug(doc.Key) + ")\n" +
			markdown.DemoteHeadings(doc.Body)
	}
	b.WriteString(strings.Join(sections, "\n"))

	return Page{Path: indexPath(folder), Content: []byte(b.String())}
}

// ComposeChallenge builds <folder>/<key>.md: challenge front matter followed
// directly by the (already link-rewritten) body.
func ComposeChallenge(folder string, ev *meta.Event, doc Document, opts Options) Page {
	tags := doc.Meta.Tags
	if tags == nil {
		tags = []string{}
	}
	content := frontmatter.Generate(doc.Meta.Name, ev.Date, tags, opts.Authors, opts.Dialect) + doc.Body
	return Page{Path: challengePath(folder, doc.Key), Content: []byte(content)}
}

// CheckFrontMatter reports whether the page's front matter decodes as TOML.
// Values are emitted unescaped, so titles or dates with quotes can break it.
func CheckFrontMatter(p Page) error {
	fm, _, _, err := frontmatter.Split(p.Content)
	if err != nil {
		return err
	}
	_, err = frontmatter.ParseTOML(fm)
	return err
}

// challengeSlug is the URL segment of a challenge page. Keys the normalizer
// rejects are used as-is.
func challengeSlug(key string) string {
	s, err := slug.Normalize(key)
	if err != nil || s == "" {
		return key
	}
	return s
}
