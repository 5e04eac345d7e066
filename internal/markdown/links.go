package markdown

import (
	"regexp"
	"strings"
)

// rootLinkPattern matches [label](/target). Label and target are matched
// lazily; code spans are not special-cased.
var rootLinkPattern = regexp.MustCompile(`\[(.*?)\]\(/(.*?)\)`)

// RewriteRootLinks prepends prefix to the target of every root-relative
// Markdown link: [label](/target) becomes [label](/<prefix>target).
// Links whose target does not start with "/" are left untouched.
// An empty prefix makes the function the identity.
func RewriteRootLinks(text, prefix string) string {
	if prefix == "" {
		return text
	}
	return rootLinkPattern.ReplaceAllStringFunc(text, func(m string) string {
		groups := rootLinkPattern.FindStringSubmatch(m)
		if len(groups) != 3 {
			return m
		}
		var b strings.Builder
		b.Grow(len(m) + len(prefix))
		b.WriteString("[")
		b.WriteString(groups[1])
		b.WriteString("](/")
		b.WriteString(prefix)
		b.WriteString(groups[2])
		b.WriteString(")")
		return b.String()
	})
}
