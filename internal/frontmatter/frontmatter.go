// Package frontmatter renders the TOML (+++ delimited) header blocks that the
// downstream static-site generator reads from every page.
package frontmatter

import (
	"bytes"
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
)

const delimiter = "+++"

// Generate renders the header block for one page.
//
// Tags and authors are emitted in the given order as double-quoted strings.
// Values are not escaped, so embedded quotes produce invalid TOML. The block
// always ends with two blank lines so the body can be appended directly.
func Generate(title, date string, tags, authors []string, d Dialect) string {
	var b strings.Builder
	b.WriteString(delimiter + "\n")
	b.WriteString(`title="` + title + "\"\n")
	b.WriteString("date = " + date + "\n")
	switch d {
	case Hugo:
		b.WriteString("tags = [" + quoteList(tags) + "]\n")
		b.WriteString("authors = [" + quoteList(authors) + "]\n")
		b.WriteString("layout = \"post\"\n")
	default:
		b.WriteString("\n[taxonomies]\n")
		b.WriteString("tags = [" + quoteList(tags) + "]\n")
	}
	b.WriteString(delimiter + "\n\n\n")
	return b.String()
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ",")
}

// ErrMissingClosingDelimiter indicates the document started with a +++
// delimiter but did not contain a closing one.
var ErrMissingClosingDelimiter = errors.New("toml frontmatter start delimiter found but closing delimiter is missing")

// Split separates +++ delimited front matter from the page body.
//
// If the page does not start with a delimiter, had is false and body is the
// full input. The blank lines Generate emits after the closing delimiter stay
// part of the body's leading whitespace and are stripped here.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	open := []byte(delimiter + "\n")
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}
	rest := content[len(open):]
	closing := []byte("\n" + delimiter + "\n")
	if bytes.HasPrefix(rest, open) {
		return []byte{}, bytes.TrimPrefix(rest[len(open):], []byte("\n\n")), true, nil
	}
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	fm := rest[:idx+1]
	body = bytes.TrimPrefix(rest[idx+len(closing):], []byte("\n\n"))
	return fm, body, true, nil
}

// ParseTOML decodes raw front matter (without delimiters) into a map.
func ParseTOML(frontmatter []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(frontmatter) == 0 {
		return fields, nil
	}
	if _, err := toml.Decode(string(frontmatter), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
