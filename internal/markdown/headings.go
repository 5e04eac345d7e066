// Package markdown holds the text transforms applied to challenge bodies:
// root-relative link prefixing and heading demotion.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const maxHeadingLevel = 6

// DemoteHeadings lowers every Markdown heading in body by one level.
//
// ATX headings gain one '#'. A setext level 1 heading becomes setext level 2
// and a setext level 2 heading becomes an ATX level 3 heading. Level 6
// headings stay at level 6. Lines inside code blocks are never touched and
// all other bytes are preserved.
func DemoteHeadings(body string) string {
	src := []byte(body)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var edits []Edit
	// cursor is the end of the last source line claimed by a block node.
	cursor := 0
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || n.Type() != gmast.TypeBlock {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			var e []Edit
			e, cursor = demoteEdits(src, h, cursor)
			edits = append(edits, e...)
			return gmast.WalkSkipChildren, nil
		}
		if lines := n.Lines(); lines.Len() > 0 {
			cursor = lines.At(lines.Len() - 1).Stop
		}
		return gmast.WalkContinue, nil
	})

	out, err := ApplyEdits(src, edits)
	if err != nil {
		return body
	}
	return string(out)
}

// demoteEdits returns the edits for one heading and the offset where its
// source ends.
func demoteEdits(src []byte, h *gmast.Heading, cursor int) ([]Edit, int) {
	lines := h.Lines()
	if lines.Len() == 0 {
		return demoteEmptyATX(src, h, cursor)
	}
	next := lines.At(lines.Len() - 1).Stop
	first := lines.At(0)
	lineStart := bytes.LastIndexByte(src[:first.Start], '\n') + 1
	if i := bytes.IndexByte(src[lineStart:first.Start], '#'); i >= 0 {
		if h.Level >= maxHeadingLevel {
			return nil, next
		}
		pos := lineStart + i
		return []Edit{{Start: pos, End: pos, Replacement: []byte("#")}}, next
	}
	return demoteSetext(src, h, lines), next
}

// demoteEmptyATX handles headings such as "##" that carry no text. They
// have no segments, so the marker is found on the first matching line after
// cursor.
func demoteEmptyATX(src []byte, h *gmast.Heading, cursor int) ([]Edit, int) {
	from := cursor
	if from > 0 && src[from-1] != '\n' {
		from = lineEnd(src, from) + 1
	}
	for from < len(src) {
		end := lineEnd(src, from)
		if i, ok := emptyATXMarker(src[from:end], h.Level); ok {
			if h.Level >= maxHeadingLevel {
				return nil, end
			}
			pos := from + i
			return []Edit{{Start: pos, End: pos, Replacement: []byte("#")}}, end
		}
		from = end + 1
	}
	return nil, len(src)
}

// emptyATXMarker returns the offset of a run of exactly level '#' that
// forms the whole content of line, after any container prefix.
func emptyATXMarker(line []byte, level int) (int, bool) {
	i := 0
	for i < len(line) && strings.IndexByte(" \t>*+-.)0123456789", line[i]) >= 0 {
		i++
	}
	j := i
	for j < len(line) && line[j] == '#' {
		j++
	}
	if j-i != level {
		return 0, false
	}
	for _, c := range line[j:] {
		if c != ' ' && c != '\t' && c != '#' && c != '\r' {
			return 0, false
		}
	}
	return i, true
}

func demoteSetext(src []byte, h *gmast.Heading, lines *text.Segments) []Edit {
	lastNL := lineEnd(src, lines.At(lines.Len()-1).Start)
	if lastNL >= len(src) {
		return nil
	}
	underStart := lastNL + 1
	underEnd := lineEnd(src, underStart)

	if h.Level == 1 {
		underline := bytes.ReplaceAll(src[underStart:underEnd], []byte("="), []byte("-"))
		return []Edit{{Start: underStart, End: underEnd, Replacement: underline}}
	}

	first := lines.At(0)
	edits := []Edit{{Start: first.Start, End: first.Start, Replacement: []byte("### ")}}
	for i := 1; i < lines.Len(); i++ {
		prevNL := lineEnd(src, lines.At(i-1).Start)
		edits = append(edits, Edit{Start: prevNL, End: lines.At(i).Start, Replacement: []byte(" ")})
	}
	return append(edits, Edit{Start: lastNL, End: underEnd})
}

// lineEnd returns the offset of the newline ending the line that contains
// pos, or len(src) for the last line.
func lineEnd(src []byte, pos int) int {
	if i := bytes.IndexByte(src[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(src)
}
