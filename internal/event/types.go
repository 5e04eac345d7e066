package event

import (
	"path/filepath"

	"git.home.luguber.info/inful/ctfpress/internal/frontmatter"
	"git.home.luguber.info/inful/ctfpress/internal/meta"
)

const (
	// IndexFile is the aggregate page written for every event.
	IndexFile = "index.md"
	// MarkdownExt is the extension of challenge documents.
	MarkdownExt = ".md"
	// CollectionTag marks index pages as write-up collections.
	CollectionTag = "ctf-writeups"
	// MoreMarker separates the event description (summary) from the rest of the index.
	MoreMarker = "<!-- more -->"
)

// Options is the run-wide, read-only configuration consumed by the processor.
type Options struct {
	Dialect       frontmatter.Dialect
	RewritePrefix string
	Authors       []string
}

// Document is a challenge whose body file was readable.
type Document struct {
	Key  string
	Meta meta.Challenge
	Body string
}

// SkippedChallenge records a declared challenge whose body file could not be read.
type SkippedChallenge struct {
	Key string
	Err error
}

// Page is an output-ready file, Path is relative to the output root.
type Page struct {
	Path    string
	Content []byte
}

// Asset is a non-document file copied verbatim.
type Asset struct {
	// RelPath is relative to the event folder and mirrored under the event's output folder.
	RelPath string
	// Source is the absolute path of the input file.
	Source string
}

// Plan is the full output of processing one event folder.
type Plan struct {
	// Folder is the event folder's base name, reused as the output folder name.
	Folder  string
	Meta    *meta.Event
	Index   Page
	Pages   []Page
	Assets  []Asset
	Skipped []SkippedChallenge
}

// AllPages returns the index page followed by the challenge pages.
func (p *Plan) AllPages() []Page {
	out := make([]Page, 0, len(p.Pages)+1)
	out = append(out, p.Index)
	return append(out, p.Pages...)
}

func indexPath(folder string) string {
	return filepath.Join(folder, IndexFile)
}

func challengePath(folder, key string) string {
	return filepath.Join(folder, key+MarkdownExt)
}
