package event

import (
	"log/slog"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
	"git.home.luguber.info/inful/ctfpress/internal/logfields"
	"git.home.luguber.info/inful/ctfpress/internal/markdown"
	"git.home.luguber.info/inful/ctfpress/internal/meta"
)

// Process runs every step for the event folder at dir.
// The returned error is always classified; a metadata error means nothing
// was planned, a filesystem error means asset enumeration failed.
func Process(dir string, opts Options) (*Plan, error) {
	folder := filepath.Base(dir)
	logger := slog.Default().With(logfields.Event(folder))

	ev, err := Load(dir)
	if err != nil {
		return nil, err
	}
	for _, key := range ev.Undecoded() {
		logger.Debug("Ignoring unknown descriptor key", slog.String("key", key))
	}

	docs, skipped := CollectDocuments(dir, ev)
	for _, s := range skipped {
		logger.Warn("Skipping challenge with unreadable body", logfields.Challenge(s.Key), logfields.Error(s.Err))
	}
	docs = Transform(docs, opts.RewritePrefix)

	plan := &Plan{
		Folder:  folder,
		Meta:    ev,
		Index:   ComposeIndex(folder, ev, docs, opts),
		Pages:   make([]Page, 0, len(docs)),
		Skipped: skipped,
	}
	for _, doc := range docs {
		plan.Pages = append(plan.Pages, ComposeChallenge(folder, ev, doc, opts))
	}

	for _, page := range plan.AllPages() {
		if err := CheckFrontMatter(page); err != nil {
			logger.Warn("Generated front matter is not valid TOML", logfields.Path(page.Path), logfields.Error(err))
		}
	}

	assets, err := ClassifyAssets(dir)
	if err != nil {
		return nil, err
	}
	plan.Assets = assets

	logger.Debug("Event planned",
		logfields.Pages(len(plan.Pages)+1),
		logfields.Assets(len(plan.Assets)),
		logfields.Skipped(len(plan.Skipped)))
	return plan, nil
}

// Load reads the event descriptor from dir.
func Load(dir string) (*meta.Event, error) {
	ev, err := meta.Load(filepath.Join(dir, meta.DescriptorFile))
	if err != nil {
		if c, ok := ferrors.AsClassified(err); ok {
			return nil, c.WithContext("event", filepath.Base(dir))
		}
		return nil, err
	}
	return ev, nil
}

// Transform rewrites root-relative links in every body. The result is shared
// by the index and the individual challenge pages.
func Transform(docs []Document, prefix string) []Document {
	out := make([]Document, len(docs))
	for i, d := range docs {
		d.Body = markdown.RewriteRootLinks(d.Body, prefix)
		out[i] = d
	}
	return out
}
