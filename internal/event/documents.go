package event

import (
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
	"git.home.luguber.info/inful/ctfpress/internal/meta"
)

// CollectDocuments reads <key>.md for every declared challenge, in descriptor
// order. Challenges whose file cannot be read are returned in skipped instead.
func CollectDocuments(dir string, ev *meta.Event) (docs []Document, skipped []SkippedChallenge) {
	for _, key := range ev.ChallengeKeys() {
		path := filepath.Join(dir, key+MarkdownExt)
		body, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, SkippedChallenge{
				Key: key,
				Err: ferrors.WrapError(err, ferrors.CategoryDocument, "read challenge document").
					Warning().
					WithContext("challenge", key).
					WithContext("path", path).
					Build(),
			})
			continue
		}
		docs = append(docs, Document{Key: key, Meta: ev.Challenges[key], Body: string(body)})
	}
	return docs, skipped
}
