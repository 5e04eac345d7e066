// Package meta decodes the per-event descriptor (meta.toml) into typed metadata.
package meta

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
)

// DescriptorFile is the name of the event descriptor inside every event folder.
const DescriptorFile = "meta.toml"

// Event is the typed form of one event descriptor. It is immutable after Parse.
type Event struct {
	Name        string               `toml:"name"`
	Date        string               `toml:"date"`
	Description *string              `toml:"description"`
	Challenges  map[string]Challenge `toml:"challenges"`

	order     []string
	undecoded []string
}

// Challenge is one entry of the descriptor's challenges table.
type Challenge struct {
	Name string   `toml:"name"`
	Tags []string `toml:"tags"`
}

// ChallengeKeys returns the challenge keys in the order they appear in the descriptor.
func (e *Event) ChallengeKeys() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Undecoded lists descriptor keys that did not map onto any known field.
func (e *Event) Undecoded() []string {
	return e.undecoded
}

// HasDescription reports whether the descriptor declared a description (possibly empty).
func (e *Event) HasDescription() bool {
	return e.Description != nil
}

// Load reads and parses the descriptor at path.
func Load(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryMetadata, "read event descriptor").
			WithContext("path", path).
			Build()
	}
	ev, err := Parse(data)
	if err != nil {
		if c, ok := ferrors.AsClassified(err); ok {
			return nil, c.WithContext("path", path)
		}
		return nil, err
	}
	return ev, nil
}

// Parse decodes a descriptor blob. It fails when the blob is not well-formed
// TOML, a field has the wrong type, or a required field is absent.
func Parse(data []byte) (*Event, error) {
	var ev Event
	md, err := toml.Decode(string(data), &ev)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryMetadata, "parse event descriptor").Build()
	}

	for _, field := range []string{"name", "date"} {
		if !md.IsDefined(field) {
			return nil, ferrors.MetadataError("missing required field").
				WithContext("field", field).
				Build()
		}
	}

	ev.order = challengeOrder(md, ev.Challenges)
	for _, key := range ev.order {
		if !validKey(key) {
			return nil, ferrors.MetadataError("invalid challenge key").
				WithContext("key", key).
				Build()
		}
		if !md.IsDefined("challenges", key, "name") {
			return nil, ferrors.MetadataError("missing required field").
				WithContext("field", "challenges."+key+".name").
				Build()
		}
	}

	for _, k := range md.Undecoded() {
		ev.undecoded = append(ev.undecoded, k.String())
	}
	return &ev, nil
}

// validKey reports whether a challenge key names a plain file inside the
// event folder.
func validKey(key string) bool {
	if key == "" || strings.Contains(key, "..") {
		return false
	}
	return !strings.ContainsAny(key, `/\`)
}

// challengeOrder recovers declaration order from the decoder's key list.
// Keys the decoder did not report are appended in sorted order.
func challengeOrder(md toml.MetaData, challenges map[string]Challenge) []string {
	seen := make(map[string]struct{}, len(challenges))
	order := make([]string, 0, len(challenges))
	for _, k := range md.Keys() {
		if len(k) < 2 || k[0] != "challenges" {
			continue
		}
		if _, ok := challenges[k[1]]; !ok {
			continue
		}
		if _, dup := seen[k[1]]; dup {
			continue
		}
		seen[k[1]] = struct{}{}
		order = append(order, k[1])
	}

	var rest []string
	for key := range challenges {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
