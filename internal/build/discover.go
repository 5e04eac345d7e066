package build

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
)

// VCSMarker excludes version-control folders from event enumeration.
const VCSMarker = ".git"

// DiscoverEvents returns the absolute paths of every event folder directly
// below root, sorted by name. Folders whose name contains VCSMarker are skipped.
func DiscoverEvents(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read input folder").
			Fatal().
			WithContext("path", root).
			Build()
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve input folder").
			Fatal().
			WithContext("path", root).
			Build()
	}

	var dirs []string
	for _, e := range entries {
		if !isEventDir(abs, e) {
			continue
		}
		dirs = append(dirs, filepath.Join(abs, e.Name()))
	}
	sort.Strings(dirs)
	return dirs, nil
}

func isEventDir(root string, e os.DirEntry) bool {
	if strings.Contains(e.Name(), VCSMarker) {
		return false
	}
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, e.Name()))
	return err == nil && info.IsDir()
}
