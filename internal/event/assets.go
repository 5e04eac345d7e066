package event

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
	"git.home.luguber.info/inful/ctfpress/internal/logfields"
	"git.home.luguber.info/inful/ctfpress/internal/meta"
)

// ClassifyAssets lists every regular file under dir that is neither a
// descriptor nor has the exact Markdown extension. Files without an
// extension are assets. Symlinks to regular files count as files; dangling
// links are logged and skipped. Paths are returned in lexical walk order.
func ClassifyAssets(dir string) ([]Asset, error) {
	var assets []Asset
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !IsAsset(d.Name()) || !isFile(path, d) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		assets = append(assets, Asset{RelPath: rel, Source: abs})
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "enumerate event assets").
			WithContext("event", filepath.Base(dir)).
			Build()
	}
	return assets, nil
}

func isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		slog.Warn("Skipping unresolvable symlink", logfields.Path(path), logfields.Error(err))
		return false
	}
	return info.Mode().IsRegular()
}

// IsAsset reports whether a file name denotes an asset. A leading dot does
// not start an extension, so a file named ".md" is an asset.
func IsAsset(name string) bool {
	return name != meta.DescriptorFile && extension(name) != MarkdownExt
}

func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}
