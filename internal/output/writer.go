// Package output materializes an event plan under the output root.
package output

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/ctfpress/internal/event"
	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
	"git.home.luguber.info/inful/ctfpress/internal/logfields"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Result counts what a Write call actually put on disk.
type Result struct {
	Pages  int
	Assets int
}

// Writer writes pages and copies assets below Root.
type Writer struct {
	Root string
}

// NewWriter returns a Writer rooted at root.
func NewWriter(root string) *Writer {
	return &Writer{Root: root}
}

// Write creates the event folder, writes every page and copies every asset.
// Failures do not stop the remaining writes and nothing written is rolled
// back; all failures are joined into the returned error.
func (w *Writer) Write(plan *event.Plan) (Result, error) {
	var res Result
	logger := slog.Default().With(logfields.Event(plan.Folder))

	eventDir := filepath.Join(w.Root, plan.Folder)
	if err := os.MkdirAll(eventDir, dirPerm); err != nil {
		return res, outputError(err, "create event output folder", eventDir)
	}

	var errs []error
	for _, page := range plan.AllPages() {
		dst := filepath.Join(w.Root, page.Path)
		if err := writeFile(dst, page.Content); err != nil {
			errs = append(errs, outputError(err, "write page", dst))
			continue
		}
		res.Pages++
		logger.Debug("Wrote page", logfields.Path(dst))
	}

	for _, asset := range plan.Assets {
		dst := filepath.Join(eventDir, asset.RelPath)
		if err := copyFile(asset.Source, dst); err != nil {
			errs = append(errs, outputError(err, "copy asset", dst))
			continue
		}
		res.Assets++
		logger.Debug("Copied asset", logfields.Asset(asset.RelPath))
	}

	return res, errors.Join(errs...)
}

func outputError(err error, msg, path string) error {
	return ferrors.WrapError(err, ferrors.CategoryOutput, msg).
		WithContext("path", path).
		Build()
}

func writeFile(dst string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return err
	}
	return os.WriteFile(dst, content, filePerm)
}

// copyFile copies src to dst byte for byte, creating missing parent folders
// and preserving the source permissions.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}
	return os.Chmod(dst, srcInfo.Mode().Perm())
}
