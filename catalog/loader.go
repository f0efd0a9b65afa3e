package catalog

import (
	"context"
	"path/filepath"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

// Loader reads catalog files from a filesystem.
type Loader struct {
	fs core.ReadFS
}

// NewLoader creates a loader reading from filesystem.
func NewLoader(filesystem core.ReadFS) *Loader {
	return &Loader{fs: filesystem}
}

// LoadFile loads every catalog document in the file at filePath.
//
// Returns CodeNotFound if the file does not exist and CodeInvalidInput if it
// cannot be read or decoded.
func (l *Loader) LoadFile(ctx context.Context, filePath string) ([]*Catalog, errors.PlatformError) {
	if err := ctx.Err(); err != nil {
		return nil, wrapReadError(err, "context cancelled", makeContext("file_path", filePath))
	}

	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, wrapReadError(err, "failed to read catalog file", makeContext("file_path", filePath))
	}
	return parse(data, filePath)
}

// LoadDir loads every *.yaml and *.yml file directly inside dir, in lexical
// order. Subdirectories are not visited.
func (l *Loader) LoadDir(ctx context.Context, dir string) ([]*Catalog, errors.PlatformError) {
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, wrapReadError(err, "failed to read catalog directory", makeContext("dir", dir))
	}

	var cats []*Catalog
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
		default:
			continue
		}
		loaded, perr := l.LoadFile(ctx, filepath.Join(dir, entry.Name()))
		if perr != nil {
			return nil, perr
		}
		cats = append(cats, loaded...)
	}
	return cats, nil
}

// Load loads path, which may be a catalog file or a directory of them.
func (l *Loader) Load(ctx context.Context, path string) ([]*Catalog, errors.PlatformError) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, wrapReadError(err, "failed to stat catalog path", makeContext("path", path))
	}
	if info.IsDir() {
		return l.LoadDir(ctx, path)
	}
	return l.LoadFile(ctx, path)
}
