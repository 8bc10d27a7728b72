// Package fs provides filesystem adapters for reading build output and source assets.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// OSFS implements ports.FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- paths are built from configured roots
	return os.ReadFile(path)
}

// MapFSAdapter adapts an fs.FS (fstest.MapFS, embed.FS) to ports.FileSystem.
// Absolute paths under Root are translated to paths inside FS.
type MapFSAdapter struct {
	FS   fs.FS
	Root string // simulated root path
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: filepath.Clean(root),
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.FS, m.toRelPath(path))
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.toRelPath(path))
}

// toRelPath converts a path to a slash-separated path within the filesystem.
// Paths outside the root are returned unchanged, which makes downstream fs
// operations fail with a not-exist or invalid-path error.
func (m *MapFSAdapter) toRelPath(path string) string {
	path = filepath.Clean(path)

	if filepath.IsAbs(path) {
		if m.Root != "/" && path != m.Root && !strings.HasPrefix(path, m.Root+string(filepath.Separator)) {
			return path
		}
		path = strings.TrimPrefix(path, m.Root)
		path = strings.TrimPrefix(path, string(filepath.Separator))
	} else if m.Root != "." && !filepath.IsAbs(m.Root) {
		rel, err := filepath.Rel(m.Root, path)
		if err != nil {
			return path
		}
		path = rel
	}

	if path == "" {
		return "."
	}
	return filepath.ToSlash(path)
}
