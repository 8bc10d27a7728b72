package ports

import "io/fs"

// FileSystem abstracts the read-only filesystem operations the resolver performs.
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}
