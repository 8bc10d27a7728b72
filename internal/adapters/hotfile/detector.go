// Package hotfile detects a running Vite dev server from its marker file.
package hotfile

import (
	"strings"

	"go.trai.ch/vitetags/internal/core/ports"
)

// Detector implements ports.ModeDetector by checking for the dev server
// marker ("hot") file. The marker is checked on every call so that starting
// or stopping the dev server is picked up without a restart.
type Detector struct {
	fs   ports.FileSystem
	path string
}

// NewDetector creates a Detector for the marker file at path.
func NewDetector(fsys ports.FileSystem, path string) *Detector {
	return &Detector{fs: fsys, path: path}
}

// Path returns the marker file path.
func (d *Detector) Path() string {
	return d.path
}

// IsDevActive reports whether the marker exists as a regular file.
func (d *Detector) IsDevActive() bool {
	info, err := d.fs.Stat(d.path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DevOrigin returns the trimmed marker content, or "" if it cannot be read.
func (d *Detector) DevOrigin() string {
	data, err := d.fs.ReadFile(d.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
