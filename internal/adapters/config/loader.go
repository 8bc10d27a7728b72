// Package config provides the configuration loader for vitetags.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/vitetags/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs ports.FileSystem
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(fsys ports.FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load reads the configuration file at path and returns the normalized config.
// A missing file yields the defaults unless explicit is set.
func (l *Loader) Load(path string, explicit bool) (domain.Config, error) {
	file := defaultFile()

	data, err := l.fs.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, &file); err != nil {
			return domain.Config{}, zerr.With(err, "path", path)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file: defaults apply.
	default:
		return domain.Config{}, zerr.With(domain.Fail(domain.ErrConfigReadFailed, err), "path", path)
	}

	cfg, err := file.toConfig(filepath.Dir(path))
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func defaultFile() File {
	d := domain.DefaultConfig()
	return File{
		Root:            d.Root,
		BaseURL:         d.BaseURL,
		BuildDirectory:  d.BuildDirectory,
		Manifest:        d.ManifestFilename,
		HotFile:         d.HotFilename,
		LenientManifest: d.LenientManifest,
		LogFormat:       string(d.LogFormat),
	}
}

func decode(data []byte, target *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document.
			return nil
		}
		return domain.Fail(domain.ErrConfigParseFailed, err)
	}
	return nil
}

func (f *File) toConfig(configDir string) (domain.Config, error) {
	root := f.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(configDir, root)
	}

	cfg := domain.Config{
		Root:             root,
		BaseURL:          f.BaseURL,
		BuildDirectory:   f.BuildDirectory,
		ManifestFilename: f.Manifest,
		HotFilename:      f.HotFile,
		LenientManifest:  f.LenientManifest,
		LogFormat:        domain.LogFormat(f.LogFormat),
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}
