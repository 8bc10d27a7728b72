package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the default name of the configuration file.
	ConfigFileName = "vitetags.yaml"
	// DefaultBuildDirectory is the build output directory relative to the root.
	DefaultBuildDirectory = "public/build"
	// DefaultManifestFilename is the manifest filename inside the build directory.
	DefaultManifestFilename = "manifest.json"
	// DefaultHotFilename is the dev server marker filename inside the build directory.
	DefaultHotFilename = "hot"
	// DevClientPath is the path of the dev server client bootstrap script.
	DevClientPath = "@vite/client"
)

// LogFormat selects the logger output encoding.
type LogFormat string

const (
	// LogFormatPretty is human readable, coloured output.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON is one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// Config holds the settings consumed when constructing the asset resolver.
type Config struct {
	// Root is the filesystem directory that source and build paths resolve from.
	Root string
	// BaseURL is the public URL that Root is served under. Empty means site root.
	BaseURL string
	// BuildDirectory is the build output directory relative to Root.
	BuildDirectory string
	// ManifestFilename is the manifest file name inside BuildDirectory.
	ManifestFilename string
	// HotFilename is the dev server marker file name inside BuildDirectory.
	HotFilename string
	// LenientManifest degrades an unparsable manifest to an empty one instead of failing.
	LenientManifest bool
	// LogFormat selects the logger encoding.
	LogFormat LogFormat
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Root:             ".",
		BuildDirectory:   DefaultBuildDirectory,
		ManifestFilename: DefaultManifestFilename,
		HotFilename:      DefaultHotFilename,
		LogFormat:        LogFormatPretty,
	}
}

// Normalize trims surrounding slashes from the build directory and trailing
// slashes from the base URL.
func (c Config) Normalize() Config {
	c.BuildDirectory = strings.Trim(c.BuildDirectory, "/")
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Root == "" {
		c.Root = "."
	}
	return c
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.ManifestFilename == "" {
		return zerr.With(Fail(ErrInvalidConfig, nil), "manifest", "must not be empty")
	}
	if strings.ContainsAny(c.ManifestFilename, `/\`) {
		return zerr.With(Fail(ErrInvalidConfig, nil), "manifest", "must be a file name, got "+c.ManifestFilename)
	}
	if c.HotFilename == "" || strings.ContainsAny(c.HotFilename, `/\`) {
		return zerr.With(Fail(ErrInvalidConfig, nil), "hot_file", "must be a file name, got "+c.HotFilename)
	}
	if dir := strings.Trim(c.BuildDirectory, "/"); dir != "" && !filepath.IsLocal(filepath.FromSlash(dir)) {
		return zerr.With(Fail(ErrInvalidConfig, nil), "build_directory", "must stay inside root, got "+c.BuildDirectory)
	}

	switch c.LogFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return zerr.With(Fail(ErrInvalidConfig, nil), "log_format", "expected 'pretty' or 'json', got "+string(c.LogFormat))
	}
	return nil
}

// ManifestPath returns the filesystem path of the manifest file.
func (c Config) ManifestPath() string {
	return c.BuildPath(c.ManifestFilename)
}

// HotPath returns the filesystem path of the dev server marker file.
func (c Config) HotPath() string {
	return c.BuildPath(c.HotFilename)
}

// SourcePath returns the filesystem path of a source-tree asset.
func (c Config) SourcePath(asset string) string {
	return filepath.Join(c.Root, filepath.FromSlash(strings.TrimLeft(asset, "/")))
}

// BuildPath returns the filesystem path of a file inside the build directory.
func (c Config) BuildPath(file string) string {
	return filepath.Join(c.Root, filepath.FromSlash(c.BuildDirectory), filepath.FromSlash(strings.TrimLeft(file, "/")))
}

// PublicURL returns the URL that serves sub, a path relative to Root.
func (c Config) PublicURL(sub string) string {
	return c.BaseURL + "/" + strings.TrimLeft(sub, "/")
}

// BuildURL returns the URL that serves a file inside the build directory.
func (c Config) BuildURL(file string) string {
	return c.PublicURL(c.BuildDirectory + "/" + strings.TrimLeft(file, "/"))
}
