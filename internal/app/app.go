// Package app implements the application layer for vitetags.
package app

import (
	"path/filepath"

	"go.trai.ch/vitetags/internal/adapters/hotfile"
	"go.trai.ch/vitetags/internal/adapters/manifest"
	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/vitetags/internal/core/ports"
	"go.trai.ch/zerr"
)

// App builds Vite facades from configuration. Every facade it creates shares
// one manifest cache.
type App struct {
	configLoader ports.ConfigLoader
	fs           ports.FileSystem
	cache        *manifest.Cache
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fsys ports.FileSystem,
	cache *manifest.Cache,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		fs:           fsys,
		cache:        cache,
		logger:       log,
		tracer:       tracer,
	}
}

// WithTracer replaces the tracer used by facades created afterwards.
func (a *App) WithTracer(tracer ports.Tracer) *App {
	a.tracer = tracer
	return a
}

// Overrides are settings given on the command line. Nil fields keep the
// value from the config file.
type Overrides struct {
	Root             *string
	BaseURL          *string
	BuildDirectory   *string
	ManifestFilename *string
	Lenient          *bool
}

// LoadConfig loads the config file at path and applies overrides.
// A relative root override resolves against the working directory.
func (a *App) LoadConfig(path string, explicit bool, o Overrides) (domain.Config, error) {
	cfg, err := a.configLoader.Load(path, explicit)
	if err != nil {
		return domain.Config{}, err
	}

	if o.Root != nil {
		root, err := filepath.Abs(*o.Root)
		if err != nil {
			return domain.Config{}, zerr.With(domain.Fail(domain.ErrInvalidConfig, err), "root", *o.Root)
		}
		cfg.Root = root
	}
	if o.BaseURL != nil {
		cfg.BaseURL = *o.BaseURL
	}
	if o.BuildDirectory != nil {
		cfg.BuildDirectory = *o.BuildDirectory
	}
	if o.ManifestFilename != nil {
		cfg.ManifestFilename = *o.ManifestFilename
	}
	if o.Lenient != nil {
		cfg.LenientManifest = *o.Lenient
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Vite creates a facade for cfg backed by the shared manifest cache and the
// dev server marker in the build directory.
func (a *App) Vite(cfg domain.Config) *Vite {
	store := manifest.NewStore(a.fs, a.cache, a.logger, manifest.WithLenient(cfg.LenientManifest))
	detector := hotfile.NewDetector(a.fs, cfg.HotPath())
	return NewVite(cfg, store, detector, a.fs, a.logger, a.tracer)
}

// Logger returns the application logger.
func (a *App) Logger() ports.Logger {
	return a.logger
}

// Components holds the wired application and its logger.
type Components struct {
	App    *App
	Logger ports.Logger
}
