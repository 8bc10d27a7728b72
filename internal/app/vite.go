package app

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/vitetags/internal/core/ports"
	"go.trai.ch/vitetags/internal/engine/render"
	"go.trai.ch/vitetags/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Vite resolves entries and SVG assets for one configuration.
type Vite struct {
	cfg      domain.Config
	store    ports.ManifestStore
	detector ports.ModeDetector
	fs       ports.FileSystem
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewVite creates a Vite facade.
func NewVite(
	cfg domain.Config,
	store ports.ManifestStore,
	detector ports.ModeDetector,
	fsys ports.FileSystem,
	log ports.Logger,
	tracer ports.Tracer,
) *Vite {
	return &Vite{
		cfg:      cfg,
		store:    store,
		detector: detector,
		fs:       fsys,
		logger:   log,
		tracer:   tracer,
	}
}

// Config returns the configuration the facade was built with.
func (v *Vite) Config() domain.Config {
	return v.cfg
}

// AssetURL returns the public URL for entry. In dev mode it points at the
// dev server, otherwise at the built file named by the manifest.
func (v *Vite) AssetURL(ctx context.Context, entry string) (string, error) {
	_, span := v.tracer.Start(ctx, "vite.asset_url", ports.WithAttribute("entry", entry))
	defer span.End()

	url, err := v.assetURL(entry)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return url, nil
}

func (v *Vite) assetURL(entry string) (string, error) {
	if v.detector.IsDevActive() {
		return render.DevURL(v.detector.DevOrigin(), entry), nil
	}

	m, err := v.store.Load(v.cfg.ManifestPath())
	if err != nil {
		return "", err
	}
	chunk, err := m.Lookup(entry)
	if err != nil {
		return "", err
	}
	return v.cfg.BuildURL(chunk.File), nil
}

// Tags renders the HTML fragment for entries.
func (v *Vite) Tags(ctx context.Context, entries ...string) (string, error) {
	_, span := v.tracer.Start(ctx, "vite.tags", ports.WithAttribute("entries", entries))
	defer span.End()

	if v.detector.IsDevActive() {
		span.SetAttribute("mode", "dev")
		return render.Development(v.detector.DevOrigin(), entries), nil
	}
	span.SetAttribute("mode", "prod")

	m, err := v.store.Load(v.cfg.ManifestPath())
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	plan, err := resolver.Resolve(m, entries, v.cfg.BuildURL)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttribute("preloads", len(plan.Preloads))
	span.SetAttribute("tags", len(plan.Tags))

	return render.Production(plan), nil
}

// ModeInfo describes the detected serving mode.
type ModeInfo struct {
	Dev        bool
	Origin     string
	MarkerPath string
}

// Mode reports whether the dev server is active and where.
func (v *Vite) Mode() ModeInfo {
	info := ModeInfo{MarkerPath: v.cfg.HotPath()}
	if v.detector.IsDevActive() {
		info.Dev = true
		info.Origin = strings.TrimRight(v.detector.DevOrigin(), "/")
	}
	return info
}

// InspectedEntry is one manifest record with its public URL.
type InspectedEntry struct {
	Key   string
	URL   string
	Chunk domain.Chunk
}

// Inspection summarizes the production manifest.
type Inspection struct {
	Path    string
	Digest  uint64
	Entries []InspectedEntry
}

// Inspect loads the manifest regardless of the dev marker and lists its
// records in key order.
func (v *Vite) Inspect(_ context.Context) (Inspection, error) {
	m, err := v.store.Load(v.cfg.ManifestPath())
	if err != nil {
		return Inspection{}, err
	}

	out := Inspection{Path: m.Path, Digest: m.Digest}
	for _, key := range m.Keys() {
		chunk := m.Chunks[key]
		out.Entries = append(out.Entries, InspectedEntry{
			Key:   key,
			URL:   v.cfg.BuildURL(chunk.File),
			Chunk: chunk,
		})
	}
	return out, nil
}

// localPath converts a slash-separated asset path to a relative OS path and
// rejects paths that leave the root.
func localPath(asset string) (string, error) {
	p := filepath.FromSlash(strings.TrimLeft(asset, "/"))
	if !filepath.IsLocal(p) {
		return "", zerr.With(domain.Fail(domain.ErrSVGNotFound, nil), "asset", asset)
	}
	return p, nil
}
