// Package resolver expands manifest entries into preload hints and tags.
package resolver

import (
	"go.trai.ch/vitetags/internal/core/domain"
)

// URLFunc maps a build-relative output path to its public URL.
type URLFunc func(file string) string

// Resolve walks each entry's chunk and its direct imports and returns the
// merged plan. Entries are processed in the given order and the first
// occurrence of a URL wins. Imports are expanded one level only, and import
// keys absent from the manifest are skipped.
func Resolve(m *domain.Manifest, entries []string, urlFor URLFunc) (domain.Plan, error) {
	p := newPlanner(urlFor)

	for _, entry := range entries {
		chunk, err := m.Lookup(entry)
		if err != nil {
			return domain.Plan{}, err
		}
		p.addEntry(m, chunk)
	}

	return p.plan, nil
}

type planner struct {
	urlFor   URLFunc
	plan     domain.Plan
	preloads map[string]struct{}
	tags     map[domain.AssetRef]struct{}
}

func newPlanner(urlFor URLFunc) *planner {
	return &planner{
		urlFor:   urlFor,
		preloads: make(map[string]struct{}),
		tags:     make(map[domain.AssetRef]struct{}),
	}
}

func (p *planner) addEntry(m *domain.Manifest, entry domain.Chunk) {
	p.preload(entry.File, domain.KindOf(entry.File))

	for _, key := range entry.Imports {
		imported, ok := m.Chunks[key]
		if !ok {
			continue
		}
		p.preload(imported.File, domain.KindScript)
		for _, css := range imported.CSS {
			p.stylesheet(css)
		}
	}

	p.tag(entry.File, domain.KindOf(entry.File))

	for _, css := range entry.CSS {
		p.stylesheet(css)
	}
}

// stylesheet adds both the style preload and the stylesheet tag for file.
func (p *planner) stylesheet(file string) {
	p.preload(file, domain.KindStyle)
	p.tag(file, domain.KindStyle)
}

func (p *planner) preload(file string, kind domain.Kind) {
	url := p.urlFor(file)
	if _, seen := p.preloads[url]; seen {
		return
	}
	p.preloads[url] = struct{}{}
	p.plan.Preloads = append(p.plan.Preloads, domain.PreloadEntry{URL: url, Kind: kind})
}

func (p *planner) tag(file string, kind domain.Kind) {
	ref := domain.AssetRef{URL: p.urlFor(file), Kind: kind}
	if _, seen := p.tags[ref]; seen {
		return
	}
	p.tags[ref] = struct{}{}
	p.plan.Tags = append(p.plan.Tags, ref)
}
