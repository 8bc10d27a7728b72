// Package domain contains the core types for resolving Vite build output.
package domain

import (
	"slices"

	"github.com/agnivade/levenshtein"
	"go.trai.ch/zerr"
)

// suggestDistance is the largest edit distance offered as a "did you mean" hint.
const suggestDistance = 3

// Chunk is one emitted output unit as described by the build manifest.
type Chunk struct {
	File           string   `json:"file"`
	Src            string   `json:"src,omitempty"`
	Name           string   `json:"name,omitempty"`
	IsEntry        bool     `json:"isEntry,omitempty"`
	IsDynamicEntry bool     `json:"isDynamicEntry,omitempty"`
	CSS            []string `json:"css,omitempty"`
	Imports        []string `json:"imports,omitempty"`
	DynamicImports []string `json:"dynamicImports,omitempty"`
	Assets         []string `json:"assets,omitempty"`
}

// Manifest maps entry keys to the chunks emitted for them.
type Manifest struct {
	// Path is the absolute path the manifest was read from.
	Path string
	// Digest is the xxhash64 of the raw manifest bytes.
	Digest uint64
	// Chunks holds the manifest records keyed by entry key.
	Chunks map[string]Chunk
}

// NewManifest creates a Manifest from already parsed chunks.
func NewManifest(path string, digest uint64, chunks map[string]Chunk) *Manifest {
	if chunks == nil {
		chunks = make(map[string]Chunk)
	}
	return &Manifest{Path: path, Digest: digest, Chunks: chunks}
}

// Lookup returns the chunk for key.
func (m *Manifest) Lookup(key string) (Chunk, error) {
	if chunk, ok := m.Chunks[key]; ok {
		return chunk, nil
	}

	err := zerr.With(Fail(ErrEntryNotFound, nil), "entry", key)
	if hint := m.suggest(key); hint != "" {
		err = zerr.With(err, "did_you_mean", hint)
	}
	return Chunk{}, err
}

// Keys returns the manifest keys in sorted order.
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, len(m.Chunks))
	for k := range m.Chunks {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of entries in the manifest.
func (m *Manifest) Len() int {
	return len(m.Chunks)
}

// suggest returns the closest key to the requested one, or "" if none is close enough.
// Ties are broken by key order so the hint is stable.
func (m *Manifest) suggest(key string) string {
	best := ""
	bestDist := suggestDistance + 1
	for _, candidate := range m.Keys() {
		d := levenshtein.ComputeDistance(key, candidate)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
