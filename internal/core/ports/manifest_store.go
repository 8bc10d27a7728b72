// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/vitetags/internal/core/domain"

// ManifestStore loads build manifests.
//
//go:generate mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Load returns the parsed manifest at path.
	// Implementations memoize per absolute path for the lifetime of the process.
	Load(path string) (*domain.Manifest, error)
}
