package ports

import "go.trai.ch/vitetags/internal/core/domain"

// ConfigLoader defines the interface for loading the resolver configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the normalized config.
	// When explicit is false a missing file yields the defaults.
	Load(path string, explicit bool) (domain.Config, error)
}
