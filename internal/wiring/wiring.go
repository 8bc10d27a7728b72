// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vitetags/internal/adapters/config"
	_ "go.trai.ch/vitetags/internal/adapters/fs"
	_ "go.trai.ch/vitetags/internal/adapters/logger"
	_ "go.trai.ch/vitetags/internal/adapters/manifest"
	_ "go.trai.ch/vitetags/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/vitetags/internal/app"
)
