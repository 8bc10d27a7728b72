package ports

// ModeDetector reports whether a development server is running.
//
//go:generate mockgen -source=mode_detector.go -destination=mocks/mock_mode_detector.go -package=mocks
type ModeDetector interface {
	// IsDevActive reports whether the dev server marker exists.
	IsDevActive() bool
	// DevOrigin returns the dev server origin. It is only meaningful when
	// IsDevActive returns true and is empty otherwise.
	DevOrigin() string
}
