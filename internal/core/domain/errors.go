package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when the build manifest is absent or unreadable.
	ErrManifestNotFound = zerr.New("vite manifest not found")

	// ErrManifestParseFailed is returned when the build manifest is not a valid JSON object.
	ErrManifestParseFailed = zerr.New("failed to parse vite manifest")

	// ErrEntryNotFound is returned when a requested entry is not a key of the manifest.
	ErrEntryNotFound = zerr.New("vite entry not found in manifest")

	// ErrSVGNotFound is returned when no SVG source file exists for an asset.
	ErrSVGNotFound = zerr.New("svg source not found")

	// ErrSVGReadFailed is returned when an SVG source file cannot be read.
	ErrSVGReadFailed = zerr.New("failed to read svg source")

	// ErrInvalidAttribute is returned when an attribute argument cannot be parsed.
	ErrInvalidAttribute = zerr.New("invalid attribute, expected name=value")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrTemplateParseFailed is returned when a page template cannot be parsed.
	ErrTemplateParseFailed = zerr.New("failed to parse template")

	// ErrTemplateExecFailed is returned when a page template fails to execute.
	ErrTemplateExecFailed = zerr.New("failed to execute template")
)

// Fail returns an error of the given kind that errors.Is matches. Metadata
// attached with zerr.With stays on the returned error. A non-nil cause is
// recorded under the "cause" key.
func Fail(kind, cause error) error {
	err := zerr.Wrap(kind, "")
	if cause != nil {
		err = zerr.With(err, "cause", cause.Error())
	}
	return err
}
