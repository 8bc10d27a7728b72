package domain

import "regexp"

// Kind classifies an asset as a script or a stylesheet.
type Kind string

const (
	// KindScript is an ES module script.
	KindScript Kind = "script"
	// KindStyle is a stylesheet.
	KindStyle Kind = "style"
)

var stylesheetPattern = regexp.MustCompile(`\.css(\?|$)`)

// IsStylesheet reports whether path names a stylesheet.
// A query fragment after the extension is allowed.
func IsStylesheet(path string) bool {
	return stylesheetPattern.MatchString(path)
}

// KindOf returns the kind of the asset at path.
func KindOf(path string) Kind {
	if IsStylesheet(path) {
		return KindStyle
	}
	return KindScript
}

// PreloadEntry is a resource hint for a URL.
type PreloadEntry struct {
	URL  string
	Kind Kind
}

// AssetRef is a resolved asset that is emitted as a script or stylesheet tag.
type AssetRef struct {
	URL  string
	Kind Kind
}

// Plan is the ordered, de-duplicated output of dependency resolution.
type Plan struct {
	Preloads []PreloadEntry
	Tags     []AssetRef
}
