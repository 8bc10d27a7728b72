// Package render turns resolved asset URLs into HTML tags.
package render

import (
	"html"
	"strings"

	"go.trai.ch/vitetags/internal/core/domain"
)

// ScriptTag renders a module script tag.
func ScriptTag(url string) string {
	return `<script type="module" src="` + html.EscapeString(url) + `"></script>`
}

// StylesheetTag renders a stylesheet link.
func StylesheetTag(url string) string {
	return `<link rel="stylesheet" href="` + html.EscapeString(url) + `" />`
}

// PreloadTag renders a resource hint. Scripts use modulepreload.
func PreloadTag(p domain.PreloadEntry) string {
	if p.Kind == domain.KindStyle {
		return `<link rel="preload" as="style" href="` + html.EscapeString(p.URL) + `" />`
	}
	return `<link rel="modulepreload" href="` + html.EscapeString(p.URL) + `" />`
}

// Tag renders ref as a stylesheet link or a module script.
func Tag(ref domain.AssetRef) string {
	if ref.Kind == domain.KindStyle {
		return StylesheetTag(ref.URL)
	}
	return ScriptTag(ref.URL)
}

// ImgTag renders the placeholder used when an SVG cannot be inlined.
func ImgTag(url string) string {
	return `<img alt="" src="` + html.EscapeString(url) + `">`
}

// Production renders all preloads followed by all tags, with no separator.
func Production(plan domain.Plan) string {
	var b strings.Builder
	for _, p := range plan.Preloads {
		b.WriteString(PreloadTag(p))
	}
	for _, ref := range plan.Tags {
		b.WriteString(Tag(ref))
	}
	return b.String()
}

// DevURL joins a dev server origin and an entry path.
func DevURL(origin, entry string) string {
	return strings.TrimRight(origin, "/") + "/" + strings.TrimLeft(entry, "/")
}

// Development renders the dev client followed by one tag per entry served
// straight from the dev server at origin.
func Development(origin string, entries []string) string {
	var b strings.Builder
	b.WriteString(ScriptTag(DevURL(origin, domain.DevClientPath)))
	for _, entry := range entries {
		url := DevURL(origin, entry)
		b.WriteString(Tag(domain.AssetRef{URL: url, Kind: domain.KindOf(url)}))
	}
	return b.String()
}
