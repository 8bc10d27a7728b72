package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

var attributeNamePattern = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)

// ValidAttributeName reports whether name can be written as an HTML attribute.
func ValidAttributeName(name string) bool {
	return attributeNamePattern.MatchString(name)
}

// ParseAttribute parses a "name=value" argument.
func ParseAttribute(arg string) (Attribute, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok || !ValidAttributeName(name) {
		return Attribute{}, zerr.With(Fail(ErrInvalidAttribute, nil), "argument", arg)
	}
	return Attribute{Name: name, Value: value}, nil
}

// Attribute is a caller-supplied attribute merged into an inline SVG root element.
// Value may be a string, a bool, nil, or any value printable with fmt.
type Attribute struct {
	Name  string
	Value any
}

// Attributes is an ordered list of attributes.
type Attributes []Attribute

// AttributesFromMap converts a mapping into Attributes sorted by name.
func AttributesFromMap(m map[string]any) Attributes {
	attrs := make(Attributes, 0, len(m))
	for name, value := range m {
		attrs = append(attrs, Attribute{Name: name, Value: value})
	}
	slices.SortFunc(attrs, func(a, b Attribute) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return attrs
}

// Get returns the value for name and whether it is set to a non-nil value.
func (a Attributes) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name && attr.Value != nil {
			return attr.Value, true
		}
	}
	return nil, false
}

// Omitted reports whether the attribute is skipped when rendering.
func (a Attribute) Omitted() bool {
	if a.Value == nil {
		return true
	}
	b, ok := a.Value.(bool)
	return ok && !b
}

// String returns the textual attribute value. true renders as "1".
func (a Attribute) String() string {
	switch v := a.Value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// FallbackReason explains why an inline SVG degraded to an image tag.
type FallbackReason string

const (
	// FallbackNone means the SVG was inlined.
	FallbackNone FallbackReason = ""
	// FallbackSourceMissing means no source file exists on disk.
	FallbackSourceMissing FallbackReason = "source_missing"
	// FallbackReadFailed means the source file exists but could not be read.
	FallbackReadFailed FallbackReason = "read_failed"
	// FallbackManifestUnavailable means the manifest could not be loaded.
	FallbackManifestUnavailable FallbackReason = "manifest_unavailable"
)

// SVGResult is the outcome of inline SVG resolution.
type SVGResult struct {
	// Markup is the sanitized inline markup. Empty when Reason is set.
	Markup string
	// Reason is set when the SVG must be replaced by an image tag.
	Reason FallbackReason
	// Err is the underlying failure, if any.
	Err error
}

// Inlined reports whether the result carries markup.
func (r SVGResult) Inlined() bool {
	return r.Reason == FallbackNone
}
