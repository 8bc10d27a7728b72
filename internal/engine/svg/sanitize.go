// Package svg sanitizes SVG markup and merges attributes into its root element.
package svg

import (
	"regexp"
	"strings"
)

// unsafePatterns are removed in order. Self-closing elements go first so
// their pattern does not swallow the content up to a later closing tag.
// Attributes may follow whitespace or a slash, as in <svg/onload="x()">.
var unsafePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<\?xml.*?\?>`),
	regexp.MustCompile(`(?is)<script\b[^>]*/>`),
	regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`),
	regexp.MustCompile(`(?is)<foreignObject\b[^>]*/>`),
	regexp.MustCompile(`(?is)<foreignObject\b[^>]*>.*?</foreignObject\s*>`),
	regexp.MustCompile(`(?i)[\s/]on\w+\s*=\s*"[^"]*"`),
	regexp.MustCompile(`(?i)[\s/]on\w+\s*=\s*'[^']*'`),
	regexp.MustCompile(`(?i)[\s/]on\w+\s*=\s*[^\s"'>]+`),
	regexp.MustCompile(`(?i)[\s/](?:xlink:href|href)\s*=\s*"\s*javascript:[^"]*"`),
	regexp.MustCompile(`(?i)[\s/](?:xlink:href|href)\s*=\s*'\s*javascript:[^']*'`),
	regexp.MustCompile(`(?i)[\s/](?:xlink:href|href)\s*=\s*javascript:[^\s"'>]*`),
}

// Sanitize strips the XML prologue, script and foreignObject elements,
// inline event handlers and javascript: links, then trims whitespace.
//
// Removing a match can join the surrounding text into a new match, so the
// patterns are applied until a pass changes nothing. Every pass that changes
// the input shortens it, which bounds the loop.
func Sanitize(svg string) string {
	for {
		next := sanitizePass(svg)
		if next == svg {
			break
		}
		svg = next
	}
	return strings.TrimSpace(svg)
}

func sanitizePass(svg string) string {
	for _, re := range unsafePatterns {
		svg = re.ReplaceAllString(svg, "")
	}
	return svg
}
