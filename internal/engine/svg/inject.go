package svg

import (
	"html"
	"regexp"
	"strings"

	"go.trai.ch/vitetags/internal/core/domain"
)

// mergeRule removes an existing root attribute that a caller value replaces.
type mergeRule struct {
	name   string
	quoted [2]*regexp.Regexp
}

var mergeRules = newMergeRules("class", "width", "height", "fill", "stroke")

func newMergeRules(names ...string) []mergeRule {
	rules := make([]mergeRule, 0, len(names))
	for _, name := range names {
		rules = append(rules, mergeRule{
			name: name,
			quoted: [2]*regexp.Regexp{
				regexp.MustCompile(`(?i)\s` + name + `\s*=\s*"[^"]*"`),
				regexp.MustCompile(`(?i)\s` + name + `\s*=\s*'[^']*'`),
			},
		})
	}
	return rules
}

func (r mergeRule) strip(tag string) string {
	for _, re := range r.quoted {
		tag = re.ReplaceAllString(tag, "")
	}
	return tag
}

// Locator finds the opening tag of the root svg element.
type Locator interface {
	// Locate returns the byte span [start, end) of the opening tag.
	Locate(svg string) (start, end int, ok bool)
}

// RegexLocator matches the first <svg ...> opening tag.
type RegexLocator struct{}

var rootPattern = regexp.MustCompile(`(?i)<svg\b[^>]*>`)

// Locate implements Locator.
func (RegexLocator) Locate(svg string) (start, end int, ok bool) {
	loc := rootPattern.FindStringIndex(svg)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// DefaultLocator is used by Inject.
var DefaultLocator Locator = RegexLocator{}

// Inject merges attrs into the root element using DefaultLocator.
func Inject(svg string, attrs domain.Attributes) string {
	return InjectWith(DefaultLocator, svg, attrs)
}

// InjectWith merges attrs into the root element found by loc.
// Markup without a root element is returned unchanged.
func InjectWith(loc Locator, svg string, attrs domain.Attributes) string {
	if len(attrs) == 0 {
		return svg
	}

	start, end, ok := loc.Locate(svg)
	if !ok {
		return svg
	}
	tag := svg[start:end]

	for _, rule := range mergeRules {
		if _, set := attrs.Get(rule.name); set {
			tag = rule.strip(tag)
		}
	}

	var extra strings.Builder
	for _, attr := range attrs {
		if attr.Omitted() {
			continue
		}
		extra.WriteString(" " + attr.Name + `="` + html.EscapeString(attr.String()) + `"`)
	}

	closing := ">"
	body := strings.TrimSuffix(tag, ">")
	if strings.HasSuffix(body, "/") {
		closing = "/>"
		body = strings.TrimSuffix(body, "/")
	}
	tag = strings.TrimRight(body, " \t\r\n") + extra.String() + closing

	return svg[:start] + tag + svg[end:]
}
