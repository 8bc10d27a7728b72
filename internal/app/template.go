package app

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"slices"
	"strings"

	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/zerr"
)

// Template function names.
const (
	FuncTags  = "vite"
	FuncAsset = "vite_asset"
	FuncSVG   = "vite_svg"
)

// FuncMap exposes the entry points to html/template:
//
//	{{ vite "resources/js/app.js" "resources/css/app.css" }}
//	{{ vite_asset "resources/images/hero.jpg" }}
//	{{ vite_svg "resources/images/logo.svg" "class" "icon" "width" 24 }}
//
// vite_svg also accepts a single map[string]any or map[string]string in place
// of the name/value pairs.
func (v *Vite) FuncMap(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		FuncTags: func(entries ...string) (template.HTML, error) {
			html, err := v.Tags(ctx, entries...)
			//nolint:gosec // tag markup is built from escaped URLs
			return template.HTML(html), err
		},
		FuncAsset: func(entry string) (string, error) {
			return v.AssetURL(ctx, entry)
		},
		FuncSVG: func(asset string, args ...any) (template.HTML, error) {
			attrs, err := templateAttributes(args)
			if err != nil {
				return "", err
			}
			//nolint:gosec // markup is sanitized before injection
			return template.HTML(v.InlineSVG(ctx, asset, attrs)), nil
		},
	}
}

// RenderTemplate parses text as an html/template with the Vite functions
// and executes it into w.
func (v *Vite) RenderTemplate(ctx context.Context, name, text string, w io.Writer, data any) error {
	tmpl, err := template.New(name).Funcs(v.FuncMap(ctx)).Parse(text)
	if err != nil {
		return zerr.With(domain.Fail(domain.ErrTemplateParseFailed, err), "template", name)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return zerr.With(domain.Fail(domain.ErrTemplateExecFailed, err), "template", name)
	}
	return nil
}

func templateAttributes(args []any) (domain.Attributes, error) {
	if len(args) == 1 {
		switch m := args[0].(type) {
		case map[string]any:
			return checkNames(domain.AttributesFromMap(m))
		case map[string]string:
			converted := make(map[string]any, len(m))
			for k, val := range m {
				converted[k] = val
			}
			return checkNames(domain.AttributesFromMap(converted))
		}
	}

	if len(args)%2 != 0 {
		return nil, zerr.With(domain.Fail(domain.ErrInvalidAttribute, nil), "arguments", fmt.Sprint(args...))
	}

	attrs := make(domain.Attributes, 0, len(args)/2)
	for pair := range slices.Chunk(args, 2) {
		name, ok := pair[0].(string)
		if !ok {
			return nil, zerr.With(domain.Fail(domain.ErrInvalidAttribute, nil), "name", fmt.Sprint(pair[0]))
		}
		attrs = append(attrs, domain.Attribute{Name: name, Value: pair[1]})
	}
	return checkNames(attrs)
}

func checkNames(attrs domain.Attributes) (domain.Attributes, error) {
	var bad []string
	for _, a := range attrs {
		if !domain.ValidAttributeName(a.Name) {
			bad = append(bad, a.Name)
		}
	}
	if len(bad) > 0 {
		return nil, zerr.With(domain.Fail(domain.ErrInvalidAttribute, nil), "name", strings.Join(bad, ", "))
	}
	return attrs, nil
}
