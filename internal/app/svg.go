package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/vitetags/internal/core/ports"
	"go.trai.ch/vitetags/internal/engine/render"
	"go.trai.ch/vitetags/internal/engine/svg"
	"go.trai.ch/zerr"
)

// InlineSVG returns sanitized SVG markup for asset with attrs merged into its
// root element. It never fails: when the SVG cannot be inlined it logs the
// reason and returns an <img> tag instead. Attributes with names that cannot
// be written as HTML are dropped.
func (v *Vite) InlineSVG(ctx context.Context, asset string, attrs domain.Attributes) string {
	ctx, span := v.tracer.Start(ctx, "vite.inline_svg", ports.WithAttribute("asset", asset))
	defer span.End()

	res := v.ResolveSVG(ctx, asset, attrs)
	if res.Inlined() {
		span.SetAttribute("fallback", "none")
		return res.Markup
	}

	span.SetAttribute("fallback", string(res.Reason))
	msg := fmt.Sprintf("inline svg %s: using <img> fallback (%s)", asset, res.Reason)
	if res.Err != nil {
		span.RecordError(res.Err)
		msg += ": " + describe(res.Err)
	}
	v.logger.Warn(msg)

	return render.ImgTag(v.fallbackURL(asset))
}

// ResolveSVG locates, reads and sanitizes the SVG for asset.
func (v *Vite) ResolveSVG(_ context.Context, asset string, attrs domain.Attributes) domain.SVGResult {
	path, res := v.svgPath(asset)
	if !res.Inlined() {
		return res
	}

	if !v.isFile(path) {
		return domain.SVGResult{
			Reason: domain.FallbackSourceMissing,
			Err:    zerr.With(domain.Fail(domain.ErrSVGNotFound, nil), "path", path),
		}
	}

	data, err := v.fs.ReadFile(path)
	if err != nil {
		return domain.SVGResult{
			Reason: domain.FallbackReadFailed,
			Err:    zerr.With(domain.Fail(domain.ErrSVGReadFailed, err), "path", path),
		}
	}

	markup := svg.Sanitize(string(data))
	if valid := validAttributes(attrs); len(valid) > 0 {
		markup = svg.Inject(markup, valid)
	}
	return domain.SVGResult{Markup: markup}
}

// svgPath picks the file to inline. Dev mode reads the source tree. Production
// prefers the built file named by the manifest and falls back to the source.
func (v *Vite) svgPath(asset string) (string, domain.SVGResult) {
	if _, err := localPath(asset); err != nil {
		return "", domain.SVGResult{Reason: domain.FallbackSourceMissing, Err: err}
	}
	source := v.cfg.SourcePath(asset)

	if v.detector.IsDevActive() {
		return source, domain.SVGResult{}
	}

	m, err := v.store.Load(v.cfg.ManifestPath())
	if err != nil {
		return "", domain.SVGResult{Reason: domain.FallbackManifestUnavailable, Err: err}
	}

	if chunk, ok := m.Chunks[asset]; ok {
		if _, err := localPath(chunk.File); err == nil {
			if built := v.cfg.BuildPath(chunk.File); v.isFile(built) {
				return built, domain.SVGResult{}
			}
		}
	}
	return source, domain.SVGResult{}
}

// fallbackURL is the image URL used when inlining fails. Assets missing
// from the manifest are served from the source tree.
func (v *Vite) fallbackURL(asset string) string {
	url, err := v.assetURL(asset)
	if err != nil {
		return v.cfg.PublicURL(asset)
	}
	return url
}

func (v *Vite) isFile(path string) bool {
	info, err := v.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func validAttributes(attrs domain.Attributes) domain.Attributes {
	out := make(domain.Attributes, 0, len(attrs))
	for _, a := range attrs {
		if domain.ValidAttributeName(a.Name) {
			out = append(out, a)
		}
	}
	return out
}

// describe renders err followed by the cause recorded with it, if any.
func describe(err error) string {
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if cause, ok := zErr.Metadata()["cause"]; ok {
			return fmt.Sprintf("%s (%v)", err.Error(), cause)
		}
	}
	return err.Error()
}
