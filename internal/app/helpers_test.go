package app_test

import (
	"testing"
	"testing/fstest"

	"go.trai.ch/vitetags/internal/adapters/fs"
	"go.trai.ch/vitetags/internal/adapters/manifest"
	"go.trai.ch/vitetags/internal/adapters/telemetry"
	"go.trai.ch/vitetags/internal/app"
	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/vitetags/internal/core/ports"
	"go.trai.ch/vitetags/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const siteManifest = `{
  "resources/js/app.js": {
    "file": "assets/app-1a2b.js",
    "src": "resources/js/app.js",
    "isEntry": true,
    "imports": ["_shared-9f.js"],
    "css": ["assets/app-5e6f.css"]
  },
  "_shared-9f.js": {
    "file": "assets/shared-9f.js",
    "css": ["assets/shared-7a8b.css"]
  },
  "resources/css/editor.css": {
    "file": "assets/editor-3c4d.css",
    "src": "resources/css/editor.css",
    "isEntry": true
  },
  "resources/images/logo.svg": {
    "file": "assets/logo-abc.svg",
    "src": "resources/images/logo.svg"
  },
  "resources/images/gone.svg": {
    "file": "assets/gone-000.svg",
    "src": "resources/images/gone.svg"
  }
}`

const (
	sourceLogo = `<svg viewBox="0 0 10 10"><path d="M0"/></svg>`
	builtLogo  = `<?xml version="1.0"?><svg viewBox="0 0 10 10" class="built" onload="x()"><path d="M1"/></svg>`
)

func siteFiles() fstest.MapFS {
	return fstest.MapFS{
		"public/build/manifest.json":        {Data: []byte(siteManifest)},
		"public/build/assets/logo-abc.svg":  {Data: []byte(builtLogo)},
		"resources/images/logo.svg":         {Data: []byte(sourceLogo)},
		"resources/images/plain.svg":        {Data: []byte(`<svg class="plain"></svg>`)},
		"resources/images/folder.svg/.keep": {Data: []byte{}},
	}
}

func siteConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Root = "/site"
	cfg.BaseURL = "/theme"
	return cfg.Normalize()
}

func withHot(files fstest.MapFS, origin string) fstest.MapFS {
	files["public/build/hot"] = &fstest.MapFile{Data: []byte(origin)}
	return files
}

type fixture struct {
	app    *app.App
	logger *mocks.MockLogger
	fs     ports.FileSystem
}

func newFixture(t *testing.T, files fstest.MapFS) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	fsys := fs.NewMapFSAdapter("/site", files)

	a := app.New(mocks.NewMockConfigLoader(ctrl), fsys, manifest.NewCache(), mockLogger, telemetry.NewNoOpTracer())
	return fixture{app: a, logger: mockLogger, fs: fsys}
}

func (f fixture) vite() *app.Vite {
	return f.app.Vite(siteConfig())
}
