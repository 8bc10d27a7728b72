package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/vitetags/internal/adapters/fs"
	"go.trai.ch/vitetags/internal/adapters/manifest"
	"go.trai.ch/vitetags/internal/adapters/telemetry"
	"go.trai.ch/vitetags/internal/app"
	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/vitetags/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestApp_LoadConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	a := app.New(loader, fs.NewOSFS(), manifest.NewCache(), mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer())

	fromFile := domain.DefaultConfig()
	fromFile.Root = "/srv/site"
	fromFile.BaseURL = "/theme"
	loader.EXPECT().Load("vitetags.yaml", false).Return(fromFile, nil).Times(2)

	t.Run("no overrides", func(t *testing.T) {
		cfg, err := a.LoadConfig("vitetags.yaml", false, app.Overrides{})
		require.NoError(t, err)
		assert.Equal(t, fromFile, cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := a.LoadConfig("vitetags.yaml", false, app.Overrides{
			Root:             ptr("relative/site"),
			BaseURL:          ptr("https://cdn.example.test/"),
			BuildDirectory:   ptr("/dist/"),
			ManifestFilename: ptr("assets.json"),
			Lenient:          ptr(true),
		})
		require.NoError(t, err)

		wantRoot, err := filepath.Abs("relative/site")
		require.NoError(t, err)
		assert.Equal(t, wantRoot, cfg.Root)
		assert.Equal(t, "https://cdn.example.test", cfg.BaseURL)
		assert.Equal(t, "dist", cfg.BuildDirectory)
		assert.Equal(t, "assets.json", cfg.ManifestFilename)
		assert.True(t, cfg.LenientManifest)
	})
}

func TestApp_LoadConfig_InvalidOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	a := app.New(loader, fs.NewOSFS(), manifest.NewCache(), mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer())

	loader.EXPECT().Load(gomock.Any(), true).Return(domain.DefaultConfig(), nil)

	_, err := a.LoadConfig("custom.yaml", true, app.Overrides{BuildDirectory: ptr("../outside")})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestApp_LoadConfig_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	a := app.New(loader, fs.NewOSFS(), manifest.NewCache(), mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer())

	loader.EXPECT().Load("missing.yaml", true).Return(domain.Config{}, domain.ErrConfigReadFailed)

	_, err := a.LoadConfig("missing.yaml", true, app.Overrides{})
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestApp_VitesShareManifestCache(t *testing.T) {
	files := siteFiles()
	f := newFixture(t, files)
	cfg := siteConfig()

	_, err := f.app.Vite(cfg).AssetURL(context.Background(), "resources/js/app.js")
	require.NoError(t, err)

	// A second facade for the same config reuses the parsed manifest even
	// though the file has since disappeared.
	delete(files, "public/build/manifest.json")
	_, err = f.app.Vite(cfg).AssetURL(context.Background(), "resources/js/app.js")
	require.NoError(t, err)
}

func TestVite_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerFromProvider(tp, telemetry.InstrumentationName)

	f := newFixture(t, siteFiles())
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)
	v := f.app.WithTracer(tracer).Vite(siteConfig())
	ctx := context.Background()

	_, err := v.AssetURL(ctx, "resources/js/app.js")
	require.NoError(t, err)
	_, err = v.Tags(ctx, "resources/js/app.js")
	require.NoError(t, err)
	v.InlineSVG(ctx, "resources/images/missing.svg", nil)
	_, err = v.AssetURL(ctx, "resources/js/nope.js")
	require.Error(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 4)

	attrs := func(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
		out := map[attribute.Key]attribute.Value{}
		for _, kv := range s.Attributes() {
			out[kv.Key] = kv.Value
		}
		return out
	}

	assert.Equal(t, "vite.asset_url", ended[0].Name())
	assert.Equal(t, "resources/js/app.js", attrs(ended[0])["entry"].AsString())

	assert.Equal(t, "vite.tags", ended[1].Name())
	tagAttrs := attrs(ended[1])
	assert.Equal(t, "prod", tagAttrs["mode"].AsString())
	assert.Equal(t, []string{"resources/js/app.js"}, tagAttrs["entries"].AsStringSlice())
	assert.Equal(t, int64(4), tagAttrs["preloads"].AsInt64())
	assert.Equal(t, int64(3), tagAttrs["tags"].AsInt64())

	assert.Equal(t, "vite.inline_svg", ended[2].Name())
	assert.Equal(t, string(domain.FallbackSourceMissing), attrs(ended[2])["fallback"].AsString())

	assert.Equal(t, "vite.asset_url", ended[3].Name())
	assert.NotEmpty(t, ended[3].Events(), "errors are recorded on the span")
}
