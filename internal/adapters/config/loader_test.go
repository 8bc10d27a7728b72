package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vitetags/internal/adapters/config"
	"go.trai.ch/vitetags/internal/adapters/fs"
	"go.trai.ch/vitetags/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
root: theme
base_url: /wp-content/themes/stump/
build_directory: /dist/
manifest: .vite-manifest.json
hot_file: hot.txt
lenient_manifest: true
log_format: json
`)

	cfg, err := config.NewLoader(fs.NewOSFS()).Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, domain.Config{
		Root:             filepath.Join(tmpDir, "theme"),
		BaseURL:          "/wp-content/themes/stump",
		BuildDirectory:   "dist",
		ManifestFilename: ".vite-manifest.json",
		HotFilename:      "hot.txt",
		LenientManifest:  true,
		LogFormat:        domain.LogFormatJSON,
	}, cfg)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "base_url: https://cdn.example.test\n")

	cfg, err := config.NewLoader(fs.NewOSFS()).Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, cfg.Root)
	assert.Equal(t, "https://cdn.example.test", cfg.BaseURL)
	assert.Equal(t, domain.DefaultBuildDirectory, cfg.BuildDirectory)
	assert.Equal(t, domain.DefaultManifestFilename, cfg.ManifestFilename)
	assert.Equal(t, domain.DefaultHotFilename, cfg.HotFilename)
	assert.Equal(t, domain.LogFormatPretty, cfg.LogFormat)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "")

	cfg, err := config.NewLoader(fs.NewOSFS()).Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultManifestFilename, cfg.ManifestFilename)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, domain.ConfigFileName)
	loader := config.NewLoader(fs.NewOSFS())

	t.Run("implicit path falls back to defaults", func(t *testing.T) {
		cfg, err := loader.Load(path, false)
		require.NoError(t, err)
		assert.Equal(t, tmpDir, cfg.Root)
		assert.Equal(t, domain.DefaultBuildDirectory, cfg.BuildDirectory)
	})

	t.Run("explicit path fails", func(t *testing.T) {
		_, err := loader.Load(path, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{
			name:        "unknown key",
			content:     "build_dir: dist\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "malformed yaml",
			content:     "root: [unterminated\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "empty manifest name",
			content:     "manifest: \"\"\n",
			expectedErr: domain.ErrInvalidConfig,
		},
		{
			name:        "manifest with directory",
			content:     "manifest: .vite/manifest.json\n",
			expectedErr: domain.ErrInvalidConfig,
		},
		{
			name:        "hot file with directory",
			content:     "hot_file: ../hot\n",
			expectedErr: domain.ErrInvalidConfig,
		},
		{
			name:        "build directory escapes root",
			content:     "build_directory: ../outside\n",
			expectedErr: domain.ErrInvalidConfig,
		},
		{
			name:        "unknown log format",
			content:     "log_format: xml\n",
			expectedErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := config.NewLoader(fs.NewOSFS()).Load(path, true)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}
