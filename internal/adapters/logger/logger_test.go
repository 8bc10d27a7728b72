package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vitetags/internal/adapters/logger"
	"go.trai.ch/vitetags/internal/core/domain"
	"go.trai.ch/vitetags/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*logger.Logger)(nil)

func newBufferLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Pretty(t *testing.T) {
	l, buf := newBufferLogger(t)

	l.Info("dev server active")
	l.Warn("manifest is not valid JSON")

	assert.Equal(t, "dev server active\n! manifest is not valid JSON\n", buf.String())
}

func TestLogger_Error_Chain(t *testing.T) {
	l, buf := newBufferLogger(t)

	err := zerr.With(
		zerr.Wrap(errors.New("open manifest.json: no such file or directory"), domain.ErrManifestNotFound.Error()),
		"path", "/site/public/build/manifest.json",
	)
	l.Error(err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "✗ Error: "+domain.ErrManifestNotFound.Error()), out)
	assert.Contains(t, out, "path: /site/public/build/manifest.json")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ open manifest.json: no such file or directory")
}

func TestLogger_Error_Nil(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.SetJSON(true)

	l.Warn("falling back to img tag")
	l.Error(zerr.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var warn map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "falling back to img tag", warn["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "operation failed", failure["msg"])
	assert.Equal(t, "boom", failure["error"])
}

func TestLogger_JSONIncludesMetadata(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.SetJSON(true)

	l.Error(zerr.With(domain.Fail(domain.ErrEntryNotFound, nil), "entry", "resources/js/ap.js"))

	var failure map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &failure))
	assert.Equal(t, domain.ErrEntryNotFound.Error(), failure["error"])
	assert.Equal(t, "resources/js/ap.js", failure["entry"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	l, buf := newBufferLogger(t)
	l.SetJSON(true)
	l.SetJSON(false)

	l.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}
