package hotfile_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vitetags/internal/adapters/fs"
	"go.trai.ch/vitetags/internal/adapters/hotfile"
)

const hotPath = "/site/public/build/hot"

func TestDetector(t *testing.T) {
	tests := []struct {
		name       string
		files      fstest.MapFS
		wantActive bool
		wantOrigin string
	}{
		{
			name: "marker present",
			files: fstest.MapFS{
				"public/build/hot": {Data: []byte("http://localhost:5173")},
			},
			wantActive: true,
			wantOrigin: "http://localhost:5173",
		},
		{
			name: "marker content is trimmed",
			files: fstest.MapFS{
				"public/build/hot": {Data: []byte("  https://stump.local:5173/\n")},
			},
			wantActive: true,
			wantOrigin: "https://stump.local:5173/",
		},
		{
			name:       "marker absent",
			files:      fstest.MapFS{},
			wantActive: false,
			wantOrigin: "",
		},
		{
			name: "directory is not a marker",
			files: fstest.MapFS{
				"public/build/hot/index.html": {Data: []byte("<html></html>")},
			},
			wantActive: false,
			wantOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := hotfile.NewDetector(fs.NewMapFSAdapter("/site", tt.files), hotPath)

			assert.Equal(t, tt.wantActive, d.IsDevActive())
			assert.Equal(t, tt.wantOrigin, d.DevOrigin())
		})
	}
}

func TestDetector_ObservesMarkerChanges(t *testing.T) {
	files := fstest.MapFS{}
	d := hotfile.NewDetector(fs.NewMapFSAdapter("/site", files), hotPath)
	assert.Equal(t, hotPath, d.Path())

	assert.False(t, d.IsDevActive())

	files["public/build/hot"] = &fstest.MapFile{Data: []byte("http://localhost:5173")}
	assert.True(t, d.IsDevActive())

	delete(files, "public/build/hot")
	assert.False(t, d.IsDevActive())
}
