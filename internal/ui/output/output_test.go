package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/vitetags/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	t.Run("NO_COLOR forces ascii", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, termenv.Ascii, output.ColorProfile(&bytes.Buffer{}))
	})

	t.Run("non-terminal writer is ascii", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.Equal(t, termenv.Ascii, output.ColorProfile(&bytes.Buffer{}))
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, output.IsTerminal(&bytes.Buffer{}))
}

func TestNew_PlainForBuffers(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	out := output.New(&buf)

	_, err := out.WriteString(out.String("hello").Foreground(termenv.RGBColor("#D93025")).String())
	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}

func TestNewRenderer_PlainForBuffers(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	r := output.NewRenderer(&buf)

	assert.Equal(t, "bold", r.NewStyle().Bold(true).Render("bold"))
}
