// Package style provides the colours, icons and text styles shared by the
// logger and the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Palette holds the text styles used by command output, bound to a renderer
// so colour decisions follow the destination writer.
type Palette struct {
	Heading lipgloss.Style
	Key     lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
}

// NewPalette builds the palette for r.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Heading: r.NewStyle().Foreground(Iris).Bold(true),
		Key:     r.NewStyle().Foreground(Iris),
		Muted:   r.NewStyle().Foreground(Slate),
		Success: r.NewStyle().Foreground(Green),
		Warn:    r.NewStyle().Foreground(Yellow),
	}
}
