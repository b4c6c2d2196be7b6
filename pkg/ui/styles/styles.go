// Package styles defines the visual styling for frep's diagnostics.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. Definitions live in the embedded styles.yaml and
// are built against a lipgloss renderer bound to the stream they are
// written to, so stderr gets its own color detection.
package styles

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Names of the styles every registry provides
var Names = []string{"Error", "Muted"}

//go:embed styles.yaml
var embeddedStyles []byte

// Registry maps semantic names to lipgloss styles
type Registry map[string]lipgloss.Style

// NewRenderer returns a lipgloss renderer for w. When plain is set all
// styling is disabled regardless of what the terminal supports.
func NewRenderer(w io.Writer, plain bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// New builds the embedded styles for r. If the embedded definitions cannot
// be parsed every name maps to an unstyled style.
func New(r *lipgloss.Renderer) Registry {
	reg, err := FromData(r, embeddedStyles)
	if err != nil {
		return defaults(r)
	}
	return reg
}

// FromData parses a YAML style configuration and builds it for r
func FromData(r *lipgloss.Renderer, data []byte) (Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	reg := defaults(r)
	for name, def := range config.Styles {
		reg[name] = buildStyle(r, def, colors)
	}
	return reg, nil
}

// defaults returns a registry with an unstyled entry for every name
func defaults(r *lipgloss.Renderer) Registry {
	reg := make(Registry, len(Names))
	for _, name := range Names {
		reg[name] = r.NewStyle()
	}
	return reg
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	return style
}

// Get safely retrieves a style from the registry
func (reg Registry) Get(name string) lipgloss.Style {
	if style, ok := reg[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render renders text with the named style
func (reg Registry) Render(name, text string) string {
	return reg.Get(name).Render(text)
}
