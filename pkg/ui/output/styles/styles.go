// Package styles defines the visual styling for dotr's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. The sheet is the embedded styles.yaml; a broken
// sheet falls back to unstyled output rather than failing the command.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	Align        string `yaml:"align,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
}

// Sheet is the complete styles configuration
type Sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var registry = map[string]lipgloss.Style{}

func init() {
	if err := Reset(); err != nil {
		registry = map[string]lipgloss.Style{}
	}
}

// Reset reloads the embedded sheet
func Reset() error {
	return LoadStylesFromData(embeddedStyles)
}

// LoadStylesFromData replaces the registry with the sheet in data
func LoadStylesFromData(data []byte) error {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(sheet.Colors))
	for name, def := range sheet.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	loaded := make(map[string]lipgloss.Style, len(sheet.Styles))
	for name, def := range sheet.Styles {
		if def.Foreground != "" {
			if _, ok := colors[def.Foreground]; !ok {
				return fmt.Errorf("style %s uses unknown color %q", name, def.Foreground)
			}
		}
		loaded[name] = buildStyle(def, colors)
	}

	registry = loaded
	return nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(def.Bold).
		Italic(def.Italic).
		Underline(def.Underline)

	if def.Foreground != "" {
		style = style.Foreground(colors[def.Foreground])
	}
	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	switch def.Align {
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	case "left":
		style = style.Align(lipgloss.Left)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	return style
}

// Has reports whether name is defined
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// GetStyle returns the named style, or a plain style when undefined
func GetStyle(name string) lipgloss.Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text
func Render(name, text string) string {
	return GetStyle(name).Render(text)
}
