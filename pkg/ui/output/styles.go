package output

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Style names
const (
	StyleAction  = "Action"
	StyleMessage = "Message"
	StyleError   = "Error"
)

//go:embed styles.yaml
var embeddedStyles []byte

type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type styleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

type stylesConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

// Styles maps semantic names to lipgloss styles
type Styles map[string]lipgloss.Style

// Get returns the style registered under name, or a plain style
func (s Styles) Get(r *lipgloss.Renderer, name string) lipgloss.Style {
	if style, ok := s[name]; ok {
		return style
	}
	return r.NewStyle()
}

// LoadStyles builds styles bound to r from YAML data
func LoadStyles(r *lipgloss.Renderer, data []byte) (Styles, error) {
	var cfg stylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	styles := make(Styles, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := r.NewStyle().Bold(def.Bold).Italic(def.Italic)
		if def.Foreground != "" {
			if c, ok := cfg.Colors[def.Foreground]; ok {
				style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
			} else {
				style = style.Foreground(lipgloss.Color(def.Foreground))
			}
		}
		styles[name] = style
	}
	return styles, nil
}

// DefaultStyles returns the embedded styles bound to r
func DefaultStyles(r *lipgloss.Renderer) Styles {
	styles, err := LoadStyles(r, embeddedStyles)
	if err != nil {
		return Styles{}
	}
	return styles
}
