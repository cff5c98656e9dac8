// Package render formats markdown documentation for the terminal.
package render

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats markdown content
type Renderer interface {
	Render(markdown string) string
}

// PlainRenderer returns content as is
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(markdown string) string {
	return markdown
}

// GlamourRenderer renders markdown with glamour
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto" or a path to a style file
	Width int    // 0 keeps glamour's default
}

// NewGlamourRenderer creates a renderer detecting the terminal style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. Content is returned
// unchanged when glamour fails.
func (r *GlamourRenderer) Render(markdown string) string {
	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

// For returns a GlamourRenderer, or a PlainRenderer when plain is set
func For(plain bool) Renderer {
	if plain {
		return PlainRenderer{}
	}
	return NewGlamourRenderer()
}
