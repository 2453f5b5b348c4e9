package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// TemplToGomponentAdapter wraps a templ.Component to satisfy the gomponents.Node interface.
// This allows a Templ component to be rendered inside a pure Gomponents view.
type TemplToGomponentAdapter struct {
	Component templ.Component
}

// Render implements the gomponents.Node interface by delegating the rendering to the
// underlying templ.Component.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a Templ Component into a Gomponents Node.
// Gomponents' Render has no context, so the component sees context.Background().
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}
