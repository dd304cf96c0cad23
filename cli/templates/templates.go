package templates

import (
	"github.com/skelkit/skel/cli/templates/engines"
)

// TemplateEngine is an interface to support to use for template instantiation.
// It is the single capability the loader and the copier require from a
// template engine implementation: they orchestrate when and what to render,
// the engine performs the substitution itself.
type TemplateEngine interface {
	// RenderText applies data to the template text. Returns instantiated text.
	RenderText(in string, data map[string]string) (string, error)
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return engines.GoTextEngine{}
}
