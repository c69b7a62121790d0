package numberinput

import (
	"fmt"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
	"github.com/goliatone/go-numberinput/pkg/vdom"
	theme "github.com/goliatone/go-theme"
)

// Field aliases numberfield.Field so callers can stay on the top-level
// package for the common paths.
type Field = numberfield.Field

// Options is the resolved field configuration.
type Options = numberfield.Options

// OptionFn configures a Field.
type OptionFn = numberfield.OptionFn

// Element is the text input a Field decorates.
type Element = numberfield.Element

// Host attaches handlers and mounts the spinner and unit label.
type Host = numberfield.Host

// Create decorates target with number-input behaviour. A nil host leaves event
// routing and markup to the caller.
func Create(target Element, host Host, options ...OptionFn) (*Field, error) {
	return numberfield.New(target, host, options...)
}

// RenderHTML mounts a field on an in-memory tree holding a single input with
// the given value and renders the decorated markup inside a form element.
func RenderHTML(value string, fieldOptions []OptionFn, rendererOptions ...vdom.RendererOption) (string, error) {
	root := vdom.NewElement("form", "")
	input := vdom.NewInput(value)
	root.Append(input)

	if _, err := numberfield.New(input, vdom.NewHost(), fieldOptions...); err != nil {
		return "", fmt.Errorf("numberinput: mount field: %w", err)
	}

	renderer, err := vdom.NewRenderer(rendererOptions...)
	if err != nil {
		return "", fmt.Errorf("numberinput: renderer: %w", err)
	}
	return renderer.Render(root)
}

// WithThemeSelector resolves class and CSS variable tokens through a go-theme
// selector when rendering.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) vdom.RendererOption {
	return vdom.WithTheme(selector, name, variant)
}
