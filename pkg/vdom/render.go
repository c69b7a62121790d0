package vdom

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
)

// voidTags never carry children or a closing tag.
var voidTags = map[string]bool{"input": true, "br": true, "img": true}

type attr struct {
	Name  string
	Value string
}

// item is one step of the flattened tree walked by the template.
type item struct {
	Open  bool
	Close bool
	Tag   string
	Attrs []attr
	Text  string
}

// RendererOption configures a Renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	templates  fs.FS
	selector   theme.ThemeSelector
	themeName  string
	variant    string
	stylesheet string
}

// WithTemplates replaces the embedded templates. fsys must provide
// TreeTemplate.
func WithTemplates(fsys fs.FS) RendererOption {
	return func(cfg *rendererConfig) {
		if fsys != nil {
			cfg.templates = fsys
		}
	}
}

// WithTheme resolves name and variant through selector on every render.
func WithTheme(selector theme.ThemeSelector, name, variant string) RendererOption {
	return func(cfg *rendererConfig) {
		cfg.selector = selector
		cfg.themeName = strings.TrimSpace(name)
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithStylesheet inlines css in a style element ahead of the tree.
func WithStylesheet(css string) RendererOption {
	return func(cfg *rendererConfig) {
		cfg.stylesheet = css
	}
}

// WithDefaultStylesheet inlines the embedded stylesheet.
func WithDefaultStylesheet() RendererOption {
	return WithStylesheet(defaultStylesheet())
}

// Renderer serializes node trees to HTML through pongo2.
type Renderer struct {
	tmpl      *pongo2.Template
	sanitizer *bluemonday.Policy
	cfg       rendererConfig
}

// NewRenderer loads the tree template.
func NewRenderer(options ...RendererOption) (*Renderer, error) {
	cfg := rendererConfig{templates: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("numberinput", pongo2.NewFSLoader(cfg.templates))
	tmpl, err := set.FromFile(TreeTemplate)
	if err != nil {
		return nil, fmt.Errorf("vdom: load template %q: %w", TreeTemplate, err)
	}

	return &Renderer{
		tmpl:      tmpl,
		sanitizer: bluemonday.StrictPolicy(),
		cfg:       cfg,
	}, nil
}

// Render serializes root and its descendants.
func (r *Renderer) Render(root *Node) (string, error) {
	if root == nil {
		return "", errors.New("vdom: render root is nil")
	}

	styling, err := r.resolveTheme()
	if err != nil {
		return "", err
	}

	var items []item
	r.flatten(root, styling, true, &items)

	out, err := r.tmpl.Execute(pongo2.Context{
		"items":      items,
		"stylesheet": r.cfg.stylesheet,
	})
	if err != nil {
		return "", fmt.Errorf("vdom: execute template: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

var (
	defaultRendererOnce sync.Once
	defaultRenderer     *Renderer
	defaultRendererErr  error
)

// Render serializes root with the embedded templates and no theme.
func Render(root *Node) (string, error) {
	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = NewRenderer()
	})
	if defaultRendererErr != nil {
		return "", defaultRendererErr
	}
	return defaultRenderer.Render(root)
}

func (r *Renderer) resolveTheme() (themeStyling, error) {
	if r.cfg.selector == nil {
		return themeStyling{}, nil
	}
	selection, err := r.cfg.selector.Select(r.cfg.themeName, r.cfg.variant)
	if err != nil {
		return themeStyling{}, fmt.Errorf("vdom: select theme %q: %w", r.cfg.themeName, err)
	}
	return stylingFrom(selection), nil
}

func (r *Renderer) flatten(n *Node, styling themeStyling, root bool, out *[]item) {
	if n.IsText() {
		*out = append(*out, item{Text: r.sanitizer.Sanitize(n.Text)})
		return
	}

	var attrs []attr
	if class := styling.classFor(n.Class); class != "" {
		attrs = append(attrs, attr{Name: "class", Value: class})
	}

	style := n.Style
	if root && len(styling.vars) > 0 {
		style = mergeStyle(n.Style, styling.vars)
	}
	if css := inlineStyle(style); css != "" {
		attrs = append(attrs, attr{Name: "style", Value: css})
	}

	for _, name := range sortedKeys(n.Attrs) {
		if name == "class" || name == "style" || name == "value" {
			continue
		}
		attrs = append(attrs, attr{Name: name, Value: n.Attrs[name]})
	}
	if n.Tag == "input" {
		attrs = append(attrs, attr{Name: "value", Value: n.Value()})
	}

	*out = append(*out, item{Open: true, Tag: n.Tag, Attrs: attrs})
	if voidTags[n.Tag] {
		return
	}
	for _, child := range n.children {
		r.flatten(child, styling, false, out)
	}
	*out = append(*out, item{Close: true, Tag: n.Tag})
}

func inlineStyle(style map[string]string) string {
	if len(style) == 0 {
		return ""
	}
	parts := make([]string, 0, len(style))
	for _, key := range sortedKeys(style) {
		parts = append(parts, key+": "+style[key])
	}
	return strings.Join(parts, "; ")
}

func mergeStyle(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
