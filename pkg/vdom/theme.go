package vdom

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// classTokenPrefix marks theme tokens that add classes to a widget part,
// e.g. "class.increase": "btn btn-sm".
const classTokenPrefix = "class."

// themeStyling is what a theme selection contributes to a render: extra
// classes keyed by widget class and CSS custom properties for the root.
type themeStyling struct {
	classes map[string]string
	vars    map[string]string
}

func stylingFrom(selection *theme.Selection) themeStyling {
	tokens := selectionTokens(selection)
	if len(tokens) == 0 {
		return themeStyling{}
	}
	styling := themeStyling{
		classes: make(map[string]string),
		vars:    make(map[string]string),
	}
	for key, value := range tokens {
		if target, ok := strings.CutPrefix(key, classTokenPrefix); ok {
			styling.classes[target] = strings.TrimSpace(value)
			continue
		}
		styling.vars["--"+key] = value
	}
	return styling
}

// selectionTokens merges the manifest tokens with the selected variant's.
func selectionTokens(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	out := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

func (s themeStyling) classFor(class string) string {
	if class == "" {
		return ""
	}
	extra := s.classes[class]
	if extra == "" {
		return class
	}
	return class + " " + extra
}
