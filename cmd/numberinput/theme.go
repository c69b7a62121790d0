package main

import (
	"errors"
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

var errUnknownTheme = errors.New("unknown theme")

// themeFile is the YAML shape accepted by --theme-file:
//
//	name: acme
//	tokens:
//	  numberinput-border: "#cccccc"
//	  class.increase: btn btn-up
//	variants:
//	  dark:
//	    numberinput-border: "#333333"
type themeFile struct {
	Name     string                       `yaml:"name"`
	Version  string                       `yaml:"version"`
	Tokens   map[string]string            `yaml:"tokens"`
	Variants map[string]map[string]string `yaml:"variants"`
}

// fileSelector serves a single manifest read from disk.
type fileSelector struct {
	manifest *theme.Manifest
}

func loadThemeFile(path string) (*fileSelector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	var raw themeFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode theme %s: %w", path, err)
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("theme %s: name is required", path)
	}

	manifest := &theme.Manifest{
		Name:     raw.Name,
		Version:  raw.Version,
		Tokens:   raw.Tokens,
		Variants: map[string]theme.Variant{},
	}
	for name, tokens := range raw.Variants {
		manifest.Variants[name] = theme.Variant{Tokens: tokens}
	}
	return &fileSelector{manifest: manifest}, nil
}

func (s *fileSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("%w %q", errUnknownTheme, name)
	}
	if variant != "" {
		if _, ok := s.manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w variant %q for %q", errUnknownTheme, variant, s.manifest.Name)
		}
	}
	return &theme.Selection{Theme: s.manifest.Name, Variant: variant, Manifest: s.manifest}, nil
}
