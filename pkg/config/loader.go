package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

// ErrEmptyDocument is returned for documents without content.
var ErrEmptyDocument = errors.New("config: document is empty")

// Store holds parsed field configurations keyed by field name.
type Store struct {
	fields  map[string]FieldConfig
	sources map[string]string
}

// Field returns the options for name.
func (s *Store) Field(name string) ([]numberfield.OptionFn, bool) {
	if s == nil {
		return nil, false
	}
	cfg, ok := s.fields[name]
	if !ok {
		return nil, false
	}
	return cfg.Options(), true
}

// Names returns the configured field names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any fields.
func (s *Store) Empty() bool {
	return s == nil || len(s.fields) == 0
}

// Options returns every field's options keyed by name.
func (s *Store) Options() map[string][]numberfield.OptionFn {
	if s == nil {
		return nil
	}
	out := make(map[string][]numberfield.OptionFn, len(s.fields))
	for name, cfg := range s.fields {
		out[name] = cfg.Options()
	}
	return out
}

type documentFile struct {
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

// Parse reads a fields document. source names the document in errors.
func Parse(data []byte, source string) (map[string][]numberfield.OptionFn, error) {
	store := newStore()
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store.Options(), nil
}

// ParseField reads a single field object, like the value of a fields entry.
func ParseField(data []byte, source string) ([]numberfield.OptionFn, error) {
	var cfg FieldConfig
	if err := decode(data, source, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.normalise("", source); err != nil {
		return nil, err
	}
	return cfg.Options(), nil
}

// Load reads a fields document from disk.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	store := newStore()
	if err := store.add(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFS walks fsys and merges every JSON or YAML document it finds. A field
// defined by two files is an error. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func newStore() *Store {
	return &Store{
		fields:  make(map[string]FieldConfig),
		sources: make(map[string]string),
	}
}

func (s *Store) add(data []byte, source string) error {
	var doc documentFile
	if err := decode(data, source, &doc); err != nil {
		return err
	}
	for key, cfg := range doc.Fields {
		name := strings.TrimSpace(key)
		if name == "" {
			return fmt.Errorf("config: file %s defines an empty field name", source)
		}
		if prev, exists := s.sources[name]; exists {
			return fmt.Errorf("config: duplicate field %q (files %s and %s)", name, prev, source)
		}
		if err := cfg.normalise(name, source); err != nil {
			return err
		}
		s.fields[name] = cfg
		s.sources[name] = source
	}
	return nil
}

func decode(data []byte, source string, out any) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(out)
	if err == nil {
		return nil
	}
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return fmt.Errorf("config: parse %s: %w", source, err)
	}

	ydec := yaml.NewDecoder(bytes.NewReader(data))
	ydec.KnownFields(true)
	if err := ydec.Decode(out); err != nil {
		return fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
