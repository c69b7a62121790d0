package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/goliatone/go-numberinput/pkg/config"
	"github.com/goliatone/go-numberinput/pkg/numberfield"
	"github.com/goliatone/go-numberinput/pkg/schema"
)

const defaultFieldName = "value"

var (
	errUnknownField     = errors.New("unknown field")
	errComponentMissing = errors.New("--schema needs --component")
)

// fieldSet is the ordered set of configured fields. Config file options are
// applied after schema options, so the file wins on conflicts.
type fieldSet struct {
	names   []string
	options map[string][]numberfield.OptionFn
}

func (a *app) loadFields(ctx context.Context) (fieldSet, error) {
	set := fieldSet{options: map[string][]numberfield.OptionFn{}}

	if path := a.v.GetString("schema"); path != "" {
		component := a.v.GetString("component")
		if component == "" {
			return fieldSet{}, errComponentMissing
		}
		doc, err := schema.NewLoader().Load(ctx, schema.SourceFromFile(path))
		if err != nil {
			return fieldSet{}, err
		}
		fields, err := schema.Fields(ctx, doc, component)
		if err != nil {
			return fieldSet{}, err
		}
		for name, fns := range fields {
			set.options[name] = append(set.options[name], fns...)
		}
		a.logger.Debug("loaded schema fields", zap.String("schema", path), zap.String("component", component), zap.Int("fields", len(fields)))
	}

	if path := a.v.GetString("config"); path != "" {
		store, err := config.Load(path)
		if err != nil {
			return fieldSet{}, err
		}
		for name, fns := range store.Options() {
			set.options[name] = append(set.options[name], fns...)
		}
		a.logger.Debug("loaded config fields", zap.String("config", path), zap.Strings("fields", store.Names()))
	}

	if len(set.options) == 0 {
		set.options[defaultFieldName] = nil
	}
	for name := range set.options {
		set.names = append(set.names, name)
	}
	sort.Strings(set.names)
	return set, nil
}

// pick returns the named fields, or all of them when names is empty.
func (s fieldSet) pick(names []string) ([]string, error) {
	if len(names) == 0 {
		return s.names, nil
	}
	for _, name := range names {
		if _, ok := s.options[name]; !ok {
			return nil, fmt.Errorf("%w %q (known: %v)", errUnknownField, name, s.names)
		}
	}
	return names, nil
}

func (s fieldSet) optionsFor(name string, logger *zap.Logger) []numberfield.OptionFn {
	fns := append([]numberfield.OptionFn{}, s.options[name]...)
	return append(fns, numberfield.WithLogger(logger.With(zap.String("field", name))))
}
