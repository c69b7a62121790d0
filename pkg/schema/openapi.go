package schema

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

// ExtensionKey is the vendor extension carrying widget-only settings.
const ExtensionKey = "x-numberinput"

// FromOpenAPI maps a numeric schema onto field options.
//
//	type: integer        -> floats disabled, precision 0
//	type: number         -> floats enabled
//	minimum / maximum    -> bounds (exclusive integer bounds move inward by one)
//	multipleOf           -> step size, and precision when none is set
//	default              -> default value
//	x-numberinput        -> unit, precision, spinner, decimalSeparator,
//	                        required, stepSize, spinButtonTag, repeatDelay
func FromOpenAPI(ref *openapi3.SchemaRef) ([]numberfield.OptionFn, error) {
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: unresolved schema reference %q", refName(ref))
	}
	src := ref.Value

	kind := schemaType(src.Type)
	integer := kind == openapi3.TypeInteger
	if kind != "" && kind != openapi3.TypeInteger && kind != openapi3.TypeNumber {
		return nil, fmt.Errorf("%w: type %q", ErrNotNumeric, kind)
	}

	ext, err := widgetExtension(src.Extensions)
	if err != nil {
		return nil, err
	}

	var fns []numberfield.OptionFn
	switch kind {
	case openapi3.TypeInteger:
		fns = append(fns, numberfield.WithAllowFloats(false), numberfield.WithPrecision(0))
	case openapi3.TypeNumber:
		fns = append(fns, numberfield.WithAllowFloats(true))
	}

	if src.Min != nil {
		v := *src.Min
		if src.ExclusiveMin && integer {
			v++
		}
		fns = append(fns, numberfield.WithMinValue(v))
	}
	if src.Max != nil {
		v := *src.Max
		if src.ExclusiveMax && integer {
			v--
		}
		fns = append(fns, numberfield.WithMaxValue(v))
	}

	if src.MultipleOf != nil && *src.MultipleOf > 0 {
		step := *src.MultipleOf
		fns = append(fns, numberfield.WithStepSize(step))
		if !integer && ext.precision == nil {
			fns = append(fns, numberfield.WithPrecision(decimals(step)))
		}
	}

	fns = append(fns, ext.options()...)

	if src.Default != nil {
		def, err := defaultText(src.Default, ext.separator)
		if err != nil {
			return nil, err
		}
		fns = append(fns, numberfield.WithDefaultValue(def))
	}

	return fns, nil
}

// Load parses an OpenAPI document and maps the schema addressed by name.
// name is either a component schema ("Price") or one of its properties
// ("Order.quantity").
func Load(ctx context.Context, data []byte, name string) ([]numberfield.OptionFn, error) {
	doc, err := parse(ctx, data)
	if err != nil {
		return nil, err
	}

	component, property, _ := strings.Cut(name, ".")
	ref, err := componentSchema(doc, component)
	if err != nil {
		return nil, err
	}
	if property == "" {
		return FromOpenAPI(ref)
	}

	prop, ok := ref.Value.Properties[property]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	fns, err := FromOpenAPI(prop)
	if err != nil {
		return nil, fmt.Errorf("schema: property %s: %w", name, err)
	}
	if contains(ref.Value.Required, property) {
		fns = append(fns, numberfield.WithRequired(true))
	}
	return fns, nil
}

// Fields maps every numeric property of an object component schema. Non
// numeric properties are skipped. Properties listed in the schema's required
// array become required fields.
func Fields(ctx context.Context, doc Document, component string) (map[string][]numberfield.OptionFn, error) {
	api, err := parse(ctx, doc.Raw())
	if err != nil {
		return nil, fmt.Errorf("schema: %s: %w", doc.Location(), err)
	}
	ref, err := componentSchema(api, component)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(ref.Value.Properties))
	for name := range ref.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string][]numberfield.OptionFn)
	for _, name := range names {
		prop := ref.Value.Properties[name]
		if prop == nil || prop.Value == nil || !isNumeric(prop.Value) {
			continue
		}
		fns, err := FromOpenAPI(prop)
		if err != nil {
			return nil, fmt.Errorf("schema: property %s.%s: %w", component, name, err)
		}
		if contains(ref.Value.Required, name) {
			fns = append(fns, numberfield.WithRequired(true))
		}
		out[name] = fns
	}
	return out, nil
}

func parse(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	return doc, nil
}

func componentSchema(doc *openapi3.T, name string) (*openapi3.SchemaRef, error) {
	if doc.Components == nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	return ref, nil
}

func isNumeric(s *openapi3.Schema) bool {
	kind := schemaType(s.Type)
	return kind == openapi3.TypeInteger || kind == openapi3.TypeNumber
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, t := range types.Slice() {
		if t != openapi3.TypeNull {
			return t
		}
	}
	return ""
}

func refName(ref *openapi3.SchemaRef) string {
	if ref == nil {
		return ""
	}
	return ref.Ref
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// decimals returns the number of fractional digits in the shortest decimal
// rendering of v.
func decimals(v float64) int {
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return len(frac)
}

func defaultText(v any, separator string) (string, error) {
	var text string
	switch typed := v.(type) {
	case string:
		return typed, nil
	case float64:
		text = strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		text = strconv.Itoa(typed)
	case int64:
		text = strconv.FormatInt(typed, 10)
	default:
		return "", fmt.Errorf("schema: unsupported default %T", v)
	}
	if separator != "" && separator != "." {
		text = strings.Replace(text, ".", separator, 1)
	}
	return text, nil
}

// widget holds the decoded x-numberinput extension.
type widget struct {
	unit          *string
	precision     *int
	spinner       *bool
	separator     string
	required      *bool
	stepSize      *float64
	spinButtonTag *string
	repeatDelay   *time.Duration
}

func widgetExtension(extensions map[string]any) (widget, error) {
	var w widget
	raw, ok := extensions[ExtensionKey]
	if !ok || raw == nil {
		return w, nil
	}
	values, ok := raw.(map[string]any)
	if !ok {
		return w, fmt.Errorf("schema: %s must be an object, got %T", ExtensionKey, raw)
	}

	for key, value := range values {
		var err error
		switch key {
		case "unit":
			w.unit, err = stringValue(value)
		case "precision":
			var f *float64
			if f, err = numberValue(value); err == nil {
				p := int(*f)
				w.precision = &p
			}
		case "spinner":
			w.spinner, err = boolValue(value)
		case "decimalSeparator":
			var s *string
			if s, err = stringValue(value); err == nil {
				w.separator = *s
			}
		case "required":
			w.required, err = boolValue(value)
		case "stepSize":
			w.stepSize, err = numberValue(value)
		case "spinButtonTag":
			w.spinButtonTag, err = stringValue(value)
		case "repeatDelay":
			var s *string
			if s, err = stringValue(value); err == nil {
				var d time.Duration
				if d, err = time.ParseDuration(*s); err == nil {
					w.repeatDelay = &d
				}
			}
		}
		if err != nil {
			return widget{}, fmt.Errorf("schema: %s.%s: %w", ExtensionKey, key, err)
		}
	}
	return w, nil
}

func (w widget) options() []numberfield.OptionFn {
	var fns []numberfield.OptionFn
	if w.unit != nil {
		fns = append(fns, numberfield.WithUnit(*w.unit))
	}
	if w.precision != nil {
		fns = append(fns, numberfield.WithPrecision(*w.precision))
	}
	if w.spinner != nil {
		fns = append(fns, numberfield.WithSpinner(*w.spinner))
	}
	if w.separator != "" {
		fns = append(fns, numberfield.WithDecimalSeparator(w.separator))
	}
	if w.required != nil {
		fns = append(fns, numberfield.WithRequired(*w.required))
	}
	if w.stepSize != nil {
		fns = append(fns, numberfield.WithStepSize(*w.stepSize))
	}
	if w.spinButtonTag != nil {
		fns = append(fns, numberfield.WithSpinButtonTag(*w.spinButtonTag))
	}
	if w.repeatDelay != nil {
		fns = append(fns, numberfield.WithRepeatDelay(*w.repeatDelay))
	}
	return fns
}

func stringValue(v any) (*string, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", v)
	}
	return &s, nil
}

func boolValue(v any) (*bool, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("expected boolean, got %T", v)
	}
	return &b, nil
}

func numberValue(v any) (*float64, error) {
	switch typed := v.(type) {
	case float64:
		return &typed, nil
	case int:
		f := float64(typed)
		return &f, nil
	case int64:
		f := float64(typed)
		return &f, nil
	default:
		return nil, fmt.Errorf("expected number, got %T", v)
	}
}
