package config

import (
	"fmt"
	"time"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

// FieldConfig is the file representation of numberfield.Options. Nil
// pointers keep the default.
type FieldConfig struct {
	Required         *bool    `json:"required,omitempty" yaml:"required,omitempty"`
	MinValue         *float64 `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue         *float64 `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
	AllowFloats      *bool    `json:"allowFloats,omitempty" yaml:"allowFloats,omitempty"`
	Precision        *int     `json:"precision,omitempty" yaml:"precision,omitempty"`
	DecimalSeparator *string  `json:"decimalSeparator,omitempty" yaml:"decimalSeparator,omitempty"`
	Unit             *string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Spinner          *bool    `json:"spinner,omitempty" yaml:"spinner,omitempty"`
	StepSize         *float64 `json:"stepSize,omitempty" yaml:"stepSize,omitempty"`
	SpinButtonTag    *string  `json:"spinButtonTag,omitempty" yaml:"spinButtonTag,omitempty"`
	DefaultValue     *string  `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	// RepeatDelay is a time.ParseDuration string such as "150ms".
	RepeatDelay string `json:"repeatDelay,omitempty" yaml:"repeatDelay,omitempty"`

	repeatDelay time.Duration
}

// Options converts the configuration into option functions.
func (c FieldConfig) Options() []numberfield.OptionFn {
	var fns []numberfield.OptionFn
	if c.Required != nil {
		fns = append(fns, numberfield.WithRequired(*c.Required))
	}
	if c.MinValue != nil {
		fns = append(fns, numberfield.WithMinValue(*c.MinValue))
	}
	if c.MaxValue != nil {
		fns = append(fns, numberfield.WithMaxValue(*c.MaxValue))
	}
	if c.AllowFloats != nil {
		fns = append(fns, numberfield.WithAllowFloats(*c.AllowFloats))
	}
	if c.Precision != nil {
		fns = append(fns, numberfield.WithPrecision(*c.Precision))
	}
	if c.DecimalSeparator != nil {
		fns = append(fns, numberfield.WithDecimalSeparator(*c.DecimalSeparator))
	}
	if c.Unit != nil {
		fns = append(fns, numberfield.WithUnit(*c.Unit))
	}
	if c.Spinner != nil {
		fns = append(fns, numberfield.WithSpinner(*c.Spinner))
	}
	if c.StepSize != nil {
		fns = append(fns, numberfield.WithStepSize(*c.StepSize))
	}
	if c.SpinButtonTag != nil {
		fns = append(fns, numberfield.WithSpinButtonTag(*c.SpinButtonTag))
	}
	if c.DefaultValue != nil {
		fns = append(fns, numberfield.WithDefaultValue(*c.DefaultValue))
	}
	if c.repeatDelay > 0 {
		fns = append(fns, numberfield.WithRepeatDelay(c.repeatDelay))
	}
	return fns
}

func (c *FieldConfig) normalise(name, source string) error {
	if c.MinValue != nil && c.MaxValue != nil && *c.MinValue > *c.MaxValue {
		return fmt.Errorf("config: field %q (file %s): minValue %v exceeds maxValue %v", name, source, *c.MinValue, *c.MaxValue)
	}
	if c.Precision != nil && (*c.Precision < 0 || *c.Precision > numberfield.MaxPrecision) {
		return fmt.Errorf("config: field %q (file %s): precision must be between 0 and %d", name, source, numberfield.MaxPrecision)
	}
	if c.StepSize != nil && *c.StepSize <= 0 {
		return fmt.Errorf("config: field %q (file %s): stepSize must be positive", name, source)
	}
	if c.RepeatDelay != "" {
		d, err := time.ParseDuration(c.RepeatDelay)
		if err != nil {
			return fmt.Errorf("config: field %q (file %s): repeatDelay: %w", name, source, err)
		}
		if d <= 0 {
			return fmt.Errorf("config: field %q (file %s): repeatDelay must be positive", name, source)
		}
		c.repeatDelay = d
	}
	return nil
}
