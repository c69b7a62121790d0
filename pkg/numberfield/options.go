package numberfield

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultPrecision     = 2
	defaultSeparator     = "."
	defaultStepSize      = 1
	defaultSpinButtonTag = "button"
	defaultValue         = "0"
	defaultRepeatDelay   = 100 * time.Millisecond
)

// MaxPrecision is the largest number of fraction digits a field keeps.
// Larger values are lowered to it.
const MaxPrecision = 15

// Options is the resolved configuration of a Field. MinValue and MaxValue are
// disabled when nil; zero is a real bound.
type Options struct {
	Required         bool
	MinValue         *float64
	MaxValue         *float64
	AllowFloats      bool
	Precision        int
	DecimalSeparator string
	Unit             string
	Spinner          bool
	StepSize         float64
	SpinButtonTag    string
	DefaultValue     string

	// RepeatDelay is the pause between repeated actions while a spin button
	// is held down.
	RepeatDelay time.Duration
	Scheduler   Scheduler
	Logger      *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Precision:        defaultPrecision,
		DecimalSeparator: defaultSeparator,
		Spinner:          true,
		StepSize:         defaultStepSize,
		SpinButtonTag:    defaultSpinButtonTag,
		DefaultValue:     defaultValue,
		RepeatDelay:      defaultRepeatDelay,
	}
}

// NewOptions applies fns on top of DefaultOptions and normalises the result.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Precision < 0 {
		opts.Precision = 0
	}
	if opts.Precision > MaxPrecision {
		opts.Precision = MaxPrecision
	}
	if opts.DecimalSeparator == "" {
		opts.DecimalSeparator = defaultSeparator
	}
	if strings.TrimSpace(opts.SpinButtonTag) == "" {
		opts.SpinButtonTag = defaultSpinButtonTag
	}
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = defaultRepeatDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = realScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	opts.MinValue = cloneBound(opts.MinValue)
	opts.MaxValue = cloneBound(opts.MaxValue)
	return opts
}

func WithRequired(required bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Required = required
	}
}

func WithMinValue(v float64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MinValue = &v
	}
}

func WithMaxValue(v float64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxValue = &v
	}
}

// WithoutMinValue disables the lower bound.
func WithoutMinValue() OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MinValue = nil
	}
}

// WithoutMaxValue disables the upper bound.
func WithoutMaxValue() OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxValue = nil
	}
}

func WithAllowFloats(allow bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AllowFloats = allow
	}
}

func WithPrecision(digits int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Precision = digits
	}
}

func WithDecimalSeparator(sep string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DecimalSeparator = sep
	}
}

func WithUnit(unit string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Unit = unit
	}
}

func WithSpinner(enabled bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Spinner = enabled
	}
}

func WithStepSize(step float64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.StepSize = step
	}
}

func WithSpinButtonTag(tag string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SpinButtonTag = tag
	}
}

func WithDefaultValue(v string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultValue = v
	}
}

func WithRepeatDelay(d time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RepeatDelay = d
	}
}

// WithScheduler replaces the timer source used by spin buttons. Tests use it
// to drive repeats without sleeping.
func WithScheduler(s Scheduler) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Scheduler = s
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func cloneBound(b *float64) *float64 {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
