package numberfield

import (
	"fmt"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

// Field constrains the text of a borrowed Element to numeric values.
type Field struct {
	mu sync.Mutex

	target  Element
	opts    Options
	pattern *regexp.Regexp
	logger  *zap.Logger

	// lastKeyCode is the key-down code consumed by the following key-press.
	// Press events report '.' with the same code as Delete, so the control
	// key check relies on the down code.
	lastKeyCode KeyCode

	buttons []*SpinButton
}

// New decorates target. When host is non-nil the Field binds its handlers
// and mounts spin buttons and the unit label through it; a nil host leaves
// event routing to the caller.
func New(target Element, host Host, fns ...OptionFn) (*Field, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	opts := NewOptions(fns...)
	f := &Field{
		target:  target,
		opts:    opts,
		pattern: validPattern(opts.DecimalSeparator),
		logger:  opts.Logger,
	}

	if target.Value() == "" {
		f.ResetToDefault()
	}
	f.Validate()

	if opts.Spinner {
		f.buttons = []*SpinButton{
			newSpinButton(f, ActionIncrease),
			newSpinButton(f, ActionDecrease),
		}
		if host != nil {
			if err := f.mountSpinner(host); err != nil {
				return nil, err
			}
		}
	}

	if opts.Unit != "" && host != nil {
		if err := host.AddUnit(target, ClassUnit, opts.Unit); err != nil {
			return nil, fmt.Errorf("numberfield: add unit label: %w", err)
		}
	}

	// Handlers go on last so a failed mount leaves the target unbound.
	if host != nil {
		if err := host.Bind(target, f.handlers()); err != nil {
			return nil, fmt.Errorf("numberfield: bind handlers: %w", err)
		}
	}

	return f, nil
}

// Options returns a copy of the resolved configuration.
func (f *Field) Options() Options {
	opts := f.opts
	opts.MinValue = cloneBound(f.opts.MinValue)
	opts.MaxValue = cloneBound(f.opts.MaxValue)
	return opts
}

// Text returns the target element's current text.
func (f *Field) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target.Value()
}

// SpinButtons returns the increase and decrease buttons, or nil when the
// spinner is disabled.
func (f *Field) SpinButtons() []*SpinButton {
	return append([]*SpinButton(nil), f.buttons...)
}

// GetValue parses the current text. Empty or unparseable text yields 0.
func (f *Field) GetValue() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valueLocked()
}

// SetValue writes v when it is valid and reports whether it did. Invalid
// values leave the text untouched.
func (f *Field) SetValue(v string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setLocked(v)
}

// ResetToDefault writes the configured default value through the same guard
// as SetValue.
func (f *Field) ResetToDefault() bool {
	return f.SetValue(f.opts.DefaultValue)
}

// IsValid reports whether v is empty, or a decimal number within the enabled
// bounds. A lone sign or separator is only valid when no bound is enabled.
func (f *Field) IsValid(v string) bool {
	if v == "" {
		return true
	}
	if !f.pattern.MatchString(v) {
		return false
	}
	n, ok := parseNumber(v, f.opts.DecimalSeparator)
	if !ok {
		return f.opts.MinValue == nil && f.opts.MaxValue == nil
	}
	return withinBounds(n, f.opts)
}

// Validate pulls invalid text back to the violated bound.
func (f *Field) Validate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validateLocked()
}

// Increase adds StepSize to the value. Results outside the bounds are
// dropped.
func (f *Field) Increase() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stepLocked(f.opts.StepSize)
}

// Decrease subtracts StepSize from the value. Results outside the bounds are
// dropped.
func (f *Field) Decrease() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stepLocked(-f.opts.StepSize)
}

// HandleKeyDown records the key-down code for the following key-press.
func (f *Field) HandleKeyDown(code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastKeyCode = KeyCode(code)
}

// HandleKeyPress filters the pressed character and reports whether the host
// should insert it. Step keys change the value and are never inserted.
func (f *Field) HandleKeyPress(char rune) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	start, end := selectionOffsets(f.target)
	decision := Filter(f.opts, Snapshot{
		Text:           f.target.Value(),
		SelectionStart: start,
		SelectionEnd:   end,
	}, f.lastKeyCode, char)

	switch decision {
	case StepUp:
		f.stepLocked(f.opts.StepSize)
		return false
	case StepDown:
		f.stepLocked(-f.opts.StepSize)
		return false
	case Accept:
		return true
	default:
		f.logger.Debug("numberfield: keystroke rejected",
			zap.Int("keyCode", int(f.lastKeyCode)),
			zap.String("char", string(char)),
			zap.String("text", f.target.Value()),
		)
		return false
	}
}

func (f *Field) HandleKeyUp() {
	f.Validate()
}

func (f *Field) HandleChange() {
	f.Validate()
}

// HandleBlur restores the default on a required empty field, then validates.
// When the default cannot be written the field is treated as 0 and pulled
// into the bounds, so a required field never stays empty.
func (f *Field) HandleBlur() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.opts.Required && f.target.Value() == "" {
		f.setLocked(f.opts.DefaultValue)
		if f.target.Value() == "" {
			f.fillEmptyLocked()
		}
	}
	f.validateLocked()
}

// SelectionStart returns the 0-based caret start offset.
func (f *Field) SelectionStart() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	start, _ := selectionOffsets(f.target)
	return start
}

// SelectionEnd returns the 0-based caret end offset.
func (f *Field) SelectionEnd() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, end := selectionOffsets(f.target)
	return end
}

func (f *Field) valueLocked() float64 {
	return valueOf(f.target.Value(), f.opts.DecimalSeparator)
}

func (f *Field) setLocked(v string) bool {
	if !f.IsValid(v) {
		f.logger.Debug("numberfield: write skipped", zap.String("value", v))
		return false
	}
	f.target.SetValue(v)
	return true
}

func (f *Field) validateLocked() {
	if f.IsValid(f.target.Value()) {
		return
	}
	if f.opts.MinValue != nil && f.valueLocked() < *f.opts.MinValue {
		f.logger.Debug("numberfield: raised to minimum", zap.Float64("min", *f.opts.MinValue))
		f.setLocked(FormatNumber(*f.opts.MinValue, f.opts))
	}
	if f.opts.MaxValue != nil && f.valueLocked() > *f.opts.MaxValue {
		f.logger.Debug("numberfield: lowered to maximum", zap.Float64("max", *f.opts.MaxValue))
		f.setLocked(FormatNumber(*f.opts.MaxValue, f.opts))
	}
}

func (f *Field) fillEmptyLocked() {
	v := 0.0
	if f.opts.MinValue != nil && v < *f.opts.MinValue {
		v = *f.opts.MinValue
	}
	if f.opts.MaxValue != nil && v > *f.opts.MaxValue {
		v = *f.opts.MaxValue
	}
	f.logger.Debug("numberfield: required field filled", zap.Float64("value", v))
	f.setLocked(FormatNumber(v, f.opts))
}

func (f *Field) stepLocked(delta float64) {
	next := roundTo(f.valueLocked()+delta, f.opts.Precision)
	f.setLocked(FormatNumber(next, f.opts))
}
