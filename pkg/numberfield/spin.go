package numberfield

// Action is the operation a spin button performs on its field.
type Action int

const (
	ActionIncrease Action = iota
	ActionDecrease
)

// String returns the name used for the button's class and label.
func (a Action) String() string {
	if a == ActionDecrease {
		return "decrease"
	}
	return "increase"
}

// SpinButton repeats its field's Increase or Decrease while the pointer is
// held down.
type SpinButton struct {
	owner  *Field
	action Action
	repeat *repeater
}

func newSpinButton(owner *Field, action Action) *SpinButton {
	fn := owner.Increase
	if action == ActionDecrease {
		fn = owner.Decrease
	}
	return &SpinButton{
		owner:  owner,
		action: action,
		repeat: newRepeater(owner.opts.Scheduler, owner.opts.RepeatDelay, fn),
	}
}

func (b *SpinButton) Action() Action {
	return b.action
}

// Start performs the action and keeps repeating it every RepeatDelay.
func (b *SpinButton) Start() {
	b.repeat.start()
}

// Stop cancels a pending repeat. It is safe to call when nothing is pending.
func (b *SpinButton) Stop() {
	b.repeat.stop()
}

// Active reports whether a repeat is pending.
func (b *SpinButton) Active() bool {
	return b.repeat.active()
}

// HandleClick always returns false so hosts suppress the default activation
// (form submit, navigation).
func (b *SpinButton) HandleClick() bool {
	return false
}

func (b *SpinButton) handlers() PointerHandlers {
	return PointerHandlers{
		Down:  b.Start,
		Up:    b.Stop,
		Leave: b.Stop,
		Click: b.HandleClick,
	}
}
