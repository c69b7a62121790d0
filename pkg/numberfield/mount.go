package numberfield

import "fmt"

// Class names applied to the nodes a Field injects.
const (
	ClassWrapper = "numberInput"
	ClassButtons = "spinButtons"
	ClassUnit    = "unit"
)

// Node is an opaque host node handed back by Host so later calls can refer
// to it.
type Node any

// EventHandlers are the callbacks a Field attaches to its target element.
// KeyPress returns false when the host must suppress the character.
type EventHandlers struct {
	KeyDown  func(code int)
	KeyPress func(char rune) bool
	KeyUp    func()
	Change   func()
	Blur     func()
}

// PointerHandlers are the callbacks attached to a spin button. Click returns
// false when the host must suppress the default activation.
type PointerHandlers struct {
	Down  func()
	Up    func()
	Leave func()
	Click func() bool
}

// Host is the rendering capability a Field needs to mount itself.
type Host interface {
	// Bind registers handlers on the target element.
	Bind(target Element, handlers EventHandlers) error
	// Wrap moves target into a new container carrying className and returns
	// the container.
	Wrap(target Element, className string) (Node, error)
	// ButtonContainer appends a container for spin buttons to wrapper.
	ButtonContainer(wrapper Node, className string) (Node, error)
	// AddSpinButton appends a control of kind tag labelled by action.
	AddSpinButton(container Node, tag string, action Action, handlers PointerHandlers) error
	// AddUnit appends a read-only label after the widget.
	AddUnit(target Element, className, text string) error
}

func (f *Field) handlers() EventHandlers {
	return EventHandlers{
		KeyDown:  f.HandleKeyDown,
		KeyPress: f.HandleKeyPress,
		KeyUp:    f.HandleKeyUp,
		Change:   f.HandleChange,
		Blur:     f.HandleBlur,
	}
}

func (f *Field) mountSpinner(host Host) error {
	wrapper, err := host.Wrap(f.target, ClassWrapper)
	if err != nil {
		return fmt.Errorf("numberfield: wrap target: %w", err)
	}
	container, err := host.ButtonContainer(wrapper, ClassButtons)
	if err != nil {
		return fmt.Errorf("numberfield: create button container: %w", err)
	}
	for _, button := range f.buttons {
		if err := host.AddSpinButton(container, f.opts.SpinButtonTag, button.action, button.handlers()); err != nil {
			return fmt.Errorf("numberfield: add %s button: %w", button.action, err)
		}
	}
	return nil
}
