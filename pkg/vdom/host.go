package vdom

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

var (
	// ErrForeignNode is returned when a Host receives an element or node it
	// did not create.
	ErrForeignNode = errors.New("vdom: node does not belong to this tree")
	// ErrDetached is returned when a mount step needs the target's parent
	// and the target has none.
	ErrDetached = errors.New("vdom: target has no parent")
	// ErrAlreadyBound is returned when a second field binds the same input.
	ErrAlreadyBound = errors.New("vdom: input already bound")
)

// Host mounts numberfield widgets into a vdom tree.
type Host struct{}

var _ numberfield.Host = (*Host)(nil)

func NewHost() *Host {
	return &Host{}
}

func (h *Host) Bind(target numberfield.Element, handlers numberfield.EventHandlers) error {
	input, err := asNode(target)
	if err != nil {
		return err
	}
	input.mu.Lock()
	defer input.mu.Unlock()
	if input.bound {
		return ErrAlreadyBound
	}
	input.handlers = handlers
	input.bound = true
	return nil
}

// Wrap moves target into a new wrapper div. A detached target stays detached
// inside the wrapper.
func (h *Host) Wrap(target numberfield.Element, className string) (numberfield.Node, error) {
	input, err := asNode(target)
	if err != nil {
		return nil, err
	}
	wrapper := NewElement("div", className)
	input.replaceWith(wrapper)
	wrapper.Append(input)
	input.setStyle("float", "left")
	return wrapper, nil
}

func (h *Host) ButtonContainer(wrapper numberfield.Node, className string) (numberfield.Node, error) {
	parent, err := asNode(wrapper)
	if err != nil {
		return nil, err
	}
	container := NewElement("div", className)
	container.setStyle("float", "left", "height", "100%")
	parent.Append(container)
	return container, nil
}

func (h *Host) AddSpinButton(container numberfield.Node, tag string, action numberfield.Action, handlers numberfield.PointerHandlers) error {
	parent, err := asNode(container)
	if err != nil {
		return err
	}
	button := NewElement(tag, action.String())
	button.Append(NewText(action.String()))
	button.setStyle(
		"height", "50%",
		"font-size", "1px",
		"overflow", "hidden",
		"text-indent", "-100px",
	)
	button.pointer = handlers
	parent.Append(button)
	return nil
}

// AddUnit appends the label to the target's parent, which is the wrapper
// when a spinner was mounted.
func (h *Host) AddUnit(target numberfield.Element, className, text string) error {
	input, err := asNode(target)
	if err != nil {
		return err
	}
	if input.parent == nil {
		return ErrDetached
	}
	unit := NewElement("div", className)
	unit.Append(NewText(text))
	input.parent.Append(unit)
	return nil
}

func asNode(v any) (*Node, error) {
	node, ok := v.(*Node)
	if !ok || node == nil {
		return nil, fmt.Errorf("%w: %T", ErrForeignNode, v)
	}
	return node, nil
}
