//go:build js && wasm

// Package dom mounts numberfield widgets on browser input elements through
// syscall/js.
package dom

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

// ErrNotElement is returned when a value handed to the Host is not a DOM
// element.
var ErrNotElement = errors.New("dom: value is not a DOM element")

// Input adapts an HTML input element to numberfield.Element.
type Input struct {
	el js.Value
}

// NewInput wraps el. It does not check the element kind.
func NewInput(el js.Value) *Input {
	return &Input{el: el}
}

// JSValue returns the wrapped element.
func (i *Input) JSValue() js.Value {
	return i.el
}

func (i *Input) Value() string {
	return i.el.Get("value").String()
}

func (i *Input) SetValue(v string) {
	i.el.Set("value", v)
}

// SelectionStart falls back to the end of the text for input types without
// selection support.
func (i *Input) SelectionStart() int {
	return i.offset("selectionStart")
}

func (i *Input) SelectionEnd() int {
	return i.offset("selectionEnd")
}

func (i *Input) offset(prop string) int {
	v := i.el.Get(prop)
	if v.Type() != js.TypeNumber {
		return len([]rune(i.Value()))
	}
	return v.Int()
}

// Host creates the wrapper, buttons and unit label with document APIs and
// keeps the registered callbacks alive until Release.
type Host struct {
	document js.Value
	funcs    []js.Func
}

var _ numberfield.Host = (*Host)(nil)

func NewHost() *Host {
	return &Host{document: js.Global().Get("document")}
}

// Release frees every callback the host registered. Listeners stop working
// afterwards.
func (h *Host) Release() {
	for _, fn := range h.funcs {
		fn.Release()
	}
	h.funcs = nil
}

func (h *Host) Bind(target numberfield.Element, handlers numberfield.EventHandlers) error {
	input, ok := target.(*Input)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotElement, target)
	}
	el := input.el

	h.listen(el, "keydown", func(event js.Value) {
		code := event.Get("keyCode").Int()
		if handlers.KeyDown != nil {
			handlers.KeyDown(code)
		}
		// Browsers no longer fire keypress for arrow keys.
		if numberfield.IsStepKey(numberfield.KeyCode(code)) && handlers.KeyPress != nil {
			if !handlers.KeyPress(0) {
				event.Call("preventDefault")
			}
		}
	})
	h.listen(el, "keypress", func(event js.Value) {
		if handlers.KeyPress == nil {
			return
		}
		char := rune(event.Get("charCode").Int())
		if !handlers.KeyPress(char) {
			event.Call("preventDefault")
		}
	})
	h.listen(el, "keyup", func(js.Value) {
		if handlers.KeyUp != nil {
			handlers.KeyUp()
		}
	})
	h.listen(el, "change", func(js.Value) {
		if handlers.Change != nil {
			handlers.Change()
		}
	})
	h.listen(el, "blur", func(js.Value) {
		if handlers.Blur != nil {
			handlers.Blur()
		}
	})
	return nil
}

func (h *Host) Wrap(target numberfield.Element, className string) (numberfield.Node, error) {
	input, ok := target.(*Input)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotElement, target)
	}
	el := input.el
	parent := el.Get("parentNode")
	if parent.IsNull() || parent.IsUndefined() {
		return nil, errors.New("dom: input has no parent node")
	}

	div := h.document.Call("createElement", "div")
	div.Set("className", className)
	div.Get("style").Set("height", strconv.Itoa(el.Get("offsetHeight").Int())+"px")

	parent.Call("insertBefore", div, el)
	div.Call("appendChild", el)
	el.Get("style").Set("cssFloat", "left")
	return div, nil
}

func (h *Host) ButtonContainer(wrapper numberfield.Node, className string) (numberfield.Node, error) {
	parent, err := element(wrapper)
	if err != nil {
		return nil, err
	}
	div := h.document.Call("createElement", "div")
	div.Set("className", className)
	style := div.Get("style")
	style.Set("height", parent.Get("style").Get("height"))
	style.Set("cssFloat", "left")
	parent.Call("appendChild", div)
	return div, nil
}

func (h *Host) AddSpinButton(container numberfield.Node, tag string, action numberfield.Action, handlers numberfield.PointerHandlers) error {
	parent, err := element(container)
	if err != nil {
		return err
	}
	button := h.document.Call("createElement", tag)
	button.Set("className", action.String())
	button.Set("textContent", action.String())
	style := button.Get("style")
	style.Set("height", "50%")
	style.Set("fontSize", "1px")
	style.Set("overflow", "hidden")
	style.Set("textIndent", "-100px")

	h.listen(button, "mousedown", func(js.Value) { call(handlers.Down) })
	h.listen(button, "mouseup", func(js.Value) { call(handlers.Up) })
	h.listen(button, "mouseout", func(js.Value) { call(handlers.Leave) })
	h.listen(button, "click", func(event js.Value) {
		if handlers.Click != nil && !handlers.Click() {
			event.Call("preventDefault")
		}
	})

	parent.Call("appendChild", button)
	return nil
}

func (h *Host) AddUnit(target numberfield.Element, className, text string) error {
	input, ok := target.(*Input)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotElement, target)
	}
	parent := input.el.Get("parentNode")
	if parent.IsNull() || parent.IsUndefined() {
		return errors.New("dom: input has no parent node")
	}
	unit := h.document.Call("createElement", "div")
	unit.Set("className", className)
	unit.Call("appendChild", h.document.Call("createTextNode", text))
	parent.Call("appendChild", unit)
	return nil
}

func (h *Host) listen(el js.Value, event string, fn func(js.Value)) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		} else {
			fn(js.Undefined())
		}
		return nil
	})
	h.funcs = append(h.funcs, cb)
	el.Call("addEventListener", event, cb)
}

func element(v any) (js.Value, error) {
	el, ok := v.(js.Value)
	if !ok || el.IsNull() || el.IsUndefined() {
		return js.Value{}, fmt.Errorf("%w: %T", ErrNotElement, v)
	}
	return el, nil
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
