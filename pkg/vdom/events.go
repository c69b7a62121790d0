package vdom

import "github.com/goliatone/go-numberinput/pkg/numberfield"

// Type sends the key-down, key-press and key-up sequence for every rune of
// text. Accepted characters replace the selection. It reports how many
// characters were inserted.
func (n *Node) Type(text string) int {
	inserted := 0
	for _, r := range text {
		n.keyDown(int(numberfield.CodeForRune(r)))
		if n.keyPress(r) {
			n.insert(r)
			inserted++
		}
		n.keyUp()
	}
	return inserted
}

// Press sends a non-printing key. Accepted editing and navigation keys apply
// their default action to the text.
func (n *Node) Press(code numberfield.KeyCode) {
	n.keyDown(int(code))
	if n.keyPress(0) {
		n.applyKey(code)
	}
	n.keyUp()
}

// Change fires the change handler.
func (n *Node) Change() {
	if h := n.eventHandlers().Change; h != nil {
		h()
	}
}

// Focus marks the input focused.
func (n *Node) Focus() {
	n.mu.Lock()
	n.focused = true
	n.mu.Unlock()
}

// Blur clears focus and fires the blur handler.
func (n *Node) Blur() {
	n.mu.Lock()
	n.focused = false
	n.mu.Unlock()
	if h := n.eventHandlers().Blur; h != nil {
		h()
	}
}

// PointerDown presses a spin button.
func (n *Node) PointerDown() {
	if n.pointer.Down != nil {
		n.pointer.Down()
	}
}

// PointerUp releases a spin button.
func (n *Node) PointerUp() {
	if n.pointer.Up != nil {
		n.pointer.Up()
	}
}

// PointerLeave moves the pointer off a spin button.
func (n *Node) PointerLeave() {
	if n.pointer.Leave != nil {
		n.pointer.Leave()
	}
}

// Click reports whether the default activation should proceed.
func (n *Node) Click() bool {
	if n.pointer.Click != nil {
		return n.pointer.Click()
	}
	return true
}

func (n *Node) eventHandlers() numberfield.EventHandlers {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.handlers
}

func (n *Node) keyDown(code int) {
	if h := n.eventHandlers().KeyDown; h != nil {
		h(code)
	}
}

// keyPress returns true when no handler is bound.
func (n *Node) keyPress(r rune) bool {
	if h := n.eventHandlers().KeyPress; h != nil {
		return h(r)
	}
	return true
}

func (n *Node) keyUp() {
	if h := n.eventHandlers().KeyUp; h != nil {
		h()
	}
}

func (n *Node) insert(r rune) {
	n.mu.Lock()
	defer n.mu.Unlock()
	next := make([]rune, 0, len(n.value)+1)
	next = append(next, n.value[:n.start]...)
	next = append(next, r)
	next = append(next, n.value[n.end:]...)
	n.value = next
	n.start++
	n.end = n.start
}

func (n *Node) applyKey(code numberfield.KeyCode) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch code {
	case numberfield.KeyBackspace:
		if n.start == n.end && n.start > 0 {
			n.start--
		}
		n.cut()
	case numberfield.KeyDelete:
		if n.start == n.end && n.end < len(n.value) {
			n.end++
		}
		n.cut()
	case numberfield.KeyLeft:
		if n.start == n.end && n.start > 0 {
			n.start--
		}
		n.end = n.start
	case numberfield.KeyRight:
		if n.start == n.end && n.end < len(n.value) {
			n.end++
		}
		n.start = n.end
	case numberfield.KeyHome:
		n.start, n.end = 0, 0
	case numberfield.KeyEnd:
		n.start, n.end = len(n.value), len(n.value)
	}
}

func (n *Node) cut() {
	n.value = append(n.value[:n.start:n.start], n.value[n.end:]...)
	n.end = n.start
}
