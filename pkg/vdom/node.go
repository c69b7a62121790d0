package vdom

import (
	"sync"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

// Node is an element of the in-memory tree. Input nodes also satisfy
// numberfield.Element and numberfield.Selectable.
type Node struct {
	Tag   string
	Class string
	Text  string
	Attrs map[string]string
	Style map[string]string

	children []*Node
	parent   *Node

	mu         sync.Mutex
	value      []rune
	start, end int
	focused    bool

	handlers numberfield.EventHandlers
	pointer  numberfield.PointerHandlers
	bound    bool
}

// NewElement returns a detached node.
func NewElement(tag, class string) *Node {
	return &Node{Tag: tag, Class: class}
}

// NewInput returns a detached text input holding value with the caret at
// the end.
func NewInput(value string) *Node {
	n := &Node{Tag: "input", Attrs: map[string]string{"type": "text"}}
	n.SetValue(value)
	return n
}

// NewText returns a text node.
func NewText(text string) *Node {
	return &Node{Text: text}
}

// Append adds child as the last child of n, detaching it from its previous
// parent first.
func (n *Node) Append(child *Node) *Node {
	child.detach()
	child.parent = n
	n.children = append(n.children, child)
	return n
}

// Parent returns the node's parent, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Find returns the first node in depth-first order carrying class.
func (n *Node) Find(class string) *Node {
	if n.Class == class {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// Value returns the input text.
func (n *Node) Value() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return string(n.value)
}

// SetValue replaces the input text and moves the caret to the end.
func (n *Node) SetValue(v string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.value = []rune(v)
	n.start, n.end = len(n.value), len(n.value)
}

func (n *Node) SelectionStart() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.start
}

func (n *Node) SelectionEnd() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.end
}

// Select sets the selection, clamped to the text.
func (n *Node) Select(start, end int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.start, n.end = clamp(start, 0, len(n.value)), clamp(end, 0, len(n.value))
	if n.start > n.end {
		n.start, n.end = n.end, n.start
	}
}

// SetCaret collapses the selection at pos.
func (n *Node) SetCaret(pos int) {
	n.Select(pos, pos)
}

// Focused reports whether the input has focus.
func (n *Node) Focused() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.focused
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, child := range siblings {
		if child == n {
			n.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// replaceWith puts other at n's position in its parent.
func (n *Node) replaceWith(other *Node) {
	parent := n.parent
	if parent == nil {
		return
	}
	other.detach()
	for i, child := range parent.children {
		if child == n {
			parent.children[i] = other
			other.parent = parent
			n.parent = nil
			return
		}
	}
}

func (n *Node) setStyle(pairs ...string) {
	if n.Style == nil {
		n.Style = make(map[string]string, len(pairs)/2)
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		n.Style[pairs[i]] = pairs[i+1]
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
