package numberfield

// Element is the editable text element a Field decorates. The Field never
// owns it.
type Element interface {
	Value() string
	SetValue(string)
}

// Selectable is implemented by elements that report native caret offsets.
type Selectable interface {
	SelectionStart() int
	SelectionEnd() int
}

// RangeSelectable is the fallback for hosts without native offsets. Offsets
// are recovered from the text range bookmark.
type RangeSelectable interface {
	CreateTextRange() TextRange
}

// TextRange mirrors the legacy range object used by RangeSelectable hosts.
type TextRange interface {
	Collapsed() bool
	Collapse(toStart bool)
	Bookmark() string
}

func selectionOffsets(el Element) (start, end int) {
	switch typed := el.(type) {
	case Selectable:
		return typed.SelectionStart(), typed.SelectionEnd()
	case RangeSelectable:
		return bookmarkOffset(typed.CreateTextRange(), true), bookmarkOffset(typed.CreateTextRange(), false)
	default:
		n := len([]rune(el.Value()))
		return n, n
	}
}

// bookmarkOffset collapses r towards the requested edge and decodes the
// offset stored in the third bookmark character.
func bookmarkOffset(r TextRange, toStart bool) int {
	if r == nil {
		return 0
	}
	if !r.Collapsed() {
		r.Collapse(toStart)
	}
	bookmark := []rune(r.Bookmark())
	if len(bookmark) < 3 {
		return 0
	}
	offset := int(bookmark[2]) - 2
	if offset < 0 {
		return 0
	}
	return offset
}
