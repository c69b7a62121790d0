package numberfield

import "testing"

type plainElement struct{ value string }

func (e *plainElement) Value() string     { return e.value }
func (e *plainElement) SetValue(v string) { e.value = v }

type rangeElement struct {
	plainElement
	start, end int
}

func (e *rangeElement) CreateTextRange() TextRange {
	return &fakeRange{start: e.start, end: e.end}
}

// fakeRange encodes the collapsed offset in the third bookmark character,
// shifted by two, the way legacy text ranges do.
type fakeRange struct {
	start, end int
}

func (r *fakeRange) Collapsed() bool { return r.start == r.end }

func (r *fakeRange) Collapse(toStart bool) {
	if toStart {
		r.end = r.start
		return
	}
	r.start = r.end
}

func (r *fakeRange) Bookmark() string {
	return string([]rune{'~', '~', rune(r.start + 2), '~'})
}

func TestSelection_Native(t *testing.T) {
	el := newTextElement("1234")
	f := mustField(t, el)
	el.start, el.end = 1, 3
	if f.SelectionStart() != 1 || f.SelectionEnd() != 3 {
		t.Fatalf("unexpected offsets %d..%d", f.SelectionStart(), f.SelectionEnd())
	}
}

func TestSelection_RangeFallback(t *testing.T) {
	el := &rangeElement{plainElement: plainElement{value: "1234"}, start: 1, end: 3}
	f := mustField(t, el)
	if got := f.SelectionStart(); got != 1 {
		t.Fatalf("start = %d, want 1", got)
	}
	if got := f.SelectionEnd(); got != 3 {
		t.Fatalf("end = %d, want 3", got)
	}
}

func TestSelection_NoCapabilityUsesEnd(t *testing.T) {
	el := &plainElement{value: "123"}
	f := mustField(t, el)
	if f.SelectionStart() != 3 || f.SelectionEnd() != 3 {
		t.Fatalf("expected caret at end, got %d..%d", f.SelectionStart(), f.SelectionEnd())
	}
}

func TestSelection_RangeFallbackFeedsFilter(t *testing.T) {
	el := &rangeElement{plainElement: plainElement{value: "5"}}
	f := mustField(t, el, WithMinValue(-10))
	f.HandleKeyDown(189)
	if !f.HandleKeyPress('-') {
		t.Fatalf("minus at offset 0 should be accepted")
	}
}
