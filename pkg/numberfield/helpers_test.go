package numberfield

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"
)

// textElement is a minimal Selectable element. Writes move the caret to the
// end of the text, like a browser input does.
type textElement struct {
	value      string
	start, end int
}

func newTextElement(v string) *textElement {
	return &textElement{value: v, start: len(v), end: len(v)}
}

func (e *textElement) Value() string { return e.value }

func (e *textElement) SetValue(v string) {
	e.value = v
	e.start, e.end = len(v), len(v)
}

func (e *textElement) SelectionStart() int { return e.start }
func (e *textElement) SelectionEnd() int   { return e.end }

func (e *textElement) setCaret(pos int) {
	e.start, e.end = pos, pos
}

func (e *textElement) insert(r rune) {
	e.value = e.value[:e.start] + string(r) + e.value[e.end:]
	e.start++
	e.end = e.start
}

// typeRune runs the full key-down, key-press, key-up sequence for a printable
// character and inserts it when accepted.
func typeRune(f *Field, el *textElement, r rune) bool {
	f.HandleKeyDown(int(r))
	accepted := f.HandleKeyPress(r)
	if accepted {
		el.insert(r)
	}
	f.HandleKeyUp()
	return accepted
}

func mustField(t *testing.T, el Element, fns ...OptionFn) *Field {
	t.Helper()
	f, err := New(el, nil, fns...)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return f
}

type fakeScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	pending []*fakeTimer
}

type fakeTimer struct {
	s       *fakeScheduler
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{s: s, at: s.now + d, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

// Advance moves the clock forward, firing due timers in order without holding
// the scheduler lock.
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		s.mu.Lock()
		var due []*fakeTimer
		for _, t := range s.pending {
			if !t.stopped && !t.fired && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			s.now = target
			s.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
		next := due[0]
		s.now = next.at
		next.fired = true
		s.mu.Unlock()
		next.fn()
	}
}

func (s *fakeScheduler) pendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type hostCall struct {
	op     string
	class  string
	tag    string
	action Action
	text   string
}

type recordingHost struct {
	calls    []hostCall
	handlers EventHandlers
	buttons  []PointerHandlers
	failOn   string
}

var errHostFailure = errors.New("host failure")

func (h *recordingHost) fail(op string) error {
	if h.failOn == op {
		return errHostFailure
	}
	return nil
}

func (h *recordingHost) Bind(_ Element, handlers EventHandlers) error {
	h.calls = append(h.calls, hostCall{op: "bind"})
	h.handlers = handlers
	return h.fail("bind")
}

func (h *recordingHost) Wrap(_ Element, className string) (Node, error) {
	h.calls = append(h.calls, hostCall{op: "wrap", class: className})
	return "wrapper", h.fail("wrap")
}

func (h *recordingHost) ButtonContainer(_ Node, className string) (Node, error) {
	h.calls = append(h.calls, hostCall{op: "buttons", class: className})
	return "buttons", h.fail("buttons")
}

func (h *recordingHost) AddSpinButton(_ Node, tag string, action Action, handlers PointerHandlers) error {
	h.calls = append(h.calls, hostCall{op: "spin", tag: tag, action: action})
	h.buttons = append(h.buttons, handlers)
	return h.fail("spin")
}

func (h *recordingHost) AddUnit(_ Element, className, text string) error {
	h.calls = append(h.calls, hostCall{op: "unit", class: className, text: text})
	return h.fail("unit")
}
