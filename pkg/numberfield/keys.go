package numberfield

import (
	"math"
	"strings"
	"unicode"
)

// KeyCode identifies a key as reported on key-down. Only the codes a Field
// reacts to are enumerated; printable characters arrive as runes on
// key-press and their key-down code is irrelevant as long as it is not one
// of these.
type KeyCode int

const (
	KeyNone      KeyCode = 0
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyReturn    KeyCode = 13
	KeyEnd       KeyCode = 35
	KeyHome      KeyCode = 36
	KeyLeft      KeyCode = 37
	KeyUp        KeyCode = 38
	KeyRight     KeyCode = 39
	KeyDown      KeyCode = 40
	KeyDelete    KeyCode = 46
)

// IsControlKey reports whether code is a navigation or editing key that
// bypasses numeric filtering.
func IsControlKey(code KeyCode) bool {
	switch code {
	case KeyTab, KeyReturn, KeyLeft, KeyRight, KeyDelete, KeyBackspace, KeyEnd, KeyHome:
		return true
	default:
		return false
	}
}

// IsStepKey reports whether code steps the value instead of editing text.
func IsStepKey(code KeyCode) bool {
	return code == KeyUp || code == KeyDown
}

// Key-down codes browsers report for punctuation on a US layout.
const (
	codeComma  KeyCode = 188
	codeMinus  KeyCode = 189
	codePeriod KeyCode = 190
)

// CodeForRune returns the key-down code a browser reports for r. Hosts that
// only see characters use it to feed HandleKeyDown. Other punctuation maps
// to KeyNone; its raw code would alias arrow keys ('&' is 38, '(' is 40).
func CodeForRune(r rune) KeyCode {
	switch {
	case r >= '0' && r <= '9':
		return KeyCode(r)
	case r == '-':
		return codeMinus
	case r == '.':
		return codePeriod
	case r == ',':
		return codeComma
	case unicode.IsLetter(r):
		return KeyCode(unicode.ToUpper(r))
	default:
		return KeyNone
	}
}

// Decision is the outcome of filtering one keystroke.
type Decision int

const (
	Reject Decision = iota
	Accept
	StepUp
	StepDown
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case StepUp:
		return "step-up"
	case StepDown:
		return "step-down"
	default:
		return "reject"
	}
}

// Snapshot is the element state a keystroke is judged against. Selection
// offsets are 0-based character positions.
type Snapshot struct {
	Text           string
	SelectionStart int
	SelectionEnd   int
}

// Filter decides what a keystroke does to a field with the given options.
// down is the code captured on key-down; char is the character delivered on
// key-press (ignored for control and step keys).
func Filter(opts Options, snap Snapshot, down KeyCode, char rune) Decision {
	if IsControlKey(down) {
		return Accept
	}
	switch down {
	case KeyUp:
		return StepUp
	case KeyDown:
		return StepDown
	}

	sep := opts.DecimalSeparator
	if sep == "" {
		sep = defaultSeparator
	}
	value := valueOf(snap.Text, sep)
	c := string(char)

	if c == "-" {
		negativeAllowed := opts.MinValue == nil || *opts.MinValue < 0
		signed := strings.HasPrefix(snap.Text, "-") && snap.SelectionEnd == 0
		if negativeAllowed && value >= 0 && snap.SelectionStart == 0 && !signed {
			return Accept
		}
		return Reject
	}

	if opts.AllowFloats && c == sep {
		if strings.Contains(snap.Text, sep) {
			return Reject
		}
		return Accept
	}

	if char < '0' || char > '9' {
		return Reject
	}

	if snap.SelectionStart != snap.SelectionEnd {
		return Accept
	}

	runes := []rune(snap.Text)
	if i := runeIndex(runes, []rune(sep)); i >= 0 && snap.SelectionStart > i {
		fraction := len(runes) - i - len([]rune(sep))
		if fraction < opts.Precision {
			return Accept
		}
		return Reject
	}

	if value >= 0 {
		if opts.MaxValue != nil && len(integerDigits(math.Floor(value))) == len(integerDigits(math.Floor(*opts.MaxValue))) {
			return Reject
		}
		return Accept
	}
	if opts.MinValue != nil && len(integerDigits(math.Ceil(value))) == len(integerDigits(math.Ceil(*opts.MinValue))) {
		return Reject
	}
	return Accept
}

func runeIndex(haystack, needle []rune) int {
	if len(needle) == 0 {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
