package numberfield

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var leadingNumber = regexp.MustCompile(`^[-+]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`)

// parseNumber reads the longest decimal prefix of text, treating sep as the
// decimal point. Leading whitespace is ignored.
func parseNumber(text, sep string) (float64, bool) {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	if trimmed == "" {
		return 0, false
	}
	if sep != "" && sep != "." {
		if strings.Contains(trimmed, ".") {
			trimmed = trimmed[:strings.Index(trimmed, ".")]
		}
		trimmed = strings.Replace(trimmed, sep, ".", 1)
	}
	match := leadingNumber.FindString(trimmed)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// valueOf is the lenient reading used everywhere a number is needed.
func valueOf(text, sep string) float64 {
	v, ok := parseNumber(text, sep)
	if !ok {
		return 0
	}
	return v
}

func validPattern(sep string) *regexp.Regexp {
	return regexp.MustCompile(`^-?[0-9]*(?:` + regexp.QuoteMeta(sep) + `[0-9]*)?$`)
}

func withinBounds(v float64, opts Options) bool {
	if opts.MinValue != nil && v < *opts.MinValue {
		return false
	}
	if opts.MaxValue != nil && v > *opts.MaxValue {
		return false
	}
	return true
}

// roundTo rounds half up at the given number of fractional digits.
func roundTo(v float64, precision int) float64 {
	d := math.Pow(10, float64(precision))
	return math.Floor(v*d+0.5) / d
}

// FormatNumber renders v the way a Field writes stepped or clamped values:
// fixed precision when floats are allowed, shortest form otherwise, using the
// configured separator.
func FormatNumber(v float64, opts Options) string {
	if v == 0 {
		v = 0
	}
	digits := -1
	if opts.AllowFloats {
		digits = opts.Precision
	}
	out := strconv.FormatFloat(v, 'f', digits, 64)
	if sep := opts.DecimalSeparator; sep != "" && sep != "." {
		out = strings.Replace(out, ".", sep, 1)
	}
	return out
}

// integerDigits formats the integer part used by the digit budget heuristic.
func integerDigits(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}
