package numberfield

import "errors"

var (
	// ErrNilTarget is returned when a Field is constructed without an element.
	ErrNilTarget = errors.New("numberfield: target element is nil")
)
