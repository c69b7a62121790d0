package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilField is returned when a prompt is asked for a nil field.
	ErrNilField = errors.New("tui: field is nil")
	// ErrTooManyAttempts is returned when MaxAttempts invalid answers were
	// given in a row.
	ErrTooManyAttempts = errors.New("tui: too many invalid answers")
)
