package schema

import "errors"

var (
	// ErrEmptyDocument is returned when a document payload has no bytes.
	ErrEmptyDocument = errors.New("schema: raw document is empty")
	// ErrSchemaNotFound is returned when a named component schema is missing.
	ErrSchemaNotFound = errors.New("schema: component schema not found")
	// ErrNotNumeric is returned for schemas whose type is neither number nor
	// integer.
	ErrNotNumeric = errors.New("schema: schema is not numeric")
)
