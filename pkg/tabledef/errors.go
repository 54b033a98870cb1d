package tabledef

import "errors"

var (
	// ErrInvalidDefinition is returned when a definition document is malformed or incomplete.
	ErrInvalidDefinition = errors.New("invalid table definition")

	// ErrReadDefinition is returned when a definition file cannot be read.
	ErrReadDefinition = errors.New("failed to read table definition")
)
