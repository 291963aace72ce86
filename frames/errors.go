package frames

import "errors"

var (
	// ErrInputNotFound is returned when the root document or a frame source
	// cannot be opened.
	ErrInputNotFound = errors.New("input not found")

	// ErrMalformedInput is returned when an expected frame or its src
	// attribute is missing.
	ErrMalformedInput = errors.New("malformed input")

	// ErrParse is returned when a document cannot be parsed as HTML.
	ErrParse = errors.New("unable to parse document")
)
