package census

import "errors"

// The error taxonomy of the pipeline. Every failure returned from this
// module wraps one of these, so callers can errors.Is on the class.
var (
	// ErrMissingColumn: a required input column is absent.
	ErrMissingColumn = errors.New("missing column")

	// ErrTypeMismatch: a value could not be parsed to the target type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrFormat: a derived key came out malformed (non-numeric composite).
	ErrFormat = errors.New("format error")

	// ErrReferenceLoad: a reference file is missing, malformed, or breaks
	// a uniqueness assumption.
	ErrReferenceLoad = errors.New("reference load error")
)
