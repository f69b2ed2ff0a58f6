package tensor

import "errors"

// Errors reported by tensor construction and arithmetic.
// They are always wrapped with context; match them with errors.Is.
var (
	ErrInvalidShape   = errors.New("invalid shape")
	ErrSourceTooShort = errors.New("source buffer too short")
	ErrShapeMismatch  = errors.New("shapes not compatible for broadcasting")
	ErrReleased       = errors.New("tensor already released")
	ErrNilTensor      = errors.New("nil tensor")
)
