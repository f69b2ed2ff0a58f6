package tensor

import (
	"fmt"
	"math"
)

// Rank is the fixed number of dimensions of every tensor.
const Rank = 4

// Shape represents the dimensions of a tensor as [d0, d1, d2, d3].
// It is an array so a tensor's shape cannot be mutated through a shared slice.
type Shape [Rank]int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid: all dimensions >= 0, and the
// product of the non-zero dimensions fits in an int.
// Zero-length dimensions are allowed and describe an empty tensor.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		if dim == 0 {
			continue
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: %v overflows int at dimension %d", ErrInvalidShape, s, i)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// String formats the shape as [d0 d1 d2 d3].
func (s Shape) String() string {
	return fmt.Sprintf("[%d %d %d %d]", s[0], s[1], s[2], s[3])
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
//
// A zero-length dimension zeroes the strides of every axis before it; those
// strides are never used because traversal over the zero axis is empty.
func (s Shape) ComputeStrides() [Rank]int {
	var strides [Rank]int
	strides[Rank-1] = 1
	for i := Rank - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// CanBroadcastTo reports whether s may be added into a tensor of shape target
// using one-directional broadcasting: every axis of s must either match
// target or have length 1.
//
// Examples:
//
//	[1 2 3 1] -> [1 2 3 4]  ok (last axis broadcast)
//	[1 1 1 1] -> [1 2 3 4]  ok (scalar)
//	[1 2 3 4] -> [1 2 3 1]  error (broadcasting is one-directional)
//	[1 2 2 4] -> [1 2 3 4]  error
func (s Shape) CanBroadcastTo(target Shape) error {
	for k := range s {
		if s[k] != 1 && s[k] != target[k] {
			return fmt.Errorf("%w: cannot broadcast %v into %v (dimension %d: %d vs %d)",
				ErrShapeMismatch, s, target, k, s[k], target[k])
		}
	}
	return nil
}

// BroadcastStrides returns the strides used to read s as if it had shape target.
// Axes where s has length 1 but target does not get stride 0, so the single
// value along that axis is reused for every target position.
// The caller must have checked CanBroadcastTo.
func (s Shape) BroadcastStrides(target Shape) [Rank]int {
	strides := s.ComputeStrides()
	for k := range s {
		if s[k] == 1 && target[k] != 1 {
			strides[k] = 0
		}
	}
	return strides
}
