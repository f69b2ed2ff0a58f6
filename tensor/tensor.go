// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensor4d/internal/parallel"
	"github.com/born-ml/tensor4d/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported kinds: all Go integer, floating-point and complex types.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Int        DataType = tensor.Int
	Int8       DataType = tensor.Int8
	Int16      DataType = tensor.Int16
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Uint       DataType = tensor.Uint
	Uint8      DataType = tensor.Uint8
	Uint16     DataType = tensor.Uint16
	Uint32     DataType = tensor.Uint32
	Uint64     DataType = tensor.Uint64
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Rank is the number of dimensions of every tensor.
const Rank = tensor.Rank

// Shape represents the dimensions of a tensor.
// Example: Shape{1, 2, 3, 4} is a tensor with 24 elements.
type Shape = tensor.Shape

// Tensor is a dense rank-4 tensor owning a contiguous row-major buffer.
//
// Example:
//
//	x, _ := tensor.New(tensor.Shape{1, 2, 3, 4}, data)
//	x.AddInPlace(y).AddInPlace(z)
type Tensor[T DType] = tensor.Tensor[T]

// ParallelConfig controls how AddInPlaceWith spreads work across goroutines.
type ParallelConfig = parallel.Config

// Errors returned by construction and TryAddInPlace.
var (
	ErrInvalidShape   = tensor.ErrInvalidShape
	ErrSourceTooShort = tensor.ErrSourceTooShort
	ErrShapeMismatch  = tensor.ErrShapeMismatch
	ErrReleased       = tensor.ErrReleased
	ErrNilTensor      = tensor.ErrNilTensor
)

// Creation functions

// New creates a tensor by copying the first shape.NumElements() elements of src.
//
// Example:
//
//	x, err := tensor.New(tensor.Shape{1, 1, 2, 2}, []float32{1, 2, 3, 4})
func New[T DType](shape Shape, src []T) (*Tensor[T], error) {
	return tensor.New(shape, src)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, err := tensor.Zeros[float64](tensor.Shape{1, 2, 3, 4})
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{1, 1, 1, 1}, 1.0)
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// FromFloat16 creates a float32 tensor from IEEE 754 half-precision bit patterns.
func FromFloat16(shape Shape, bits []uint16) (*Tensor[float32], error) {
	return tensor.FromFloat16(shape, bits)
}

// Float16Bits encodes a float32 tensor's elements as half-precision bit patterns.
func Float16Bits(t *Tensor[float32]) []uint16 {
	return tensor.Float16Bits(t)
}

// DataTypeOf reports the DataType for the element type T.
func DataTypeOf[T DType]() DataType {
	return tensor.DataTypeOf[T]()
}

// DefaultParallelConfig returns a ParallelConfig sized to the machine's CPUs.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a ParallelConfig that never starts goroutines.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
