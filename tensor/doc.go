// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a dense rank-4 tensor with in-place broadcasting addition.
//
// # Overview
//
// A Tensor[T] has a fixed Shape of four dimensions [d0, d1, d2, d3] and owns
// a contiguous row-major buffer of d0·d1·d2·d3 elements. This package provides:
//   - Generic tensors over every Go integer, float and complex type
//   - One-directional NumPy-style broadcasting for in-place addition
//   - Explicit ownership: Clone to duplicate, Release to free
//
// # Basic Usage
//
//	import "github.com/born-ml/tensor4d/tensor"
//
//	func main() {
//	    x, err := tensor.New(tensor.Shape{1, 2, 3, 4}, data)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer x.Release()
//
//	    bias, _ := tensor.New(tensor.Shape{1, 2, 3, 1}, rowBias)
//	    x.AddInPlace(bias)
//	}
//
// # Broadcasting
//
// x.AddInPlace(y) accepts y when, on every axis, y's length equals x's or is 1.
// Axes of length 1 in y are broadcast: their single value is reused for every
// position of x along that axis. Broadcasting never grows x.
//
//	x: [1 2 3 4]   y: [1 2 3 1]   ok, y reused along the last axis
//	x: [1 2 3 4]   y: [1 1 1 1]   ok, y is a scalar
//	x: [1 2 3 1]   y: [1 2 3 4]   ErrShapeMismatch
//
// AddInPlace panics on incompatible operands; TryAddInPlace returns the error.
//
// # Memory Layout
//
// Storage is row-major: the last axis varies fastest. Strides are computed
// from the shape on demand (see Shape.ComputeStrides) and are never stored.
//
// # Concurrency
//
// A Tensor has no internal locking. AddInPlaceWith can split a single addition
// across goroutines, and returns only when the addition is complete.
package tensor
