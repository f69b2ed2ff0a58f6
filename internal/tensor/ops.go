package tensor

import (
	"fmt"

	"github.com/born-ml/tensor4d/internal/parallel"
)

// AddInPlace adds other into t element-wise and returns t for chaining.
//
// other may be broadcast one-directionally: every axis of other must either
// equal the matching axis of t or have length 1, in which case its single
// value is reused along that axis. Addition uses T's own + semantics
// (integer wraparound, IEEE floating point).
//
// Panics with an error wrapping ErrShapeMismatch, ErrReleased or ErrNilTensor
// if the operands are incompatible. Use TryAddInPlace to get the error instead.
//
// Example:
//
//	t.AddInPlace(bias).AddInPlace(scalar)
func (t *Tensor[T]) AddInPlace(other *Tensor[T]) *Tensor[T] {
	if err := t.addInPlace(other, parallel.Sequential()); err != nil {
		panic(err)
	}
	return t
}

// TryAddInPlace is AddInPlace reporting incompatible operands as an error.
// t is left unmodified when an error is returned.
func (t *Tensor[T]) TryAddInPlace(other *Tensor[T]) error {
	return t.addInPlace(other, parallel.Sequential())
}

// AddInPlaceWith is AddInPlace with the rows of t spread according to cfg.
// Each row of t is written by exactly one worker and the call returns only
// after every row is done.
func (t *Tensor[T]) AddInPlaceWith(other *Tensor[T], cfg parallel.Config) *Tensor[T] {
	if err := t.addInPlace(other, cfg); err != nil {
		panic(err)
	}
	return t
}

func (t *Tensor[T]) addInPlace(other *Tensor[T], cfg parallel.Config) error {
	if t == nil || other == nil {
		return fmt.Errorf("%w: add requires two tensors", ErrNilTensor)
	}
	dst, err := t.live()
	if err != nil {
		return err
	}
	src, err := other.live()
	if err != nil {
		return err
	}
	if err := other.shape.CanBroadcastTo(t.shape); err != nil {
		return err
	}

	dstStrides := t.shape.ComputeStrides()
	srcStrides := other.shape.BroadcastStrides(t.shape)
	d0, d1, d2, d3 := t.shape[0], t.shape[1], t.shape[2], t.shape[3]

	if !cfg.Enabled {
		for i0 := 0; i0 < d0; i0++ {
			for i1 := 0; i1 < d1; i1++ {
				for i2 := 0; i2 < d2; i2++ {
					dOff := i0*dstStrides[0] + i1*dstStrides[1] + i2*dstStrides[2]
					sOff := i0*srcStrides[0] + i1*srcStrides[1] + i2*srcStrides[2]
					addRow(dst[dOff:dOff+d3], src, sOff, srcStrides[3])
				}
			}
		}
		return nil
	}

	// Rows are the (i0, i1, i2) prefixes; r enumerates them in row-major order.
	parallel.ForRange(d0*d1*d2, cfg, func(start, end int) {
		for r := start; r < end; r++ {
			i2 := r % d2
			i1 := (r / d2) % d1
			i0 := r / (d1 * d2)
			dOff := i0*dstStrides[0] + i1*dstStrides[1] + i2*dstStrides[2]
			sOff := i0*srcStrides[0] + i1*srcStrides[1] + i2*srcStrides[2]
			addRow(dst[dOff:dOff+d3], src, sOff, srcStrides[3])
		}
	})
	return nil
}

// addRow adds src[off], src[off+step], ... into row.
// step is 0 when the last axis is broadcast.
func addRow[T DType](row, src []T, off, step int) {
	for i3 := range row {
		row[i3] += src[off+i3*step]
	}
}
