package tensor

import "fmt"

// Tensor is a dense rank-4 tensor with element type T.
//
// A Tensor exclusively owns a contiguous row-major buffer whose length always
// equals Shape().NumElements(). Tensors are handled by pointer and must not be
// copied by value; use Clone for an explicit deep copy.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{1, 2, 3, 4}, data)
//	if err != nil {
//	    return err
//	}
//	defer t.Release()
//	t.AddInPlace(bias)
type Tensor[T DType] struct {
	_     noCopy
	shape Shape
	buf   *buffer[T]
}

// New creates a tensor of the given shape by copying the first
// shape.NumElements() elements of src, which must be in row-major order.
// Extra trailing elements of src are ignored.
func New[T DType](shape Shape, src []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	if len(src) < n {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrSourceTooShort, shape, n, len(src))
	}

	t := alloc[T](shape)
	copy(t.buf.data, src[:n])
	return t, nil
}

// alloc creates a zero-filled tensor for an already validated shape.
func alloc[T DType](shape Shape) *Tensor[T] {
	return &Tensor[T]{
		shape: shape,
		buf:   newBuffer[T](shape.NumElements()),
	}
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Strides returns the row-major strides of the tensor's shape.
// They are derived on every call and not stored on the tensor.
func (t *Tensor[T]) Strides() [Rank]int {
	return t.shape.ComputeStrides()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return DataTypeOf[T]()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// Len returns the length of the owned buffer, or 0 once released.
func (t *Tensor[T]) Len() int {
	return len(t.buf.data)
}

// Released reports whether Release has been called.
func (t *Tensor[T]) Released() bool {
	return t.buf.released
}

// Release frees the tensor's buffer. Calling it again is a no-op.
// Any other use of a released tensor panics with ErrReleased.
func (t *Tensor[T]) Release() {
	t.buf.release()
}

// Data returns a copy of the tensor's elements in row-major order.
// The tensor's own buffer is never handed out.
func (t *Tensor[T]) Data() []T {
	data := t.mustLive()
	out := make([]T, len(data))
	copy(out, data)
	return out
}

// At returns the element at the given indices.
// Panics if an index is out of bounds.
func (t *Tensor[T]) At(i0, i1, i2, i3 int) T {
	data := t.mustLive()
	return data[t.offset(i0, i1, i2, i3)]
}

// Set sets the element at the given indices.
// Panics if an index is out of bounds.
func (t *Tensor[T]) Set(value T, i0, i1, i2, i3 int) {
	data := t.mustLive()
	data[t.offset(i0, i1, i2, i3)] = value
}

// Clone creates a deep copy of the tensor with its own buffer.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := t.mustLive()
	c := alloc[T](t.shape)
	copy(c.buf.data, data)
	return c
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	if t.buf.released {
		return fmt.Sprintf("Tensor[%s]%v (released)", t.DType(), t.shape)
	}
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}

// offset computes the flat buffer index of (i0, i1, i2, i3).
func (t *Tensor[T]) offset(i0, i1, i2, i3 int) int {
	indices := [Rank]int{i0, i1, i2, i3}
	strides := t.shape.ComputeStrides()
	off := 0
	for k, idx := range indices {
		if idx < 0 || idx >= t.shape[k] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, k, t.shape[k]))
		}
		off += idx * strides[k]
	}
	return off
}

// live returns the owned buffer, or ErrReleased.
func (t *Tensor[T]) live() ([]T, error) {
	if t.buf.released {
		return nil, fmt.Errorf("%w: %v", ErrReleased, t.shape)
	}
	return t.buf.data, nil
}

func (t *Tensor[T]) mustLive() []T {
	data, err := t.live()
	if err != nil {
		panic(err)
	}
	return data
}
