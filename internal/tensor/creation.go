package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros[float32](Shape{1, 2, 3, 4})
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	// Data is already zero-initialized by make()
	return alloc[T](shape), nil
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full[float64](Shape{1, 1, 1, 1}, 1.0)
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.buf.data {
		t.buf.data[i] = value
	}
	return t, nil
}
