package tensor

import (
	"github.com/x448/float16"
)

// FromFloat16 creates a float32 tensor from IEEE 754 binary16 bit patterns.
// Half-precision data cannot be summed in its storage format, so it is widened
// to float32 on the way in; the same length rules as New apply.
func FromFloat16(shape Shape, bits []uint16) (*Tensor[float32], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := min(len(bits), shape.NumElements())
	widened := make([]float32, n)
	for i := range widened {
		widened[i] = float16.Frombits(bits[i]).Float32()
	}
	return New(shape, widened)
}

// Float16Bits returns the tensor's elements rounded to IEEE 754 binary16,
// as bit patterns in row-major order.
func Float16Bits(t *Tensor[float32]) []uint16 {
	data := t.mustLive()
	out := make([]uint16, len(data))
	for i, v := range data {
		out[i] = float16.Fromfloat32(v).Bits()
	}
	return out
}
