package tensor

import (
	"math"
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq returns 1..n as a slice of T.
func seq[T ~int | ~int32 | ~int64 | ~float32 | ~float64](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Int8, 1},
		{Uint8, 1},
		{Int16, 2},
		{Uint16, 2},
		{Int32, 4},
		{Float32, 4},
		{Int64, 8},
		{Float64, 8},
		{Complex64, 8},
		{Complex128, 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size(), "%s.Size()", tt.dtype)
	}
}

func TestDataTypeOf(t *testing.T) {
	type celsius float64

	assert.Equal(t, Int, DataTypeOf[int]())
	assert.Equal(t, Int32, DataTypeOf[int32]())
	assert.Equal(t, Uint16, DataTypeOf[uint16]())
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[celsius](), "named types map to their kind")
	assert.Equal(t, Complex128, DataTypeOf[complex128]())
	assert.Equal(t, "unknown", DataType(99).String())
}

// Construction Tests

func TestNew(t *testing.T) {
	src := seq[int](24)
	shape := Shape{1, 2, 3, 4}

	tn, err := New(shape, src)
	require.NoError(t, err)

	assert.Equal(t, shape, tn.Shape())
	assert.Equal(t, shape.NumElements(), tn.Len())
	assert.Equal(t, Int, tn.DType())
	if diff := cmp.Diff(src, tn.Data()); diff != "" {
		t.Errorf("Data() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_CopiesSource(t *testing.T) {
	src := seq[float64](4)
	tn, err := New(Shape{1, 1, 2, 2}, src)
	require.NoError(t, err)

	src[0] = 100
	assert.Equal(t, 1.0, tn.At(0, 0, 0, 0), "tensor must not alias its source")

	data := tn.Data()
	data[1] = 100
	assert.Equal(t, 2.0, tn.At(0, 0, 0, 1), "Data must return a copy")
}

func TestNew_BufferLengthMatchesShape(t *testing.T) {
	shapes := []Shape{
		{1, 2, 3, 4},
		{1, 1, 1, 1},
		{3, 1, 2, 1},
		{0, 2, 3, 4},
		{2, 2, 0, 1},
	}

	for _, shape := range shapes {
		// Longer sources are accepted; only the prefix is used.
		tn, err := New(shape, make([]int32, shape.NumElements()+3))
		require.NoError(t, err, "%v", shape)
		assert.Equal(t, shape.NumElements(), tn.Len(), "%v", shape)
	}
}

func TestNew_SourceTooShort(t *testing.T) {
	_, err := New(Shape{1, 2, 3, 4}, seq[int](23))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceTooShort)
	assert.Contains(t, err.Error(), "requires 24 elements, but got 23")
}

func TestNew_InvalidShape(t *testing.T) {
	half := 1 << (bits.UintSize / 2)

	shapes := []Shape{
		{1, -1, 3, 4},
		{3, math.MaxInt/2 + 1, 1, 1},
		{half, half, 1, 1},
	}

	for _, shape := range shapes {
		_, err := New(shape, seq[int](24))
		assert.ErrorIs(t, err, ErrInvalidShape, "%v", shape)

		_, err = Zeros[float32](shape)
		assert.ErrorIs(t, err, ErrInvalidShape, "%v", shape)
	}
}

func TestZerosAndFull(t *testing.T) {
	z, err := Zeros[int64](Shape{1, 2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0}, z.Data())

	f, err := Full(Shape{1, 1, 1, 3}, float32(2.5))
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5, 2.5, 2.5}, f.Data())

	_, err = Full(Shape{-1, 1, 1, 1}, 1)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

// Access Tests

func TestAtSet(t *testing.T) {
	tn, err := New(Shape{1, 2, 3, 4}, seq[int](24))
	require.NoError(t, err)

	assert.Equal(t, 1, tn.At(0, 0, 0, 0))
	assert.Equal(t, 7, tn.At(0, 0, 1, 2))
	assert.Equal(t, 24, tn.At(0, 1, 2, 3))

	tn.Set(-5, 0, 1, 0, 0)
	assert.Equal(t, -5, tn.Data()[12])
}

func TestAt_OutOfBounds(t *testing.T) {
	tn, err := New(Shape{1, 2, 3, 4}, seq[int](24))
	require.NoError(t, err)

	assert.PanicsWithValue(t, "index 3 out of bounds for dimension 2 (size 3)", func() {
		tn.At(0, 0, 3, 0)
	})
	assert.Panics(t, func() { tn.Set(1, -1, 0, 0, 0) })
}

func TestStrides(t *testing.T) {
	tn, err := Zeros[float32](Shape{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, [Rank]int{24, 12, 4, 1}, tn.Strides())
}

// Ownership Tests

func TestClone(t *testing.T) {
	orig, err := New(Shape{1, 1, 2, 2}, seq[int](4))
	require.NoError(t, err)

	c := orig.Clone()
	c.Set(40, 0, 0, 1, 1)

	assert.Equal(t, 4, orig.At(0, 0, 1, 1), "clone must own its buffer")
	assert.Equal(t, 40, c.At(0, 0, 1, 1))
	assert.Equal(t, orig.Shape(), c.Shape())
}

func TestRelease(t *testing.T) {
	tn, err := New(Shape{1, 1, 1, 2}, seq[int](2))
	require.NoError(t, err)

	assert.False(t, tn.Released())
	tn.Release()
	assert.True(t, tn.Released())
	assert.Equal(t, 0, tn.Len())
	assert.Contains(t, tn.String(), "released")

	// Second release is a no-op.
	assert.NotPanics(t, tn.Release)

	assert.Panics(t, func() { tn.Data() })
	assert.Panics(t, func() { tn.At(0, 0, 0, 0) })
	assert.Panics(t, func() { tn.Clone() })
}

func TestString(t *testing.T) {
	tn, err := Zeros[float64](Shape{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, "Tensor[float64][1 2 3 4]", tn.String())
}
