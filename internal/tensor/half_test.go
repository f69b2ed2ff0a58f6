package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFromFloat16(t *testing.T) {
	bits := []uint16{
		float16.Fromfloat32(1).Bits(),
		float16.Fromfloat32(-2.5).Bits(),
		float16.Fromfloat32(0.25).Bits(),
		float16.Fromfloat32(1024).Bits(),
	}

	tn, err := FromFloat16(Shape{1, 1, 2, 2}, bits)
	require.NoError(t, err)

	assert.Equal(t, []float32{1, -2.5, 0.25, 1024}, tn.Data())
	assert.Equal(t, bits, Float16Bits(tn))
}

func TestFromFloat16_Broadcast(t *testing.T) {
	t0, err := FromFloat16(Shape{1, 1, 1, 3}, []uint16{0x3c00, 0x4000, 0x4200}) // 1, 2, 3
	require.NoError(t, err)
	half, err := FromFloat16(Shape{1, 1, 1, 1}, []uint16{0x3800}) // 0.5
	require.NoError(t, err)

	t0.AddInPlace(half)

	assert.Equal(t, []float32{1.5, 2.5, 3.5}, t0.Data())
	assert.Equal(t, []uint16{0x3e00, 0x4100, 0x4300}, Float16Bits(t0))
}

func TestFromFloat16_Errors(t *testing.T) {
	_, err := FromFloat16(Shape{1, 1, 1, 4}, []uint16{0x3c00})
	assert.ErrorIs(t, err, ErrSourceTooShort)

	_, err = FromFloat16(Shape{1, 1, -1, 4}, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}
