package tensor

// buffer is the exclusively-owned storage behind a Tensor.
// Its length never changes; release drops the backing array exactly once.
type buffer[T DType] struct {
	data     []T
	released bool
}

// newBuffer allocates a zeroed buffer of n elements.
func newBuffer[T DType](n int) *buffer[T] {
	return &buffer[T]{data: make([]T, n)}
}

// release drops the backing array. It reports whether this call released it,
// so a second release is a no-op.
func (b *buffer[T]) release() bool {
	if b.released {
		return false
	}
	b.data = nil
	b.released = true
	return true
}

// noCopy may be embedded into structs which must not be copied after first use.
// go vet's copylocks check flags any value copy of a struct containing it.
type noCopy struct{}

// Lock is a no-op used by the copylocks checker.
func (*noCopy) Lock() {}

// Unlock is a no-op used by the copylocks checker.
func (*noCopy) Unlock() {}
