package bridge

import (
	"fmt"
	"slices"

	"ndarray-bridge/dtype"
	"ndarray-bridge/internal/common"
)

// HostRuntime is an Allocator backed by Go memory. It implements the buffer
// protocol in-process and serves as the reverse-direction allocator when no
// foreign runtime is attached.
type HostRuntime struct{}

// Empty allocates a zero-filled HostArray.
func (HostRuntime) Empty(shape []int, tag string) (Buffer, error) {
	d, err := dtype.Lookup(tag)
	if err != nil {
		return nil, err
	}

	return NewHostArray(d, shape...)
}

// HostArray is a Go-allocated array exposing its storage through
// ArrayInterface. The storage is aligned to a cache line.
type HostArray struct {
	dtype   dtype.DType
	shape   []int
	buf     []byte
	strided bool
}

// NewHostArray allocates a zero-filled HostArray.
func NewHostArray(d dtype.DType, shape ...int) (*HostArray, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %v", dtype.ErrUnsupportedDtype, d)
	}

	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("%w: negative dimension in shape %s", ErrLayoutMismatch, common.FormatShape(shape))
		}
	}

	size, ok := common.ByteLen(shape, d.Size())
	if !ok {
		return nil, fmt.Errorf("%w: %s %s does not fit in memory", ErrLayoutMismatch, d.Tag(), common.FormatShape(shape))
	}

	return &HostArray{
		dtype: d,
		shape: slices.Clone(shape),
		buf:   alignedBytes(size),
	}, nil
}

// ArrayInterface describes h. The typestr uses the array-interface form so
// consumers exercise the byte order check.
func (h *HostArray) ArrayInterface() (ArrayInterface, error) {
	return ArrayInterface{
		Data:       bufferAddress(h.buf),
		Typestr:    h.dtype.Typestr(),
		Shape:      slices.Clone(h.shape),
		ByteLength: len(h.buf),
		Contiguous: !h.strided,
	}, nil
}

// Bytes returns the storage of h. The slice aliases the array.
func (h *HostArray) Bytes() []byte { return h.buf }

// DType returns the element dtype.
func (h *HostArray) DType() dtype.DType { return h.dtype }

// Shape returns a copy of the shape.
func (h *HostArray) Shape() []int { return slices.Clone(h.shape) }

// Transpose returns a view of h with its axes reversed. The view shares
// storage and reports itself as non-contiguous unless it has at most one
// axis longer than one.
func (h *HostArray) Transpose() *HostArray {
	shape := slices.Clone(h.shape)
	slices.Reverse(shape)

	long := 0
	for _, dim := range shape {
		if dim > 1 {
			long++
		}
	}

	return &HostArray{dtype: h.dtype, shape: shape, buf: h.buf, strided: h.strided || long > 1}
}
