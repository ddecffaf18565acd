// Package bridge copies array data between the foreign numerics runtime and
// natively owned ndarray values.
//
// A foreign array is anything implementing Buffer: it describes its memory
// through an ArrayInterface (address, dtype, shape, byte length and a
// contiguity flag). Decode validates that description and performs a single
// bulk copy into a freshly allocated native array; Encode does the reverse
// through an Allocator supplied by the foreign runtime. No per-element
// conversion takes place: the dtype registry guarantees that foreign and
// native element layouts agree, so the copied bytes are reinterpreted as is.
package bridge

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"unsafe"

	"ndarray-bridge/dtype"
	"ndarray-bridge/internal/common"
	"ndarray-bridge/ndarray"
)

var (
	// ErrNotAnArray is returned when a value does not implement Buffer.
	ErrNotAnArray = errors.New("not an array")
	// ErrNonContiguousArray is returned for strided (non C-order) arrays.
	ErrNonContiguousArray = errors.New("non-contiguous array")
	// ErrLayoutMismatch is returned when an array's byte length, shape and
	// address disagree with each other.
	ErrLayoutMismatch = errors.New("array layout mismatch")
)

// ArrayInterface is the buffer description a foreign array exposes.
type ArrayInterface struct {
	// Data is the address of the first element. It may be nil only when
	// ByteLength is zero.
	Data unsafe.Pointer
	// Typestr is either a dtype tag ("float64") or an array-interface
	// typestr ("<f8").
	Typestr string
	// Shape lists the dimensions, outermost first.
	Shape []int
	// ByteLength is the size of the element storage in bytes.
	ByteLength int
	// Contiguous reports whether the elements are laid out in C order without
	// gaps.
	Contiguous bool
}

// Buffer is implemented by foreign arrays that let native code read their
// memory directly.
type Buffer interface {
	ArrayInterface() (ArrayInterface, error)
}

// Allocator creates empty foreign arrays; it is the foreign runtime's
// equivalent of an uninitialized array constructor.
type Allocator interface {
	Empty(shape []int, tag string) (Buffer, error)
}

// DType resolves the element dtype of the description.
func (ai ArrayInterface) DType() (dtype.DType, error) {
	if len(ai.Typestr) > 0 {
		switch ai.Typestr[0] {
		case '<', '>', '=', '|':
			return dtype.ParseTypestr(ai.Typestr)
		}
	}

	return dtype.Lookup(ai.Typestr)
}

// layout validates the description before any memory is touched.
func (ai ArrayInterface) layout() (dtype.DType, error) {
	if !ai.Contiguous {
		return 0, fmt.Errorf("%w: shape %s", ErrNonContiguousArray, common.FormatShape(ai.Shape))
	}

	d, err := ai.DType()
	if err != nil {
		return 0, err
	}

	for _, dim := range ai.Shape {
		if dim < 0 {
			return 0, fmt.Errorf("%w: negative dimension in shape %s", ErrLayoutMismatch, common.FormatShape(ai.Shape))
		}
	}

	want, ok := common.ByteLen(ai.Shape, d.Size())
	if !ok {
		return 0, fmt.Errorf("%w: %s %s does not fit in memory", ErrLayoutMismatch, d.Tag(), common.FormatShape(ai.Shape))
	}

	if ai.ByteLength != want {
		return 0, fmt.Errorf("%w: %d bytes for %s %s, expected %d",
			ErrLayoutMismatch, ai.ByteLength, d.Tag(), common.FormatShape(ai.Shape), want)
	}

	if ai.ByteLength > 0 && ai.Data == nil {
		return 0, fmt.Errorf("%w: nil address for %d bytes", ErrLayoutMismatch, ai.ByteLength)
	}

	return d, nil
}

// Bridge converts arrays across the runtime boundary. The zero value is
// ready to use and logs to slog.Default().
type Bridge struct {
	logger *slog.Logger
}

// New creates a Bridge that logs conversions to logger. A nil logger falls
// back to slog.Default().
func New(logger *slog.Logger) *Bridge {
	return &Bridge{logger: logger}
}

func (b *Bridge) log() *slog.Logger {
	if b == nil || b.logger == nil {
		return slog.Default()
	}

	return b.logger
}

var defaultBridge = &Bridge{}

// Decode copies a foreign array into a new native array using the default
// Bridge.
func Decode(obj any) (*ndarray.Array, error) {
	return defaultBridge.Decode(obj)
}

// Encode copies a native array into a new foreign array using the default
// Bridge.
func Encode(a *ndarray.Array, alloc Allocator) (Buffer, error) {
	return defaultBridge.Encode(a, alloc)
}

// Decode copies a foreign array into a new native array. The foreign memory
// is read exactly once and is not referenced after Decode returns.
//
// A one-dimensional uint8 array is returned as its raw bytes without going
// through the typed allocation path.
func (b *Bridge) Decode(obj any) (*ndarray.Array, error) {
	buf, ok := obj.(Buffer)
	if !ok || buf == nil {
		return nil, fmt.Errorf("%w: %T", ErrNotAnArray, obj)
	}

	ai, err := buf.ArrayInterface()
	if err != nil {
		return nil, fmt.Errorf("failed to read array interface: %w", err)
	}

	d, err := ai.layout()
	if err != nil {
		return nil, err
	}

	src := foreignBytes(ai.Data, ai.ByteLength)

	var out *ndarray.Array

	if d == dtype.Uint8 && len(ai.Shape) == 1 {
		raw := make([]byte, ai.ByteLength)
		copy(raw, src)

		out, err = ndarray.Wrap(raw)
	} else {
		out, err = ndarray.New(d, ai.Shape...)
		if err == nil {
			copy(nativeBytes(out.Data()), src)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to allocate native array: %w", err)
	}

	b.log().Debug("decoded foreign array",
		slog.String("dtype", d.Tag()),
		slog.String("shape", common.FormatShape(ai.Shape)),
		slog.Int("bytes", ai.ByteLength),
	)

	return out, nil
}

// Encode allocates a foreign array with a's shape and dtype through alloc
// and copies a's bytes into it.
func (b *Bridge) Encode(a *ndarray.Array, alloc Allocator) (Buffer, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil native array", ErrNotAnArray)
	}

	if alloc == nil {
		return nil, errors.New("nil allocator")
	}

	shape := a.Shape()

	buf, err := alloc.Empty(slices.Clone(shape), a.DType().Tag())
	if err != nil {
		return nil, fmt.Errorf("failed to allocate foreign array: %w", err)
	}

	if buf == nil {
		return nil, fmt.Errorf("%w: allocator returned nil", ErrNotAnArray)
	}

	ai, err := buf.ArrayInterface()
	if err != nil {
		return nil, fmt.Errorf("failed to read array interface: %w", err)
	}

	d, err := ai.layout()
	if err != nil {
		return nil, err
	}

	if d != a.DType() || !slices.Equal(ai.Shape, shape) {
		return nil, fmt.Errorf("%w: allocator returned %s %s for %s %s", ErrLayoutMismatch,
			d.Tag(), common.FormatShape(ai.Shape), a.DType().Tag(), common.FormatShape(shape))
	}

	copy(foreignBytes(ai.Data, ai.ByteLength), nativeBytes(a.Data()))

	b.log().Debug("encoded native array",
		slog.String("dtype", d.Tag()),
		slog.String("shape", common.FormatShape(shape)),
		slog.Int("bytes", ai.ByteLength),
	)

	return buf, nil
}
