// Package ndarray provides the natively owned multidimensional array that the
// bridge decodes into and the literal parser produces.
//
// An Array stores its elements in a flat, row-major Go slice of one of the
// supported element types together with its shape.
package ndarray

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"

	"ndarray-bridge/dtype"
	"ndarray-bridge/internal/common"
)

var (
	// ErrShape is returned when a shape is negative or disagrees with the data.
	ErrShape = errors.New("invalid shape")
	// ErrIndex is returned when an element index is out of range.
	ErrIndex = errors.New("index out of range")
)

// Array is a dense, row-major multidimensional array.
type Array struct {
	dtype dtype.DType
	shape []int
	data  any // []T for the T registered for dtype
}

// New allocates a zero-filled array of the given dtype and shape. An empty
// shape yields a rank-0 array holding a single element.
func New(d dtype.DType, shape ...int) (*Array, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %v", dtype.ErrUnsupportedDtype, d)
	}

	n, err := count(shape)
	if err != nil {
		return nil, err
	}

	if _, ok := common.ByteLen(shape, d.Size()); !ok {
		return nil, fmt.Errorf("%w: %s %s does not fit in memory", ErrShape, d.Tag(), common.FormatShape(shape))
	}

	return &Array{
		dtype: d,
		shape: slices.Clone(shape),
		data:  reflect.MakeSlice(reflect.SliceOf(d.Type()), n, n).Interface(),
	}, nil
}

// FromSlice copies data into a new array of the given shape. Without a shape
// the array is one-dimensional.
func FromSlice[T dtype.Element](data []T, shape ...int) (*Array, error) {
	return Wrap(slices.Clone(data), shape...)
}

// Wrap builds an array on top of data without copying it; the array takes
// ownership of the slice.
func Wrap[T dtype.Element](data []T, shape ...int) (*Array, error) {
	if shape == nil {
		shape = []int{len(data)}
	}

	n, err := count(shape)
	if err != nil {
		return nil, err
	}

	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %s holds %d elements, got %d",
			ErrShape, common.FormatShape(shape), n, len(data))
	}

	if data == nil {
		data = []T{}
	}

	return &Array{dtype: dtype.Of[T](), shape: slices.Clone(shape), data: data}, nil
}

// Scalar returns a rank-0 array holding v.
func Scalar[T dtype.Element](v T) *Array {
	return &Array{dtype: dtype.Of[T](), shape: []int{}, data: []T{v}}
}

func count(shape []int) (int, error) {
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %s", ErrShape, common.FormatShape(shape))
		}
	}

	n, ok := common.Product(shape)
	if !ok {
		return 0, fmt.Errorf("%w: %s has too many elements", ErrShape, common.FormatShape(shape))
	}

	return n, nil
}

// DType returns the element dtype.
func (a *Array) DType() dtype.DType { return a.dtype }

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return reflect.ValueOf(a.data).Len() }

// ByteLen returns the size of the element storage in bytes.
func (a *Array) ByteLen() int { return a.Len() * a.dtype.Size() }

// Data returns the flat row-major backing slice, e.g. []float64. The slice
// aliases the array's storage.
func (a *Array) Data() any { return a.data }

// Values returns the backing slice of a typed as []T. It fails when T does
// not match the array's dtype.
func Values[T dtype.Element](a *Array) ([]T, error) {
	v, ok := a.data.([]T)
	if !ok {
		return nil, fmt.Errorf("%w: array holds %s, requested %s",
			dtype.ErrUnsupportedDtype, a.dtype.Tag(), dtype.Of[T]().Tag())
	}

	return v, nil
}

// Offset converts a multi-axis index into the flat storage offset.
func (a *Array) Offset(idx ...int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrIndex, len(idx), len(a.shape))
	}

	off := 0
	for axis, i := range idx {
		if i < 0 || i >= a.shape[axis] {
			return 0, fmt.Errorf("%w: index %d on axis %d of size %d", ErrIndex, i, axis, a.shape[axis])
		}

		off = off*a.shape[axis] + i
	}

	return off, nil
}

// At returns the element at the given multi-axis index.
func (a *Array) At(idx ...int) (any, error) {
	off, err := a.Offset(idx...)
	if err != nil {
		return nil, err
	}

	return reflect.ValueOf(a.data).Index(off).Interface(), nil
}

// Set stores v at the given multi-axis index. v must have the array's
// element type exactly.
func (a *Array) Set(v any, idx ...int) error {
	off, err := a.Offset(idx...)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != a.dtype.Type() {
		return fmt.Errorf("%w: cannot store %T in %s array", dtype.ErrUnsupportedDtype, v, a.dtype.Tag())
	}

	reflect.ValueOf(a.data).Index(off).Set(rv)

	return nil
}

// Reshape returns an array sharing a's storage with a new shape of the same
// element count.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	n, err := count(shape)
	if err != nil {
		return nil, err
	}

	if n != a.Len() {
		return nil, fmt.Errorf("%w: cannot reshape %s into %s",
			ErrShape, common.FormatShape(a.shape), common.FormatShape(shape))
	}

	return &Array{dtype: a.dtype, shape: slices.Clone(shape), data: a.data}, nil
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	src := reflect.ValueOf(a.data)
	dst := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
	reflect.Copy(dst, src)

	return &Array{dtype: a.dtype, shape: slices.Clone(a.shape), data: dst.Interface()}
}

// Equal reports whether a and b have the same dtype, shape and elements.
// NaN elements compare equal to each other.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.dtype != b.dtype || !slices.Equal(a.shape, b.shape) {
		return false
	}

	switch x := a.data.(type) {
	case []float32:
		y := b.data.([]float32)
		return slices.EqualFunc(x, y, func(p, q float32) bool {
			return p == q || (math.IsNaN(float64(p)) && math.IsNaN(float64(q)))
		})
	case []float64:
		y := b.data.([]float64)
		return slices.EqualFunc(x, y, func(p, q float64) bool {
			return p == q || (math.IsNaN(p) && math.IsNaN(q))
		})
	default:
		return reflect.DeepEqual(a.data, b.data)
	}
}

// Nested returns the elements as nested Go slices, e.g. [][]int32 for a
// rank-2 int32 array. A rank-0 array yields its single element.
func (a *Array) Nested() any {
	src := reflect.ValueOf(a.data)
	if len(a.shape) == 0 {
		return src.Index(0).Interface()
	}

	v, _ := nest(src, a.shape, 0)

	return v.Interface()
}

// nest builds the nested slice for shape starting at flat offset off and
// returns it with the offset past its last element.
func nest(src reflect.Value, shape []int, off int) (reflect.Value, int) {
	if len(shape) == 1 {
		out := reflect.MakeSlice(src.Type(), shape[0], shape[0])
		reflect.Copy(out, src.Slice(off, off+shape[0]))

		return out, off + shape[0]
	}

	elemType := src.Type()
	for range shape[2:] {
		elemType = reflect.SliceOf(elemType)
	}

	out := reflect.MakeSlice(reflect.SliceOf(elemType), shape[0], shape[0])
	for i := range shape[0] {
		var child reflect.Value

		child, off = nest(src, shape[1:], off)
		out.Index(i).Set(child)
	}

	return out, off
}

func (a *Array) String() string {
	return fmt.Sprintf("%s%s", a.dtype.Tag(), common.FormatShape(a.shape))
}
