package ndarray_test

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndarray-bridge/dtype"
	"ndarray-bridge/ndarray"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a, err := ndarray.New(dtype.Int16, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, dtype.Int16, a.DType())
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, 12, a.ByteLen())
	assert.Equal(t, make([]int16, 6), a.Data())
	assert.Equal(t, "int16(2, 3)", a.String())

	_, err = ndarray.New(dtype.DType(0), 1)
	assert.ErrorIs(t, err, dtype.ErrUnsupportedDtype)

	_, err = ndarray.New(dtype.Float32, 2, -1)
	assert.ErrorIs(t, err, ndarray.ErrShape)

	_, err = ndarray.New(dtype.Float64, 1<<62, 4)
	assert.ErrorIs(t, err, ndarray.ErrShape)

	_, err = ndarray.New(dtype.Float64, 1<<61)
	assert.ErrorIs(t, err, ndarray.ErrShape)
}

func TestNewRankZeroAndEmpty(t *testing.T) {
	t.Parallel()

	scalar, err := ndarray.New(dtype.Float64)
	require.NoError(t, err)
	assert.Equal(t, 0, scalar.Rank())
	assert.Equal(t, 1, scalar.Len())

	empty, err := ndarray.New(dtype.Float64, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.ByteLen())
	assert.NotNil(t, empty.Data())
}

func TestFromSliceCopies(t *testing.T) {
	t.Parallel()

	src := []int32{1, 2, 3, 4}

	a, err := ndarray.FromSlice(src, 2, 2)
	require.NoError(t, err)

	src[0] = 99

	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
}

func TestWrapAliases(t *testing.T) {
	t.Parallel()

	src := []uint8{1, 2, 3}

	a, err := ndarray.Wrap(src)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, a.Shape())

	src[0] = 7

	v, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), v)

	_, err = ndarray.Wrap(src, 2, 2)
	assert.ErrorIs(t, err, ndarray.ErrShape)

	// 2^32 * 2^32 wraps to zero elements
	_, err = ndarray.Wrap([]uint8{}, 1<<32, 1<<32)
	assert.ErrorIs(t, err, ndarray.ErrShape)

	empty, err := ndarray.Wrap[float64](nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, empty.Shape())
}

func TestAtSetOffset(t *testing.T) {
	t.Parallel()

	a, err := ndarray.New(dtype.Float32, 2, 3, 4)
	require.NoError(t, err)

	off, err := a.Offset(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 23, off)

	require.NoError(t, a.Set(float32(2.5), 1, 0, 2))

	v, err := a.At(1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), v)

	_, err = a.At(2, 0, 0)
	assert.ErrorIs(t, err, ndarray.ErrIndex)

	_, err = a.At(0, 0)
	assert.ErrorIs(t, err, ndarray.ErrIndex)

	assert.ErrorIs(t, a.Set(2.5, 0, 0, 0), dtype.ErrUnsupportedDtype)
	assert.ErrorIs(t, a.Set(nil, 0, 0, 0), dtype.ErrUnsupportedDtype)
}

func TestValues(t *testing.T) {
	t.Parallel()

	a, err := ndarray.FromSlice([]bool{true, false})
	require.NoError(t, err)

	v, err := ndarray.Values[bool](a)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, v)

	_, err = ndarray.Values[int8](a)
	assert.ErrorIs(t, err, dtype.ErrUnsupportedDtype)
}

func TestReshapeAndClone(t *testing.T) {
	t.Parallel()

	a, err := ndarray.FromSlice([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	r, err := a.Reshape(3, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, r.Shape())

	_, err = a.Reshape(4, 2)
	assert.ErrorIs(t, err, ndarray.ErrShape)

	c := a.Clone()
	require.NoError(t, c.Set(int64(42), 0, 0))

	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v, "clone must not share storage")
}

func TestEqual(t *testing.T) {
	t.Parallel()

	nan := math.NaN()

	a, _ := ndarray.FromSlice([]float64{1, nan, 3})
	b, _ := ndarray.FromSlice([]float64{1, nan, 3})
	c, _ := ndarray.FromSlice([]float64{1, 2, 3})
	d, _ := ndarray.FromSlice([]float32{1, 2, 3})
	e, _ := ndarray.FromSlice([]float64{1, 2, 3}, 3, 1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(d))
	assert.False(t, c.Equal(e))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*ndarray.Array)(nil).Equal(nil))
}

func TestNested(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		array func() (*ndarray.Array, error)
		want  any
	}{
		{
			name:  "rank 0",
			array: func() (*ndarray.Array, error) { return ndarray.Scalar(int8(5)), nil },
			want:  int8(5),
		},
		{
			name:  "rank 1",
			array: func() (*ndarray.Array, error) { return ndarray.FromSlice([]uint16{1, 2}) },
			want:  []uint16{1, 2},
		},
		{
			name:  "rank 2",
			array: func() (*ndarray.Array, error) { return ndarray.FromSlice([]int32{1, 2, 3, 4, 5, 6}, 2, 3) },
			want:  [][]int32{{1, 2, 3}, {4, 5, 6}},
		},
		{
			name:  "rank 3",
			array: func() (*ndarray.Array, error) { return ndarray.FromSlice([]bool{true, false, false, true}, 2, 1, 2) },
			want:  [][][]bool{{{true, false}}, {{false, true}}},
		},
		{
			name:  "zero inner axis",
			array: func() (*ndarray.Array, error) { return ndarray.New(dtype.Float64, 2, 0) },
			want:  [][]float64{{}, {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.array()
			require.NoError(t, err)

			got := a.Nested()
			assert.Equal(t, tt.want, got, spew.Sdump(got))
		})
	}
}
