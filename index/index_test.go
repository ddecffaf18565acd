package index_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndarray-bridge/format"
	"ndarray-bridge/index"
	"ndarray-bridge/ndarray"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []index.Descriptor
	}{
		{name: "single", text: "3", want: []index.Descriptor{index.Single(3)}},
		{name: "negative", text: "-1", want: []index.Descriptor{index.Single(-1)}},
		{name: "wildcard", text: ":", want: []index.Descriptor{index.Wildcard()}},
		{name: "ellipsis", text: "...", want: []index.Descriptor{index.Ellipsis()}},
		{name: "none", text: "None", want: []index.Descriptor{index.None()}},
		{name: "bools", text: "True, false", want: []index.Descriptor{index.Bool(true), index.Bool(false)}},
		{name: "range", text: "2:5", want: []index.Descriptor{index.Slice(index.At(2), index.At(5), index.Unset)}},
		{name: "stepped", text: "2:5:2", want: []index.Descriptor{index.Slice(index.At(2), index.At(5), index.At(2))}},
		{name: "open start", text: ":5", want: []index.Descriptor{index.Slice(index.Unset, index.At(5), index.Unset)}},
		{name: "open stop", text: "1:", want: []index.Descriptor{index.Slice(index.At(1), index.Unset, index.Unset)}},
		{name: "step only", text: "::-1", want: []index.Descriptor{index.Slice(index.Unset, index.Unset, index.At(-1))}},
		{name: "no bounds", text: "::", want: []index.Descriptor{index.Slice(index.Unset, index.Unset, index.Unset)}},
		{name: "spaced bounds", text: " 1 : 4 ", want: []index.Descriptor{index.Slice(index.At(1), index.At(4), index.Unset)}},
		{
			name: "mixed",
			text: "1,:,2:5:2, ..., None",
			want: []index.Descriptor{
				index.Single(1),
				index.Wildcard(),
				index.Slice(index.At(2), index.At(5), index.At(2)),
				index.Ellipsis(),
				index.None(),
			},
		},
		{name: "empty", text: "", want: []index.Descriptor{index.Single(0)}},
		{name: "blank", text: "  \t", want: []index.Descriptor{index.Single(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := index.Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, spew.Sdump(got))
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		want     error
		segment  string
		position int
	}{
		{text: "abc", want: index.ErrInvalidIndexToken, segment: "abc"},
		{text: "1, none", want: index.ErrInvalidIndexToken, segment: "none", position: 1},
		{text: "1,,2", want: index.ErrInvalidIndexToken, segment: "", position: 1},
		{text: "0, 1.5", want: index.ErrInvalidIndexToken, segment: "1.5", position: 1},
		{text: "1:2:3:4", want: index.ErrInvalidSliceFormat, segment: "1:2:3:4"},
		{text: ":, a:2", want: index.ErrInvalidSliceFormat, segment: "a:2", position: 1},
		{text: "0:10:0", want: index.ErrInvalidSliceFormat, segment: "0:10:0"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			got, err := index.Parse(tt.text)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)

			var se *index.SegmentError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.segment, se.Segment)
			assert.Equal(t, tt.position, se.Position)
		})
	}
}

func TestSerialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{text: "1,:,2:5:2", want: "1, :, 2:5:2"},
		{text: ":5, 1:, ::2", want: ":5, 1:, ::2"},
		{text: "::", want: "::"},
		{text: "TRUE,None,...", want: "true, None, ..."},
		{text: " -2 ", want: "-2"},
		{text: "", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			first, err := index.Parse(tt.text)
			require.NoError(t, err)

			text := index.Serialize(first)
			assert.Equal(t, tt.want, text)

			second, err := index.Parse(text)
			require.NoError(t, err)
			require.Len(t, second, len(first))

			for i := range first {
				assert.True(t, first[i].Equal(second[i]), "%v != %v", first[i], second[i])
			}

			assert.Equal(t, text, index.Serialize(second))
		})
	}
}

func TestTensorDescriptor(t *testing.T) {
	t.Parallel()

	mask, err := ndarray.FromSlice([]bool{true, false, true})
	require.NoError(t, err)

	other, err := ndarray.FromSlice([]bool{true, false, true})
	require.NoError(t, err)

	d := index.Tensor(mask)
	assert.Equal(t, index.KindTensor, d.Kind)
	assert.True(t, d.Equal(index.Tensor(other)))
	assert.False(t, d.Equal(index.Wildcard()))
	assert.Equal(t, "0, [true, false, true]", index.Serialize([]index.Descriptor{index.Single(0), d}))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, index.Single(1).Equal(index.Single(1)))
	assert.False(t, index.Single(1).Equal(index.Single(2)))
	assert.False(t, index.Slice(index.At(1), index.Unset, index.Unset).Equal(index.Slice(index.Unset, index.At(1), index.Unset)))
	assert.False(t, index.Bool(true).Equal(index.Bool(false)))
	assert.False(t, index.Wildcard().Equal(index.Slice(index.Unset, index.Unset, index.Unset)))
	assert.True(t, index.None().Equal(index.None()))
}

func TestFormatLiteral(t *testing.T) {
	t.Parallel()

	got, err := format.Format(index.MustParse("0, :, 1::2, ..., None, false"))
	require.NoError(t, err)
	assert.Equal(t, "[0, slice(None, None, None), slice(1, None, 2), Ellipsis, None, false]", got)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "KindSlice", index.KindSlice.String())
	assert.Equal(t, "Kind(0)", index.Kind(0).String())
	assert.False(t, index.Kind(0).IsValid())
	assert.True(t, index.KindTensor.IsValid())
	assert.False(t, index.Kind(index.KindTotal).IsValid())
}

func ExampleParse() {
	ds, err := index.Parse("1,:,2:5:2")
	fmt.Println(len(ds), err)
	fmt.Println(index.Serialize(ds))

	_, err = index.Parse("0, 1:2:3:4")
	fmt.Println(err)

	// Output:
	// 3 <nil>
	// 1, :, 2:5:2
	// invalid slice format in segment 1: "1:2:3:4": 4 parts, at most 3 allowed
}
