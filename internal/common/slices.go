package common

import (
	"math"
	"strconv"
	"strings"
)

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// Product returns the product of the dimensions, 1 for an empty shape.
// ok is false when a dimension is negative or the product overflows int.
// A zero dimension makes the product zero even if the others overflow.
func Product[S ~[]E, E ~int | ~int64](s S) (n int, ok bool) {
	n = 1
	zero, overflow := false, false

	for _, e := range s {
		d := int(e)
		if d < 0 || E(d) != e {
			return 0, false
		}

		switch {
		case d == 0:
			zero = true
		case n > math.MaxInt/d:
			overflow = true
		default:
			n *= d
		}
	}

	switch {
	case zero:
		return 0, true
	case overflow:
		return 0, false
	}

	return n, true
}

// ByteLen returns the storage size of a shape with elements of size bytes,
// failing like Product.
func ByteLen[S ~[]E, E ~int | ~int64](s S, size int) (int, bool) {
	n, ok := Product(s)
	if !ok {
		return 0, false
	}

	if n > 0 && size > math.MaxInt/n {
		return 0, false
	}

	return n * size, true
}

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// FormatShape renders a shape as a tuple, e.g. "(2, 3)", "(4,)" or "()".
func FormatShape[S ~[]E, E ~int | ~int64](s S) string {
	var sb strings.Builder

	sb.WriteByte('(')

	for i, d := range s {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(strconv.FormatInt(int64(d), 10))
	}

	if len(s) == 1 {
		sb.WriteByte(',')
	}

	sb.WriteByte(')')

	return sb.String()
}
