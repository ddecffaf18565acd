package literal

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// missing is the missing value token; it reads as NaN for float elements.
const missing = "None"

func populate(data any, leaves []*node) error {
	switch s := data.(type) {
	case []bool:
		return fill(s, leaves, parseBool)
	case []int8:
		return fill(s, leaves, parseSigned[int8](8))
	case []int16:
		return fill(s, leaves, parseSigned[int16](16))
	case []int32:
		return fill(s, leaves, parseSigned[int32](32))
	case []int64:
		return fill(s, leaves, parseSigned[int64](64))
	case []uint8:
		return fill(s, leaves, parseUnsigned[uint8](8))
	case []uint16:
		return fill(s, leaves, parseUnsigned[uint16](16))
	case []uint32:
		return fill(s, leaves, parseUnsigned[uint32](32))
	case []uint64:
		return fill(s, leaves, parseUnsigned[uint64](64))
	case []float32:
		return fill(s, leaves, parseFloat[float32](32))
	case []float64:
		return fill(s, leaves, parseFloat[float64](64))
	default:
		return errors.New("unsupported array storage")
	}
}

func fill[T any](dst []T, leaves []*node, conv func(string) (T, error)) error {
	for i, leaf := range leaves {
		v, err := conv(leaf.text)
		if err != nil {
			return &SyntaxError{Err: ErrElementConversion, Offset: leaf.pos, Msg: err.Error(), Token: leaf.text}
		}

		dst[i] = v
	}

	return nil
}

func parseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	default:
		return false, errors.New("not a boolean")
	}
}

func parseSigned[T ~int8 | ~int16 | ~int32 | ~int64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, numError(s, bits, "int", err)
		}

		return T(v), nil
	}
}

func parseUnsigned[T ~uint8 | ~uint16 | ~uint32 | ~uint64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return 0, numError(s, bits, "uint", err)
		}

		return T(v), nil
	}
}

func parseFloat[T ~float32 | ~float64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		if s == missing {
			return T(math.NaN()), nil
		}

		// decimal only, as for integers
		if strings.ContainsAny(s, "_xX") {
			return 0, numError(s, bits, "float", strconv.ErrSyntax)
		}

		v, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return 0, numError(s, bits, "float", err)
		}

		return T(v), nil
	}
}

func numError(s string, bits int, kind string, err error) error {
	target := kind + strconv.Itoa(bits)

	switch {
	case errors.Is(err, strconv.ErrRange):
		return errors.New("value out of range for " + target)
	case s == missing || isBool(s):
		return errors.New(target + " has no representation for " + s)
	default:
		return errors.New("invalid " + target + " syntax")
	}
}
