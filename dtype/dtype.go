// Package dtype maps native Go element types to the dtype tags used by the
// foreign numerics runtime.
//
// The mapping is a fixed, bidirectional table: TypeFor and TagFor are strict
// inverses of each other on the supported set. The table is built lazily on
// first access and is read-only afterwards, so lookups are safe for
// concurrent use.
package dtype

import (
	"reflect"
)

//go:generate go tool stringer -type=DType -output=dtype_string.go

// DType identifies an element type supported by the array bridge and the
// literal parser.
type DType int

const (
	_ DType = iota // skip zero value, use it as a default (invalid) value for DType

	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8 // also the generic byte type, Go's byte is an alias of uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64

	// Total is a constant that represents the total number of dtypes defined
	Total = int(iota)
)

// Element is the set of Go types that can back a native array.
type Element interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// IsValid reports whether d is one of the supported dtypes.
func (d DType) IsValid() bool {
	return d > 0 && int(d) < Total
}

func (d DType) IsBool() bool {
	return d == Bool
}

func (d DType) IsNumber() bool {
	return d.IsInteger() || d.IsFloat()
}

func (d DType) IsInteger() bool {
	switch d {
	default:
		return false
	case Int8, Int16, Int32, Int64,
		Uint8, Uint16, Uint32, Uint64:
		return true
	}
}

func (d DType) IsFloat() bool {
	switch d {
	default:
		return false
	case Float32, Float64:
		return true
	}
}

func (d DType) IsSigned() bool {
	switch d {
	default:
		return false
	case Int8, Int16, Int32, Int64:
		return true
	}
}

func (d DType) IsUnsigned() bool {
	switch d {
	default:
		return false
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
}

// Bits returns the width of a numeric dtype in bits.
func (d DType) Bits() int {
	switch d {
	default:
		panic("only numeric dtypes have a meaningful bit width, but requested for: " + d.String())
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	}
}

// Size returns the number of bytes one element occupies in memory. It is
// zero for invalid dtypes.
func (d DType) Size() int {
	if !d.IsValid() {
		return 0
	}

	return registry().entries[d].size
}

// Tag returns the foreign dtype tag, e.g. "float64". It is empty for invalid
// dtypes.
func (d DType) Tag() string {
	if !d.IsValid() {
		return ""
	}

	return registry().entries[d].tag
}

// Type returns the native Go element type, or nil for invalid dtypes.
func (d DType) Type() reflect.Type {
	if !d.IsValid() {
		return nil
	}

	return registry().entries[d].rtype
}

// Of returns the dtype of the Go type parameter T.
func Of[T Element]() DType {
	d, err := FromType(reflect.TypeFor[T]())
	if err != nil {
		// every Element type is registered
		panic(err)
	}

	return d
}
