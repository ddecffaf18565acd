package format

import (
	"reflect"

	"ndarray-bridge/ndarray"
)

// Category is the shape class a Go type is rendered as.
type Category int

const (
	CategoryUnsupported Category = iota
	CategoryLiteral
	CategoryString
	CategoryBool
	CategoryInteger
	CategoryUnsigned
	CategoryFloat
	CategoryComplex
	CategoryArray
	CategorySequence
	CategoryMap
	CategoryTuple
	CategoryRecord
	CategoryIndirect

	// CategoryTotal is a constant that represents the total number of categories defined
	CategoryTotal = int(iota)
)

var (
	literalType    = reflect.TypeFor[Literal]()
	tupleType      = reflect.TypeFor[TupleLike]()
	arrayType      = reflect.TypeFor[*ndarray.Array]()
	arrayValueType = reflect.TypeFor[ndarray.Array]()
)

// Classify returns the category values of type t are formatted as. Types
// implementing Literal win over everything else, native arrays over
// sequences and records, and TupleLike over the kind based rules.
func Classify(t reflect.Type) Category {
	if t == nil {
		return CategoryUnsupported
	}

	switch {
	case t.Implements(literalType):
		return CategoryLiteral
	case t == arrayType || t == arrayValueType:
		return CategoryArray
	case t.Implements(tupleType):
		return CategoryTuple
	}

	switch t.Kind() {
	case reflect.String:
		return CategoryString
	case reflect.Bool:
		return CategoryBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return CategoryInteger
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return CategoryUnsigned
	case reflect.Float32, reflect.Float64:
		return CategoryFloat
	case reflect.Complex64, reflect.Complex128:
		return CategoryComplex
	case reflect.Slice, reflect.Array:
		return CategorySequence
	case reflect.Map:
		return CategoryMap
	case reflect.Struct:
		return CategoryRecord
	case reflect.Pointer, reflect.Interface:
		return CategoryIndirect
	default:
		return CategoryUnsupported
	}
}
