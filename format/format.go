// Package format renders Go values as literal text understood by the foreign
// numerics runtime.
//
// The output grammar is Python-like: None, quoted strings, lowercase
// true/false, numbers, [lists], {keyed: collections}, (tuples,) and records
// rendered as {"Field": value} dictionaries. Rendering is recursive and does
// not detect cycles; callers must pass acyclic values.
package format

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Tokens shared with the literal parser.
const (
	None   = "None"
	True   = "true"
	False  = "false"
	NaN    = "nan"
	Inf    = "inf"
	NegInf = "-inf"
)

var (
	// ErrNonFinite is returned in strict mode for NaN and infinite values.
	ErrNonFinite = errors.New("non-finite number")
	// ErrUnsupportedValue is returned for values with no literal form, such as
	// functions and channels.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Literal is implemented by values that render themselves.
type Literal interface {
	FormatLiteral() string
}

// Formatter renders values. The zero value is ready to use; a Formatter is
// safe for concurrent use.
type Formatter struct {
	// Strict rejects NaN and infinities with ErrNonFinite instead of
	// emitting the nan, inf and -inf missing value sentinels.
	Strict bool
}

// Format renders v with the default, non-strict Formatter.
func Format(v any) (string, error) {
	return (&Formatter{}).Format(v)
}

// Format renders v.
func (f *Formatter) Format(v any) (string, error) {
	var sb strings.Builder

	if err := f.value(&sb, reflect.ValueOf(v)); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// handler renders one value of the type it was built for.
type handler func(f *Formatter, sb *strings.Builder, v reflect.Value) error

// handlers caches one handler per reflect.Type.
var handlers sync.Map

func handlerFor(t reflect.Type) handler {
	if h, ok := handlers.Load(t); ok {
		return h.(handler)
	}

	h, _ := handlers.LoadOrStore(t, newHandler(t))

	return h.(handler)
}

func newHandler(t reflect.Type) handler {
	switch Classify(t) {
	case CategoryLiteral:
		return formatLiteral
	case CategoryString:
		return formatString
	case CategoryBool:
		return formatBool
	case CategoryInteger:
		return formatInt
	case CategoryUnsigned:
		return formatUint
	case CategoryFloat:
		return formatFloat
	case CategoryComplex:
		return formatComplex
	case CategoryArray:
		return formatArray
	case CategorySequence:
		return formatSequence
	case CategoryMap:
		return formatMap
	case CategoryTuple:
		return formatTuple
	case CategoryRecord:
		return newRecordHandler(t)
	case CategoryIndirect:
		return formatIndirect
	default:
		return func(_ *Formatter, _ *strings.Builder, v reflect.Value) error {
			return fmt.Errorf("%w: %s", ErrUnsupportedValue, v.Type())
		}
	}
}

func (f *Formatter) value(sb *strings.Builder, v reflect.Value) error {
	if !v.IsValid() || isNil(v) {
		sb.WriteString(None)
		return nil
	}

	return handlerFor(v.Type())(f, sb, v)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

func formatLiteral(_ *Formatter, sb *strings.Builder, v reflect.Value) error {
	sb.WriteString(v.Interface().(Literal).FormatLiteral())
	return nil
}

func formatIndirect(f *Formatter, sb *strings.Builder, v reflect.Value) error {
	return f.value(sb, v.Elem())
}
