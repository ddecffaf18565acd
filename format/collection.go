package format

import (
	"cmp"
	"reflect"
	"slices"
	"strings"

	"ndarray-bridge/ndarray"
)

const separator = ", "

func formatSequence(f *Formatter, sb *strings.Builder, v reflect.Value) error {
	sb.WriteByte('[')

	for i := range v.Len() {
		if i > 0 {
			sb.WriteString(separator)
		}

		if err := f.value(sb, v.Index(i)); err != nil {
			return err
		}
	}

	sb.WriteByte(']')

	return nil
}

type pair struct {
	key   reflect.Value
	text  string
	value reflect.Value
}

// comparePairs orders numbers and strings by value. Keys of an interface
// typed map are grouped by kind first; other kinds order by rendered text.
func comparePairs(a, b pair) int {
	ka, kb := unwrapKey(a.key), unwrapKey(b.key)

	ca, cb := keyClass(ka), keyClass(kb)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}

	var c int

	switch ca {
	case classInt:
		c = cmp.Compare(ka.Int(), kb.Int())
	case classUint:
		c = cmp.Compare(ka.Uint(), kb.Uint())
	case classFloat:
		c = cmp.Compare(ka.Float(), kb.Float())
	case classString:
		c = cmp.Compare(ka.String(), kb.String())
	}

	if c != 0 {
		return c
	}

	return cmp.Compare(a.text, b.text)
}

const (
	classInt = iota
	classUint
	classFloat
	classString
	classOther
)

func keyClass(v reflect.Value) int {
	switch {
	case v.CanInt():
		return classInt
	case v.CanUint():
		return classUint
	case v.CanFloat():
		return classFloat
	case v.Kind() == reflect.String:
		return classString
	default:
		return classOther
	}
}

func unwrapKey(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}

	return v
}

// formatMap renders {key: value} pairs in key order so that the output does
// not depend on map iteration order.
func formatMap(f *Formatter, sb *strings.Builder, v reflect.Value) error {

	pairs := make([]pair, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		var key strings.Builder
		if err := f.value(&key, iter.Key()); err != nil {
			return err
		}

		pairs = append(pairs, pair{key: iter.Key(), text: key.String(), value: iter.Value()})
	}

	slices.SortFunc(pairs, comparePairs)

	sb.WriteByte('{')

	for i, p := range pairs {
		if i > 0 {
			sb.WriteString(separator)
		}

		sb.WriteString(p.text)
		sb.WriteString(": ")

		if err := f.value(sb, p.value); err != nil {
			return err
		}
	}

	sb.WriteByte('}')

	return nil
}

// Tuple is a fixed-arity group of values rendered as (a, b).
type Tuple []any

// TupleLike is implemented by values rendered as tuples.
type TupleLike interface {
	TupleItems() []any
}

// TupleItems returns the elements of t.
func (t Tuple) TupleItems() []any { return t }

// formatTuple renders (a, b). A single element keeps its trailing comma so
// the runtime does not read it as a parenthesized expression.
func formatTuple(f *Formatter, sb *strings.Builder, v reflect.Value) error {
	items := v.Interface().(TupleLike).TupleItems()

	sb.WriteByte('(')

	for i, item := range items {
		if i > 0 {
			sb.WriteString(separator)
		}

		if err := f.value(sb, reflect.ValueOf(item)); err != nil {
			return err
		}
	}

	if len(items) == 1 {
		sb.WriteByte(',')
	}

	sb.WriteByte(')')

	return nil
}

// formatArray renders a native array as nested lists following its shape.
// A rank-0 array renders as its single element.
func formatArray(f *Formatter, sb *strings.Builder, v reflect.Value) error {
	var a *ndarray.Array

	if v.Kind() == reflect.Pointer {
		a = v.Interface().(*ndarray.Array)
	} else {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		a = p.Interface().(*ndarray.Array)
	}

	// zero Array value
	if a.Data() == nil {
		sb.WriteString(None)
		return nil
	}

	_, err := f.nested(sb, reflect.ValueOf(a.Data()), a.Shape(), 0)

	return err
}

func (f *Formatter) nested(sb *strings.Builder, data reflect.Value, shape []int, off int) (int, error) {
	if len(shape) == 0 {
		return off + 1, f.value(sb, data.Index(off))
	}

	sb.WriteByte('[')

	for i := range shape[0] {
		if i > 0 {
			sb.WriteString(separator)
		}

		var err error
		if off, err = f.nested(sb, data, shape[1:], off); err != nil {
			return off, err
		}
	}

	sb.WriteByte(']')

	return off, nil
}
