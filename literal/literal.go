// Package literal parses bracketed array literals such as "[[1, 2], [3, 4]]"
// into native arrays.
//
// Parsing runs in separate passes: a bracket balance check, recursive descent
// into an immutable token tree, shape inference with a sibling length check,
// an element family check (numeric or boolean, never both), and finally
// conversion of every leaf to the requested element type. Any failure aborts
// the whole parse; partial arrays are never returned.
package literal

import (
	"errors"
	"fmt"
	"reflect"

	"ndarray-bridge/dtype"
	"ndarray-bridge/ndarray"
)

var (
	// ErrMalformedLiteral is returned for unbalanced brackets and other
	// syntax errors.
	ErrMalformedLiteral = errors.New("malformed literal")
	// ErrInconsistentShape is returned when sibling lists differ in length or
	// a list mixes sub-lists and scalars.
	ErrInconsistentShape = errors.New("inconsistent shape")
	// ErrInconsistentElementType is returned when numeric and boolean values
	// are mixed.
	ErrInconsistentElementType = errors.New("inconsistent element type")
	// ErrElementConversion is returned when a value cannot be represented in
	// the requested element type.
	ErrElementConversion = errors.New("element conversion failed")
)

// SyntaxError describes a parse failure. It unwraps to one of the package
// sentinel errors.
type SyntaxError struct {
	Err    error  // sentinel error
	Token  string // offending token, empty at end of input
	Offset int    // byte offset of Token in the input
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Msg)
	}

	return fmt.Sprintf("%v at offset %d: %s: %q", e.Err, e.Offset, e.Msg, e.Token)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse parses text into values of the native element type elem. A bracketed
// literal yields an *ndarray.Array; a bare scalar yields a value of type elem.
func Parse(text string, elem reflect.Type) (any, error) {
	d, err := dtype.FromType(elem)
	if err != nil {
		return nil, err
	}

	return parse(text, d)
}

// ParseTag is like Parse with the element type given as a dtype tag such as
// "float32".
func ParseTag(text, tag string) (any, error) {
	d, err := dtype.Lookup(tag)
	if err != nil {
		return nil, err
	}

	return parse(text, d)
}

// ParseArray parses text into an array of dtype d. A bare scalar becomes a
// rank-0 array.
func ParseArray(text string, d dtype.DType) (*ndarray.Array, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %v", dtype.ErrUnsupportedDtype, d)
	}

	root, err := parseTree(text)
	if err != nil {
		return nil, err
	}

	return build(root, d)
}

func parse(text string, d dtype.DType) (any, error) {
	a, err := ParseArray(text, d)
	if err != nil {
		return nil, err
	}

	if a.Rank() == 0 {
		return a.Nested(), nil
	}

	return a, nil
}

// build validates the tree and converts it into an array.
func build(root *node, d dtype.DType) (*ndarray.Array, error) {
	shape, leaves, err := inferShape(root)
	if err != nil {
		return nil, err
	}

	if err := checkFamily(leaves); err != nil {
		return nil, err
	}

	a, err := ndarray.New(d, shape...)
	if err != nil {
		return nil, err
	}

	if err := populate(a.Data(), leaves); err != nil {
		return nil, err
	}

	return a, nil
}
