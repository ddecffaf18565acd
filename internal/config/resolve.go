package config

import (
	"fmt"
	"slices"

	"ndarray-bridge/format"
	"ndarray-bridge/index"
	"ndarray-bridge/literal"
	"ndarray-bridge/ndarray"
)

// Resolved holds the parsed fields of a valid File.
type Resolved struct {
	Tensors map[string]*ndarray.Array
	Indexes map[string][]index.Descriptor
}

// Resolve validates f and parses every field. It fails with the combined
// diagnostics when any field is invalid; no partial result is returned.
func Resolve(f *File) (*Resolved, error) {
	if diags := Validate(f); diags.HasErrors() {
		return nil, fmt.Errorf("invalid field file: %w", diags.Error())
	}

	res := &Resolved{
		Tensors: make(map[string]*ndarray.Array, len(f.Tensors)),
		Indexes: make(map[string][]index.Descriptor, len(f.Indexes)),
	}

	for i := range f.Tensors {
		t := &f.Tensors[i]

		d, err := t.DTypeOf()
		if err != nil {
			return nil, fmt.Errorf("tensor %q: %w", t.Name, err)
		}

		a, err := literal.ParseArray(t.Value.String(), d)
		if err != nil {
			return nil, fmt.Errorf("tensor %q: %w", t.Name, err)
		}

		res.Tensors[t.Name] = a
	}

	for i := range f.Indexes {
		ix := &f.Indexes[i]

		ds, err := index.Parse(ix.Value.String())
		if err != nil {
			return nil, fmt.Errorf("index %q: %w", ix.Name, err)
		}

		res.Indexes[ix.Name] = ds
	}

	return res, nil
}

// Normalize returns a copy of f with every literal and index expression in
// canonical form and every tensor shape filled in. f itself is not modified.
func Normalize(f *File) (*File, error) {
	res, err := Resolve(f)
	if err != nil {
		return nil, err
	}

	out := &File{
		Version: f.Version,
		Tensors: slices.Clone(f.Tensors),
		Indexes: slices.Clone(f.Indexes),
	}

	for i := range out.Tensors {
		t := &out.Tensors[i]
		a := res.Tensors[t.Name]

		text, err := format.Format(a)
		if err != nil {
			return nil, fmt.Errorf("tensor %q: %w", t.Name, err)
		}

		t.Value = Text(text)
		t.Shape = a.Shape()
	}

	for i := range out.Indexes {
		ix := &out.Indexes[i]
		ix.Value = Text(index.Serialize(res.Indexes[ix.Name]))
	}

	return out, nil
}
