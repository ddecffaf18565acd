package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ndarray-bridge/dtype"
)

// DefaultDType is the dtype of tensors that do not name one.
const DefaultDType = "float64"

// LoadFile loads and parses a field file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse field YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Tensors {
		t := &f.Tensors[i]
		if t.DType == "" {
			t.DType = DefaultDType
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal field file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write field file %s: %w", path, err)
	}

	return nil
}

// DTypeOf resolves the dtype of t.
func (t *Tensor) DTypeOf() (dtype.DType, error) {
	return dtype.Lookup(t.DType)
}
