package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"float32", "float32"},
		{"Float32", "float32"},
		{"FLOAT_32", "float32"},
		{"float-32", "float32"},
		{" uint 8 ", "uint8"},
		{"np.float64", "npfloat64"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"bool", "int8", "int16", "int32", "int64", "float32", "float64"}

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"typo", "flaot32", "float32", true},
		{"case and separator", "Float_64", "float64", true},
		{"missing digit", "int6", "int16", true},
		{"blank", "   ", "", false},
		{"nothing close", "complex128", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.input, candidates, 0.6)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
