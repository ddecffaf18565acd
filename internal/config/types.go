package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the root of a field file.
type File struct {
	Version string   `yaml:"version"`
	Tensors []Tensor `yaml:"tensors,omitempty"`
	Indexes []Index  `yaml:"indexes,omitempty"`
}

// Tensor is a named array literal.
type Tensor struct {
	Name string `yaml:"name"`
	// DType is the element dtype tag, float64 when omitted.
	DType string `yaml:"dtype,omitempty"`
	// Value is the literal text, e.g. "[[1, 2], [3, 4]]".
	Value Text `yaml:"value"`
	// Shape is the expected shape (optional).
	Shape []int `yaml:"shape,omitempty,flow"`
}

// Index is a named index expression.
type Index struct {
	Name  string `yaml:"name"`
	Value Text   `yaml:"value"`
}

// Text is literal text. In YAML it is written either as a string or, for
// array literals, as a flow sequence: value: [[1, 2], [3, 4]].
type Text string

// UnmarshalYAML implements custom YAML unmarshaling for Text.
// Accepts:
//   - Scalar: "[[1, 2], [3, 4]]", 0:5, true
//   - Sequence: [[1, 2], [3, 4]]
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = Text(node.Value)
		return nil

	case yaml.SequenceNode:
		var sb strings.Builder
		if err := writeSequence(&sb, node); err != nil {
			return err
		}

		*t = Text(sb.String())

		return nil

	default:
		return fmt.Errorf("line %d: expected literal text or sequence", node.Line)
	}
}

func writeSequence(sb *strings.Builder, node *yaml.Node) error {
	sb.WriteByte('[')

	for i, item := range node.Content {
		if i > 0 {
			sb.WriteString(", ")
		}

		switch item.Kind {
		case yaml.SequenceNode:
			if err := writeSequence(sb, item); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if item.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
				sb.WriteString(strconv.Quote(item.Value))
			} else {
				sb.WriteString(item.Value)
			}
		default:
			return fmt.Errorf("line %d: unexpected mapping inside literal", item.Line)
		}
	}

	sb.WriteByte(']')

	return nil
}

// String returns the literal text.
func (t Text) String() string { return string(t) }
