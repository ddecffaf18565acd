// Package index parses and serializes multi-axis index expressions such as
// "0, :, 2:5:2, ...".
//
// Each comma separated segment becomes one Descriptor. Serialize is the left
// inverse of Parse up to normalization: Parse(Serialize(d)) equals d for any
// parsed d, although the text may differ from the original input.
package index

import (
	"strconv"
	"strings"

	"ndarray-bridge/format"
	"ndarray-bridge/ndarray"
)

// Bound is an optional slice bound.
type Bound struct {
	Value int
	Set   bool
}

// At returns a bound set to v.
func At(v int) Bound { return Bound{Value: v, Set: true} }

// Unset is the omitted bound.
var Unset = Bound{}

func (b Bound) String() string {
	if !b.Set {
		return ""
	}

	return strconv.Itoa(b.Value)
}

func (b Bound) literal() string {
	if !b.Set {
		return format.None
	}

	return strconv.Itoa(b.Value)
}

// Descriptor indexes one axis. Only the fields of its Kind are meaningful.
type Descriptor struct {
	Kind   Kind
	Index  int            // KindSingle
	Start  Bound          // KindSlice
	Stop   Bound          // KindSlice
	Step   Bound          // KindSlice
	Value  bool           // KindBool
	Tensor *ndarray.Array // KindTensor
}

func Single(i int) Descriptor { return Descriptor{Kind: KindSingle, Index: i} }

func Slice(start, stop, step Bound) Descriptor {
	return Descriptor{Kind: KindSlice, Start: start, Stop: stop, Step: step}
}

func Wildcard() Descriptor { return Descriptor{Kind: KindWildcard} }

func None() Descriptor { return Descriptor{Kind: KindNone} }

func Ellipsis() Descriptor { return Descriptor{Kind: KindEllipsis} }

func Bool(v bool) Descriptor { return Descriptor{Kind: KindBool, Value: v} }

// Tensor indexes an axis with an array of positions or a boolean mask.
func Tensor(a *ndarray.Array) Descriptor { return Descriptor{Kind: KindTensor, Tensor: a} }

// Equal compares the fields relevant to d's kind.
func (d Descriptor) Equal(o Descriptor) bool {
	if d.Kind != o.Kind {
		return false
	}

	switch d.Kind {
	case KindSingle:
		return d.Index == o.Index
	case KindSlice:
		return d.Start == o.Start && d.Stop == o.Stop && d.Step == o.Step
	case KindBool:
		return d.Value == o.Value
	case KindTensor:
		return d.Tensor.Equal(o.Tensor)
	default:
		return true
	}
}

// String returns the canonical segment text of d.
func (d Descriptor) String() string {
	switch d.Kind {
	case KindSingle:
		return strconv.Itoa(d.Index)
	case KindSlice:
		if !d.Step.Set {
			if !d.Start.Set && !d.Stop.Set {
				// ":" alone reads back as a wildcard
				return "::"
			}

			return d.Start.String() + ":" + d.Stop.String()
		}

		return d.Start.String() + ":" + d.Stop.String() + ":" + d.Step.String()
	case KindWildcard:
		return ":"
	case KindNone:
		return format.None
	case KindEllipsis:
		return "..."
	case KindBool:
		return strconv.FormatBool(d.Value)
	case KindTensor:
		return d.tensorText()
	default:
		return d.Kind.String()
	}
}

// FormatLiteral renders d as the runtime's index object, e.g.
// slice(1, None, 2) or Ellipsis.
func (d Descriptor) FormatLiteral() string {
	switch d.Kind {
	case KindSlice:
		return "slice(" + d.Start.literal() + ", " + d.Stop.literal() + ", " + d.Step.literal() + ")"
	case KindWildcard:
		return "slice(None, None, None)"
	case KindEllipsis:
		return "Ellipsis"
	default:
		return d.String()
	}
}

func (d Descriptor) tensorText() string {
	s, err := format.Format(d.Tensor)
	if err != nil {
		return d.Tensor.String()
	}

	return s
}

// Serialize joins the canonical text of every descriptor with ", ".
// Tensor descriptors serialize as array literals, which Parse does not
// accept back.
func Serialize(ds []Descriptor) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}

	return strings.Join(parts, ", ")
}
