package index

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tags the variant held by a Descriptor.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindSingle   // a single integer position
	KindSlice    // start:stop:step with optional bounds
	KindWildcard // ":" selects the whole axis
	KindNone     // None inserts a new axis
	KindEllipsis // "..." expands to the remaining axes
	KindBool     // true/false
	KindTensor   // an index array

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid reports whether k is a defined kind.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}
