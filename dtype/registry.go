package dtype

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"ndarray-bridge/internal/match"
)

// ErrUnsupportedDtype is returned when a type or tag is outside the fixed
// supported set.
var ErrUnsupportedDtype = errors.New("unsupported dtype")

// suggestionScore is the minimal similarity for a "did you mean" hint.
const suggestionScore = 0.6

type entry struct {
	tag   string
	rtype reflect.Type
	size  int
	kind  byte // array-interface kind character: b, i, u or f
}

type table struct {
	entries [Total]entry
	byTag   map[string]DType
	byType  map[reflect.Type]DType
	tags    []string
}

var (
	registryOnce sync.Once
	registryData *table
)

// registry returns the lazily built table. The first caller populates it;
// every later caller observes the complete, immutable table.
func registry() *table {
	registryOnce.Do(func() {
		t := &table{
			byTag:  make(map[string]DType, Total),
			byType: make(map[reflect.Type]DType, Total),
		}

		register(t, Bool, "bool", reflect.TypeFor[bool](), 'b')
		register(t, Int8, "int8", reflect.TypeFor[int8](), 'i')
		register(t, Int16, "int16", reflect.TypeFor[int16](), 'i')
		register(t, Int32, "int32", reflect.TypeFor[int32](), 'i')
		register(t, Int64, "int64", reflect.TypeFor[int64](), 'i')
		register(t, Uint8, "uint8", reflect.TypeFor[uint8](), 'u')
		register(t, Uint16, "uint16", reflect.TypeFor[uint16](), 'u')
		register(t, Uint32, "uint32", reflect.TypeFor[uint32](), 'u')
		register(t, Uint64, "uint64", reflect.TypeFor[uint64](), 'u')
		register(t, Float32, "float32", reflect.TypeFor[float32](), 'f')
		register(t, Float64, "float64", reflect.TypeFor[float64](), 'f')

		registryData = t
	})

	return registryData
}

func register(t *table, d DType, tag string, rtype reflect.Type, kind byte) {
	t.entries[d] = entry{tag: tag, rtype: rtype, size: int(rtype.Size()), kind: kind}
	t.byTag[tag] = d
	t.byType[rtype] = d
	t.tags = append(t.tags, tag)
}

// TypeFor returns the native element type registered for a foreign dtype tag.
func TypeFor(tag string) (reflect.Type, error) {
	d, err := Lookup(tag)
	if err != nil {
		return nil, err
	}

	return d.Type(), nil
}

// TagFor returns the foreign dtype tag registered for a native element type.
func TagFor(t reflect.Type) (string, error) {
	d, err := FromType(t)
	if err != nil {
		return "", err
	}

	return d.Tag(), nil
}

// Lookup resolves a foreign dtype tag such as "float32". Tags are matched
// exactly after trimming surrounding whitespace.
func Lookup(tag string) (DType, error) {
	key := strings.TrimSpace(tag)
	if d, ok := registry().byTag[key]; ok {
		return d, nil
	}

	return 0, unsupportedTag(tag)
}

// FromType resolves a native element type. Named types are not accepted even
// when their underlying type is supported, so that TagFor and TypeFor stay
// inverse to each other.
func FromType(t reflect.Type) (DType, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil type", ErrUnsupportedDtype)
	}

	if d, ok := registry().byType[t]; ok {
		return d, nil
	}

	return 0, fmt.Errorf("%w: native type %s", ErrUnsupportedDtype, t)
}

// Tags returns the supported tags in dtype order.
func Tags() []string {
	return append([]string(nil), registry().tags...)
}

// Suggest returns the supported tag closest to an unknown one, if any is
// close enough to be a plausible typo.
func Suggest(tag string) (string, bool) {
	return match.Closest(tag, registry().tags, suggestionScore)
}

func unsupportedTag(tag string) error {
	if s, ok := Suggest(tag); ok {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnsupportedDtype, tag, s)
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedDtype, tag)
}
