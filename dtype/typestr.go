package dtype

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/cpu"
)

// Byte order characters of an array-interface typestr.
const (
	orderLittle     = '<'
	orderBig        = '>'
	orderNative     = '='
	orderIrrelevant = '|'
)

// ParseTypestr resolves an array-interface typestr such as "<f8", "|b1" or
// "=i4". The byte order must agree with the host, since array data is
// reinterpreted without swapping.
func ParseTypestr(typestr string) (DType, error) {
	if len(typestr) < 3 {
		return 0, fmt.Errorf("%w: malformed typestr %q", ErrUnsupportedDtype, typestr)
	}

	order, kind := typestr[0], typestr[1]

	size, err := strconv.Atoi(typestr[2:])
	if err != nil || size <= 0 {
		return 0, fmt.Errorf("%w: malformed typestr %q", ErrUnsupportedDtype, typestr)
	}

	switch order {
	case orderNative:
	case orderIrrelevant:
		if size != 1 {
			return 0, fmt.Errorf("%w: typestr %q has no byte order", ErrUnsupportedDtype, typestr)
		}
	case orderLittle, orderBig:
		if size > 1 && (order == orderBig) != cpu.IsBigEndian {
			return 0, fmt.Errorf("%w: typestr %q does not match host byte order", ErrUnsupportedDtype, typestr)
		}
	default:
		return 0, fmt.Errorf("%w: malformed typestr %q", ErrUnsupportedDtype, typestr)
	}

	reg := registry()
	for d := DType(1); int(d) < Total; d++ {
		if e := reg.entries[d]; e.kind == kind && e.size == size {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: typestr %q", ErrUnsupportedDtype, typestr)
}

// Typestr returns the array-interface typestr of d in host byte order.
func (d DType) Typestr() string {
	if !d.IsValid() {
		return ""
	}

	e := registry().entries[d]

	order := byte(orderLittle)
	switch {
	case e.size == 1:
		order = orderIrrelevant
	case cpu.IsBigEndian:
		order = orderBig
	}

	return string([]byte{order, e.kind}) + strconv.Itoa(e.size)
}
