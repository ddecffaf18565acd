package format

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

func formatString(_ *Formatter, sb *strings.Builder, v reflect.Value) error {
	sb.WriteString(strconv.Quote(v.String()))
	return nil
}

func formatBool(_ *Formatter, sb *strings.Builder, v reflect.Value) error {
	if v.Bool() {
		sb.WriteString(True)
	} else {
		sb.WriteString(False)
	}

	return nil
}

func formatInt(_ *Formatter, sb *strings.Builder, v reflect.Value) error {
	sb.WriteString(strconv.FormatInt(v.Int(), 10))
	return nil
}

func formatUint(_ *Formatter, sb *strings.Builder, v reflect.Value) error {
	sb.WriteString(strconv.FormatUint(v.Uint(), 10))
	return nil
}

func formatFloat(f *Formatter, sb *strings.Builder, v reflect.Value) error {
	return f.float(sb, v.Float(), v.Type().Bits())
}

// formatComplex renders a complex number as (re+imj).
func formatComplex(f *Formatter, sb *strings.Builder, v reflect.Value) error {
	c := v.Complex()
	bits := v.Type().Bits() / 2

	sb.WriteByte('(')

	if err := f.float(sb, real(c), bits); err != nil {
		return err
	}

	if im := imag(c); math.IsNaN(im) || !math.Signbit(im) {
		sb.WriteByte('+')
	}

	if err := f.float(sb, imag(c), bits); err != nil {
		return err
	}

	sb.WriteString("j)")

	return nil
}

func (f *Formatter) float(sb *strings.Builder, x float64, bits int) error {
	switch {
	case math.IsNaN(x):
		if f.Strict {
			return fmt.Errorf("%w: NaN", ErrNonFinite)
		}

		sb.WriteString(NaN)
	case math.IsInf(x, 0):
		if f.Strict {
			return fmt.Errorf("%w: %v", ErrNonFinite, x)
		}

		if x > 0 {
			sb.WriteString(Inf)
		} else {
			sb.WriteString(NegInf)
		}
	default:
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, bits))
	}

	return nil
}
