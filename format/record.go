package format

import (
	"reflect"
	"strconv"
	"strings"
)

// TagName is the struct tag that renames (`literal:"name"`) or skips
// (`literal:"-"`) a field.
const TagName = "literal"

type field struct {
	key   string // quoted property name
	index []int
}

// recordFields enumerates the exported fields of a struct type, including
// fields promoted from embedded structs.
func recordFields(t reflect.Type) []field {
	var fields []field

	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || !reachable(t, sf.Index) {
			continue
		}

		if sf.Anonymous && indirect(sf.Type).Kind() == reflect.Struct {
			continue
		}

		name := sf.Name

		if tag, ok := sf.Tag.Lookup(TagName); ok {
			if tag == "-" {
				continue
			}

			if tag != "" {
				name = tag
			}
		}

		fields = append(fields, field{key: strconv.Quote(name), index: sf.Index})
	}

	return fields
}

// reachable reports whether every embedded struct on the path to a promoted
// field is exported.
func reachable(t reflect.Type, index []int) bool {
	for i := 1; i < len(index); i++ {
		if !t.FieldByIndex(index[:i]).IsExported() {
			return false
		}
	}

	return true
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// newRecordHandler renders a struct as {"Field": value}. The field list is
// enumerated once, when the handler is built.
func newRecordHandler(t reflect.Type) handler {
	fields := recordFields(t)

	return func(f *Formatter, sb *strings.Builder, v reflect.Value) error {
		sb.WriteByte('{')

		for i, fd := range fields {
			if i > 0 {
				sb.WriteString(separator)
			}

			sb.WriteString(fd.key)
			sb.WriteString(": ")

			fv, err := v.FieldByIndexErr(fd.index)
			if err != nil {
				// promoted through a nil embedded pointer
				sb.WriteString(None)
				continue
			}

			if err := f.value(sb, fv); err != nil {
				return err
			}
		}

		sb.WriteByte('}')

		return nil
	}
}
