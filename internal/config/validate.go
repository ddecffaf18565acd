package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"ndarray-bridge/dtype"
	"ndarray-bridge/index"
	"ndarray-bridge/internal/common"
	"ndarray-bridge/internal/diagnostic"
	"ndarray-bridge/literal"
)

// Diagnostic codes reported by Validate.
const (
	CodeFileIsNil           = "file_is_nil"
	CodeUnsupportedVersion  = "unsupported_version"
	CodeMissingName         = "missing_name"
	CodeDuplicateName       = "duplicate_name"
	CodeUnknownDType        = "unknown_dtype"
	CodeMalformedLiteral    = "malformed_literal"
	CodeInconsistentShape   = "inconsistent_shape"
	CodeInconsistentElement = "inconsistent_element_type"
	CodeElementConversion   = "element_conversion"
	CodeShapeMismatch       = "shape_mismatch"
	CodeInvalidIndexToken   = "invalid_index_token"
	CodeInvalidSliceFormat  = "invalid_slice_format"
	CodeScalarLiteral       = "scalar_literal"
	CodeEmptyIndex          = "empty_index"
	CodeInvalidField        = "invalid_field"
)

const supportedVersion = "1"

// Validate checks every field of f and reports all problems found.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(CodeFileIsNil, "field file is nil", "")
		return res
	}

	if f.Version != supportedVersion {
		res.AddError(CodeUnsupportedVersion, fmt.Sprintf("unsupported version %q", f.Version), "version").
			Suggest(supportedVersion)
	}

	names := map[string]string{}

	for i := range f.Tensors {
		field := fmt.Sprintf("tensors[%d]", i)
		checkName(res, names, f.Tensors[i].Name, field)
		validateTensor(res, &f.Tensors[i], field)
	}

	for i := range f.Indexes {
		field := fmt.Sprintf("indexes[%d]", i)
		checkName(res, names, f.Indexes[i].Name, field)
		validateIndex(res, &f.Indexes[i], field)
	}

	return res
}

func checkName(res *diagnostic.Diagnostics, seen map[string]string, name, field string) {
	if strings.TrimSpace(name) == "" {
		res.AddError(CodeMissingName, "field has no name", field+".name")
		return
	}

	if first, ok := seen[name]; ok {
		res.AddError(CodeDuplicateName, fmt.Sprintf("duplicate name %q, first used by %s", name, first), field+".name")
		return
	}

	seen[name] = field
}

func validateTensor(res *diagnostic.Diagnostics, t *Tensor, field string) {
	d, err := t.DTypeOf()
	if err != nil {
		diag := res.AddError(CodeUnknownDType, fmt.Sprintf("unsupported dtype %q", t.DType), field+".dtype")
		if s, ok := dtype.Suggest(t.DType); ok {
			diag.Suggest(s)
		}

		return
	}

	a, err := literal.ParseArray(t.Value.String(), d)
	if err != nil {
		res.AddError(literalCode(err), err.Error(), field+".value")
		return
	}

	if a.Rank() == 0 {
		res.AddInfo(CodeScalarLiteral, "literal is a scalar, parsed as a rank-0 array", field+".value")
	}

	if t.Shape != nil && !slices.Equal(t.Shape, a.Shape()) {
		res.AddError(CodeShapeMismatch, fmt.Sprintf("literal has shape %s, expected %s",
			common.FormatShape(a.Shape()), common.FormatShape(t.Shape)), field+".shape")
	}
}

func validateIndex(res *diagnostic.Diagnostics, ix *Index, field string) {
	if strings.TrimSpace(ix.Value.String()) == "" {
		res.AddWarning(CodeEmptyIndex, "empty index expression selects the first element", field+".value")
	}

	if _, err := index.Parse(ix.Value.String()); err != nil {
		code := CodeInvalidIndexToken
		if errors.Is(err, index.ErrInvalidSliceFormat) {
			code = CodeInvalidSliceFormat
		}

		res.AddError(code, err.Error(), field+".value")
	}
}

// literalCode maps a literal parse error to its diagnostic code.
func literalCode(err error) string {
	switch {
	case errors.Is(err, literal.ErrMalformedLiteral):
		return CodeMalformedLiteral
	case errors.Is(err, literal.ErrInconsistentShape):
		return CodeInconsistentShape
	case errors.Is(err, literal.ErrInconsistentElementType):
		return CodeInconsistentElement
	case errors.Is(err, literal.ErrElementConversion):
		return CodeElementConversion
	default:
		return CodeInvalidField
	}
}
