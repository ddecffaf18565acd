package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("empty_literal", "literal has no elements", "tensors[1].value")
	d.AddInfo("default_dtype", "dtype defaults to float64", "tensors[1].dtype")
	assert.True(t, d.IsValid())

	d.AddError("unknown_dtype", `unsupported dtype "flaot32"`, "tensors[0].dtype").Suggest("float32")
	d.AddError("duplicate_name", `duplicate name "w"`, "")

	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"unknown_dtype", "duplicate_name"}, d.Codes())
	assert.Len(t, d.All(), 4)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
	assert.Equal(t, SeverityInfo, d.All()[3].Severity)

	require.EqualError(t, d.Error(),
		`tensors[0].dtype: [unknown_dtype] unsupported dtype "flaot32" (did you mean float32?); [duplicate_name] duplicate name "w"`)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics

	a.AddError("x", "x", "")
	b.AddError("y", "y", "")
	b.AddWarning("z", "z", "")

	a.Merge(b)
	assert.Equal(t, []string{"x", "y"}, a.Codes())
	assert.Len(t, a.Warnings, 1)
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
