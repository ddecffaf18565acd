package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndarray-bridge/internal/config"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestParseCommand(t *testing.T) {
	code, out, errOut := runCLI(t, "", "parse", "-dtype", "int16", "[[1, 2, 3],", "[4, 5, 6]]")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "dtype:   int16 (")
	assert.Contains(t, out, "shape:   (2, 3)\n")
	assert.Contains(t, out, "bytes:   12\n")
	assert.Contains(t, out, "literal: [[1, 2, 3], [4, 5, 6]]\n")
}

func TestParseCommandVerbose(t *testing.T) {
	code, _, errOut := runCLI(t, "", "parse", "-v", "[1.5]")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, `msg="decoded foreign array" dtype=float64 shape=(1,) bytes=8`)
}

func TestParseCommandErrors(t *testing.T) {
	code, _, errOut := runCLI(t, "", "parse", "[[1, 2], [3]]")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "inconsistent shape")

	code, _, errOut = runCLI(t, "", "parse", "-dtype", "flaot32", "[1]")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `did you mean "float32"`)

	code, _, _ = runCLI(t, "", "parse")
	assert.Equal(t, 2, code)
}

func TestIndexCommand(t *testing.T) {
	code, out, _ := runCLI(t, "", "index", "1,:,2:5:2")
	require.Equal(t, 0, code)
	assert.Equal(t, "1, :, 2:5:2\n", out)

	code, _, errOut := runCLI(t, "", "index", "1:2:3:4")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid slice format")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
tensors:
  - name: w
    dtype: float32
    value: [[1, 2], [3, 4]]
indexes:
  - name: i
    value: "0, :"
`), 0o644))

	code, out, errOut := runCLI(t, "", "check", good)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "1 tensors, 1 indexes ok")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
tensors:
  - name: w
    dtype: int8
    value: "[1, true]"
`), 0o644))

	code, out, _ = runCLI(t, "", "check", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "error: tensors[0].value: [inconsistent_element_type]")

	code, _, _ = runCLI(t, "", "check", filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, 1, code)
}

func TestFmtCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tensors:
  - name: w
    dtype: int16
    value: "[[1,2],[ 3, 4 ]]"
indexes:
  - name: i
    value: "0,::2"
`), 0o644))

	code, out, errOut := runCLI(t, "", "fmt", path)
	require.Equal(t, 0, code, errOut)

	printed, err := config.Parse([]byte(out))
	require.NoError(t, err, out)
	assert.Equal(t, config.Text("[[1, 2], [3, 4]]"), printed.Tensors[0].Value)
	assert.Equal(t, []int{2, 2}, printed.Tensors[0].Shape)
	assert.Equal(t, config.Text("0, ::2"), printed.Indexes[0].Value)

	code, out, errOut = runCLI(t, "", "fmt", "-w", path)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, out)

	written, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, printed, written)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tensors:\n  - name: x\n    value: \"[1, 2\"\n"), 0o644))

	code, _, errOut = runCLI(t, "", "fmt", "-w", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid field file")

	data, err := os.ReadFile(bad)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"[1, 2"`)
}

func TestReplBatch(t *testing.T) {
	input := strings.Join([]string{
		"[1, 2]",
		":dtype bool",
		"[true, FALSE]",
		":dtype float16",
		":index 0, ::-1",
		":nope",
		"[1",
		":quit",
		"[3]",
	}, "\n")

	code, out, errOut := runCLI(t, input, "repl", "-dtype", "int32")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "literal: [1, 2]\n")
	assert.Contains(t, out, "element dtype bool\n")
	assert.Contains(t, out, "literal: [true, false]\n")
	assert.Contains(t, out, "0, ::-1\n")
	assert.NotContains(t, out, "literal: [3]")

	assert.Contains(t, errOut, `unsupported dtype: "float16"`)
	assert.Contains(t, errOut, "unknown command :nope")
	assert.Contains(t, errOut, "malformed literal")
}

func TestUsage(t *testing.T) {
	code, _, errOut := runCLI(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Usage:")

	code, _, errOut = runCLI(t, "", "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)

	code, out, _ := runCLI(t, "", "dtypes")
	assert.Equal(t, 0, code)
	assert.Equal(t, "bool int8 int16 int32 int64 uint8 uint16 uint32 uint64 float32 float64\n", out)
}
