// Package main provides the CLI entrypoint for ndlit.
//
// ndlit checks and explores the text forms handled by ndarray-bridge:
//   - Validates field files of tensor literals and index expressions
//   - Parses a literal into a typed array and prints its canonical form
//   - Normalizes index expressions and rewrites field files in canonical form
//   - Offers an interactive prompt for trying literals out
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ndarray-bridge/bridge"
	"ndarray-bridge/dtype"
	"ndarray-bridge/format"
	"ndarray-bridge/index"
	"ndarray-bridge/internal/common"
	"ndarray-bridge/internal/config"
	"ndarray-bridge/literal"
)

const appName = "ndlit"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd, ok := common.First(args)
	if !ok {
		usage(stderr)
		return 2
	}

	switch cmd {
	case "check":
		return cmdCheck(args[1:], stdout, stderr)
	case "fmt":
		return cmdFmt(args[1:], stdout, stderr)
	case "parse":
		return cmdParse(args[1:], stdout, stderr)
	case "index":
		return cmdIndex(args[1:], stdout, stderr)
	case "repl":
		return cmdRepl(args[1:], stdin, stdout, stderr)
	case "dtypes":
		fmt.Fprintln(stdout, strings.Join(dtype.Tags(), " "))
		return 0
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "%s: unknown command %q\n", appName, cmd)
		usage(stderr)

		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  %s check <fields.yaml>                 Validate a field file.
  %s fmt [-w] <fields.yaml>              Print a field file in canonical form (-w rewrites it).
  %s parse [-dtype tag] [-v] <literal>   Parse a literal and print its canonical form.
  %s index <expr>                        Print the canonical form of an index expression.
  %s repl [-dtype tag]                   Start the interactive prompt.
  %s dtypes                              List supported dtype tags.
`, appName, appName, appName, appName, appName, appName)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// -----------------------------------------------------------------------------
// check
// -----------------------------------------------------------------------------

func cmdCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "usage: %s check <fields.yaml>\n", appName)
		return 2
	}

	path := fs.Arg(0)

	f, err := config.LoadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	diags := config.Validate(f)
	for _, d := range diags.All() {
		fmt.Fprintf(stdout, "%s: %s: %s\n", path, d.Severity, d)
	}

	if diags.HasErrors() {
		return 1
	}

	fmt.Fprintf(stdout, "%s: %d tensors, %d indexes ok\n", path, len(f.Tensors), len(f.Indexes))

	return 0
}

// -----------------------------------------------------------------------------
// fmt
// -----------------------------------------------------------------------------

func cmdFmt(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	write := fs.Bool("w", false, "write the result back to the file")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "usage: %s fmt [-w] <fields.yaml>\n", appName)
		return 2
	}

	path := fs.Arg(0)

	f, err := config.LoadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	norm, err := config.Normalize(f)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
		return 1
	}

	if *write {
		if err := config.WriteFile(norm, path); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}

		return 0
	}

	data, err := config.Marshal(norm)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	_, _ = stdout.Write(data)

	return 0
}

// -----------------------------------------------------------------------------
// parse
// -----------------------------------------------------------------------------

func cmdParse(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tag := fs.String("dtype", config.DefaultDType, "element dtype tag")
	verbose := fs.Bool("v", false, "log array transfers")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		fmt.Fprintf(stderr, "usage: %s parse [-dtype tag] <literal>\n", appName)
		return 2
	}

	d, err := dtype.Lookup(*tag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	b := bridge.New(newLogger(stderr, *verbose))

	if err := describe(stdout, b, strings.Join(fs.Args(), " "), d); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

// describe parses text, passes the array through the host runtime and
// prints what came back.
func describe(w io.Writer, b *bridge.Bridge, text string, d dtype.DType) error {
	a, err := literal.ParseArray(text, d)
	if err != nil {
		return err
	}

	buf, err := b.Encode(a, bridge.HostRuntime{})
	if err != nil {
		return err
	}

	ai, err := buf.ArrayInterface()
	if err != nil {
		return err
	}

	back, err := b.Decode(buf)
	if err != nil {
		return err
	}

	s, err := format.Format(back)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "dtype:   %s (%s)\n", d.Tag(), ai.Typestr)
	fmt.Fprintf(w, "shape:   %s\n", common.FormatShape(back.Shape()))
	fmt.Fprintf(w, "bytes:   %d\n", ai.ByteLength)
	fmt.Fprintf(w, "literal: %s\n", s)

	return nil
}

// -----------------------------------------------------------------------------
// index
// -----------------------------------------------------------------------------

func cmdIndex(args []string, stdout, stderr io.Writer) int {
	ds, err := index.Parse(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, index.Serialize(ds))

	return 0
}
