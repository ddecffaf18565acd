package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"ndarray-bridge/bridge"
	"ndarray-bridge/dtype"
	"ndarray-bridge/index"
	"ndarray-bridge/internal/config"
)

const (
	historyFile = ".ndlit_history"
	promptMain  = "nd> "
)

const replHelp = `Enter a literal such as [[1, 2], [3, 4]] to parse it.
Commands:
  :dtype <tag>   Switch the element dtype
  :index <expr>  Parse an index expression
  :help          Show this help
  :quit          Exit
`

// session is the state of one prompt session.
type session struct {
	dtype  dtype.DType
	bridge *bridge.Bridge
	out    io.Writer
	errOut io.Writer
}

func cmdRepl(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tag := fs.String("dtype", config.DefaultDType, "initial element dtype tag")
	verbose := fs.Bool("v", false, "log array transfers")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	d, err := dtype.Lookup(*tag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	s := &session{dtype: d, bridge: bridge.New(newLogger(stderr, *verbose)), out: stdout, errOut: stderr}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return s.interactive()
	}

	return s.batch(stdin)
}

// interactive runs the line editor with persistent history.
func (s *session) interactive() int {
	fmt.Fprintf(s.out, "%s: element dtype %s. Type :help for commands, Ctrl+D exits.\n", appName, s.dtype.Tag())

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return 0
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}

		if err != nil {
			fmt.Fprintln(s.errOut, err)
			return 1
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}

		if !s.eval(line) {
			return 0
		}
	}
}

// batch evaluates stdin line by line.
func (s *session) batch(r io.Reader) int {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !s.eval(sc.Text()) {
			return 0
		}
	}

	if err := sc.Err(); err != nil {
		fmt.Fprintln(s.errOut, err)
		return 1
	}

	return 0
}

// eval handles one input line and reports whether the session continues.
func (s *session) eval(line string) bool {
	line = strings.TrimSpace(line)

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprint(s.out, replHelp)
	case ":dtype":
		d, err := dtype.Lookup(arg)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			break
		}

		s.dtype = d
		fmt.Fprintf(s.out, "element dtype %s\n", d.Tag())
	case ":index":
		ds, err := index.Parse(arg)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			break
		}

		fmt.Fprintln(s.out, index.Serialize(ds))
	default:
		if strings.HasPrefix(cmd, ":") {
			fmt.Fprintf(s.errOut, "unknown command %s, type :help\n", cmd)
			break
		}

		if err := describe(s.out, s.bridge, line, s.dtype); err != nil {
			fmt.Fprintln(s.errOut, err)
		}
	}

	return true
}
