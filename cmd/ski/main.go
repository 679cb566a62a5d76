package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/Konstantin8105/ski"
)

const usage = `Usage: ski [options]

Reduce expressions of SKI combinator calculus.
Without -e and -f expressions are read from standard input.

Options:
  -n steps  maximal amount of rewriting steps, 0 is unlimited (default 1000000)
  -D depth  maximal recursion depth, 0 is unlimited (default 100000)
  -t        trace every rewriting step to stderr; each line holds
            the whole term, so output of growing term is huge
  -d        dump tokens of expression before reduction
  -e expr   reduce expression and exit
  -f file   reduce every line of file and exit
  -h        show this help
`

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	s := session{
		reducer: ski.Reducer{
			MaxSteps: 1000000,
			MaxDepth: 100000,
		},
		out:    stdout,
		errOut: stderr,
	}
	var expr, file string
	var hasExpr bool

	opts, optind, err := getopt.Getopts(args, "n:D:tde:f:h")
	if err != nil {
		fmt.Fprintf(stderr, "%v\n%s", err, usage)
		return 2
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'n':
			value, err := strconv.ParseInt(opt.Value, 10, 64)
			if err != nil || value < 0 {
				fmt.Fprintf(stderr, "invalid -n parameter: %q\n", opt.Value)
				return 2
			}
			s.reducer.MaxSteps = value
		case 'D':
			value, err := strconv.Atoi(opt.Value)
			if err != nil || value < 0 {
				fmt.Fprintf(stderr, "invalid -D parameter: %q\n", opt.Value)
				return 2
			}
			s.reducer.MaxDepth = value
		case 't':
			s.reducer.Trace = stderr
		case 'd':
			s.dump = true
		case 'e':
			expr, hasExpr = opt.Value, true
		case 'f':
			file = opt.Value
		case 'h':
			fmt.Fprint(stdout, usage)
			return 0
		}
	}
	if optind < len(args) {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n%s", args[optind:], usage)
		return 2
	}

	switch {
	case hasExpr:
		if !s.eval(expr) {
			return 1
		}
	case file != "":
		if err := s.file(file); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
	default:
		if err := s.repl(stdin); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
	}
	return 0
}
