package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Konstantin8105/ski"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const (
	prompt  = "please enter a SKI expression, or enter 'quit' to exit:"
	goodbye = "goodbye!"
)

var red = color.New(color.FgRed)

// dumper show fields of tokens instead of their String method
var dumper = spew.ConfigState{Indent: " ", DisableMethods: true}

type session struct {
	reducer ski.Reducer
	dump    bool
	out     io.Writer
	errOut  io.Writer
}

// eval reduce one expression and print result or error.
// Return false on error.
func (s *session) eval(input string) bool {
	if s.dump {
		if toks, err := ski.Tokenize(input); err == nil {
			dumper.Fdump(s.out, toks)
		}
	}
	t, err := s.reducer.ParseAndReduce(input)
	if err != nil {
		red.Fprintln(s.out, err)
		return false
	}
	fmt.Fprintln(s.out, t)
	return true
}

// repl read expressions line by line until "quit" or end of input.
func (s *session) repl(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for {
		fmt.Fprintln(s.out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" {
			fmt.Fprintln(s.out, goodbye)
			return nil
		}
		s.eval(line)
	}
}

// file reduce all not empty lines of file.
// Failures are printed in place and also returned together.
func (s *session) file(name string) error {
	content, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	var inputs []string
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			inputs = append(inputs, line)
		}
	}
	if s.dump {
		for _, input := range inputs {
			if toks, err := ski.Tokenize(input); err == nil {
				dumper.Fdump(s.out, toks)
			}
		}
	}
	terms, err := ski.ParseAndReduceAll(&s.reducer, inputs)
	for i, t := range terms {
		if t == nil {
			red.Fprintf(s.out, "%s: failed\n", inputs[i])
			continue
		}
		fmt.Fprintf(s.out, "%s = %s\n", inputs[i], t)
	}
	return err
}
