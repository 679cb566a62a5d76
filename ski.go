// Package ski is interpreter of SKI combinator calculus.
//
// Expression is written with primitives S, K, I and parentheses:
//
//	S(KI)KI
//
// Juxtaposition is left-associative, so "SKI" is "(SK)I".
// Expression is reduced to normal form by rules:
//
//	I x     -> x
//	K x y   -> x
//	S x y z -> x z (y z)
package ski

import (
	"fmt"

	"github.com/Konstantin8105/errors"
)

// ParseAndReduce tokenize, parse and reduce input.
// First error stop the pipeline.
// Reduction is not limited, so input without normal form never return.
func ParseAndReduce(input string) (Term, error) {
	var r Reducer
	return r.ParseAndReduce(input)
}

// ParseAndReduce tokenize, parse and reduce input within limits of Reducer.
func (r *Reducer) ParseAndReduce(input string) (Term, error) {
	t, err := ParseString(input)
	if err != nil {
		return nil, err
	}
	return r.Reduce(t)
}

// ParseAndReduceAll reduce each input independently.
// Result for failed input is nil. All failures are collected into one
// error tree with line numbers started from 1.
func ParseAndReduceAll(r *Reducer, inputs []string) ([]Term, error) {
	if r == nil {
		r = new(Reducer)
	}
	et := errors.New("reduce expressions")
	terms := make([]Term, len(inputs))
	for i, input := range inputs {
		t, err := r.ParseAndReduce(input)
		if err != nil {
			et.Add(fmt.Errorf("line %d: %q: %w", i+1, input, err))
			continue
		}
		terms[i] = t
	}
	if et.IsError() {
		return terms, et
	}
	return terms, nil
}
