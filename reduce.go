package ski

import (
	"fmt"
	"io"
)

// Reducer - rewriting of terms by rules:
//
//	I x     -> x
//	K x y   -> x
//	S x y z -> x z (y z)
//
// Zero value is ready to use and has no limits.
// Reducer may be shared between goroutines, but then Trace must be
// safe for concurrent use.
type Reducer struct {
	// MaxSteps is maximal amount of rule applications for one reduction.
	// Value less or equal zero means no limit.
	MaxSteps int64

	// MaxDepth is maximal recursion depth for one reduction.
	// Value less or equal zero means no limit.
	MaxDepth int

	// Trace, if not nil, receive one line per rule application
	// in form "redex -> result". Both terms are written in full, so
	// trace of growing term grows quadratically.
	Trace io.Writer
}

// Reduce term to normal form without any limits.
// Terms without normal form never return.
func Reduce(t Term) Term {
	var r Reducer
	// no limits, so no errors
	t, _ = r.Reduce(t)
	return t
}

// Reduce term to normal form.
// Error is returned only if one of limits is reached.
func (r *Reducer) Reduce(t Term) (Term, error) {
	rs := reduction{Reducer: r}
	return rs.eval(t, 0)
}

// reduction keep counters of one call of Reduce
type reduction struct {
	*Reducer
	steps int64
}

func (rs *reduction) step(redex, result Term) error {
	rs.steps++
	if 0 < rs.MaxSteps && rs.MaxSteps < rs.steps {
		return ErrStepLimit
	}
	if rs.Trace != nil {
		fmt.Fprintf(rs.Trace, "%s -> %s\n", redex, result)
	}
	return nil
}

func (rs *reduction) eval(t Term, depth int) (Term, error) {
	if 0 < rs.MaxDepth && rs.MaxDepth < depth {
		return nil, ErrDepthLimit
	}
	depth++

	if t == nil {
		panic(errNilTerm)
	}
	app, ok := t.(*Application)
	if !ok {
		// combinator is irreducible
		return t, nil
	}
	if c, _ := head(app); c.arity() == 0 {
		// unknown combinator
		return app, nil
	}

	switch f := app.Fun.(type) {
	case Combinator:
		if f == I {
			// I x
			if err := rs.step(app, app.Arg); err != nil {
				return nil, err
			}
			return rs.eval(app.Arg, depth)
		}
		// K x, S x: not enough arguments
		x, err := rs.eval(app.Arg, depth)
		if err != nil {
			return nil, err
		}
		return Apply(f, x), nil

	case *Application:
		switch g := f.Fun.(type) {
		case Combinator:
			switch g {
			case K:
				// K x y
				if err := rs.step(app, f.Arg); err != nil {
					return nil, err
				}
				return rs.eval(f.Arg, depth)
			case S:
				// S x y: not enough arguments
				x, err := rs.eval(f.Arg, depth)
				if err != nil {
					return nil, err
				}
				y, err := rs.eval(app.Arg, depth)
				if err != nil {
					return nil, err
				}
				return Apply(Apply(S, x), y), nil
			}
		case *Application:
			if g.Fun == S {
				// S x y z
				x, y, z := g.Arg, f.Arg, app.Arg
				result := Apply(Apply(x, z), Apply(y, z))
				if err := rs.step(app, result); err != nil {
					return nil, err
				}
				return rs.eval(result, depth)
			}
		}

		// head is not saturated combinator, so reduce head first
		// and try again with new head
		fun, err := rs.eval(f, depth)
		if err != nil {
			return nil, err
		}
		return rs.eval(Apply(fun, app.Arg), depth)
	}

	return app, nil
}
