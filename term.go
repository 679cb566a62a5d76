package ski

import "strings"

// Term - expression of SKI calculus.
// Implementations are Combinator and *Application.
type Term interface {
	String() string
	isTerm()
}

// Combinator - primitive of SKI calculus.
type Combinator byte

// Primitives
const (
	S Combinator = 'S'
	K Combinator = 'K'
	I Combinator = 'I'
)

func (Combinator) isTerm() {}

func (c Combinator) String() string {
	return string(rune(c))
}

// arity - amount of arguments for rewriting combinator
func (c Combinator) arity() int {
	switch c {
	case I:
		return 1
	case K:
		return 2
	case S:
		return 3
	}
	return 0
}

// Application - function applied to argument.
// Application is never modified after creation.
type Application struct {
	Fun Term
	Arg Term
}

func (*Application) isTerm() {}

// String return expression in form acceptable for parsing.
// Argument is wrapped in parentheses if it is application.
func (a *Application) String() string {
	var buf strings.Builder
	render(&buf, a)
	return buf.String()
}

func render(buf *strings.Builder, t Term) {
	switch v := t.(type) {
	case Combinator:
		buf.WriteByte(byte(v))
	case *Application:
		render(buf, v.Fun)
		if _, ok := v.Arg.(*Application); ok {
			buf.WriteByte('(')
			render(buf, v.Arg)
			buf.WriteByte(')')
			return
		}
		render(buf, v.Arg)
	}
}

const errNilTerm = "ski: application of nil term"

// Apply return application of function to argument.
func Apply(fun, arg Term) Term {
	if fun == nil || arg == nil {
		panic(errNilTerm)
	}
	return &Application{Fun: fun, Arg: arg}
}

// head return combinator at the left end of application spine and
// amount of arguments applied to it.
func head(t Term) (c Combinator, args int) {
	for {
		switch v := t.(type) {
		case Combinator:
			return v, args
		case *Application:
			t = v.Fun
			args++
		default:
			panic(errNilTerm)
		}
	}
}

// IsNormal return true if term contains no redex.
func IsNormal(t Term) bool {
	normal := true
	Walk(t, func(t Term) bool {
		c, args := head(t)
		if n := c.arity(); n > 0 && args >= n {
			normal = false
		}
		return normal
	})
	return normal
}
