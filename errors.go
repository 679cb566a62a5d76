package ski

import "fmt"

// ErrorKind - category of failure.
type ErrorKind int

const (
	// ParseError - input character or token is not SKI primitive
	ParseError ErrorKind = iota
	// SyntaxError - parentheses are malformed
	SyntaxError
	// LimitError - reduction budget of Reducer is exhausted
	LimitError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case SyntaxError:
		return "SyntaxError"
	case LimitError:
		return "LimitError"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error of parsing or reduction.
// Error values are comparable, so sentinel errors below may be checked
// with == or errors.Is.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

var (
	ErrNotPrimitive    = Error{Kind: ParseError, Message: "not a SKI primitive"}
	ErrEmptyInput      = Error{Kind: ParseError, Message: "empty input"}
	ErrUnclosedParens  = Error{Kind: SyntaxError, Message: "unclosed parentheses"}
	ErrUnmatchedParens = Error{Kind: SyntaxError, Message: "unmatched closing parentheses"}
	ErrStepLimit       = Error{Kind: LimitError, Message: "maximal iteration limit"}
	ErrDepthLimit      = Error{Kind: LimitError, Message: "maximal depth limit"}
)
