package ski

// Parse convert tokens into left-associative application tree:
// tokens "A B C" give "(A B) C".
func Parse(toks []Token) (Term, error) {
	switch len(toks) {
	case 0:
		return nil, ErrEmptyInput
	case 1:
		return parseToken(toks[0])
	}
	last := len(toks) - 1
	fun, err := Parse(toks[:last])
	if err != nil {
		return nil, err
	}
	arg, err := parseToken(toks[last])
	if err != nil {
		return nil, err
	}
	return Apply(fun, arg), nil
}

func parseToken(tok Token) (Term, error) {
	switch tok.Kind {
	case SToken:
		return S, nil
	case KToken:
		return K, nil
	case IToken:
		return I, nil
	case Parens:
		return Parse(tok.Inner)
	}
	return nil, ErrNotPrimitive
}

// ParseString tokenize and parse input without reduction.
func ParseString(input string) (Term, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}
