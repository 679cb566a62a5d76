package ski

import (
	"fmt"
	"strings"
)

// TokenKind - type of token.
type TokenKind int

const (
	SToken TokenKind = iota
	KToken
	IToken
	Parens // tokens between matched parentheses
)

// Token - intermediate representation between text and Term.
// Inner is used only by Parens.
type Token struct {
	Kind  TokenKind
	Inner []Token
}

func (t Token) String() string {
	switch t.Kind {
	case SToken:
		return "S"
	case KToken:
		return "K"
	case IToken:
		return "I"
	case Parens:
		var buf strings.Builder
		buf.WriteString("(")
		for _, in := range t.Inner {
			buf.WriteString(in.String())
		}
		buf.WriteString(")")
		return buf.String()
	}
	return fmt.Sprintf("Token(%d)", int(t.Kind))
}

// Tokenize convert input into tokens.
// Content of each pair of parentheses is tokenized recursively
// into single Parens token.
func Tokenize(input string) (toks []Token, err error) {
	for pos := 0; pos < len(input); pos++ {
		switch input[pos] {
		case 'S':
			toks = append(toks, Token{Kind: SToken})
		case 'K':
			toks = append(toks, Token{Kind: KToken})
		case 'I':
			toks = append(toks, Token{Kind: IToken})
		case '(':
			start := pos + 1
			open := 1
			for open > 0 {
				pos++
				if pos >= len(input) {
					return nil, ErrUnclosedParens
				}
				switch input[pos] {
				case '(':
					open++
				case ')':
					open--
				}
			}
			inner, err := Tokenize(input[start:pos])
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Kind: Parens, Inner: inner})
		case ')':
			return nil, ErrUnmatchedParens
		default:
			return nil, ErrNotPrimitive
		}
	}
	return toks, nil
}
