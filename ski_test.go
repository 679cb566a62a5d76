package ski_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Konstantin8105/ski"
)

func Test(t *testing.T) {
	tcs := []struct {
		in, out string
	}{
		{"K", "K"},
		{"KIS", "I"},
		{"K(IS)K", "S"},
		{"S(KI)", "S(KI)"},
		{"II", "I"},
		{"III", "I"},
		{"IIK", "K"},
		{"KIK", "I"},
		{"KI(KI)", "I"},
		{"KIKS", "S"},
		{"SKSI", "I"},
		{"S(K)(S)(I)", "I"},
		{"K(II)SK", "K"},
		{"SK", "SK"},
		{"SKI", "SKI"},
		{"SIK", "SIK"},
		{"K(KI)", "K(KI)"},
		{"K(I(KI))", "K(KI)"},
		{"S(II)(IK)", "SIK"},
		{"(SKK)S", "S"},
		{"S(K(SI))KIS", "SI"},
		{"((((K))))", "K"},
	}

	for i := range tcs {
		t.Run(tcs[i].in, func(t *testing.T) {
			a, err := ski.ParseAndReduce(tcs[i].in)
			if err != nil {
				t.Fatal(err)
			}
			if a.String() != tcs[i].out {
				t.Fatalf("Is not same '%s' != '%s'", a, tcs[i].out)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tcs := []struct {
		in  string
		err error
	}{
		{"K(I", ski.ErrUnclosedParens},
		{"K(I))", ski.ErrUnmatchedParens},
		{"KIT", ski.ErrNotPrimitive},
		{"", ski.ErrEmptyInput},
		{"()", ski.ErrEmptyInput},
		{"S()K", ski.ErrEmptyInput},
		{"S K", ski.ErrNotPrimitive},
		{"ski", ski.ErrNotPrimitive},
	}

	for i := range tcs {
		t.Run(tcs[i].in, func(t *testing.T) {
			a, err := ski.ParseAndReduce(tcs[i].in)
			if err == nil {
				t.Fatalf("expected error, got %s", a)
			}
			if !errors.Is(err, tcs[i].err) {
				t.Fatalf("Is not same '%v' != '%v'", err, tcs[i].err)
			}
			if a != nil {
				t.Fatalf("partial result %s", a)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	if s := ski.ErrUnclosedParens.Error(); s != "SyntaxError: unclosed parentheses" {
		t.Fatalf("unexpected rendering: %s", s)
	}
	if s := ski.ErrNotPrimitive.Error(); s != "ParseError: not a SKI primitive" {
		t.Fatalf("unexpected rendering: %s", s)
	}
	var e ski.Error
	if !errors.As(error(ski.ErrStepLimit), &e) || e.Kind != ski.LimitError {
		t.Fatalf("unexpected kind: %v", e.Kind)
	}
}

func TestParseAndReduceAll(t *testing.T) {
	r := &ski.Reducer{MaxSteps: 1000}
	terms, err := ski.ParseAndReduceAll(r, []string{
		"KIS",
		"K(I",
		"SII(SII)",
		"S(KI)",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(terms) != 4 {
		t.Fatalf("unexpected amount of results: %d", len(terms))
	}
	if terms[0].String() != "I" || terms[3].String() != "S(KI)" {
		t.Fatalf("unexpected results: %v", terms)
	}
	if terms[1] != nil || terms[2] != nil {
		t.Fatalf("results of failed lines: %v", terms)
	}
	msg := err.Error()
	for _, part := range []string{
		"line 2",
		"unclosed parentheses",
		"line 3",
		"maximal iteration limit",
	} {
		if !strings.Contains(msg, part) {
			t.Errorf("error have not `%s`:\n%s", part, msg)
		}
	}
	if strings.Contains(msg, "line 1") || strings.Contains(msg, "line 4") {
		t.Errorf("error have successful lines:\n%s", msg)
	}

	terms, err = ski.ParseAndReduceAll(nil, []string{"K", "SKK"})
	if err != nil {
		t.Fatal(err)
	}
	if terms[0].String() != "K" || terms[1].String() != "SKK" {
		t.Fatalf("unexpected results: %v", terms)
	}
}
