package ski

import "github.com/edwingeng/deque"

// Walk visits all nodes of term in pre-order: application before its
// function, function before its argument. Walking stops once f return false.
// Explicit stack is used, so terms of any depth are acceptable.
func Walk(t Term, f func(Term) bool) {
	stack := deque.NewDeque()
	stack.PushBack(t)
	for !stack.Empty() {
		t, ok := stack.PopBack().(Term)
		if !ok {
			panic(errNilTerm)
		}
		if !f(t) {
			return
		}
		if a, ok := t.(*Application); ok {
			stack.PushBack(a.Arg)
			stack.PushBack(a.Fun)
		}
	}
}

// Size return amount of nodes in term.
func Size(t Term) (size int) {
	Walk(t, func(Term) bool {
		size++
		return true
	})
	return
}

// Depth return amount of nodes on the longest path from root to combinator.
func Depth(t Term) (depth int) {
	type level struct {
		t Term
		d int
	}
	stack := deque.NewDeque()
	stack.PushBack(level{t: t, d: 1})
	for !stack.Empty() {
		l := stack.PopBack().(level)
		if depth < l.d {
			depth = l.d
		}
		if a, ok := l.t.(*Application); ok {
			stack.PushBack(level{t: a.Arg, d: l.d + 1})
			stack.PushBack(level{t: a.Fun, d: l.d + 1})
		}
	}
	return
}

// Equal return true if terms are structurally same.
func Equal(a, b Term) bool {
	type pair struct{ a, b Term }
	stack := deque.NewDeque()
	stack.PushBack(pair{a, b})
	for !stack.Empty() {
		p := stack.PopBack().(pair)
		if p.a == p.b {
			// same combinator or same node
			continue
		}
		x, ok := p.a.(*Application)
		if !ok {
			return false
		}
		y, ok := p.b.(*Application)
		if !ok {
			return false
		}
		stack.PushBack(pair{x.Arg, y.Arg})
		stack.PushBack(pair{x.Fun, y.Fun})
	}
	return true
}
