// Package lit implements the literal encoding shared by the trail, the
// clause store and the propagator.
package lit

import "fmt"

// Undef denotes the absence of a literal, e.g. when no decision could be
// made.
const Undef = Lit(-1)

// Lit is a literal, encoded as 2*v for the positive literal of the
// 0-indexed variable v and 2*v+1 for its negation. This keeps a literal
// and its complement adjacent and makes complementation a single XOR.
type Lit int

// New returns a new literal given a 0-indexed variable, v, and whether
// the literal is negative.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(v + v + 1)
	}
	return Lit(v + v)
}

// FromDIMACS returns the literal corresponding to a signed, nonzero
// DIMACS integer.
func FromDIMACS(i int) Lit {
	if i < 0 {
		return New(-i-1, true)
	}
	return New(i-1, false)
}

// Complement returns the literal's complement.
func (l Lit) Complement() Lit {
	return l ^ 1
}

// Sign returns true if the literal is negative.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Index returns the literal's 0-indexed variable.
func (l Lit) Index() int {
	return int(l >> 1)
}

// Var returns the literal's 1-indexed variable.
func (l Lit) Var() int {
	return int(l>>1) + 1
}

// DIMACS returns the literal in signed DIMACS form.
func (l Lit) DIMACS() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l == Undef {
		return "undef"
	}
	if l.Sign() {
		return fmt.Sprintf("~%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
