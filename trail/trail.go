// Package trail implements the fixed-capacity trail array described by
// the core's design: an ordered sequence of literals with a head cursor
// (next to propagate) and a tail cursor (next empty slot). It knows
// nothing about clauses or watch lists; package solver combines it with
// the assignment model to implement queue/backtrack semantics.
package trail

import "github.com/nbaird/cdclsat/lit"

// Trail is a fixed-capacity array of literal references in assignment
// order. Invariant: 0 <= head <= tail <= len(sequence).
type Trail struct {
	sequence []lit.Lit
	head     int
	tail     int
}

// New returns a trail with room for capacity literals (2*numVars for a
// formula with numVars variables).
func New(capacity int) *Trail {
	return &Trail{sequence: make([]lit.Lit, capacity)}
}

// Push appends l at the tail and advances the tail cursor. It does not
// itself check any assignment invariant; the caller (package solver) is
// responsible for verifying l's variable is Available before pushing.
func (t *Trail) Push(l lit.Lit) {
	t.sequence[t.tail] = l
	t.tail++
}

// Head returns the index of the next literal to propagate.
func (t *Trail) Head() int { return t.head }

// Tail returns the index of the next empty slot.
func (t *Trail) Tail() int { return t.tail }

// Len returns the number of literals currently on the trail.
func (t *Trail) Len() int { return t.tail }

// Exhausted reports whether every queued literal has been propagated.
func (t *Trail) Exhausted() bool { return t.head == t.tail }

// At returns the literal at position i.
func (t *Trail) At(i int) lit.Lit { return t.sequence[i] }

// HeadLit returns the literal currently at the head cursor. Only valid
// when !Exhausted().
func (t *Trail) HeadLit() lit.Lit { return t.sequence[t.head] }

// AdvanceHead moves the head cursor past the literal it currently
// points to, marking it fully propagated.
func (t *Trail) AdvanceHead() { t.head++ }

// TruncateTo drops every literal from position n onward, resetting both
// cursors to n. Used by backtrack once the trail has been unwound.
func (t *Trail) TruncateTo(n int) {
	t.head = n
	t.tail = n
}
