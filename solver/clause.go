package solver

import (
	"strings"

	"github.com/nbaird/cdclsat/lit"
)

// Clause is an ordered, mutable sequence of at least two literals. The
// first two positions are the watched slots; the propagator is the only
// component allowed to reorder them. Extinct marks a clause that is
// known to be satisfied at decision level 0; it stays a tombstone on
// whichever of its two watch lists has not yet been walked since.
type Clause struct {
	lits    []lit.Lit
	learnt  bool
	extinct bool
}

func newClause(lits []lit.Lit, learnt bool) *Clause {
	c := make([]lit.Lit, len(lits))
	copy(c, lits)
	return &Clause{lits: c, learnt: learnt}
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// Learnt reports whether this clause was derived by conflict repair
// rather than supplied in the input CNF.
func (c *Clause) Learnt() bool { return c.learnt }

// Extinct reports whether this clause has been marked permanently
// satisfied at decision level 0.
func (c *Clause) Extinct() bool { return c.extinct }

// Lits returns the clause's current literals. The first two are the
// watched slots.
func (c *Clause) Lits() []lit.Lit { return c.lits }

// String implements fmt.Stringer for debug tracing.
func (c *Clause) String() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}
