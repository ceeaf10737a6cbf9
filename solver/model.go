package solver

import (
	"github.com/nbaird/cdclsat/assign"
	"github.com/nbaird/cdclsat/lit"
)

// queue appends l, marks it and its complement PENDING, and fixes
// their truth values: which one of the pair will settle ACTIVE is
// already known the moment it is queued, well before the propagator
// reaches it at the trail head. This lets a clause discover, while a
// literal is still only PENDING, whether waiting on it will satisfy or
// falsify the clause.
func (s *Solver) queue(l lit.Lit, k assign.Kind) {
	comp := l.Complement()
	s.status[l] = assign.Pending
	s.status[comp] = assign.Pending
	s.truth[l] = assign.Positive
	s.truth[comp] = assign.Negative
	s.kind[l] = k
	s.kind[comp] = k
	s.trail.Push(l)
}

// activate settles l at the current decision level: l becomes ACTIVE,
// its complement DECEASED. Truth values were already fixed when l was
// queued.
func (s *Solver) activate(l lit.Lit) {
	comp := l.Complement()
	s.status[l] = assign.Active
	s.status[comp] = assign.Deceased
	s.level[l.Index()] = s.currentLevel
}

// unassignVar reverts l's variable to AVAILABLE, clearing the level
// backtracking is unwinding past.
func (s *Solver) unassignVar(l lit.Lit) {
	comp := l.Complement()
	s.status[l] = assign.Available
	s.status[comp] = assign.Available
	s.truth[l] = assign.Unassigned
	s.truth[comp] = assign.Unassigned
	s.level[l.Index()] = unassignedLevel
}

// resetPending clears a PENDING pair that was queued but never reached
// the trail head before a conflict truncated the trail underneath it.
func (s *Solver) resetPending(l lit.Lit) {
	if s.status[l] == assign.Pending {
		comp := l.Complement()
		s.status[l] = assign.Available
		s.status[comp] = assign.Available
		s.truth[l] = assign.Unassigned
		s.truth[comp] = assign.Unassigned
	}
}

// registerWatch files c under the watch list of w's complement: c is
// visited when w's complement becomes active, i.e. when w itself is
// falsified.
func (s *Solver) registerWatch(c *Clause, w lit.Lit) {
	comp := w.Complement()
	s.watches[comp] = append(s.watches[comp], c)
}

// extinguish permanently marks c satisfied at decision level 0. Its
// remaining watch-list reference becomes a tombstone, dropped the next
// time that list is walked.
func (s *Solver) extinguish(c *Clause) {
	c.extinct = true
	for _, l := range c.lits {
		s.active[l]--
	}
}
