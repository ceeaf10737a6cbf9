package solver

import (
	"github.com/nbaird/cdclsat/assign"
	"github.com/nbaird/cdclsat/lit"
)

// repairConflict implements the design's DPLL-style learning: no
// resolution, no first-UIP analysis. The learned clause is simply the
// negation of every decision literal still standing, ordered from the
// deepest level down, and the search backs up exactly one level and
// flips the decision it just abandoned.
//
// It returns false when the conflict occurs at decision level 0, which
// is the terminal UNSAT condition.
func (s *Solver) repairConflict(_ *Clause) bool {
	s.conflicts++
	d := s.currentLevel
	if d == 0 {
		return false
	}

	if d > 1 {
		learnedLits := make([]lit.Lit, d)
		for level := 1; level <= d; level++ {
			learnedLits[d-level] = s.decisionAt[level].Complement()
		}
		s.learned = append(s.learned, s.newLearnedClause(learnedLits))
	}

	flipped := s.backtrack(d - 1)
	s.queue(flipped.Complement(), assign.ConflictFlip)
	return true
}

// newLearnedClause builds and watches a clause derived by conflict
// repair. Its two highest-level literals occupy the watched slots,
// which is where the flip queued right after learning will make one of
// them true.
func (s *Solver) newLearnedClause(lits []lit.Lit) *Clause {
	c := newClause(lits, true)
	for _, l := range c.lits {
		s.active[l]++
	}
	s.registerWatch(c, c.lits[0])
	s.registerWatch(c, c.lits[1])
	return c
}

// backtrack unwinds the trail to decision level target, unassigning
// every entry above it, and returns the decision literal that headed
// the level just abandoned so the caller can flip it.
//
// Entries queued but not yet reached by the trail head when the
// conflict was found are also reset to AVAILABLE; truncating the trail
// underneath them would otherwise strand them PENDING forever.
func (s *Solver) backtrack(target int) lit.Lit {
	origTail := s.trail.Tail()
	h := s.trail.Head()
	for h >= 0 && s.level[s.trail.At(h).Index()] > target {
		s.unassignVar(s.trail.At(h))
		h--
	}
	h++
	flipped := s.trail.At(h)

	for i := h + 1; i < origTail; i++ {
		s.resetPending(s.trail.At(i))
	}

	s.trail.TruncateTo(h)
	s.currentLevel = target
	return flipped
}
