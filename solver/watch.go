package solver

import "github.com/nbaird/cdclsat/assign"

// propagate drains the trail, watching exactly two literals per clause.
// It returns the first falsified clause it finds, or nil once the
// trail is exhausted without conflict.
//
// For each literal l reaching the trail head, l is activated and every
// clause on watch_list(l) - the clauses currently watching l's
// complement - is revisited:
//
//  1. normalize so w0, the falsified slot, sits at lits[0];
//  2. if the other watch w1 is already ACTIVE, the clause is satisfied:
//     retain the watch, and if w1 settled at level 0 the satisfaction
//     is permanent, so extinguish the clause instead;
//  3. otherwise scan the remaining literals for a replacement watch,
//     again extinguishing on a level-0 satisfying literal;
//  4. failing a replacement, the clause is unit under w1: queue it if
//     w1 is still available, or report a conflict if w1 is already
//     pending in the opposite direction.
func (s *Solver) propagate() *Clause {
	for !s.trail.Exhausted() {
		l := s.trail.HeadLit()
		s.activate(l)
		s.propagations++

		watchers := s.watches[l]
		s.watches[l] = nil
		kept := make([]*Clause, 0, len(watchers))

		for i := 0; i < len(watchers); i++ {
			c := watchers[i]
			if c.extinct {
				continue
			}

			if c.lits[0] != l.Complement() {
				c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
			}
			w1 := c.lits[1]

			if s.status[w1] == assign.Active {
				if s.level[w1.Index()] == 0 {
					s.extinguish(c)
				} else {
					kept = append(kept, c)
				}
				continue
			}

			if s.tryRewatch(c) {
				continue
			}

			// Unit (or conflict) under w1.
			kept = append(kept, c)
			switch s.status[w1] {
			case assign.Available:
				s.unitProps++
				s.queue(w1, assign.Propagation)
			case assign.Pending:
				if s.truth[w1] == assign.Negative {
					kept = append(kept, watchers[i+1:]...)
					s.watches[l] = kept
					return c
				}
				// truth == Positive: already scheduled by another clause.
			}
		}
		s.watches[l] = kept
		s.trail.AdvanceHead()
	}
	return nil
}

// tryRewatch scans c's non-watched literals for a new watch. It
// returns true if it either extinguished c or found a replacement,
// meaning the caller has nothing further to do with c on this pass.
func (s *Solver) tryRewatch(c *Clause) bool {
	for j := 2; j < len(c.lits); j++ {
		cand := c.lits[j]
		switch {
		case s.status[cand] == assign.Active && s.level[cand.Index()] == 0:
			s.extinguish(c)
			return true
		case s.status[cand] == assign.Pending, s.status[cand] == assign.Available,
			s.status[cand] == assign.Active && s.truth[cand] == assign.Positive:
			c.lits[0], c.lits[j] = c.lits[j], c.lits[0]
			s.registerWatch(c, c.lits[0])
			return true
		}
	}
	return false
}
