package solver

import (
	"github.com/nbaird/cdclsat/assign"
	"github.com/nbaird/cdclsat/lit"
)

// decide picks the first still-available variable, in index order, and
// queues its positive literal as a fresh decision at a new level. It
// reports false once every variable is settled.
//
// No variable-order heuristic is implemented; the search always tries
// variables in ascending variable index order, matching the design's
// deliberately simple decision rule.
func (s *Solver) decide() bool {
	for v := 0; v < s.numVars; v++ {
		pos := lit.New(v, false)
		if s.status[pos] == assign.Available {
			s.currentLevel++
			s.decisionAt[s.currentLevel] = pos
			s.decisions++
			s.queue(pos, assign.Decision)
			if s.trace {
				s.Dump("decision")
			}
			return true
		}
	}
	return false
}
