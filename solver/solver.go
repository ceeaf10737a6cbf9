// Package solver implements the assignment model, clause store, trail,
// two-watched-literal propagator and DPLL-style search driver described
// by the core design. It has no notion of DIMACS text, statistics
// reporting or process exit; those are the callers' job (packages
// dimacs, report and cmd/cdclsat).
package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/nbaird/cdclsat/assign"
	"github.com/nbaird/cdclsat/config"
	"github.com/nbaird/cdclsat/lit"
	"github.com/nbaird/cdclsat/trail"
)

// unassignedLevel is the sentinel decision level of a variable that has
// never been assigned, or that has been unassigned by backtracking.
const unassignedLevel = -1

// Verdict is the final answer a completed search reaches.
type Verdict int

const (
	// Unknown is returned only if Solve is asked about before running.
	Unknown Verdict = iota
	Sat
	Unsat
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Solver holds the assignment model, clause store, trail and search
// state for a single CNF instance. It is not safe for concurrent use.
type Solver struct {
	logger *logrus.Logger
	trace  bool

	numVars int

	// Per-literal assignment fields, indexed by lit.Lit (length 2*numVars).
	status []assign.Status
	truth  []assign.Truth
	kind   []assign.Kind
	active []int
	watches [][]*Clause

	// Per-variable decision level, indexed by lit.Lit.Index() (length numVars).
	level []int

	trail        *trail.Trail
	currentLevel int
	decisionAt   []lit.Lit // indexed by decision level, 1..numVars

	input   []*Clause
	learned []*Clause

	rootConflict bool
	verdict      Verdict

	conflicts    int
	decisions    int
	unitProps    int
	propagations int
}

// New returns a Solver ready to accept clauses over numVars variables.
func New(cfg *config.Config, numVars int) *Solver {
	n2 := numVars * 2
	s := &Solver{
		logger:     cfg.Logger,
		trace:      cfg.TraceDecisions,
		numVars:    numVars,
		status:     make([]assign.Status, n2),
		truth:      make([]assign.Truth, n2),
		kind:       make([]assign.Kind, n2),
		active:     make([]int, n2),
		watches:    make([][]*Clause, n2),
		level:      make([]int, numVars),
		trail:      trail.New(n2),
		decisionAt: make([]lit.Lit, numVars+1),
		verdict:    Unknown,
	}
	for i := range s.level {
		s.level[i] = unassignedLevel
	}
	return s
}

// NVars returns the number of variables the solver was built for.
func (s *Solver) NVars() int { return s.numVars }

// NConstrs returns the number of input clauses.
func (s *Solver) NConstrs() int { return len(s.input) }

// NLearnts returns the number of learned clauses.
func (s *Solver) NLearnts() int { return len(s.learned) }

// NConflicts returns the number of conflicts encountered.
func (s *Solver) NConflicts() int { return s.conflicts }

// NDecisions returns the number of decisions made.
func (s *Solver) NDecisions() int { return s.decisions }

// NUnitProps returns the number of unit propagations performed.
func (s *Solver) NUnitProps() int { return s.unitProps }

// NPropagations returns the number of trail entries the propagator has
// activated.
func (s *Solver) NPropagations() int { return s.propagations }

// AddClause registers an input clause of width two or more. Width-one
// and width-zero clauses are the caller's responsibility (see package
// dimacs, which extracts them before the solver ever sees this CNF).
func (s *Solver) AddClause(lits []lit.Lit) {
	c := newClause(lits, false)
	for _, l := range c.lits {
		s.active[l]++
	}
	s.registerWatch(c, c.lits[0])
	s.registerWatch(c, c.lits[1])
	s.input = append(s.input, c)
}

// AddUnit injects a literal as an initial, level-0 propagation, exactly
// as the DIMACS reader's width-one clauses are specified to behave. It
// reports false the moment a unit contradicts one already queued or
// already forced, which is recorded as a root-level conflict; Solve
// then reports Unsat without running the propagator.
//
// Both l and its complement go Pending the instant either is queued
// (queue, model.go), so status alone can't tell a repeated unit from
// a contradictory one once the first has been seen. truth can: it was
// fixed at queue time, so a second injection of the same unit reads
// Positive, while a genuine 1/-1 pair reads Negative.
func (s *Solver) AddUnit(l lit.Lit) bool {
	if s.status[l] != assign.Available {
		if s.truth[l] == assign.Negative {
			s.rootConflict = true
			return false
		}
		return true // already forced the same way; redundant unit.
	}
	s.queue(l, assign.Propagation)
	return true
}

// Solve runs the DECIDE/PROPAGATE/CONFLICT/SUCCESS state machine to
// completion and returns the verdict.
func (s *Solver) Solve() Verdict {
	if s.rootConflict {
		s.verdict = Unsat
		return s.verdict
	}

	type state int
	const (
		stateDecide state = iota
		statePropagate
		stateConflict
		stateSuccess
	)

	st := stateDecide
	if !s.trail.Exhausted() {
		st = statePropagate
	}

	var conflicting *Clause
	for {
		switch st {
		case stateDecide:
			if s.decide() {
				st = statePropagate
			} else {
				st = stateSuccess
			}
		case statePropagate:
			if c := s.propagate(); c != nil {
				conflicting = c
				st = stateConflict
			} else {
				st = stateDecide
			}
		case stateConflict:
			if s.trace {
				s.Dump("conflict")
			}
			if s.repairConflict(conflicting) {
				st = statePropagate
			} else {
				s.verdict = Unsat
				return s.verdict
			}
		case stateSuccess:
			s.verdict = Sat
			return s.verdict
		}
	}
}

// Verdict returns the outcome of the most recent Solve call.
func (s *Solver) Verdict() Verdict { return s.verdict }

// Answer returns the satisfying assignment in signed DIMACS form, one
// entry per variable, ordered by variable index. Only meaningful after
// Solve has returned Sat.
func (s *Solver) Answer() []int {
	out := make([]int, s.numVars)
	for v := 0; v < s.numVars; v++ {
		pos := lit.New(v, false)
		if s.status[pos] == assign.Active {
			out[v] = pos.DIMACS()
		} else {
			out[v] = pos.Complement().DIMACS()
		}
	}
	return out
}
