package solver

// Stats is a snapshot of the search counters the design requires
// external reporting to surface: conflicts, decisions and unit
// propagations. Wall-clock time and peak RSS are not the solver's
// concern; package report measures those around the Solve call.
type Stats struct {
	Conflicts    int
	Decisions    int
	UnitProps    int
	Propagations int
	Constrs      int
	Learnts      int
}

// Stats returns the current search counters.
func (s *Solver) Stats() Stats {
	return Stats{
		Conflicts:    s.conflicts,
		Decisions:    s.decisions,
		UnitProps:    s.unitProps,
		Propagations: s.propagations,
		Constrs:      s.NConstrs(),
		Learnts:      s.NLearnts(),
	}
}
