package solver

import (
	"github.com/kr/pretty"

	"github.com/nbaird/cdclsat/lit"
)

// dumpEntry is a plain snapshot of one variable's assignment record,
// shaped for pretty.Println. Watch-list sizes are included rather than
// the clauses themselves, which pretty-print far too large to read.
type dumpEntry struct {
	Var        int
	Status     string
	Truth      string
	Kind       string
	Level      int
	ActivePos  int
	ActiveNeg  int
	WatchesPos int
	WatchesNeg int
}

// Dump logs label at Debug level and pretty-prints the current
// assignment model to stdout. Only called when TraceDecisions is set: it walks every
// variable rather than just the trail, so a decision or conflict shows
// the whole board, not just what changed.
func (s *Solver) Dump(label string) {
	entries := make([]dumpEntry, s.numVars)
	for v := 0; v < s.numVars; v++ {
		pos := lit.New(v, false)
		neg := pos.Complement()
		entries[v] = dumpEntry{
			Var:        v + 1,
			Status:     s.status[pos].String(),
			Truth:      s.truth[pos].String(),
			Kind:       s.kind[pos].String(),
			Level:      s.level[v],
			ActivePos:  s.active[pos],
			ActiveNeg:  s.active[neg],
			WatchesPos: len(s.watches[pos]),
			WatchesNeg: len(s.watches[neg]),
		}
	}
	s.logger.Debugf("solver dump: %s", label)
	pretty.Println(entries)
}
