// Package report prints a completed search's verdict and statistics
// the way the core design's external reporting collaborator is
// specified to: "v SAT" or "v UNSAT" to stderr, followed by a stats
// block, with the process exiting 0 either way. Wall-clock time and
// peak resident set size are measured here, around the Solve call,
// since the solver itself has no notion of either.
package report

import (
	"fmt"
	"io"
	"syscall"
	"time"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"

	"github.com/nbaird/cdclsat/solver"
)

// Reporter prints a solver's outcome and, optionally, its model and a
// pretty-printed trace of the assignment record.
type Reporter struct {
	out     io.Writer
	logger  *logrus.Logger
	verbose bool
}

// New returns a Reporter writing to out.
func New(out io.Writer, logger *logrus.Logger, verbose bool) *Reporter {
	return &Reporter{out: out, logger: logger, verbose: verbose}
}

// Stats is the timing and memory information gathered around a Solve
// call, alongside the solver's own counters.
type Stats struct {
	solver.Stats
	Elapsed time.Duration
	PeakRSS int64
}

// Measure runs solve, wrapping it with wall-clock timing and a peak-RSS
// sample taken once solve returns.
func Measure(s *solver.Solver, solve func() solver.Verdict) (solver.Verdict, Stats) {
	start := time.Now()
	verdict := solve()
	elapsed := time.Since(start)

	var ru syscall.Rusage
	rss := int64(0)
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err == nil {
		// ru_maxrss is reported in KB on Linux; normalize to bytes to
		// match the MB-from-bytes arithmetic in printStats.
		rss = int64(ru.Maxrss) * 1024
	}

	return verdict, Stats{Stats: s.Stats(), Elapsed: elapsed, PeakRSS: rss}
}

// Emit writes the "v SAT"/"v UNSAT" line, the model if verbose and the
// verdict is SAT, and the stats block, matching the design's reporting
// contract line for line.
func (r *Reporter) Emit(verdict solver.Verdict, model []int, stats Stats) {
	switch verdict {
	case solver.Sat:
		fmt.Fprintln(r.out, "v SAT")
		if r.verbose {
			r.printModel(model)
		}
	case solver.Unsat:
		fmt.Fprintln(r.out, "v UNSAT")
	}
	r.printStats(stats)
}

func (r *Reporter) printModel(model []int) {
	for _, l := range model {
		fmt.Fprintf(r.out, "%d ", l)
	}
	fmt.Fprintln(r.out, "0")
}

func (r *Reporter) printStats(s Stats) {
	fmt.Fprintf(r.out, "Conflicts:         %d\n", s.Conflicts)
	fmt.Fprintf(r.out, "Decisions:         %d\n", s.Decisions)
	fmt.Fprintf(r.out, "Unit Propagations: %d\n", s.UnitProps)
	fmt.Fprintf(r.out, "%.1fs %dMb\n", s.Elapsed.Seconds(), s.PeakRSS/1048576)
}

// Explain pretty-prints stats for a human debugging a run, via the
// same kr/pretty dependency the solver's own trace mode uses.
func (r *Reporter) Explain(stats Stats) {
	r.logger.Debug("run stats:")
	pretty.Println(stats)
}
