// Command cdclsat reads a DIMACS CNF file and reports its
// satisfiability using the two-watched-literal, DPLL-style CDCL core
// implemented in package solver.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/nbaird/cdclsat/config"
	"github.com/nbaird/cdclsat/dimacs"
	"github.com/nbaird/cdclsat/lit"
	"github.com/nbaird/cdclsat/report"
	"github.com/nbaird/cdclsat/solver"
)

func flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "print the satisfying model when the formula is SAT",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "pretty-print the assignment record on every decision and conflict",
		},
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "cdclsat"
	app.Usage = "a two-watched-literal CDCL SAT solver"
	app.Version = "0.1.0"
	app.Flags = flags()
	app.ArgsUsage = "DIMACS_FILE"

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			cli.ShowAppHelpAndExit(c, 2)
		}

		cfg := config.New()
		cfg.Verbose = c.Bool("verbose")
		cfg.TraceDecisions = c.Bool("trace")

		path := c.Args().Get(0)
		f, err := os.Open(path)
		if err != nil {
			cfg.Logger.Fatalf("cdclsat: %v", err)
		}
		defer f.Close()

		problem, err := dimacs.Parse(f)
		if err != nil {
			cfg.Logger.Fatalf("cdclsat: %v", err)
		}

		s := solver.New(cfg, problem.NumVars)
		if problem.TrivialUnsat {
			verdict, stats := report.Measure(s, func() solver.Verdict { return solver.Unsat })
			report.New(os.Stderr, cfg.Logger, cfg.Verbose).Emit(verdict, nil, stats)
			return nil
		}

		for _, clause := range problem.Clauses {
			s.AddClause(toLits(clause))
		}
		for _, unit := range problem.Units {
			s.AddUnit(lit.FromDIMACS(unit))
		}

		verdict, stats := report.Measure(s, s.Solve)

		var model []int
		if verdict == solver.Sat {
			model = s.Answer()
		}
		reporter := report.New(os.Stderr, cfg.Logger, cfg.Verbose)
		reporter.Emit(verdict, model, stats)
		if cfg.TraceDecisions {
			reporter.Explain(stats)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func toLits(clause []int) []lit.Lit {
	lits := make([]lit.Lit, len(clause))
	for i, v := range clause {
		lits[i] = lit.FromDIMACS(v)
	}
	return lits
}
