// Package dimacs reads the DIMACS CNF text format into the primitives
// package solver consumes. It owns every textual concern the core
// design explicitly keeps out of scope: comments, the problem header,
// and the handful of trivial verdicts a formula's shape can decide
// before a single variable is ever assigned.
package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Problem is a parsed CNF instance. Units holds width-one clauses in
// signed DIMACS form: per the contract, these are never stored as
// clauses, only handed to the solver as initial propagations. Clauses
// holds every clause of width two or more, unmodified from the input
// order. TrivialUnsat is set for the two shapes the format can express
// that are unsatisfiable on their face: an explicit empty clause, or a
// declared variable count of zero alongside at least one clause.
type Problem struct {
	NumVars      int
	Clauses      [][]int
	Units        []int
	TrivialUnsat bool
}

// ParseError reports a malformed DIMACS document, with the 1-indexed
// line number it was found on.
type ParseError struct {
	Line int
	msg  string
}

func (e *ParseError) Error() string {
	return "dimacs: line " + strconv.Itoa(e.Line) + ": " + e.msg
}

// Parse reads a DIMACS CNF document from r.
//
// Comment lines (starting with "c") and the problem line ("p cnf
// NUM_VARS NUM_CLAUSES") are consumed and discarded once seen; every
// other non-blank line is a clause, a whitespace-separated run of
// signed integers terminated by a trailing 0. A clause of width zero
// (a bare "0") marks the formula UNSAT and parsing stops there. Width-
// one clauses are split out into Units rather than kept in Clauses.
func Parse(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	p := &Problem{}
	sawHeader := false
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "c") {
			continue
		}
		if strings.HasPrefix(text, "p") {
			if sawHeader {
				return nil, &ParseError{line, "duplicate problem line"}
			}
			nv, nc, err := parseHeader(text)
			if err != nil {
				return nil, &ParseError{line, err.Error()}
			}
			p.NumVars = nv
			sawHeader = true
			if nc == 0 {
				return p, nil
			}
			if nv == 0 {
				p.TrivialUnsat = true
			}
			continue
		}
		if !sawHeader {
			return nil, &ParseError{line, "clause before problem line"}
		}

		lits, err := parseInts(text)
		if err != nil {
			return nil, &ParseError{line, err.Error()}
		}
		if len(lits) == 0 || lits[len(lits)-1] != 0 {
			return nil, &ParseError{line, "clause not terminated with 0"}
		}
		lits = lits[:len(lits)-1]

		if !p.TrivialUnsat {
			for _, l := range lits {
				v := l
				if v < 0 {
					v = -v
				}
				if v == 0 || v > p.NumVars {
					return nil, &ParseError{line, "literal out of range 1.." + strconv.Itoa(p.NumVars)}
				}
			}
		}

		switch len(lits) {
		case 0:
			p.TrivialUnsat = true
			return p, nil
		case 1:
			p.Units = append(p.Units, lits[0])
		default:
			p.Clauses = append(p.Clauses, lits)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: reading input")
	}
	if !sawHeader {
		return nil, errors.New("dimacs: missing problem line")
	}
	return p, nil
}

func parseHeader(text string) (numVars, numClauses int, err error) {
	fields := strings.Fields(text)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
		return 0, 0, errors.New(`malformed problem line, want "p cnf NUM_VARS NUM_CLAUSES"`)
	}
	numVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, errors.Wrap(err, "num_vars")
	}
	numClauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, errors.Wrap(err, "num_clauses")
	}
	if numVars < 0 || numClauses < 0 {
		return 0, 0, errors.New("negative count in problem line")
	}
	return numVars, numClauses, nil
}

func parseInts(text string) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "literal %q", f)
		}
		out[i] = v
	}
	return out, nil
}
