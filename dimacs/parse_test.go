package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Problem {
	t.Helper()
	p, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	return p
}

func TestParseIgnoresCommentsAndHeader(t *testing.T) {
	p := mustParse(t, "c a comment\nc another\np cnf 3 2\n1 2 0\n-2 3 0\n")
	want := &Problem{NumVars: 3, Clauses: [][]int{{1, 2}, {-2, 3}}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseZeroClausesIsSatisfiableProblem(t *testing.T) {
	p := mustParse(t, "p cnf 5 0\n")
	require.Equal(t, 5, p.NumVars)
	require.Empty(t, p.Clauses)
	require.Empty(t, p.Units)
	require.False(t, p.TrivialUnsat)
}

func TestParseZeroVarsWithClausesIsUnsat(t *testing.T) {
	p := mustParse(t, "p cnf 0 1\n")
	require.True(t, p.TrivialUnsat)
}

func TestParseEmptyClauseIsUnsat(t *testing.T) {
	p := mustParse(t, "p cnf 2 1\n0\n")
	require.True(t, p.TrivialUnsat)
}

func TestParseUnitClausesAreSplitOut(t *testing.T) {
	p := mustParse(t, "p cnf 2 2\n1 0\n1 -2 0\n")
	require.Equal(t, []int{1}, p.Units)
	require.Equal(t, [][]int{{1, -2}}, p.Clauses)
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 0\n"))
	require.Error(t, err)
}

func TestParseRejectsLiteralOutOfRange(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 3 0\n"))
	require.Error(t, err)
}

func TestParseRejectsUnterminatedClause(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 2\n"))
	require.Error(t, err)
}
