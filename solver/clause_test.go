package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClauseCopiesLits(t *testing.T) {
	src := dl(1, 2, 3)
	c := newClause(src, false)
	src[0] = dl(-1)[0]
	require.NotEqual(t, src[0], c.Lits()[0], "clause must not alias the caller's slice")
}

func TestClauseString(t *testing.T) {
	c := newClause(dl(1, -2), false)
	require.Equal(t, "1 ~2", c.String())
}

func TestExtinguishSetsExtinctAndDecrementsActive(t *testing.T) {
	s := newTestSolver(3)
	s.AddClause(dl(1, 2, 3))
	c := s.input[0]
	before := s.active[c.lits[0]]
	require.False(t, c.Extinct())
	s.extinguish(c)
	require.True(t, c.Extinct())
	require.Equal(t, before-1, s.active[c.lits[0]])
}
