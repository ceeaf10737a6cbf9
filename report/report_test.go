package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/nbaird/cdclsat/solver"
)

func TestEmitSatPrintsModelWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, logrus.New(), true)
	r.Emit(solver.Sat, []int{1, -2, 3}, Stats{Elapsed: 2 * time.Second})

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "v SAT\n"))
	require.Contains(t, out, "1 -2 3 0\n")
	require.Contains(t, out, "Conflicts:")
}

func TestEmitUnsatOmitsModel(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, logrus.New(), true)
	r.Emit(solver.Unsat, nil, Stats{})

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "v UNSAT\n"))
	require.NotContains(t, out, "0\n0\n")
}

func TestEmitSatHidesModelWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, logrus.New(), false)
	r.Emit(solver.Sat, []int{1, 2}, Stats{})
	require.NotContains(t, buf.String(), "1 2 0")
}
