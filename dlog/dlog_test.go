package dlog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/modular"
	"github.com/bfix/numlab/rng"
)

func TestSolveRoundTrip(t *testing.T) {
	src := rng.NewSeeded([]byte("dlog-pipeline-test"))
	N := bigint.NewInt(50)
	h := bigint.NewInt(7)

	res, err := Solve(N, h, DefaultDeadlines(), src)
	require.NoError(t, err)
	require.True(t, res.N.Cmp(N) > 0)
	require.True(t, res.N.IsEven() == false)

	got, err := modular.PowMod(res.G, res.X, res.N)
	require.NoError(t, err)
	require.True(t, got.Equals(h.Mod(res.N)), "g^x mod n should reproduce h: got %v want %v", got, h)
}
