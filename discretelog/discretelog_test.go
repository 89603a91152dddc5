package discretelog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/factorization"
	"github.com/bfix/numlab/modular"
)

func TestBabyStepGiantStep(t *testing.T) {
	// 3^x ≡ 13 (mod 17); 3 generates (Z/17Z)* with order 16.
	n := bigint.NewInt(17)
	g := bigint.NewInt(3)
	x := bigint.NewInt(4)
	h, err := modular.PowMod(g, x, n)
	require.NoError(t, err)
	got, err := BabyStepGiantStep(g, h, n, bigint.NewInt(16))
	require.NoError(t, err)
	require.True(t, got.Equals(x))
}

func TestPohligHellmanPrimePowerOrder(t *testing.T) {
	// pohlig_hellman_prime_power_order(27, 40, 2, 3, 41) = 4
	g := bigint.NewInt(27)
	h := bigint.NewInt(40)
	p := bigint.NewInt(2)
	n := bigint.NewInt(41)
	x, err := PohligHellmanPrimePower(g, h, p, 3, n)
	require.NoError(t, err)
	require.Equal(t, int64(4), x.Int64())
}

func TestPohligHellmanPrimePowerVerbatimMatchesTight(t *testing.T) {
	g := bigint.NewInt(27)
	h := bigint.NewInt(40)
	p := bigint.NewInt(2)
	n := bigint.NewInt(41)
	verbatim, err := PohligHellmanPrimePower(g, h, p, 3, n)
	require.NoError(t, err)
	tight, err := PohligHellmanPrimePowerTight(g, h, p, 3, n)
	require.NoError(t, err)
	require.True(t, verbatim.Equals(tight), "verbatim BSGS-with-n and corrected BSGS-with-p must agree")
}

func TestPohligHellman(t *testing.T) {
	// pohlig_hellman(15, 100, 101, {2:2, 5:2}) = 50
	g := bigint.NewInt(15)
	h := bigint.NewInt(100)
	n := bigint.NewInt(101)
	f := factorization.NewPrimePowers()
	f.Set(bigint.NewInt(2), 2)
	f.Set(bigint.NewInt(5), 2)
	x, err := PohligHellman(g, h, n, f)
	require.NoError(t, err)
	require.Equal(t, int64(50), x.Int64())
}
