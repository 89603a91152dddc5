package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/factorization"
	"github.com/bfix/numlab/modular"
	"github.com/bfix/numlab/rng"
)

func TestFindGeneratorProducesPrimitiveRoot(t *testing.T) {
	// n = 11, phi = 10 = 2 * 5.
	n := bigint.NewInt(11)
	phi := bigint.NewInt(10)
	f := factorization.NewPrimePowers()
	f.Set(bigint.NewInt(2), 1)
	f.Set(bigint.NewInt(5), 1)
	src := rng.NewSeeded([]byte("generator-test"))

	g, err := FindGenerator(n, phi, f, 2*time.Second, src)
	require.NoError(t, err)

	order, err := modular.Order(g, n, phi, f.Primes())
	require.NoError(t, err)
	require.True(t, order.Equals(phi), "generator %v should have full order %v, got %v", g, phi, order)
}

func TestFindGeneratorPrimeModulus(t *testing.T) {
	// n = 41, phi = 40 = 2^3 * 5.
	n := bigint.NewInt(41)
	phi := bigint.NewInt(40)
	f := factorization.NewPrimePowers()
	f.Set(bigint.NewInt(2), 3)
	f.Set(bigint.NewInt(5), 1)
	src := rng.NewSeeded([]byte("generator-test-2"))

	g, err := FindGenerator(n, phi, f, 2*time.Second, src)
	require.NoError(t, err)
	order, err := modular.Order(g, n, phi, f.Primes())
	require.NoError(t, err)
	require.True(t, order.Equals(phi))
}
