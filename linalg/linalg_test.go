package linalg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/bfix/numlab/bigint"
)

var bigIntComparer = cmp.Comparer(func(a, b *bigint.Int) bool {
	return a.Equals(b)
})

func row(vals ...int64) Vector {
	v := make(Vector, len(vals))
	for i, x := range vals {
		v[i] = bigint.NewInt(x)
	}
	return v
}

func matrix(rows ...Vector) Matrix {
	return Matrix(rows)
}

func TestVectorOps(t *testing.T) {
	a := row(1, 2, 3)
	b := row(4, 5, 6)
	require.Equal(t, row(5, 7, 9), a.Add(b))
	require.Equal(t, row(2, 4, 6), a.Scale(bigint.Two))
	require.Equal(t, row(4, 10, 18), a.Mul(b))
	require.True(t, row(0, 0, 0).IsZero())
	require.False(t, a.IsZero())
}

func TestTransposeAndMul(t *testing.T) {
	a := matrix(row(1, 2), row(3, 4), row(5, 6))
	tr := a.Transpose()
	want := matrix(row(1, 3, 5), row(2, 4, 6))
	if diff := cmp.Diff(want, tr, bigIntComparer); diff != "" {
		t.Errorf("transpose mismatch (-want +got):\n%s", diff)
	}

	identity := matrix(row(1, 0), row(0, 1))
	if diff := cmp.Diff(a, a.Mul(identity), bigIntComparer); diff != "" {
		t.Errorf("a*I mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPivot(t *testing.T) {
	a := matrix(row(0, 1), row(1, 0))
	require.Equal(t, 1, FindPivot(a, 0))
	require.Equal(t, -1, FindPivot(a, 1)) // row 1 col 1 is 0
}

func TestEchelonMod2(t *testing.T) {
	a := matrix(row(1, 1, 0), row(1, 0, 1), row(0, 1, 1))
	b := row(1, 0, 1)
	m, c := EchelonMod2(a, b)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, len(c))
	// pivot structure: first two rows triangular on first two columns.
	require.Equal(t, int64(1), m[0][0].Int64())
	require.Equal(t, int64(0), m[1][0].Int64())
}

func TestKernelSatisfiesNullSpace(t *testing.T) {
	// Rows: x1+x2=0, x2+x3=0 (mod 2) over 3 unknowns -> 1-dim kernel.
	a := matrix(row(1, 1, 0), row(0, 1, 1))
	basis := Kernel(a)
	require.NotEmpty(t, basis)
	for _, v := range basis {
		prod := a.Mul(matrixFromColumn(v)).Mod(bigint.Two)
		for _, row := range prod {
			require.True(t, row[0].Equals(bigint.Zero))
		}
	}
}

func matrixFromColumn(v Vector) Matrix {
	m := make(Matrix, len(v))
	for i, x := range v {
		m[i] = Vector{x}
	}
	return m
}

func TestRREFIdentity(t *testing.T) {
	a := matrix(row(2, 0), row(0, 1))
	r := RREF(a)
	require.Equal(t, int64(1), r[0][0].Int64())
	require.Equal(t, int64(1), r[1][1].Int64())
}

func TestSolveMod2RunsVerbatimDoubleEchelon(t *testing.T) {
	a := matrix(row(1, 1, 0), row(1, 0, 1), row(0, 1, 1))
	b := row(1, 0, 1)
	result := SolveMod2(a, b)
	require.Len(t, result, 3)
}
