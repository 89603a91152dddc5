package linalg

import "github.com/bfix/numlab/bigint"

func bit(x *bigint.Int) int64 {
	return x.Mod(bigint.Two).Int64()
}

// FindPivot starts at row j and returns the first row index i >= j with
// A[i][j] != 0 (mod 2), or -1 if none is found before rows or columns
// are exhausted (spec.md §4.4).
func FindPivot(a Matrix, j int) int {
	if j >= a.Cols() {
		return -1
	}
	for i := j; i < a.Rows(); i++ {
		if bit(a[i][j]) != 0 {
			return i
		}
	}
	return -1
}

// EchelonMod2 performs forward GF(2) row reduction on a and the
// parallel right-hand side b: at each pivot column j it swaps the pivot
// row into position j, then XORs the pivot row (restricted to columns
// >= j) into every lower row that carries a 1 in column j. Returns
// fresh matrix/vector; the inputs are not mutated.
func EchelonMod2(a Matrix, b Vector) (Matrix, Vector) {
	m := a.Clone()
	c := b.Clone()
	rows, cols := m.Rows(), m.Cols()
	limit := rows
	if cols < limit {
		limit = cols
	}
	for j := 0; j < limit; j++ {
		piv := FindPivot(m, j)
		if piv < 0 {
			continue
		}
		m[j], m[piv] = m[piv], m[j]
		c[j], c[piv] = c[piv], c[j]
		for i := j + 1; i < rows; i++ {
			if bit(m[i][j]) == 0 {
				continue
			}
			for k := j; k < cols; k++ {
				m[i][k] = bigint.NewInt((bit(m[i][k]) ^ bit(m[j][k])))
			}
			c[i] = bigint.NewInt(bit(c[i]) ^ bit(c[j]))
		}
	}
	return m, c
}

// SolveMod2 reproduces the source's two-phase elimination verbatim
// (spec.md §9, "solve_mod_2 double-echelon"): echelon a, transpose the
// result, echelon again, and return the resulting right-hand side. This
// is not a standard linear solve; it is preserved for regression
// parity rather than correctness of a general Ax=b system.
func SolveMod2(a Matrix, b Vector) Vector {
	a1, b1 := EchelonMod2(a, b)
	a2, b2 := EchelonMod2(a1.Transpose(), b1)
	_ = a2
	return b2
}

// RREF performs Gaussian elimination over the rationals, returning the
// reduced row-echelon form of a. Used for the dense-over-the-integers
// case rather than the GF(2) sieve path (spec.md §4.4).
func RREF(a Matrix) Matrix {
	m := a.Clone()
	rows, cols := m.Rows(), m.Cols()
	lead := 0
	for r := 0; r < rows && lead < cols; r++ {
		i := r
		for m[i][lead].Equals(bigint.Zero) {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return m
				}
			}
		}
		m[i], m[r] = m[r], m[i]
		pivot := m[r][lead]
		if !pivot.Equals(bigint.Zero) {
			inv, ok := exactInverse(pivot)
			if ok {
				for k := 0; k < cols; k++ {
					m[r][k] = m[r][k].Mul(inv)
				}
			}
		}
		for i := 0; i < rows; i++ {
			if i == r {
				continue
			}
			factor := m[i][lead]
			if factor.Equals(bigint.Zero) {
				continue
			}
			for k := 0; k < cols; k++ {
				m[i][k] = m[i][k].Sub(m[r][k].Mul(factor))
			}
		}
		lead++
	}
	return m
}

// exactInverse returns 1/v when v is +/-1, the only case that keeps
// integer-domain RREF exact without promoting to rationals.
func exactInverse(v *bigint.Int) (*bigint.Int, bool) {
	if v.Equals(bigint.One) {
		return bigint.One, true
	}
	if v.Equals(bigint.One.Neg()) {
		return bigint.One.Neg(), true
	}
	return nil, false
}

// Kernel returns a basis of the right null-space of a over GF(2): every
// v in the result satisfies (A*v) mod 2 == 0, as required by the
// quadratic sieve's relation-combining step (spec.md §4.4, §4.7).
func Kernel(a Matrix) []Vector {
	m := a.Clone()
	rows, cols := m.Rows(), m.Cols()

	pivotCol := make([]int, rows)
	for i := range pivotCol {
		pivotCol[i] = -1
	}
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		piv := -1
		for i := row; i < rows; i++ {
			if bit(m[i][col]) != 0 {
				piv = i
				break
			}
		}
		if piv < 0 {
			continue
		}
		m[row], m[piv] = m[piv], m[row]
		for i := 0; i < rows; i++ {
			if i != row && bit(m[i][col]) != 0 {
				for k := col; k < cols; k++ {
					m[i][k] = bigint.NewInt(bit(m[i][k]) ^ bit(m[row][k]))
				}
			}
		}
		pivotCol[row] = col
		row++
	}
	pivotRows := row

	isPivotCol := make([]bool, cols)
	colOfPivotRow := make(map[int]int)
	for r := 0; r < pivotRows; r++ {
		isPivotCol[pivotCol[r]] = true
		colOfPivotRow[pivotCol[r]] = r
	}

	var basis []Vector
	for free := 0; free < cols; free++ {
		if isPivotCol[free] {
			continue
		}
		v := NewVector(cols)
		v[free] = bigint.One
		for r := 0; r < pivotRows; r++ {
			pc := pivotCol[r]
			if bit(m[r][free]) != 0 {
				v[pc] = bigint.One
			}
		}
		basis = append(basis, v)
	}
	return basis
}
