// Package testvectors loads the plain-text, whitespace-separated
// integer test-vector files spec.md §6 names: extended_gcd.txt,
// inverso_modular.txt, exp_binaria.txt, bsgs.txt, primes.txt.
package testvectors

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bfix/numlab/bigint"
	numerrors "github.com/bfix/numlab/errors"
)

// ReadRows parses r as whitespace-separated integers, one row per
// non-blank line. It does not validate column counts; callers convert
// rows into their typed case structs.
func ReadRows(r io.Reader) ([][]*bigint.Int, error) {
	var rows [][]*bigint.Int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		row := make([]*bigint.Int, len(fields))
		for i, tok := range fields {
			v, ok := bigint.NewIntFromString(tok)
			if !ok {
				return nil, numerrors.New(numerrors.ErrPrecondition, "testvectors: invalid integer token %q", tok)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadFile is ReadRows over a file path.
func ReadFile(path string) ([][]*bigint.Int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRows(f)
}

// ExtendedGCDCase is one row of extended_gcd.txt: a b x y d.
type ExtendedGCDCase struct{ A, B, X, Y, D *bigint.Int }

// LoadExtendedGCD parses extended_gcd.txt.
func LoadExtendedGCD(path string) ([]ExtendedGCDCase, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases := make([]ExtendedGCDCase, 0, len(rows))
	for _, r := range rows {
		if len(r) != 5 {
			return nil, numerrors.New(numerrors.ErrPrecondition, "extended_gcd.txt: want 5 columns, got %d", len(r))
		}
		cases = append(cases, ExtendedGCDCase{A: r[0], B: r[1], X: r[2], Y: r[3], D: r[4]})
	}
	return cases, nil
}

// InverseModularCase is one row of inverso_modular.txt: a n inv.
type InverseModularCase struct{ A, N, Inv *bigint.Int }

// LoadInverseModular parses inverso_modular.txt.
func LoadInverseModular(path string) ([]InverseModularCase, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases := make([]InverseModularCase, 0, len(rows))
	for _, r := range rows {
		if len(r) != 3 {
			return nil, numerrors.New(numerrors.ErrPrecondition, "inverso_modular.txt: want 3 columns, got %d", len(r))
		}
		cases = append(cases, InverseModularCase{A: r[0], N: r[1], Inv: r[2]})
	}
	return cases, nil
}

// PowModCase is one row of exp_binaria.txt: b e n result.
type PowModCase struct{ B, E, N, Result *bigint.Int }

// LoadPowMod parses exp_binaria.txt.
func LoadPowMod(path string) ([]PowModCase, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases := make([]PowModCase, 0, len(rows))
	for _, r := range rows {
		if len(r) != 4 {
			return nil, numerrors.New(numerrors.ErrPrecondition, "exp_binaria.txt: want 4 columns, got %d", len(r))
		}
		cases = append(cases, PowModCase{B: r[0], E: r[1], N: r[2], Result: r[3]})
	}
	return cases, nil
}

// BSGSCase is one row of bsgs.txt: g x h p, with g^x ≡ h (mod p).
type BSGSCase struct{ G, X, H, P *bigint.Int }

// LoadBSGS parses bsgs.txt.
func LoadBSGS(path string) ([]BSGSCase, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases := make([]BSGSCase, 0, len(rows))
	for _, r := range rows {
		if len(r) != 4 {
			return nil, numerrors.New(numerrors.ErrPrecondition, "bsgs.txt: want 4 columns, got %d", len(r))
		}
		cases = append(cases, BSGSCase{G: r[0], X: r[1], H: r[2], P: r[3]})
	}
	return cases, nil
}

// PrimeCase is one row of primes.txt: p 0|1 (1 = p is prime).
type PrimeCase struct {
	P       *bigint.Int
	IsPrime bool
}

// LoadPrimes parses primes.txt.
func LoadPrimes(path string) ([]PrimeCase, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases := make([]PrimeCase, 0, len(rows))
	for _, r := range rows {
		if len(r) != 2 {
			return nil, numerrors.New(numerrors.ErrPrecondition, "primes.txt: want 2 columns, got %d", len(r))
		}
		cases = append(cases, PrimeCase{P: r[0], IsPrime: r[1].Equals(bigint.One)})
	}
	return cases, nil
}
