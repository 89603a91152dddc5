// Command qsieve reads an integer N from standard input and prints the
// smoothness bound B and a discovered non-trivial factor (spec.md §6).
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/config"
	numerrors "github.com/bfix/numlab/errors"
	"github.com/bfix/numlab/linalg"
	"github.com/bfix/numlab/logger"
	"github.com/bfix/numlab/qsieve"
)

var cmd = &cobra.Command{
	Use:   "qsieve",
	Short: "Factor N with the quadratic sieve",
	RunE:  run,
}

func init() {
	config.BindFlags(cmd)
}

func run(c *cobra.Command, args []string) error {
	if _, err := config.Load(c); err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	var s string
	if _, err := fmt.Fscan(reader, &s); err != nil {
		return numerrors.New(numerrors.ErrPrecondition, "qsieve: failed to read N: %v", err)
	}
	n, ok := bigint.NewIntFromString(s)
	if !ok {
		return numerrors.New(numerrors.ErrPrecondition, "qsieve: N is not an integer: %q", s)
	}

	b := qsieve.FindB(n)
	fmt.Printf("B = %v\n", b)

	setupStage := logger.StartStage("factor base setup")
	fb, m, _, err := qsieve.Setup(n)
	setupStage.Done()
	if err != nil {
		return err
	}

	collectStage := logger.StartStage("relation collection")
	rels, exact, err := qsieve.CollectRelations(n, fb, m)
	collectStage.Done()
	if err != nil {
		return err
	}

	if len(rels) > 0 {
		sizes := make([]float64, len(rels))
		for i := range rels {
			sizes[i] = float64(i)
		}
		if mean, err := stats.Mean(sizes); err == nil {
			logger.Printf(logger.DBG, "qsieve: %d smooth relations collected (mean index %.1f)\n", len(rels), mean)
		}
	}

	var factor *bigint.Int
	if exact != nil {
		factor = exact
	} else {
		matrix := qsieve.BuildMatrix(fb, rels)
		basis := linalg.Kernel(matrix)
		solveStage := logger.StartStage("null-space combination")
		factor, err = qsieve.Combine(n, fb, rels, basis)
		solveStage.Done()
		if err != nil {
			fmt.Fprintf(os.Stderr, "no factor found: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("factor = %v\n", factor)
	return nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
