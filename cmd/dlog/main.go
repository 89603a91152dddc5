// Command dlog reads N and a target h from standard input and prints
// the discrete-log pipeline's intermediate results (spec.md §6).
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bfix/numlab/bigint"
	"github.com/bfix/numlab/config"
	numerrors "github.com/bfix/numlab/errors"
	"github.com/bfix/numlab/dlog"
	"github.com/bfix/numlab/logger"
	"github.com/bfix/numlab/rng"
)

var cmd = &cobra.Command{
	Use:   "dlog",
	Short: "Solve a discrete logarithm in (Z/nZ)* for the smallest prime n > N",
	RunE:  run,
}

func init() {
	config.BindFlags(cmd)
}

func run(c *cobra.Command, args []string) error {
	cfg, err := config.Load(c)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	N, err := readInt(reader, "N")
	if err != nil {
		return err
	}
	h, err := readInt(reader, "h")
	if err != nil {
		return err
	}

	var src rng.Source
	if cfg.Seed != "" {
		src = rng.NewSeeded([]byte(cfg.Seed))
	} else {
		src = rng.Crypto()
	}

	stage := logger.StartStage("discrete-log pipeline")
	res, err := dlog.Solve(N, h, dlog.Deadlines{
		PollardRho: cfg.PollardRhoTimeout,
		Generator:  cfg.GeneratorTimeout,
	}, src)
	stage.Done()
	if err != nil {
		if numerrors.Is(err, numerrors.ErrTimeout) {
			fmt.Fprintf(os.Stderr, "timeout: %v\n", err)
			os.Exit(1)
		}
		return err
	}

	fmt.Printf("n = %v\n", res.N)
	fmt.Printf("miller-rabin reps = %d\n", res.Reps)
	fmt.Printf("n-1 = %v\n", formatPrimePowers(res.Phi))
	fmt.Printf("g = %v\n", res.G)
	fmt.Printf("x = %v\n", res.X)
	return nil
}

func formatPrimePowers(pp map[string]int) string {
	s := "{"
	first := true
	for k, e := range pp {
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("%s: %d", k, e)
	}
	return s + "}"
}

func readInt(r *bufio.Reader, name string) (*bigint.Int, error) {
	var s string
	if _, err := fmt.Fscan(r, &s); err != nil {
		return nil, numerrors.New(numerrors.ErrPrecondition, "dlog: failed to read %s: %v", name, err)
	}
	v, ok := bigint.NewIntFromString(s)
	if !ok {
		return nil, numerrors.New(numerrors.ErrPrecondition, "dlog: %s is not an integer: %q", name, s)
	}
	return v, nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
