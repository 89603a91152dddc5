// Package config loads the wall-clock and search tunables shared by
// the numlab CLIs from flags and an optional config file, following
// the getamis-alice/example/cggmp pattern of binding cobra flags into
// viper and unmarshalling into a typed struct.
package config

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds every tunable a numlab CLI driver exposes (spec.md §5's
// per-routine deadlines, plus the quadratic sieve's relation-pool
// slack and the Miller-Rabin small-prime sieve bound). cmd/dlog passes
// on Seed, PollardRhoTimeout and GeneratorTimeout; MillerRabinReps,
// BSGSTimeout, SmallSieveBound and QSieveSlack are parsed but no CLI
// passes them to the library, which uses its built-in values.
type Config struct {
	MillerRabinReps   int           `mapstructure:"miller-rabin-reps"`
	PollardRhoTimeout time.Duration `mapstructure:"pollard-rho-timeout"`
	GeneratorTimeout  time.Duration `mapstructure:"generator-timeout"`
	BSGSTimeout       time.Duration `mapstructure:"bsgs-timeout"`
	SmallSieveBound   int           `mapstructure:"small-sieve-bound"`
	QSieveSlack       int           `mapstructure:"qsieve-slack"`
	Seed              string        `mapstructure:"seed"`
}

// Defaults returns the spec's stated defaults: 15s for every divergent
// routine, a 1000-bound small-prime sieve, and reps = 0 (meaning
// "derive from n via primality.DefaultReps").
func Defaults() Config {
	return Config{
		MillerRabinReps:   0,
		PollardRhoTimeout: 15 * time.Second,
		GeneratorTimeout:  15 * time.Second,
		BSGSTimeout:       15 * time.Second,
		SmallSieveBound:   1000,
		QSieveSlack:       5,
	}
}

// BindFlags registers every Config field as a persistent flag on cmd,
// seeded with the spec defaults, so `--pollard-rho-timeout`,
// `--seed`, etc. override a config file or compiled-in default.
func BindFlags(cmd *cobra.Command) {
	d := Defaults()
	cmd.PersistentFlags().Int("miller-rabin-reps", d.MillerRabinReps, "Miller-Rabin repetition count (0 = derive from n)")
	cmd.PersistentFlags().Duration("pollard-rho-timeout", d.PollardRhoTimeout, "deadline for Pollard's rho factorization")
	cmd.PersistentFlags().Duration("generator-timeout", d.GeneratorTimeout, "deadline for generator search")
	cmd.PersistentFlags().Duration("bsgs-timeout", d.BSGSTimeout, "deadline for baby-step/giant-step")
	cmd.PersistentFlags().Int("small-sieve-bound", d.SmallSieveBound, "upper bound for the trial-division sieve")
	cmd.PersistentFlags().Int("qsieve-slack", d.QSieveSlack, "extra relations collected beyond the factor base size")
	cmd.PersistentFlags().String("seed", "", "hex/text seed for deterministic runs (empty = crypto/rand)")
	cmd.PersistentFlags().String("config", "", "optional config file (yaml/json/toml)")
}

// Load binds cmd's flags into viper, optionally reads the file named by
// --config, and unmarshals the result into a Config seeded with
// Defaults().
func Load(cmd *cobra.Command) (*Config, error) {
	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, err
	}
	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	cfg := Defaults()
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
