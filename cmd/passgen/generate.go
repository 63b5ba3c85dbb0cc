package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/passwords/core/config"
	"github.com/dmitrymomot/passwords/core/logger"
	"github.com/dmitrymomot/passwords/pkg/password"
	"github.com/dmitrymomot/passwords/pkg/randsource"
)

// generateConfig is the environment the generate command reads.
type generateConfig struct {
	Password  password.Config
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

type generateOptions struct {
	upper   int
	lower   int
	symbols int
	numbers int
	count   int
}

func newGenerateCmd() *cobra.Command {
	var opt generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one or more passwords",
		Long: `Print passwords, one per line. Quotas that are not given on the command line
come from PASSWORD_UPPER, PASSWORD_LOWER, PASSWORD_SYMBOLS and PASSWORD_NUMBERS.
Negative quotas count as zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg generateConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			params := opt.parameters(cmd.Flags(), cfg.Password.Defaults())

			if opt.count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", opt.count)
			}

			// Stdout carries the passwords, so diagnostics go to stderr.
			log := newCLILogger(cfg, cmd.ErrOrStderr())
			gen, err := password.New(randsource.New(), password.WithLogger(log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for range opt.count {
				pw, err := gen.Generate(cmd.Context(), &params)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, pw)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opt.upper, "upper", "u", 0, "Number of upper case letters")
	cmd.Flags().IntVarP(&opt.lower, "lower", "l", 0, "Number of lower case letters")
	cmd.Flags().IntVarP(&opt.symbols, "symbols", "s", 0, "Number of symbols")
	cmd.Flags().IntVarP(&opt.numbers, "numbers", "n", 0, "Number of digits")
	cmd.Flags().IntVarP(&opt.count, "count", "c", 1, "Number of passwords to print")

	return cmd
}

// parameters overlays explicitly set flags on the configured defaults.
func (o generateOptions) parameters(flags *pflag.FlagSet, defaults password.Parameters) password.Parameters {
	p := defaults
	if flags.Changed("upper") {
		p.UpperCase = o.upper
	}
	if flags.Changed("lower") {
		p.LowerCase = o.lower
	}
	if flags.Changed("symbols") {
		p.Symbols = o.symbols
	}
	if flags.Changed("numbers") {
		p.Numbers = o.numbers
	}
	return p
}

func newCLILogger(cfg generateConfig, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(w),
	}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}
