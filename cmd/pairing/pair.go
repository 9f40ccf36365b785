package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pairing/pair"
	"github.com/katalvlaran/pairing/report"
)

func newPairCmd(a *app) *cobra.Command {
	var sum float64

	cmd := &cobra.Command{
		Use:   "pair <value>",
		Short: "Describe the pair made of value and its complement",
		Long: `pair prints the long report of one number pair. The value is
clamped into [0, sum] and the second number is sum - value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			if !cmd.Flags().Changed("sum") {
				sum = a.cfg.Sum
			}
			if math.IsNaN(sum) || math.IsInf(sum, 0) {
				return fmt.Errorf("invalid sum %v", sum)
			}

			p := pair.New(value, sum)
			a.logger.Debug("pair built",
				zap.Float64("value", value),
				zap.Float64("first", p.First()),
				zap.Float64("second", p.Second()),
			)

			_, err = io.WriteString(cmd.OutOrStdout(), report.PairLong(p))
			return err
		},
	}

	cmd.Flags().Float64Var(&sum, "sum", pair.DefaultSum, "sum the pair adds up to (defaults to the configured sum)")

	return cmd
}
