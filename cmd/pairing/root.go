package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pairing/config"
	"github.com/katalvlaran/pairing/report"
	"github.com/katalvlaran/pairing/search"
)

// app carries flag values and the state shared by every command.
type app struct {
	configPath string
	others     bool
	limit      int
	maxRounds  int
	long       bool
	color      bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pairing [sum] [collect-others]",
		Short: "Find the two numbers adding up to a sum with the highest |a-b|·a·b",
		Long: `pairing refines a grid over [0, sum/2] until the best value of
|a-b|·a·b stops improving, then prints the best pair and, optionally, the
runner-up pairs met during the fine rounds.

The sum defaults to 8. The second argument accepts true/false or yes/no.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runSolve,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	f := root.Flags()
	f.BoolVar(&a.others, "others", true, "collect the other top results")
	f.IntVar(&a.limit, "limit", report.DefaultOtherLimit, "number of other results to show")
	f.IntVar(&a.maxRounds, "max-rounds", search.DefaultMaxRounds, "stop refining after this many rounds")
	f.BoolVar(&a.long, "long", false, "print best pairs in the long layout")
	f.BoolVar(&a.color, "color", false, "style headings for a terminal")

	root.AddCommand(newPairCmd(a))

	return root
}

// setup loads the configuration, applies flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("others") {
		cfg.CollectOthers = a.others
	}
	if flags.Changed("limit") {
		cfg.OtherLimit = a.limit
	}
	if flags.Changed("max-rounds") {
		cfg.MaxRounds = a.maxRounds
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := buildLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	return nil
}

// runSolve solves for the configured sum and prints the report.
func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	cfg := a.cfg
	if len(args) > 0 {
		sum, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid sum argument %q: %w", args[0], err)
		}
		cfg.Sum = sum
	}
	if len(args) > 1 {
		collect, err := parseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid collect-others argument %q: %w", args[1], err)
		}
		cfg.CollectOthers = collect
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := a.logger.With(zap.String("run_id", uuid.NewString()))
	start := time.Now()

	res, err := search.Solve(cfg.Sum, cfg.SearchOptions(log.Named("search"))...)
	if err != nil {
		return fmt.Errorf("solve sum %v: %w", cfg.Sum, err)
	}

	log.Info("pairing solved",
		zap.Float64("sum", res.Sum),
		zap.Float64("best_result", res.BestResult),
		zap.Int("rounds", res.RunsToSolve),
		zap.Bool("capped", res.Capped),
		zap.Int("best_pairs", len(res.BestPairs)),
		zap.Int("other_pairs", len(res.OtherPairs)),
		zap.Duration("elapsed", time.Since(start)),
	)

	opts := cfg.ReportOptions()
	opts.Long = a.long
	opts.Styled = a.color

	return report.Write(cmd.OutOrStdout(), res, opts)
}

// parseBool accepts strconv.ParseBool input plus yes/no and y/n.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}

	return strconv.ParseBool(s)
}
