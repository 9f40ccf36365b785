package search

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/pairing/pair"
)

// Sentinel errors for Solve.
var (
	// ErrNonFiniteSum is returned when the sum is NaN or infinite.
	ErrNonFiniteSum = errors.New("search: sum must be a finite number")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Defaults used by DefaultOptions.
const (
	// DefaultMaxRounds caps the number of refinement rounds.
	DefaultMaxRounds = 40

	// DefaultOtherCutoff is the step size at or below which superseded
	// probes are collected as other results.
	DefaultOtherCutoff = 0.01
)

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds the parameters and hooks of a search.
type Options struct {
	// CollectOthers enables the OtherPairs list in the Result.
	CollectOthers bool

	// MaxRounds is the hard cap on refinement rounds (≥ 1).
	MaxRounds int

	// Tolerance is the result difference under which refinement stops.
	Tolerance float64

	// OtherCutoff is the step size at or below which other results are kept.
	OtherCutoff float64

	// OnRound is called after every scanned round.
	OnRound func(Round)

	// Logger receives per-round debug entries.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - CollectOthers = true
//   - MaxRounds     = DefaultMaxRounds
//   - Tolerance     = pair.MinimumPrecision
//   - OtherCutoff   = DefaultOtherCutoff
//   - a no-op OnRound hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		CollectOthers: true,
		MaxRounds:     DefaultMaxRounds,
		Tolerance:     pair.MinimumPrecision,
		OtherCutoff:   DefaultOtherCutoff,
		OnRound:       func(Round) {},
		Logger:        zap.NewNop(),
	}
}

// WithCollectOthers toggles collection of superseded near-best pairs.
func WithCollectOthers(collect bool) Option {
	return func(o *Options) {
		o.CollectOthers = collect
	}
}

// WithMaxRounds sets the round cap.
//
//	n ≥ 1: cap at n rounds
//	n < 1: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxRounds must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithTolerance sets the convergence tolerance; negative values are invalid.
// A zero tolerance stops only when a round fails to improve strictly.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) {
			o.err = fmt.Errorf("%w: Tolerance cannot be negative (%v)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithOtherCutoff sets the step size at or below which other results are
// collected; negative values are invalid.
func WithOtherCutoff(cutoff float64) Option {
	return func(o *Options) {
		if cutoff < 0 || math.IsNaN(cutoff) {
			o.err = fmt.Errorf("%w: OtherCutoff cannot be negative (%v)", ErrOptionViolation, cutoff)
			return
		}
		o.OtherCutoff = cutoff
	}
}

// WithOnRound registers a callback run after every scanned round.
func WithOnRound(fn func(Round)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithLogger sets the logger used for per-round debug entries.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Round describes one scanned round, as passed to OnRound.
type Round struct {
	// Number is 1-based.
	Number int

	// Low and High bound the scanned interval (inclusive).
	Low, High float64

	// Precision is the grid step of this round.
	Precision float64

	// Probes is the number of grid points evaluated.
	Probes int

	// Best is the round's best pair and Ties the number of pairs tying it.
	Best pair.NumberPair
	Ties int

	// Improved reports whether the round beat the overall best.
	Improved bool
}

// Result holds the outcome of Solve. It is not modified after Solve returns.
type Result struct {
	// Sum is the searched total.
	Sum float64

	// BestResult is the maximal result found.
	BestResult float64

	// BestPairs holds every pair whose result equals BestResult exactly,
	// ordered by First.
	BestPairs []pair.NumberPair

	// OtherPairs holds superseded near-best pairs ordered by result
	// descending; nil when CollectOthers was false.
	OtherPairs []pair.NumberPair

	// RunsToSolve is the number of refinement rounds performed.
	RunsToSolve int

	// Capped reports that MaxRounds was reached before convergence.
	Capped bool
}

// Best returns the first best pair, or the degenerate pair when none exists.
func (r Result) Best() pair.NumberPair {
	if len(r.BestPairs) == 0 {
		return pair.New(0, r.Sum)
	}

	return r.BestPairs[0]
}

// HasOthers reports whether other results were collected.
func (r Result) HasOthers() bool { return r.OtherPairs != nil }
