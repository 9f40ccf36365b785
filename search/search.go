package search

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/pairing/pair"
)

// refiner encapsulates the mutable state of one Solve call.
type refiner struct {
	sum      float64
	opts     Options
	sentinel pair.NumberPair
	overall  pair.NumberPair
	improved bool
	best     pair.Set
	others   pair.Set // zero value when not collecting
}

// Solve searches for the split of sum with the largest result,
// applying any number of functional Options.
// Returns ErrNonFiniteSum for NaN/±Inf sums and ErrOptionViolation for bad options.
// Reaching MaxRounds is not an error: the best pairs found so far are
// returned with Result.Capped set.
func Solve(sum float64, opts ...Option) (Result, error) {
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return Result{}, ErrNonFiniteSum
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	sentinel := pair.New(0, sum)
	r := &refiner{
		sum:      sum,
		opts:     o,
		sentinel: sentinel,
		overall:  sentinel,
		best:     pair.NewSet(),
	}
	if o.CollectOthers {
		r.others = pair.NewSet()
	}

	return r.run(), nil
}

// run iterates rounds until convergence or the round cap.
func (r *refiner) run() Result {
	var (
		upper     = r.sum / 2
		low       = 0.0
		high      = upper
		precision = r.sum / 4
		runs      int
		capped    bool
	)
	for round := 1; ; round++ {
		if round > r.opts.MaxRounds {
			runs, capped = r.opts.MaxRounds, true
			r.opts.Logger.Debug("search: round cap reached",
				zap.Float64("sum", r.sum),
				zap.Int("max_rounds", r.opts.MaxRounds),
			)
			break
		}

		sc := r.scan(low, high, precision)
		done := sc.best.Result() <= r.overall.Result() ||
			sc.best.IsEquivalentWithin(r.overall, r.opts.Tolerance)

		r.report(Round{
			Number:    round,
			Low:       low,
			High:      high,
			Precision: precision,
			Probes:    sc.probes,
			Best:      sc.best,
			Ties:      sc.ties.Len(),
			Improved:  !done,
		})
		if done {
			runs = round
			break
		}

		r.promote(sc, precision)

		// Narrow around the new best and sharpen the step.
		center, margin := sc.best.First(), precision/2
		low = max(center-margin, 0)
		high = min(center+margin, upper)
		precision /= float64(4 * round)
	}

	return r.result(runs, capped)
}

// scanned is the outcome of one grid pass.
type scanned struct {
	best   pair.NumberPair
	ties   pair.Set
	others pair.Set
	probes int
}

// scan evaluates every grid point low + i·precision ≤ high.
// A non-positive or non-finite precision evaluates low only.
func (r *refiner) scan(low, high, precision float64) scanned {
	sc := scanned{best: r.sentinel, ties: pair.NewSet(), others: pair.NewSet()}
	eligible := func(p pair.NumberPair) bool {
		return r.eligible(p, precision)
	}

	probe := func(x float64) {
		sc.probes++
		p := pair.New(x, r.sum)
		switch {
		case p.Result() > sc.best.Result():
			sc.ties.Each(func(q pair.NumberPair) {
				if eligible(q) {
					sc.others.Add(q)
				}
			})
			sc.ties.Clear()
			sc.ties.Add(p)
			sc.best = p
		case p.Result() == sc.best.Result():
			sc.ties.Add(p)
		case eligible(p):
			sc.others.Add(p)
		}
	}

	if !(precision > 0) || math.IsInf(precision, 0) {
		probe(low)
		return sc
	}
	for i := 0; ; i++ {
		// The conversion keeps the product from being fused into an FMA,
		// so every architecture probes the same grid.
		x := low + float64(float64(i)*precision)
		if x > high {
			break
		}
		probe(x)
	}

	return sc
}

// eligible reports whether p may be kept as an other result at this precision.
func (r *refiner) eligible(p pair.NumberPair, precision float64) bool {
	return r.opts.CollectOthers && precision <= r.opts.OtherCutoff && !p.Equal(r.sentinel)
}

// promote makes the round's best the overall best and moves the superseded
// best pairs into the other results.
func (r *refiner) promote(sc scanned, precision float64) {
	r.overall = sc.best
	r.improved = true
	r.best.Each(func(p pair.NumberPair) {
		if r.eligible(p, precision) {
			r.others.Add(p)
		}
	})
	r.best.Clear()
	r.best.AddAll(sc.ties)
	if r.opts.CollectOthers {
		r.others.AddAll(sc.others)
	}
}

// report forwards a finished round to the logger and the OnRound hook.
func (r *refiner) report(rd Round) {
	r.opts.Logger.Debug("search: round scanned",
		zap.Int("round", rd.Number),
		zap.Float64("low", rd.Low),
		zap.Float64("high", rd.High),
		zap.Float64("precision", rd.Precision),
		zap.Int("probes", rd.Probes),
		zap.Float64("best", rd.Best.Result()),
		zap.Bool("improved", rd.Improved),
	)
	r.opts.OnRound(rd)
}

// result freezes the refiner state into a Result.
func (r *refiner) result(runs int, capped bool) Result {
	res := Result{
		Sum:         r.sum,
		BestResult:  r.overall.Result(),
		RunsToSolve: runs,
		Capped:      capped,
	}
	if r.improved {
		res.BestPairs = r.best.Slice()
	} else {
		// Nothing beat the sentinel (e.g. sum 0): it is the degenerate best.
		res.BestPairs = []pair.NumberPair{r.sentinel}
	}
	if r.opts.CollectOthers {
		res.OtherPairs = r.others.SortedByResult()
	}

	return res
}
