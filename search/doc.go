// Package search finds the split of a sum S into two non-negative numbers
// (a, b) that maximizes |a − b| × (a × b), using coarse-to-fine grid
// refinement instead of a closed-form solution.
//
// What
//
//   - Scans a grid over [0, S/2] (the problem is symmetric about S/2), keeps
//     the best pair, then re-scans a narrower window around it with a finer
//     step, round after round.
//   - Returns a Result containing:
//   - BestResult:  the largest result found
//   - BestPairs:   every probe of the winning round whose result equals it exactly
//   - OtherPairs:  superseded near-best probes, sorted by result descending
//     (nil unless requested)
//   - RunsToSolve: the number of rounds performed
//   - Supports one hook, OnRound, called after every scanned round.
//
// Algorithm Outline
//
//  1. overall = pair.New(0, S), a sentinel with result 0.
//  2. low = 0, high = S/2, step = S/4.
//  3. For round = 1, 2, …:
//     a. if round > MaxRounds: stop with the best found so far (Capped).
//     b. probe low + i·step for i = 0, 1, … while ≤ high; keep the round's
//     best pair and every probe tying it exactly; remember the rest as
//     "others" once step ≤ OtherCutoff.
//     c. if the round's best is ≤ overall, or within Tolerance of it: stop.
//     d. overall = round best; the previous best pairs become others.
//     e. low, high = best.First ∓ step/2 clamped to [0, S/2];
//     step = step / (4·round).
//
// The step shrinks super-linearly, so even S = 9e6 converges in about ten
// rounds; MaxRounds (default 40) is a safety valve.
//
// Determinism
//
//	Grid points are computed as low + i·step (no accumulated drift), ties are
//	collected in a pair.Set and returned sorted, so two runs with the same
//	inputs produce identical results, pair for pair.
//
// Exact ties vs. tolerance
//
//	Membership in BestPairs uses exact == on results; Tolerance only decides
//	when refinement stops. The two comparisons are deliberately distinct.
//
// Complexity
//
//   - Time:   O(Σ points per round); round r scans about 4·r + 1 points
//     after the first, so a run is O(R²) with R ≤ MaxRounds.
//   - Memory: O(|BestPairs| + |OtherPairs|).
//
// Usage
//
//	res, err := search.Solve(8)
//	if err != nil {
//	    // ErrNonFiniteSum or ErrOptionViolation
//	}
//	fmt.Println(res.BestResult) // ≈ 49.26722297
//
//	res, err = search.Solve(
//	    900,
//	    search.WithCollectOthers(false),
//	    search.WithMaxRounds(20),
//	    search.WithLogger(logger),
//	    search.WithOnRound(func(r search.Round) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrNonFiniteSum     if S is NaN or ±Inf.
//   - ErrOptionViolation  if an Option received a meaningless value.
package search
