package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pairing/format"
	"github.com/katalvlaran/pairing/pair"
	"github.com/katalvlaran/pairing/search"
)

// DefaultOtherLimit is the number of other results shown before truncation.
const DefaultOtherLimit = 10

// Ellipsis marks a truncated other-results section.
const Ellipsis = "…"

// Options controls report rendering.
type Options struct {
	// OtherLimit caps the other-results preview; 0 hides the lines but
	// keeps the heading and ellipsis.
	OtherLimit int

	// Long renders best pairs with the multi-line pair report.
	Long bool

	// Styled renders headings with terminal styles.
	Styled bool
}

// DefaultOptions returns plain short reports with a preview of 10 others.
func DefaultOptions() Options {
	return Options{OtherLimit: DefaultOtherLimit}
}

// PairShort renders p on one line.
func PairShort(p pair.NumberPair) string { return p.String() }

// PairLong renders p over four lines:
//
//	Numbers: 2 and 6 -> 8
//	Product: 12
//	Difference: 4
//	Result: 48
func PairLong(p pair.NumberPair) string {
	const d = format.DefaultDigits

	var b strings.Builder
	fmt.Fprintf(&b, "Numbers: %s and %s -> %s\n",
		format.Float(p.First(), d), format.Float(p.Second(), d), format.Float(p.Sum(), d))
	fmt.Fprintf(&b, "Product: %s\n", format.Float(p.Product(), d))
	fmt.Fprintf(&b, "Difference: %s\n", format.Float(p.Difference(), d))
	fmt.Fprintf(&b, "Result: %s\n", format.Float(p.Result(), d))

	return b.String()
}

// String renders the whole report for res.
func String(res search.Result, opts Options) string {
	st := newStyles(opts.Styled)

	var b strings.Builder
	fmt.Fprintf(&b, "Sum: %s\n", format.Grouped(res.Sum))
	b.WriteString(st.heading(fmt.Sprintf("Best Result: (Solved in %d %s)", res.RunsToSolve, plural(res.RunsToSolve, "run"))))
	b.WriteString("\n")
	b.WriteString(st.value(format.Full(res.BestResult)))
	b.WriteString("\n")
	if res.Capped {
		b.WriteString(st.muted(fmt.Sprintf("(stopped after %d %s without converging)", res.RunsToSolve, plural(res.RunsToSolve, "round"))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.heading("Best Number Combination:"))
	b.WriteString("\n")
	for i, p := range res.BestPairs {
		if opts.Long {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(PairLong(p))
			continue
		}
		b.WriteString(PairShort(p))
		b.WriteString("\n")
	}

	if res.HasOthers() {
		b.WriteString("\n")
		b.WriteString(st.heading("Other Top Results:"))
		b.WriteString("\n")
		shown := min(max(opts.OtherLimit, 0), len(res.OtherPairs))
		for _, p := range res.OtherPairs[:shown] {
			b.WriteString(PairShort(p))
			b.WriteString("\n")
		}
		if shown < len(res.OtherPairs) {
			b.WriteString(st.muted(Ellipsis))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Write renders the report for res to w.
func Write(w io.Writer, res search.Result, opts Options) error {
	if _, err := io.WriteString(w, String(res, opts)); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}

// plural returns noun with an "s" unless n == 1.
func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}

	return noun + "s"
}
