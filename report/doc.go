// Package report renders pairs and search results as plain-text reports.
//
// A result report has up to three sections:
//
//	Sum: 8
//	Best Result: (Solved in 8 runs)
//	49.26722297084675
//
//	Best Number Combination:
//	1.6906 and 6.3094 -> 8 (Difference: 4.6188, Product: 10.6667 -> Result: 49.2672)
//
//	Other Top Results:
//	1.6906 and 6.3094 -> 8 (Difference: 4.6188, Product: 10.6667 -> Result: 49.2672)
//	…
//
// The "Other Top Results" section appears only when the search collected
// other pairs; it shows at most Options.OtherLimit lines and ends with an
// ellipsis line when more were found. Headings may be styled with lipgloss
// for terminals (Options.Styled); the default output is plain text.
package report
