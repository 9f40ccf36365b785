// Package pair models one candidate split of a sum into two non-negative
// numbers and the quantities derived from it.
//
// 🚀 What is a NumberPair?
//
//	For a fixed sum S a NumberPair holds one chosen value a (the "first"
//	number); the second number is always b = S − a. From the split it derives
//
//	  product    = a × b
//	  difference = |a − b|
//	  result     = product × difference
//
//	The search package looks for the split with the largest result.
//
// ✨ Key properties:
//   - Value semantics: a NumberPair is small, immutable and safe to copy.
//   - Clamping, never rejection: the chosen value becomes min(|v|, S), so
//     negative inputs are reflected and out-of-range inputs snap to S.
//   - Mirror equality: (a, b) and (b, a) for the same sum are Equal, and share
//     the same Key, so a Set never holds both.
//   - Ordering by result only: Compare/Less ignore which split produced it.
//   - Near-equality: IsEquivalentTo compares results with a 1e-10 tolerance
//     and is used as a convergence test, distinct from Equal.
//
// ⚙️ Usage:
//
//	p := pair.New(2, 8)          // 2 and 6
//	fmt.Println(p.Result())      // 2·6·4 = 48
//	fmt.Println(p.Equal(pair.New(6, 8))) // true
//
//	s := pair.NewSet()
//	s.Add(p)
//	s.Add(pair.New(6, 8))        // mirror, ignored
//	fmt.Println(s.Len())         // 1
package pair
