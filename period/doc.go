// Package period decides whether a sequence is a shorter unit repeated a
// whole number of times, and finds that unit.
//
// 🚀 What is a periodic sequence?
//
//	A sequence S is periodic when S = pᵏ for some non-empty unit p and
//	some k ≥ 2: "abab" = "ab"², "aaa" = "a"³. "aba" and "a" are not.
//
// ⚙️ How it works:
//
//  1. Count symbol frequencies (package freq): "addaadda" → {a:4, d:4}.
//  2. Reduce the counts to their GCD G (package gcd).
//     If S = pᵏ, each count is k times its count inside p, so k divides G.
//  3. G ≤ 1 → not periodic (empty input, or no common structure).
//  4. For every divisor k of G with 2 ≤ k ≤ G, test whether the prefix of
//     length N/k, repeated cyclically, reproduces S. The first success wins.
//  5. No divisor matched → not periodic.
//
// Search order:
//
//	FewestRepeats (default) walks k upward from 2, so the first hit uses the
//	fewest repetitions and the longest unit. MostRepeats walks k downward
//	from G and surfaces the shortest unit (the primitive root) instead.
//	The yes/no answer does not depend on the order.
//
//	Example: "aaabbbaaabbbaaabbb" → {a:9, b:9}, G = 9. Divisor 3 is tried
//	first and the prefix "aaabbb" repeats 3 times → periodic.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/periodicity/period"
//
//	period.IsPeriodic("abab") // true
//
//	res, err := period.FindString("abababab", period.WithOrder(period.MostRepeats))
//	// res.Unit == "ab", res.Repeats == 4
//
// Symbols are compared unit for unit: bytes for strings, elements for
// slices (IsPeriodicSeq, Find). Grapheme-aware comparison is out of scope.
//
// Performance:
//
//   - Time:   O(N · d(G)), d = divisor count; near-linear in practice,
//     O(N^(1 + 1/ln ln N)) worst case
//   - Memory: O(D) for the frequency table, D = distinct symbols
//
// Every function is pure and safe for concurrent use.
package period
