// Package periodicity detects strings and sequences that are a shorter unit
// repeated a whole number of times, and applies that test to product-ID
// ranges.
//
// 🚀 What is in the module?
//
//	A small, zero-state library plus a command-line front end:
//		• freq     — symbol frequency tables
//		• gcd      — Euclidean GCD reduction and divisor enumeration
//		• period   — the periodicity predicate, unit discovery, search order
//		• idrange  — "lo-hi" range parsing and concurrent invalid-ID scanning
//		• cmd/periodic — `check` and `scan` subcommands
//
// ✨ Why this approach?
//
//   - Counting first: if S = pᵏ, k divides every symbol count, so only
//     divisors of their GCD need verifying.
//   - Near-linear: one O(N) counting pass, one O(N) pass per divisor tried.
//   - Pure functions: safe from any number of goroutines without locks.
//
// Quick example:
//
//	"aaabbbaaabbbaaabbb" → {a:9, b:9} → G = 9 → k = 3 → unit "aaabbb" ✔
//
//	go get github.com/katalvlaran/periodicity/period
package periodicity
