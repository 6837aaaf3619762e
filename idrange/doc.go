// Package idrange scans ranges of numeric product IDs for "invalid" IDs,
// i.e. IDs whose decimal digits are a shorter digit block repeated.
//
// 🚀 What counts as invalid?
//
//	RepeatedAtLeastTwice — the digits are some block repeated k ≥ 2 times:
//	  11, 1010, 824824824, 2121212121. Decided by period.IsPeriodic.
//	RepeatedExactlyTwice — the digits are some block repeated exactly twice:
//	  11, 6464, 123123. 111 and 824824824 do not qualify.
//
// ⚙️ Input format:
//
//	Comma (or whitespace) separated inclusive ranges "lo-hi":
//
//	  11-22,95-115,998-1012,1188511880-1188511890
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/periodicity/idrange"
//
//	ranges, err := idrange.Parse(input)
//	rep, err := idrange.Scan(ctx, ranges, idrange.RepeatedAtLeastTwice,
//	    idrange.WithWorkers(8), idrange.WithCollect(true))
//	fmt.Println(rep.Count, rep.Sum)
//
// Ranges are scanned concurrently (one task per range, bounded by
// WithWorkers); the Report is identical for any worker count.
//
// Performance:
//
//   - Time:   O(Σ (hi−lo+1) · digits) total work
//   - Memory: O(#ranges), plus O(#matches) with WithCollect
package idrange
