// Package freq builds symbol frequency tables over sequences.
//
// A frequency table maps every distinct symbol of a sequence to the number
// of times it occurs. It is the first stage of periodicity detection: if a
// sequence is some unit repeated k times, every count in its table is a
// multiple of k.
//
// ✨ Key features:
//   - generic over any comparable symbol type (Count)
//   - byte-wise counting of strings without conversion (CountString)
//   - Counts() flattens the table for GCD reduction
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/periodicity/freq"
//
//	t := freq.CountString("addaadda") // {a:4, d:4}
//	fmt.Println(t.Total(), t.Len())   // 8 2
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(D), D = number of distinct symbols (D ≤ N)
package freq
