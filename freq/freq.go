package freq

// Table maps each distinct symbol to its number of occurrences.
// Every stored count is positive and the counts sum to the length
// of the sequence the table was built from.
type Table[S comparable] map[S]int

// Count builds the frequency table of seq in a single pass.
// An empty (or nil) seq yields an empty, non-nil table.
func Count[S comparable](seq []S) Table[S] {
	t := make(Table[S])
	for _, sym := range seq {
		t[sym]++
	}

	return t
}

// CountString builds the frequency table of the bytes of s.
// Symbols are compared byte for byte; no UTF-8 decoding takes place.
func CountString(s string) Table[byte] {
	t := make(Table[byte])
	for i := 0; i < len(s); i++ {
		t[s[i]]++
	}

	return t
}

// Counts returns the occurrence counts of the table. The order is unspecified.
func (t Table[S]) Counts() []int {
	out := make([]int, 0, len(t))
	for _, c := range t {
		out = append(out, c)
	}

	return out
}

// Len returns the number of distinct symbols.
func (t Table[S]) Len() int { return len(t) }

// Total returns the sum of all counts, i.e. the length of the counted sequence.
func (t Table[S]) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}

	return n
}
