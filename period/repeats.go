package period

// Repeats reports whether repeating unit cyclically reproduces seq exactly:
// seq[i] == unit[i mod len(unit)] for every i in [0, len(seq)).
// It stops at the first mismatch.
//
// len(unit) need not divide len(seq); the comparison simply wraps.
// An empty unit reproduces only an empty seq.
func Repeats[S comparable](seq, unit []S) bool {
	if len(unit) == 0 {
		return len(seq) == 0
	}
	for i := range seq {
		if seq[i] != unit[i%len(unit)] {
			return false
		}
	}

	return true
}

// RepeatsString is Repeats over the bytes of s and unit.
func RepeatsString(s, unit string) bool {
	if len(unit) == 0 {
		return len(s) == 0
	}
	for i := 0; i < len(s); i++ {
		if s[i] != unit[i%len(unit)] {
			return false
		}
	}

	return true
}
