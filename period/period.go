package period

import (
	"github.com/katalvlaran/periodicity/freq"
	"github.com/katalvlaran/periodicity/gcd"
)

// IsPeriodic reports whether s is a shorter non-empty unit repeated two or
// more whole times. Symbols are the bytes of s.
//
//	IsPeriodic("")     == false
//	IsPeriodic("a")    == false
//	IsPeriodic("aa")   == true
//	IsPeriodic("abab") == true
//	IsPeriodic("abc")  == false
func IsPeriodic(s string) bool {
	k := search(freq.CountString(s).Counts(), len(s), FewestRepeats, func(unitLen int) bool {
		return RepeatsString(s, s[:unitLen])
	})

	return k > 0
}

// IsPeriodicSeq is IsPeriodic over a slice of comparable symbols.
func IsPeriodicSeq[S comparable](seq []S) bool {
	k := search(freq.Count(seq).Counts(), len(seq), FewestRepeats, func(unitLen int) bool {
		return Repeats(seq, seq[:unitLen])
	})

	return k > 0
}

// Find runs the periodicity search over seq and returns the verified unit.
// The unit aliases seq; copy it before mutating seq.
// Returns ErrOptionViolation for bad options; the search itself cannot fail.
func Find[S comparable](seq []S, opts ...Option) (Result[S], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result[S]{}, err
	}

	k := search(freq.Count(seq).Counts(), len(seq), o.Order, func(unitLen int) bool {
		return Repeats(seq, seq[:unitLen])
	})
	if k == 0 {
		return Result[S]{}, nil
	}

	return Result[S]{Unit: seq[:len(seq)/k], Repeats: k, Found: true}, nil
}

// FindString is Find over the bytes of s.
func FindString(s string, opts ...Option) (StringResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return StringResult{}, err
	}

	k := search(freq.CountString(s).Counts(), len(s), o.Order, func(unitLen int) bool {
		return RepeatsString(s, s[:unitLen])
	})
	if k == 0 {
		return StringResult{}, nil
	}

	return StringResult{Unit: s[:len(s)/k], Repeats: k, Found: true}, nil
}

// Primitive returns the shortest unit u and count k with s = uᵏ.
// A non-periodic s is its own unit (k = 1); the empty string yields ("", 0).
func Primitive(s string) (unit string, k int) {
	if len(s) == 0 {
		return "", 0
	}
	res, _ := FindString(s, WithOrder(MostRepeats))
	if !res.Found {
		return s, 1
	}

	return res.Unit, res.Repeats
}

// search reduces counts to their GCD and walks its divisors k ≥ 2 in the
// given order, returning the first k for which matches(n/k) holds, or 0.
func search(counts []int, n int, order Order, matches func(unitLen int) bool) int {
	g := gcd.Of(counts...)
	if g <= 1 {
		return 0
	}

	ks := gcd.Divisors(g, 2)
	for i := range ks {
		k := ks[i]
		if order == MostRepeats {
			k = ks[len(ks)-1-i]
		}
		if matches(n / k) {
			return k
		}
	}

	return 0
}

// buildOptions applies opts over DefaultOptions and surfaces any recorded error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
