// Package gcd reduces integer sequences to their greatest common divisor
// and enumerates divisors.
//
// The reduction is the Euclidean algorithm, gcd(a, b) = gcd(b, a mod b)
// with gcd(a, 0) = a, written as a loop and folded left to right across
// the values. Folding order does not change the result because GCD is
// associative and commutative.
//
// Complexity:
//
//	Pair:     O(log(min(a, b)))
//	Of:       O(n · log(max))
//	Divisors: O(√g)
package gcd

// Pair returns the greatest common divisor of a and b.
// Negative inputs are treated by absolute value; Pair(0, 0) == 0.
func Pair(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Of returns the greatest common divisor of values.
//
//   - no values   → 0
//   - one value   → that value (by absolute value)
//   - otherwise   → left fold of Pair across values
func Of(values ...int) int {
	switch len(values) {
	case 0:
		return 0
	case 1:
		return abs(values[0])
	}

	g := values[0]
	for _, v := range values[1:] {
		g = Pair(g, v)
		if g == 1 {
			// nothing divides further
			return 1
		}
	}

	return g
}

// Divisors returns every divisor d of g with d ≥ from, in ascending order.
// For g ≤ 0 it returns nil. A from below 1 is treated as 1.
func Divisors(g, from int) []int {
	if g <= 0 {
		return nil
	}
	if from < 1 {
		from = 1
	}

	var low, high []int
	for d := 1; d*d <= g; d++ {
		if g%d != 0 {
			continue
		}
		if d >= from {
			low = append(low, d)
		}
		if q := g / d; q != d && q >= from {
			high = append(high, q)
		}
	}
	// high was collected in descending order
	return append(low, reverse(high)...)
}

// reverse returns xs reversed in place.
func reverse(xs []int) []int {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}

	return xs
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
