package period_test

import (
	"fmt"

	"github.com/katalvlaran/periodicity/period"
)

// ExampleIsPeriodic shows the predicate on the documented edge cases.
func ExampleIsPeriodic() {
	for _, s := range []string{"", "a", "aa", "abab", "abc", "aaabbbaaabbbaaabbb"} {
		fmt.Printf("%q %v\n", s, period.IsPeriodic(s))
	}
	// Output:
	// "" false
	// "a" false
	// "aa" true
	// "abab" true
	// "abc" false
	// "aaabbbaaabbbaaabbb" true
}

// ExampleFindString contrasts the two search orders on "abababab".
//
// Counts {a:4, b:4} reduce to G = 4, whose divisors ≥ 2 are 2 and 4.
// FewestRepeats tries k=2 first ("abab"), MostRepeats tries k=4 first ("ab").
func ExampleFindString() {
	longest, _ := period.FindString("abababab")
	shortest, _ := period.FindString("abababab", period.WithOrder(period.MostRepeats))

	fmt.Println(longest.Unit, longest.Repeats)
	fmt.Println(shortest.Unit, shortest.Repeats)
	// Output:
	// abab 2
	// ab 4
}

// ExampleFind runs the search over a slice of integers.
func ExampleFind() {
	res, err := period.Find([]int{4, 2, 4, 2, 4, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Unit, res.Repeats)
	// Output:
	// true [4 2] 3
}

// ExamplePrimitive reduces a string to its shortest repeating unit.
func ExamplePrimitive() {
	unit, k := period.Primitive("xyzxyzxyzxyz")
	fmt.Println(unit, k)
	// Output:
	// xyz 4
}
