// Package period defines search options, results and sentinel errors.
package period

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("period: invalid option supplied")

// Order selects the direction in which candidate repetition counts are tried.
//
//   - FewestRepeats — k = 2, 3, …, G. First hit has the longest unit.
//   - MostRepeats   — k = G, …, 3, 2. First hit has the shortest unit.
type Order int

const (
	// FewestRepeats tries repetition counts in ascending order (default).
	FewestRepeats Order = iota

	// MostRepeats tries repetition counts in descending order.
	MostRepeats
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case FewestRepeats:
		return "fewest-repeats"
	case MostRepeats:
		return "most-repeats"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Option configures Find and FindString via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Order is the direction of the divisor walk.
	Order Order

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Order = FewestRepeats.
func DefaultOptions() Options {
	return Options{Order: FewestRepeats}
}

// WithOrder sets the divisor walk direction.
// Values other than FewestRepeats and MostRepeats → ErrOptionViolation.
func WithOrder(o Order) Option {
	return func(opts *Options) {
		switch o {
		case FewestRepeats, MostRepeats:
			opts.Order = o
		default:
			opts.err = fmt.Errorf("%w: unknown order %v", ErrOptionViolation, o)
		}
	}
}

// Result is the outcome of Find over a slice.
//   - Unit:    the verified repeating unit, a sub-slice of the input (nil if !Found).
//   - Repeats: how many times Unit occurs (0 if !Found).
//   - Found:   whether the input is periodic.
type Result[S comparable] struct {
	Unit    []S
	Repeats int
	Found   bool
}

// StringResult is the outcome of FindString.
type StringResult struct {
	Unit    string
	Repeats int
	Found   bool
}
