package idrange

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/periodicity/period"
)

// Sentinel errors for parsing and scanning.
var (
	// ErrEmptyInput indicates the input held no ranges at all.
	ErrEmptyInput = errors.New("idrange: input contains no ranges")
	// ErrMalformedRange indicates a token that is not "lo-hi" with unsigned decimal bounds.
	ErrMalformedRange = errors.New("idrange: malformed range")
	// ErrReversedRange indicates lo > hi.
	ErrReversedRange = errors.New("idrange: range lower bound exceeds upper bound")
	// ErrUnknownRule indicates a rule name ParseRule does not recognize.
	ErrUnknownRule = errors.New("idrange: unknown rule")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("idrange: invalid option supplied")
)

// Range is an inclusive span of IDs [Lo, Hi].
type Range struct {
	Lo, Hi uint64
}

// Len returns the number of IDs in r. A full uint64 span saturates at MaxUint64.
func (r Range) Len() uint64 {
	n := r.Hi - r.Lo
	if n == ^uint64(0) {
		return n
	}

	return n + 1
}

// String renders r in the input form "lo-hi".
func (r Range) String() string {
	return strconv.FormatUint(r.Lo, 10) + "-" + strconv.FormatUint(r.Hi, 10)
}

// Rule decides which IDs are invalid.
type Rule int

const (
	// RepeatedAtLeastTwice matches IDs whose digits are a block repeated k ≥ 2 times.
	RepeatedAtLeastTwice Rule = iota

	// RepeatedExactlyTwice matches IDs whose digits are a block repeated exactly twice.
	RepeatedExactlyTwice
)

// ruleNames maps the textual rule names to rules.
var ruleNames = map[string]Rule{
	"at-least-twice": RepeatedAtLeastTwice,
	"exactly-twice":  RepeatedExactlyTwice,
}

// ParseRule resolves a rule by name ("at-least-twice" or "exactly-twice").
func ParseRule(name string) (Rule, error) {
	r, ok := ruleNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	return r, nil
}

// String returns the rule name accepted by ParseRule.
func (r Rule) String() string {
	switch r {
	case RepeatedAtLeastTwice:
		return "at-least-twice"
	case RepeatedExactlyTwice:
		return "exactly-twice"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// Match reports whether id is invalid under r.
func (r Rule) Match(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	switch r {
	case RepeatedAtLeastTwice:
		return period.IsPeriodic(s)
	case RepeatedExactlyTwice:
		n := len(s)
		return n%2 == 0 && period.RepeatsString(s, s[:n/2])
	default:
		return false
	}
}

// Option configures Scan via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*ScanOptions)

// ScanOptions holds parameters for Scan.
type ScanOptions struct {
	// Workers bounds how many ranges are scanned at once.
	Workers int

	// Collect keeps every matching ID in Report.IDs.
	Collect bool

	// Logger receives per-range debug lines.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns ScanOptions with Workers = GOMAXPROCS,
// no ID collection and a discarding logger.
func DefaultOptions() ScanOptions {
	return ScanOptions{
		Workers: runtime.GOMAXPROCS(0),
		Collect: false,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers bounds concurrent range scans.
//
//	n ≥ 1: at most n ranges in flight
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *ScanOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithCollect toggles collection of matching IDs.
func WithCollect(on bool) Option {
	return func(o *ScanOptions) {
		o.Collect = on
	}
}

// WithLogger sets the logger for per-range debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *ScanOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Report summarizes a scan.
//   - Ranges:  number of ranges scanned.
//   - Checked: number of IDs examined (overlapping ranges count twice).
//   - Count:   number of matching IDs.
//   - Sum:     sum of matching IDs (wraps on uint64 overflow).
//   - IDs:     matching IDs in ascending order, only with WithCollect(true).
type Report struct {
	Ranges  int
	Checked uint64
	Count   int
	Sum     uint64
	IDs     []uint64
}
