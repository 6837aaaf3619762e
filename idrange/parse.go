package idrange

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a comma or whitespace separated list of "lo-hi" ranges.
// Empty entries (e.g. a trailing comma) are skipped.
//
// Errors:
//   - ErrEmptyInput     — no ranges found.
//   - ErrMalformedRange — a token is not "lo-hi" with unsigned decimal bounds.
//   - ErrReversedRange  — lo > hi.
func Parse(input string) ([]Range, error) {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]Range, 0, len(tokens))
	for _, tok := range tokens {
		r, err := parseRange(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// ParseReader reads r to the end and parses its contents with Parse.
func ParseReader(r io.Reader) ([]Range, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("idrange: read input: %w", err)
	}

	return Parse(string(data))
}

// parseRange parses a single "lo-hi" token.
func parseRange(tok string) (Range, error) {
	loStr, hiStr, ok := strings.Cut(tok, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q (missing '-')", ErrMalformedRange, tok)
	}
	lo, err := strconv.ParseUint(loStr, 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformedRange, tok, err)
	}
	hi, err := strconv.ParseUint(hiStr, 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformedRange, tok, err)
	}
	if lo > hi {
		return Range{}, fmt.Errorf("%w: %q", ErrReversedRange, tok)
	}

	return Range{Lo: lo, Hi: hi}, nil
}
