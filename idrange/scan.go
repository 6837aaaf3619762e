package idrange

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// cancelCheckEvery is how many IDs are examined between context checks.
const cancelCheckEvery = 4096

// partial is the per-range outcome merged into a Report.
type partial struct {
	checked uint64
	count   int
	sum     uint64
	ids     []uint64
}

// Scan examines every ID of every range under rule and reports the matches.
// Ranges run concurrently, at most Workers at a time; partial results are
// merged in input order so the Report does not depend on scheduling.
//
// Returns ErrOptionViolation for bad options, ErrReversedRange for a range
// with Lo > Hi, or ctx.Err() if ctx is cancelled mid-scan.
func Scan(ctx context.Context, ranges []Range, rule Rule, opts ...Option) (Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Report{}, o.err
	}
	for _, r := range ranges {
		if r.Lo > r.Hi {
			return Report{}, fmt.Errorf("%w: %s", ErrReversedRange, r)
		}
	}

	parts := make([]partial, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			p, err := scanRange(gctx, r, rule, o.Collect)
			if err != nil {
				return err
			}
			o.Logger.Debug("range scanned",
				"range", r.String(),
				"rule", rule.String(),
				"checked", p.checked,
				"matches", p.count)
			parts[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := Report{Ranges: len(ranges)}
	for _, p := range parts {
		rep.Checked += p.checked
		rep.Count += p.count
		rep.Sum += p.sum
		if o.Collect {
			rep.IDs = append(rep.IDs, p.ids...)
		}
	}
	if o.Collect {
		sort.Slice(rep.IDs, func(a, b int) bool { return rep.IDs[a] < rep.IDs[b] })
	}

	return rep, nil
}

// scanRange walks r from Lo to Hi inclusive without overflowing at MaxUint64.
func scanRange(ctx context.Context, r Range, rule Rule, collect bool) (partial, error) {
	var p partial
	for id := r.Lo; ; id++ {
		if p.checked%cancelCheckEvery == 0 {
			select {
			case <-ctx.Done():
				return partial{}, ctx.Err()
			default:
			}
		}
		p.checked++
		if rule.Match(id) {
			p.count++
			p.sum += id
			if collect {
				p.ids = append(p.ids, id)
			}
		}
		if id == r.Hi {
			break
		}
	}

	return p, nil
}
