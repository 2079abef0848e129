package quota

import (
	"context"

	"github.com/pkg/errors"
)

//go:generate mockgen -package quota -source tracker.go -destination tracker_mock.go

type Reader interface {
	RateLimit(ctx context.Context) (int, int, error)
}

type Snapshot struct {
	Remaining int
	Limit     int
}

// Usage is the observed quota consumption of an operation. The counter is shared with every other
// consumer of the same credentials, so Cost is an upper bound and may even be negative after a reset.
type Usage struct {
	Before, After Snapshot
	Cost          int
	Left          int
	Known         bool
}

type Tracker struct {
	r Reader
}

func NewTracker(r Reader) *Tracker {
	return &Tracker{
		r: r,
	}
}

func (t Tracker) Snapshot(ctx context.Context) (*Snapshot, error) {
	remaining, limit, err := t.r.RateLimit(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't read api quota")
	}

	return &Snapshot{
		Remaining: remaining,
		Limit:     limit,
	}, nil
}

// Measure runs op between two quota snapshots. A failed snapshot leaves Usage.Known false
// but never prevents op from running; op's error is returned as is.
func (t Tracker) Measure(ctx context.Context, op func() error) (*Usage, error) {
	before, beforeErr := t.Snapshot(ctx)
	opErr := op()
	after, afterErr := t.Snapshot(ctx)

	u := &Usage{}
	if beforeErr == nil && afterErr == nil {
		u.Before, u.After = *before, *after
		u.Cost = before.Remaining - after.Remaining
		u.Left = after.Remaining
		u.Known = true
	}

	return u, opErr
}
