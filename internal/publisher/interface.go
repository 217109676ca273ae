package publisher

import (
	"context"
	"errors"
)

// Publisher renders a ranking snapshot to some external sink. Publishing is
// best-effort from the aggregation job's point of view: a failed publish
// never rolls back the persisted stats.
type Publisher interface {
	Publish(ctx context.Context, report Report) error
}

// Multi fans a snapshot out to several sinks. Every sink is attempted; the
// failures are joined into one error.
type Multi []Publisher

var _ Publisher = (Multi)(nil)

func (m Multi) Publish(ctx context.Context, report Report) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
