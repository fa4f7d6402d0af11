package source

import (
	"context"
	"errors"
	"iter"

	"golang.org/x/sync/errgroup"
)

// Pump runs a producer on its own goroutine and exposes what it pushes as a
// one-shot sequence. It is the adapter for inputs that arrive by blocking
// call or callback rather than by pull.
type Pump[Item any] struct {
	items chan Item
	stop  func()
	group *errgroup.Group
}

// NewPump starts produce on a new goroutine. The producer pushes items with
// the provided push function, which blocks while size buffered items are
// pending and fails once the pump is closed; the producer should return when
// push fails or its ctx is done.
func NewPump[Item any](
	produce func(ctx context.Context, push func(Item) error) error,
	size int,
) *Pump[Item] {
	if size < 0 {
		panic("size can't be < 0")
	}

	ctx_, stop := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx_)

	p := &Pump[Item]{
		items: make(chan Item, size),
		stop:  stop,
		group: group,
	}

	group.Go(func() error {
		defer close(p.items)
		return produce(ctx, func(item Item) error {
			select {
			case p.items <- item:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	})

	return p
}

// Items returns the produced sequence. It ends when the producer returns and
// must be consumed by a single reader.
func (p *Pump[Item]) Items() iter.Seq[Item] {
	return Chan(p.items)
}

// Close cancels the producer, discards whatever it had buffered and waits
// for it to return. The producer's error, if any, is returned; cancellation
// itself is not an error.
func (p *Pump[Item]) Close() error {
	p.stop()
	for range p.items {
	}

	err := p.group.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
