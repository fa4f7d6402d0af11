// Package rewind presents a forward-only, non-duplicable sequence of items as
// a rewindable, cursor-addressed token stream.
//
// A [Stream] wraps a one-shot [iter.Seq] and replays items on demand: take a
// [Mark], read ahead, and [Stream.Rewind] to try a different interpretation.
// The stream retains exactly the items still reachable from some live mark
// and discards the rest lazily, so memory stays proportional to the span of
// outstanding marks rather than to the length of the input.
//
// A stream and its marks belong to a single goroutine. Nothing here is
// thread-safe.
package rewind

import (
	"errors"
	"iter"

	"github.com/teenjuna/rewind/buffer"
)

var (
	// ErrOutOfWindow is returned when a requested range is no longer (or not
	// yet) retained by the stream's window.
	ErrOutOfWindow = errors.New("range is out of the retained window")
)

// Stream is a cursor-addressed view over a one-shot sequence.
//
// The cursor counts items ever surfaced to the caller, replays included.
// Items between the oldest live mark and the live edge are buffered in the
// window; everything older is gone for good.
type Stream[Item any] struct {
	cfg *config[Item]

	pull func() (Item, bool)
	stop func()
	done bool

	cursor   int
	oldest   int
	window   Window[Item]
	checkout *checkout
}

// New wraps seq in a stream. The sequence is pulled lazily, one item per
// cache miss, and is never pulled again after it ends.
//
// Default configuration:
//   - Window: [buffer.Deque]
//   - Metrics: disabled
func New[Item any](seq iter.Seq[Item], options ...Option[Item]) *Stream[Item] {
	cfg := newConfig(options...)

	window := cfg.window
	if window == nil {
		window = buffer.NewDeque[Item]()
	}

	pull, stop := iter.Pull(seq)

	return &Stream[Item]{
		cfg:      cfg,
		pull:     pull,
		stop:     stop,
		window:   window,
		checkout: &checkout{metrics: cfg.metrics},
	}
}

// Next returns the next item of the stream.
//
// If the cursor is behind the live edge (after a [Stream.Rewind]), the item
// is replayed from the window and the source is not touched. Otherwise stale
// window items are evicted and exactly one item is pulled from the source.
// The pulled item is retained only if at least one mark is live; with no
// marks outstanding the stream buffers nothing.
//
// End of stream is reported as (zero, false) and is sticky: once observed,
// every later call at or beyond that cursor reports the same, and the source
// is never consulted again.
func (s *Stream[Item]) Next() (Item, bool) {
	// Replay from the window if the needed item is buffered.
	if item, ok := s.window.At(s.cursor - s.oldest); ok {
		s.cursor++
		s.cfg.metrics.read(originWindow)
		return item, true
	}

	s.evict()

	var zero Item
	if s.done {
		return zero, false
	}

	s.cfg.metrics.pull()
	item, ok := s.pull()
	if !ok {
		s.done = true
		s.stop()
		return zero, false
	}

	// No live mark means nothing can ever need this item again.
	if !s.checkout.empty() {
		s.window.Append(item)
		s.cfg.metrics.window(s.window.Len())
	}

	s.cursor++
	s.cfg.metrics.read(originSource)
	return item, true
}

// evict drops every window item no live mark can reach. It runs only on the
// cache-miss path of [Stream.Next]; releasing a mark reclaims nothing by
// itself.
func (s *Stream[Item]) evict() {
	floor := s.cursor
	if min, ok := s.checkout.min(); ok && min < floor {
		floor = min
	}
	if delta := floor - s.oldest; delta > 0 {
		// The floor can advance past an empty window on the fast path;
		// only items actually retained count as evicted.
		dropped := min(delta, s.window.Len())
		s.window.DropFront(delta)
		s.oldest = floor
		if dropped > 0 {
			s.cfg.metrics.evicted(dropped)
			s.cfg.metrics.window(s.window.Len())
		}
	}
}

// Mark pins the current cursor position and returns a handle for it. Items
// from this position on are retained until the mark (and every clone of it)
// is released.
func (s *Stream[Item]) Mark() Mark {
	s.checkout.register(s.cursor)
	return Mark{cursor: s.cursor, checkout: s.checkout}
}

// Rewind moves the cursor back to the mark's position. Subsequent calls to
// [Stream.Next] replay buffered items until the cursor catches up to the
// live edge. The mark stays valid and can be rewound to again.
func (s *Stream[Item]) Rewind(m Mark) {
	s.cursor = m.cursor
}

// At reports whether the cursor is currently at the mark's position.
func (s *Stream[Item]) At(m Mark) bool {
	return s.cursor == m.cursor
}

// Slice returns the buffered items in [from, to). It returns
// [ErrOutOfWindow] if any part of the range is not retained, which cannot
// happen while both marks are live and no read has passed to.
func (s *Stream[Item]) Slice(from, to Mark) ([]Item, error) {
	if from.cursor > to.cursor {
		return nil, ErrOutOfWindow
	}
	if from.cursor < s.oldest || to.cursor > s.oldest+s.window.Len() {
		return nil, ErrOutOfWindow
	}

	items := make([]Item, 0, to.cursor-from.cursor)
	for i := from.cursor; i < to.cursor; i++ {
		item, _ := s.window.At(i - s.oldest)
		items = append(items, item)
	}

	return items, nil
}

// Buffered returns the number of items currently retained by the window.
func (s *Stream[Item]) Buffered() int {
	return s.window.Len()
}

// Offset returns the current cursor position.
func (s *Stream[Item]) Offset() int {
	return s.cursor
}
