package rewind

import (
	"iter"

	"github.com/teenjuna/rewind/buffer"
)

// TextStream is a [Stream] of runes whose window is a contiguous
// [buffer.Text], so any buffered range can be turned into a string in one
// conversion. It exists for the bulk Parse functions, which hand a whole
// retained range to a [ParseFunc] instead of collecting runes one by one.
type TextStream struct {
	*Stream[rune]
	text *buffer.Text
}

// NewText wraps seq in a text stream. The window option is fixed; other
// options apply as in [New].
func NewText(seq iter.Seq[rune], options ...Option[rune]) *TextStream {
	text := buffer.NewText()
	options = append(options, WithWindow[rune](text))
	return &TextStream{
		Stream: New(seq, options...),
		text:   text,
	}
}

// ParseFunc converts the text of a buffered range into a value. Functions
// from strconv adapt directly, e.g. strconv.Atoi.
type ParseFunc[Out any] = func(string) (Out, error)

// ParseRemaining drains the rest of the source into the window, then parses
// everything from the current position in one pass. On parse failure the
// stream is rewound to where it was, so another interpretation can be tried;
// the runes read during the failed attempt stay buffered until a later read
// evicts them.
func ParseRemaining[Out any](t *TextStream, parse ParseFunc[Out]) (Out, error) {
	from := t.Mark()
	defer from.Release()

	for {
		if _, ok := t.Next(); !ok {
			break
		}
	}

	return parseFrom(t, from, parse)
}

// ParseTake consumes up to n runes and parses them as one string. On parse
// failure the stream is rewound to where it was.
func ParseTake[Out any](t *TextStream, n int, parse ParseFunc[Out]) (Out, error) {
	from := t.Mark()
	defer from.Release()

	for range n {
		if _, ok := t.Next(); !ok {
			break
		}
	}

	return parseFrom(t, from, parse)
}

// ParseTakeWhile consumes runes while pred holds and parses them as one
// string. The first rune failing pred is not consumed. On parse failure the
// stream is rewound to where it was.
func ParseTakeWhile[Out any](t *TextStream, pred func(rune) bool, parse ParseFunc[Out]) (Out, error) {
	from := t.Mark()
	defer from.Release()

	for {
		probe := t.Mark()
		r, ok := t.Next()
		if !ok {
			probe.Release()
			break
		}
		if !pred(r) {
			t.Rewind(probe)
			probe.Release()
			break
		}
		probe.Release()
	}

	return parseFrom(t, from, parse)
}

// ParseSlice parses an already-buffered range without moving the cursor.
// Returns [ErrOutOfWindow] if any part of the range is not retained.
func ParseSlice[Out any](t *TextStream, from, to Mark, parse ParseFunc[Out]) (Out, error) {
	var zero Out
	if from.cursor > to.cursor {
		return zero, ErrOutOfWindow
	}
	if from.cursor < t.oldest || to.cursor > t.oldest+t.text.Len() {
		return zero, ErrOutOfWindow
	}
	return parse(t.text.Slice(from.cursor-t.oldest, to.cursor-t.oldest))
}

// parseFrom parses the retained range between the mark and the cursor,
// rewinding to the mark on failure. The mark keeps the range pinned, so no
// bounds check is needed beyond it being live.
func parseFrom[Out any](t *TextStream, from Mark, parse ParseFunc[Out]) (Out, error) {
	out, err := parse(t.text.Slice(from.cursor-t.oldest, t.cursor-t.oldest))
	if err != nil {
		t.Rewind(from)
		var zero Out
		return zero, err
	}
	return out, nil
}
