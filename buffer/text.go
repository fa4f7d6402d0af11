package buffer

import "github.com/teenjuna/rewind/internal"

var _ internal.Window[rune] = (*Text)(nil)

// Text is a window over runes kept in one contiguous slice, so that any
// retained range can be converted to a string in a single pass. Used by the
// text stream for its bulk parse operations.
type Text struct {
	runes []rune
}

func NewText() *Text {
	return &Text{}
}

func (t *Text) Append(r rune) {
	t.runes = append(t.runes, r)
}

func (t *Text) DropFront(n int) {
	if n >= len(t.runes) {
		t.runes = t.runes[:0]
		return
	}
	rest := copy(t.runes, t.runes[n:])
	t.runes = t.runes[:rest]
}

func (t *Text) At(idx int) (rune, bool) {
	if idx < 0 || idx >= len(t.runes) {
		return 0, false
	}
	return t.runes[idx], true
}

func (t *Text) Len() int {
	return len(t.runes)
}

// Slice returns the retained runes in [from, to) as a string. Offsets are
// relative to the oldest retained rune; the caller is responsible for bounds.
func (t *Text) Slice(from, to int) string {
	return string(t.runes[from:to])
}
