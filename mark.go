package rewind

// Mark pins a cursor position of a [Stream], keeping items at or after it
// retained until the mark is released.
//
// Marks must be released exactly once per acquisition: once for the
// [Stream.Mark] call and once for every [Mark.Clone]. [With] wraps the
// pairing for scoped use.
type Mark struct {
	cursor   int
	checkout *checkout
}

// Clone registers another live mark at the same position. The clone is
// released independently of the original.
func (m Mark) Clone() Mark {
	m.checkout.register(m.cursor)
	return Mark{cursor: m.cursor, checkout: m.checkout}
}

// Release retires the mark. Items before the next-oldest live mark become
// eligible for eviction on a later read; nothing is reclaimed immediately.
//
// Releasing a mark that is not registered is a defect in release/clone
// pairing and panics.
func (m Mark) Release() {
	m.checkout.unregister(m.cursor)
}

// Equal reports whether both marks pin the same position. Handle identity is
// irrelevant: clones and independent marks at one position compare equal.
func (m Mark) Equal(other Mark) bool {
	return m.cursor == other.cursor
}

// Offset returns the pinned cursor position.
func (m Mark) Offset() int {
	return m.cursor
}

// With runs f with a mark at the stream's current position and releases it
// on every exit path, including panics and early error returns.
func With[Item any](s *Stream[Item], f func(Mark) error) error {
	m := s.Mark()
	defer m.Release()
	return f(m)
}
