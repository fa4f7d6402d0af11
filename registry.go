package rewind

import "slices"

// checkout is the ascending multiset of cursor positions pinned by live
// marks. It is shared by a stream and every mark the stream has issued, so
// that registering and releasing marks is immediately visible to eviction.
type checkout struct {
	cursors []int
	metrics *metrics
}

func (c *checkout) register(cursor int) {
	idx, _ := slices.BinarySearch(c.cursors, cursor)
	c.cursors = slices.Insert(c.cursors, idx, cursor)
	c.metrics.marks(len(c.cursors))
}

func (c *checkout) unregister(cursor int) {
	idx, found := slices.BinarySearch(c.cursors, cursor)
	if !found {
		panic("missing entry for mark in registry")
	}
	c.cursors = slices.Delete(c.cursors, idx, idx+1)
	c.metrics.marks(len(c.cursors))
}

// min returns the oldest pinned cursor, if any mark is live.
func (c *checkout) min() (int, bool) {
	if len(c.cursors) == 0 {
		return 0, false
	}
	return c.cursors[0], true
}

func (c *checkout) empty() bool {
	return len(c.cursors) == 0
}
