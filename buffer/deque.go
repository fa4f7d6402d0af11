package buffer

import "github.com/teenjuna/rewind/internal"

var _ internal.Window[any] = (*Deque[any])(nil)

// Deque is a growable ring buffer. It is the default window of a stream.
type Deque[Item any] struct {
	items []Item
	head  int
	size  int
}

func NewDeque[Item any]() *Deque[Item] {
	return &Deque[Item]{}
}

func (d *Deque[Item]) Append(item Item) {
	if d.size == len(d.items) {
		d.grow()
	}
	d.items[(d.head+d.size)%len(d.items)] = item
	d.size++
}

func (d *Deque[Item]) DropFront(n int) {
	if n >= d.size {
		clear(d.items)
		d.head = 0
		d.size = 0
		return
	}

	var zero Item
	for i := range n {
		d.items[(d.head+i)%len(d.items)] = zero
	}
	d.head = (d.head + n) % len(d.items)
	d.size -= n
}

func (d *Deque[Item]) At(idx int) (Item, bool) {
	if idx < 0 || idx >= d.size {
		var zero Item
		return zero, false
	}
	return d.items[(d.head+idx)%len(d.items)], true
}

func (d *Deque[Item]) Len() int {
	return d.size
}

func (d *Deque[Item]) grow() {
	items := make([]Item, max(2*len(d.items), 4))
	for i := range d.size {
		items[i] = d.items[(d.head+i)%len(d.items)]
	}
	d.items = items
	d.head = 0
}
