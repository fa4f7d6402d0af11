package rewind

// Window is the container for the retained run of stream items. A window
// instance belongs to a single stream and is not considered thread-safe.
//
// Positions passed to At are relative to the oldest retained item, not to
// the stream's logical cursor.
type Window[Item any] interface {
	Append(item Item)
	DropFront(n int)
	At(idx int) (Item, bool)
	Len() int
}
