package internal

// Window is a container for the retained run of stream items. Implementations
// are not considered thread-safe.
type Window[Item any] interface {
	// Append adds an item to the live edge of the window.
	Append(item Item)
	// DropFront removes n items from the oldest end. If the window holds
	// fewer than n items it is cleared.
	DropFront(n int)
	// At returns the item at idx (0 = oldest retained) if it exists.
	At(idx int) (Item, bool)
	// Len returns the number of retained items.
	Len() int
}
