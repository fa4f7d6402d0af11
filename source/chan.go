package source

import "iter"

// Chan yields values received from ch until it is closed.
func Chan[Item any](ch <-chan Item) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
