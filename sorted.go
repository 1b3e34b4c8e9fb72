package collabkit

import "slices"

// ExtendSorted merges a sorted batch of newItems into the sorted slice at
// items, in place, keeping the slice sorted under cmp and its length at most
// limit. Both *items and newItems must already be sorted ascending under cmp;
// that precondition is not checked.
//
// Each new item is placed where a binary search under cmp would insert it.
// An item comparing equal to an existing element is dropped. When the slice
// is full, an item whose position falls before the current last element
// evicts that last element; an item whose position falls at or past the end
// is discarded without mutating the slice.
//
// The search floor advances monotonically with each placed item, so a batch
// never re-scans positions it has already settled. cmp receives an existing
// element first and the new item second and returns a negative, zero, or
// positive value in the usual three-way convention.
func ExtendSorted[T any](items *[]T, newItems []T, limit int, cmp func(existing, incoming T) int) {
	floor := 0
	for _, incoming := range newItems {
		i, found := slices.BinarySearchFunc((*items)[floor:], incoming, cmp)
		index := floor + i
		if found {
			floor = index
			continue
		}
		switch {
		case len(*items) < limit:
			*items = slices.Insert(*items, index, incoming)
		case index < len(*items):
			*items = slices.Insert((*items)[:len(*items)-1], index, incoming)
		}
		floor = index
	}
}
