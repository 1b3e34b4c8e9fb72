package collabkit

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// descending numeric order, the order used by the reference scenario.
func descending(a, b int) int { return cmp.Compare(b, a) }

func TestExtendSorted_ReferenceScenario(t *testing.T) {
	var items []int

	ExtendSorted(&items, []int{21, 17, 13, 8, 1, 0}, 5, descending)
	require.Equal(t, []int{21, 17, 13, 8, 1}, items)

	ExtendSorted(&items, []int{101, 19, 17, 8, 2}, 8, descending)
	require.Equal(t, []int{101, 21, 19, 17, 13, 8, 2, 1}, items)

	ExtendSorted(&items, []int{1000, 19, 17, 9, 5}, 8, descending)
	require.Equal(t, []int{1000, 101, 21, 19, 17, 13, 9, 8}, items)
}

func TestExtendSorted_EmptyBatchLeavesSliceUnchanged(t *testing.T) {
	items := []int{9, 7, 3}
	ExtendSorted(&items, nil, 3, descending)
	require.Equal(t, []int{9, 7, 3}, items)
}

func TestExtendSorted_EqualItemsAreDropped(t *testing.T) {
	items := []int{9, 7, 3}
	ExtendSorted(&items, []int{9, 7, 3}, 8, descending)
	require.Equal(t, []int{9, 7, 3}, items)
}

func TestExtendSorted_EvictionKeepsLength(t *testing.T) {
	// full container; 8 sorts strictly before the current last element (3),
	// so 3 is evicted and the length stays at the limit.
	items := []int{9, 7, 3}
	ExtendSorted(&items, []int{8}, 3, descending)
	require.Equal(t, []int{9, 8, 7}, items)
}

func TestExtendSorted_DiscardAtBoundary(t *testing.T) {
	// full container; 1 would land at or past the end, so it is discarded
	// without evicting anything.
	items := []int{9, 7, 3}
	ExtendSorted(&items, []int{1}, 3, descending)
	require.Equal(t, []int{9, 7, 3}, items)
}

func TestExtendSorted_ZeroLimit(t *testing.T) {
	var items []int
	ExtendSorted(&items, []int{5, 2}, 0, descending)
	require.Empty(t, items)
}

func TestExtendSorted_FillsBelowLimit(t *testing.T) {
	items := []int{9, 3}
	ExtendSorted(&items, []int{12, 7, 1}, 10, descending)
	require.Equal(t, []int{12, 9, 7, 3, 1}, items)
}

func TestExtendSorted_SortedAndBoundedInvariant(t *testing.T) {
	// Random sorted batches merged into a bounded slice: after every call the
	// slice must stay sorted under cmp and never exceed the limit.
	rng := rand.New(rand.NewSource(1))
	const limit = 32

	var items []int
	for i := 0; i < 100; i++ {
		batch := make([]int, rng.Intn(20))
		for j := range batch {
			batch[j] = rng.Intn(1000)
		}
		slices.SortFunc(batch, descending)
		batch = slices.CompactFunc(batch, func(a, b int) bool { return a == b })

		ExtendSorted(&items, batch, limit, descending)

		require.True(t, slices.IsSortedFunc(items, descending), "iteration %d: not sorted: %v", i, items)
		require.LessOrEqual(t, len(items), limit, "iteration %d", i)
	}
}

func TestPostInc(t *testing.T) {
	v := 41
	require.Equal(t, 41, PostInc(&v))
	require.Equal(t, 42, v)
}
