package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapOrdering(t *testing.T) {
	for _, d := range []int{2, 4} {
		h := NewdAryHeap[int](d)
		rng := rand.New(rand.NewSource(int64(d)))
		ranks := make([]float64, 0, 500)
		for i := 0; i < 500; i++ {
			r := float64(rng.Intn(50))
			ranks = append(ranks, r)
			h.Insert(NewPriorityQueueNode(r, int64(i), i))
		}
		sort.Float64s(ranks)

		for i := 0; i < 500; i++ {
			top, err := h.ExtractMin()
			require.NoError(t, err)
			assert.Equal(t, ranks[i], top.GetRank())
		}
		assert.True(t, h.IsEmpty())
		_, err := h.ExtractMin()
		assert.Error(t, err)
	}
}

func TestMinHeapTieBreak(t *testing.T) {
	h := NewFourAryHeap[string]()
	h.Insert(NewPriorityQueueNode(1.0, 9, "c"))
	h.Insert(NewPriorityQueueNode(1.0, 3, "a"))
	h.Insert(NewPriorityQueueNode(0.5, 20, "first"))
	h.Insert(NewPriorityQueueNode(1.0, 3, "b"))

	min, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, "first", min.GetItem())

	got := []string{}
	for !h.IsEmpty() {
		top, _ := h.ExtractMin()
		got = append(got, top.GetItem())
	}
	// equal rank: tie-break key ascending, then insertion order
	assert.Equal(t, []string{"first", "a", "b", "c"}, got)
}
