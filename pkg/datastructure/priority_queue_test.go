package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func generateRandomInteger(min int, max int) int {
	return min + rand.Intn(max-min)
}

func TestPriorityQueue(t *testing.T) {
	pq := NewMinHeap[int32]()
	if pq == nil {
		t.Errorf("PriorityQueue is nil")
	}

	for i := 0; i < 10000; i++ {
		pq.Insert(NewPriorityQueueNode(uint64(generateRandomInteger(0, 10000)), int32(i)))
	}

	prevItem, ok := pq.ExtractMin()
	if !ok {
		t.Errorf("Error extract min")
	}

	for i := 1; i < 10000; i++ {
		item, ok := pq.ExtractMin()
		if !ok {
			t.Errorf("Error extract min")
		}

		if prevItem.Rank > item.Rank {
			t.Errorf("PriorityQueue is not sorted")
		}
		prevItem = item
	}

	_, ok = pq.ExtractMin()
	assert.False(t, ok)
	assert.Equal(t, 0, pq.Size())
}

func TestPriorityQueueTieBreakByItem(t *testing.T) {
	pq := NewMinHeap[int32]()
	pq.Insert(NewPriorityQueueNode[int32](5, 3))
	pq.Insert(NewPriorityQueueNode[int32](5, 1))
	pq.Insert(NewPriorityQueueNode[int32](2, 9))
	pq.Insert(NewPriorityQueueNode[int32](5, 2))

	min, ok := pq.GetMin()
	assert.True(t, ok)
	assert.Equal(t, int32(9), min.Item)

	want := []int32{9, 1, 2, 3}
	for _, w := range want {
		item, ok := pq.ExtractMin()
		assert.True(t, ok)
		assert.Equal(t, w, item.Item)
	}
}

func TestPriorityQueueDuplicateEntries(t *testing.T) {
	pq := NewMinHeap[int32]()
	pq.Insert(NewPriorityQueueNode[int32](10, 4))
	pq.Insert(NewPriorityQueueNode[int32](7, 4))

	assert.Equal(t, 2, pq.Size())

	first, _ := pq.ExtractMin()
	second, _ := pq.ExtractMin()
	assert.Equal(t, uint64(7), first.Rank)
	assert.Equal(t, uint64(10), second.Rank)
}
