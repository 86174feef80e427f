package concurrent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	jobs := 100
	wp := NewWorkerPool[ShortestPathParam, int32](4, jobs)

	wp.Start(func(job ShortestPathParam) int32 {
		return job.From + job.To
	})

	for i := 0; i < jobs; i++ {
		wp.AddJob(NewJob(i, NewShortestPathParam(int32(i), 1)))
	}
	wp.Close()

	sum := int32(0)
	count := 0
	for res := range wp.CollectResults() {
		sum += res
		count++
	}

	assert.Equal(t, jobs, count)
	// sum of (i+1) for i in [0, 100)
	assert.Equal(t, int32(5050), sum)
}

func TestWorkerPoolAtLeastOneWorker(t *testing.T) {
	wp := NewWorkerPool[[]int32, int](0, 1)
	assert.Equal(t, 1, wp.NumWorkers())

	wp.Start(func(job []int32) int {
		return len(job)
	})
	wp.AddJob(NewJob(0, []int32{1, 2, 3}))
	wp.Close()

	got := []int{}
	for res := range wp.CollectResults() {
		got = append(got, res)
	}
	assert.Equal(t, []int{3}, got)
}
