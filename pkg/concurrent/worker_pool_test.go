package concurrent

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapKeepsJobOrder(t *testing.T) {
	jobs := make([]int, 100)
	for i := range jobs {
		jobs[i] = i
	}
	var calls atomic.Int64

	got := Map(8, jobs, func(job int) int {
		calls.Add(1)
		return job * job
	})

	assert.Equal(t, int64(100), calls.Load())
	for i, v := range got {
		assert.Equal(t, i*i, v)
	}
	assert.Empty(t, Map(4, []int{}, func(job int) int { return job }))
}

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool[int, int](0, 10)
	for i := 1; i <= 10; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Start(func(job int) int { return job * 2 })
	wp.Wait()

	sum := 0
	for res := range wp.CollectResults() {
		sum += res
	}
	assert.Equal(t, 110, sum)
}
