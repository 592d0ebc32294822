package lint

import (
	"sync/atomic"
	"testing"
)

func TestRunOrderedPreservesTaskOrder(t *testing.T) {
	t.Parallel()

	pool := newWorkerPool(4)
	defer pool.close()

	tasks := make([]func() int, 50)
	for i := range tasks {
		tasks[i] = func() int { return i * i }
	}

	results := runOrdered(pool, tasks)
	for i, got := range results {
		if got != i*i {
			t.Fatalf("results[%d] = %d, want %d", i, got, i*i)
		}
	}
}

func TestRunOrderedEmpty(t *testing.T) {
	t.Parallel()

	pool := newWorkerPool(2)
	defer pool.close()

	if got := runOrdered[int](pool, nil); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestWorkerPoolRunsEveryTask(t *testing.T) {
	t.Parallel()

	pool := newWorkerPool(3)
	defer pool.close()

	var count atomic.Int64
	tasks := make([]func() struct{}, 100)
	for i := range tasks {
		tasks[i] = func() struct{} {
			count.Add(1)
			return struct{}{}
		}
	}
	runOrdered(pool, tasks)

	if got := count.Load(); got != 100 {
		t.Errorf("ran %d tasks, want 100", got)
	}
}
