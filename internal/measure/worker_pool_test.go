package measure

import (
	"sync"
	"testing"
)

func TestNewWorkerPool(t *testing.T) {
	pool := NewWorkerPool(4)
	if pool == nil {
		t.Fatal("Expected non-nil worker pool")
	}
}

func TestNewWorkerPool_ZeroWorkers(t *testing.T) {
	// Should default to one worker per CPU when workers <= 0.
	pool := NewWorkerPool(0)
	if pool == nil {
		t.Error("Expected non-nil worker pool")
	}
}

func TestWorkerPool_SubmitAndWait(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Close()

	var counter int
	var mu sync.Mutex

	for i := 0; i < 5; i++ {
		pool.Submit(func() {
			mu.Lock()
			counter++
			mu.Unlock()
		})
	}

	pool.Wait()

	if counter != 5 {
		t.Errorf("Expected counter to be 5 after Wait, got %d", counter)
	}
}

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(3)
	pool.Start()
	defer pool.Close()

	var results []int
	var mu sync.Mutex

	for i := 0; i < 10; i++ {
		value := i
		pool.Submit(func() {
			mu.Lock()
			results = append(results, value*2)
			mu.Unlock()
		})
	}

	pool.Wait()

	if len(results) != 10 {
		t.Errorf("Expected 10 results, got %d", len(results))
	}
}

func TestWorkerPool_StartIdempotent(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Start()
	pool.Start()
	defer pool.Close()

	done := make(chan struct{})
	pool.Submit(func() { close(done) })
	<-done
}
