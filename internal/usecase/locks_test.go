package usecase

import (
	"sync"
	"testing"
)

func TestKeyedMutex_MutualExclusion(t *testing.T) {
	k := newKeyedMutex()

	const workers = 20
	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := k.Lock("pay-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("expected %d increments, got %d", workers, counter)
	}
}

func TestKeyedMutex_EvictsIdleEntries(t *testing.T) {
	k := newKeyedMutex()

	unlockA := k.Lock("pay-a")
	unlockB := k.Lock("pay-b")

	k.mu.Lock()
	held := len(k.locks)
	k.mu.Unlock()
	if held != 2 {
		t.Fatalf("expected 2 live entries, got %d", held)
	}

	unlockA()
	unlockB()

	k.mu.Lock()
	left := len(k.locks)
	k.mu.Unlock()
	if left != 0 {
		t.Fatalf("expected empty lock table after release, got %d entries", left)
	}
}

func TestKeyedMutex_EntrySurvivesWaiters(t *testing.T) {
	k := newKeyedMutex()

	unlock := k.Lock("pay-1")

	acquired := make(chan struct{})
	go func() {
		u := k.Lock("pay-1")
		u()
		close(acquired)
	}()

	// The waiter holds a ref, so releasing the first lock must not
	// strand it on a deleted entry.
	unlock()
	<-acquired

	k.mu.Lock()
	left := len(k.locks)
	k.mu.Unlock()
	if left != 0 {
		t.Fatalf("expected empty lock table, got %d entries", left)
	}
}
