package backend

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestHandleCache_LoadsOnce(t *testing.T) {
	eng := NewMockEngine(MockResult{Raw: "out"})
	cache := NewHandleCache()

	h1, err := cache.Get(context.Background(), eng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := cache.Get(context.Background(), eng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h1 != h2 {
		t.Error("expected the same handle on repeated gets")
	}
	if eng.Loads != 1 {
		t.Fatalf("expected 1 load, got %d", eng.Loads)
	}
}

func TestHandleCache_FailedLoadNotCached(t *testing.T) {
	eng := NewMockEngine(
		MockResult{LoadErr: errors.New("model still downloading")},
		MockResult{Raw: "out"},
	)
	cache := NewHandleCache()

	if _, err := cache.Get(context.Background(), eng); err == nil {
		t.Fatal("expected first get to fail")
	}
	if _, err := cache.Get(context.Background(), eng); err != nil {
		t.Fatalf("expected second get to retry the load: %v", err)
	}
	if eng.Loads != 2 {
		t.Fatalf("expected 2 loads, got %d", eng.Loads)
	}
}

func TestHandleCache_ConcurrentGets(t *testing.T) {
	eng := NewMockEngine(MockResult{Raw: "out"})
	cache := NewHandleCache()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Get(context.Background(), eng); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if eng.Loads != 1 {
		t.Fatalf("expected a single guarded load, got %d", eng.Loads)
	}
}
