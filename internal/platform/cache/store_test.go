package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute, nil)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "stadiums", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	store := NewStore[int](time.Minute, clock)
	var calls atomic.Int32
	loader := func(context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}

	first, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil || first != 1 {
		t.Fatalf("first load: got %d, %v", first, err)
	}
	clock.Advance(30 * time.Second)
	if again, _ := store.GetOrLoad(context.Background(), "k", loader); again != 1 {
		t.Fatalf("expected cached value before ttl, got %d", again)
	}
	clock.Advance(31 * time.Second)
	if reloaded, _ := store.GetOrLoad(context.Background(), "k", loader); reloaded != 2 {
		t.Fatalf("expected reload after ttl, got %d", reloaded)
	}
}

func TestStore_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0, nil)
	boom := errors.New("boom")
	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
		return "", boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get("k"); ok {
		t.Fatalf("failed load must not populate the cache")
	}

	store.Set("k", "v")
	store.Invalidate("k")
	if _, ok := store.Get("k"); ok {
		t.Fatalf("expected invalidated key to be gone")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
