package lazy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCellRunsOnce(t *testing.T) {
	var cell Cell[int]
	var calls int32

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		val, err := cell.Do(ctx, func(context.Context) (int, error) {
			atomic.AddInt32(&calls, 1)
			return 42, nil
		})
		if err != nil {
			t.Fatalf("Do failed: %v", err)
		}
		if val != 42 {
			t.Errorf("Expected 42, got %d", val)
		}
	}

	if calls != 1 {
		t.Errorf("Expected exactly 1 execution, got %d", calls)
	}
}

func TestCellConcurrentCallersShareExecution(t *testing.T) {
	var cell Cell[string]
	var calls int32

	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, err := cell.Do(ctx, func(context.Context) (string, error) {
				atomic.AddInt32(&calls, 1)
				time.Sleep(20 * time.Millisecond)
				return "done", nil
			})
			if err != nil {
				t.Errorf("Do failed: %v", err)
			}
			if val != "done" {
				t.Errorf("Expected done, got %q", val)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("Expected exactly 1 execution, got %d", calls)
	}
}

func TestCellCachesError(t *testing.T) {
	var cell Cell[int]
	wantErr := errors.New("boom")

	ctx := context.Background()

	_, err := cell.Do(ctx, func(context.Context) (int, error) {
		return 0, wantErr
	})
	if err != wantErr {
		t.Fatalf("Expected boom, got %v", err)
	}

	_, err = cell.Do(ctx, func(context.Context) (int, error) {
		t.Error("Second Do must not re-run the function")
		return 0, nil
	})
	if err != wantErr {
		t.Errorf("Expected cached boom, got %v", err)
	}
}

func TestCellWaiterCancellation(t *testing.T) {
	var cell Cell[int]
	release := make(chan struct{})

	started := make(chan struct{})
	go func() {
		_, _ = cell.Do(context.Background(), func(context.Context) (int, error) {
			close(started)
			<-release
			return 7, nil
		})
	}()
	<-started

	cancelCtx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := cell.Do(cancelCtx, func(context.Context) (int, error) {
		t.Error("Waiter must not start a second execution")
		return 0, nil
	})
	if err != context.DeadlineExceeded {
		t.Errorf("Expected context.DeadlineExceeded, got %v", err)
	}

	close(release)

	val, err := cell.Do(context.Background(), func(context.Context) (int, error) {
		t.Error("Result should be cached by now")
		return 0, nil
	})
	if err != nil || val != 7 {
		t.Errorf("Expected cached 7, got %d, %v", val, err)
	}
}

func TestCellStarted(t *testing.T) {
	var cell Cell[int]

	if cell.Started() {
		t.Error("Expected fresh cell to not be started")
	}

	_, _ = cell.Do(context.Background(), func(context.Context) (int, error) {
		return 1, nil
	})

	if !cell.Started() {
		t.Error("Expected cell to be started after Do")
	}
}
