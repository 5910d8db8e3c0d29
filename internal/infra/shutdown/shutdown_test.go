package shutdown

import (
	"context"
	"errors"
	"sync"
	"syscall"
	"testing"
	"time"
)

func TestNewHandler(t *testing.T) {
	h := NewHandler(5 * time.Second)
	if h == nil {
		t.Fatal("NewHandler returned nil")
	}
	if h.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", h.timeout)
	}
}

func TestWaitRunsHooksInReverseOrder(t *testing.T) {
	h := NewHandler(5 * time.Second)

	var mu sync.Mutex
	callOrder := make([]int, 0)
	record := func(id int) func(context.Context) error {
		return func(context.Context) error {
			mu.Lock()
			callOrder = append(callOrder, id)
			mu.Unlock()
			return nil
		}
	}

	h.OnShutdown(record(1))
	h.OnShutdown(record(2))
	h.OnShutdown(record(3))

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait() }()

	// Give Wait time to install the signal handler.
	time.Sleep(50 * time.Millisecond)
	syscall.Kill(syscall.Getpid(), syscall.SIGINT)

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Wait() = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() did not complete")
	}

	mu.Lock()
	defer mu.Unlock()
	want := []int{3, 2, 1}
	if len(callOrder) != len(want) {
		t.Fatalf("called %d hooks, want %d", len(callOrder), len(want))
	}
	for i := range want {
		if callOrder[i] != want[i] {
			t.Fatalf("call order = %v, want %v", callOrder, want)
		}
	}

	select {
	case <-h.Done():
	default:
		t.Error("Done channel should be closed after Wait")
	}
}

func TestWaitReturnsHookError(t *testing.T) {
	h := NewHandler(5 * time.Second)
	hookErr := errors.New("hook error")

	h.OnShutdown(func(context.Context) error { return nil })
	h.OnShutdown(func(context.Context) error { return hookErr })

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait() }()

	time.Sleep(50 * time.Millisecond)
	syscall.Kill(syscall.Getpid(), syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != hookErr {
			t.Errorf("Wait() = %v, want %v", err, hookErr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() did not complete")
	}
}
