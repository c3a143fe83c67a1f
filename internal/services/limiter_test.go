package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMatchLimiterAcquireRelease(t *testing.T) {
	l := NewMatchLimiter(2)
	ctx := context.Background()

	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("second acquire: %v", err)
	}

	// Third acquire must block until a slot frees up.
	done := make(chan error, 1)
	go func() {
		done <- l.Acquire(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("third acquire should block, returned %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	l.Release()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("acquire after release: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("acquire did not proceed after release")
	}

	l.Release()
	l.Release()
}

func TestMatchLimiterAcquireHonorsContext(t *testing.T) {
	l := NewMatchLimiter(1)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("acquire: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := l.Acquire(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}

	l.Release()
}

func TestMatchLimiterMinimumOfOne(t *testing.T) {
	l := NewMatchLimiter(0)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("acquire on min-sized limiter: %v", err)
	}
	l.Release()
}
