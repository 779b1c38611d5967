package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jansunwai/grievance-classifier/internal/retry"
)

func quickConfig(maxAttempts int) retry.Config {
	return retry.Config{
		MaxAttempts:  maxAttempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo_FirstAttemptSucceeds(t *testing.T) {
	t.Helper()

	attempts := 0
	err := retry.Do(context.Background(), quickConfig(3), func() error {
		attempts++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_PermanentErrorReturnsImmediately(t *testing.T) {
	t.Helper()

	permanent := errors.New("address not found")
	attempts := 0
	err := retry.Do(context.Background(), quickConfig(3), func() error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected the permanent error back, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_TransientErrorRetries(t *testing.T) {
	t.Helper()

	attempts := 0
	err := retry.Do(context.Background(), quickConfig(3), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("connection refused")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_AttemptsExhausted(t *testing.T) {
	t.Helper()

	attempts := 0
	err := retry.Do(context.Background(), quickConfig(2), func() error {
		attempts++
		return errors.New("i/o timeout")
	})
	if !errors.Is(err, retry.ErrMaxAttemptsExceeded) {
		t.Fatalf("expected ErrMaxAttemptsExceeded, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

func TestDo_CancelledContext(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := retry.Do(ctx, quickConfig(3), func() error {
		attempts++
		return errors.New("connection refused")
	})
	if !errors.Is(err, retry.ErrContextCancelled) {
		t.Fatalf("expected ErrContextCancelled, got %v", err)
	}
	if attempts != 0 {
		t.Errorf("expected no attempts, got %d", attempts)
	}
}

func TestIsTransient(t *testing.T) {
	t.Helper()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), expected: true},
		{name: "http 503", err: errors.New("geocode: status 503 Service Unavailable"), expected: true},
		{name: "rate limited", err: errors.New("Too Many Requests"), expected: true},
		{name: "not found", err: errors.New("no result for query"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retry.IsTransient(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
