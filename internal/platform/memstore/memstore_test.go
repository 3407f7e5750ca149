package memstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNotFoundError(t *testing.T) {
	err := NotFound("employees", "42")
	if !IsNotFound(err) {
		t.Fatal("expected IsNotFound to match")
	}
	if got := err.Error(); got != "employees with id 42 not found" {
		t.Fatalf("unexpected message: %q", got)
	}
	wrapped := fmt.Errorf("loading: %w", err)
	if !IsNotFound(wrapped) {
		t.Fatal("expected IsNotFound to match wrapped error")
	}
	if IsNotFound(errors.New("other")) {
		t.Fatal("did not expect match for unrelated error")
	}
}

func TestWaitZeroLatency(t *testing.T) {
	if err := Wait(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Wait(ctx, time.Minute); err == nil {
		t.Fatal("expected context error")
	}
}
