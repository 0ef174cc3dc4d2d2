package usecase

import (
	"context"
	"errors"
	"testing"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService_Check(t *testing.T) {
	t.Parallel()

	ok := NewHealthService(pingerFunc(func(context.Context) error { return nil }))
	if err := ok.Check(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}

	down := NewHealthService(pingerFunc(func(context.Context) error { return errors.New("refused") }))
	if err := down.Check(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
