package usecase

import (
	"context"
	"fmt"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	db Pinger
}

func NewHealthService(db Pinger) *HealthService {
	return &HealthService{db: db}
}

// Check performs one trivial round trip to the store.
func (s *HealthService) Check(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "HealthService", "Check")
	defer span.End()

	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: database ping: %w", ErrDependencyUnavailable, err)
	}
	return nil
}
